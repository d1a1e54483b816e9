// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lang

import "testing"

func TestArity(t *testing.T) {
	cases := map[Kind]int{Implication: 2, Negation: 1, Falsum: 0}
	for k, want := range cases {
		if got := Arity(k); got != want {
			t.Errorf("Arity(%d) = %d, want %d", k, got, want)
		}
	}
}

func TestNewRequiresImplication(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when Implication is missing")
		}
	}()
	New("broken", map[Kind]byte{Negation: 'N'})
}

func TestImpNegMnemonics(t *testing.T) {
	if !ImpNeg.Allows(Implication) || !ImpNeg.Allows(Negation) {
		t.Fatal("ImpNeg should allow Implication and Negation")
	}
	if ImpNeg.Allows(Falsum) {
		t.Fatal("ImpNeg should not allow Falsum")
	}
	m, ok := ImpNeg.Mnemonic(Implication)
	if !ok || m != 'C' {
		t.Fatalf("Mnemonic(Implication) = %q, %v", m, ok)
	}
	k, ok := ImpNeg.KindForMnemonic('N')
	if !ok || k != Negation {
		t.Fatalf("KindForMnemonic('N') = %v, %v", k, ok)
	}
	if _, ok := ImpNeg.KindForMnemonic('F'); ok {
		t.Fatal("ImpNeg should not recognize 'F'")
	}
}

func TestImpFalseMnemonics(t *testing.T) {
	if !ImpFalse.Allows(Falsum) {
		t.Fatal("ImpFalse should allow Falsum")
	}
	if ImpFalse.Allows(Negation) {
		t.Fatal("ImpFalse should not allow Negation")
	}
}

func TestByName(t *testing.T) {
	if l, ok := ByName("imp-neg"); !ok || l.Name() != "imp-neg" {
		t.Fatalf("ByName(imp-neg) = %v, %v", l, ok)
	}
	if _, ok := ByName("nonexistent"); ok {
		t.Fatal("ByName should reject unknown names")
	}
}

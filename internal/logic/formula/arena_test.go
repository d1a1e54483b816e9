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

package formula

import (
	"testing"

	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
)

func TestArenaWriteAndRead(t *testing.T) {
	n := NewVar(lang.ImpNeg, 0)
	a := NewArena(lang.ImpNeg, 1)
	root := a.WriteNormal(n, 5)
	got := a.At(root)
	if !got.IsVar || got.VarID != 5 {
		t.Fatalf("At(root) = %+v, want Var(5)", got)
	}
}

func TestArenaAtOutOfRangePanics(t *testing.T) {
	a := NewArena(lang.ImpNeg, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range index")
		}
	}()
	a.At(0)
}

func TestUnifyVarWithTerm(t *testing.T) {
	// Unify Var(0) with "a -> b" (Implication(Var(1), Var(2))): should
	// succeed, substituting every Var(0) with the implication.
	impl, _, ok := NewChecked(lang.ImpNeg, []Term[struct{}]{
		{Kind: lang.Implication, Children: make([]struct{}, 2)},
		{IsVar: true, VarID: 1},
		{IsVar: true, VarID: 2},
	})
	if !ok {
		t.Fatal("expected well-formed")
	}

	a := NewArena(lang.ImpNeg, 4)
	v := a.WriteNormal(NewVar(lang.ImpNeg, 0), 0)
	implRoot := a.WriteNormal(impl, 10)

	if !a.Unify(v, implRoot) {
		t.Fatal("expected Var/Term unification to succeed")
	}
	result := FromArena(a, v)
	if got, want := result.String(), "Cab"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestUnifyOccursCheckFails(t *testing.T) {
	// Unify Var(0) with "Var(0) -> Var(1)" (the variable occurring inside
	// its own proposed binding): must fail.
	a := NewArena(lang.ImpNeg, 4)
	v := a.WriteNormal(NewVar(lang.ImpNeg, 0), 0)
	self, _, ok := NewChecked(lang.ImpNeg, []Term[struct{}]{
		{Kind: lang.Implication, Children: make([]struct{}, 2)},
		{IsVar: true, VarID: 0},
		{IsVar: true, VarID: 1},
	})
	if !ok {
		t.Fatal("expected well-formed")
	}
	selfRoot := a.WriteNormal(self, 0)
	if a.Unify(v, selfRoot) {
		t.Fatal("expected occurs check to reject self-referential binding")
	}
}

func TestUnifyKindMismatchFails(t *testing.T) {
	impl, _, ok := NewChecked(lang.ImpNeg, []Term[struct{}]{
		{Kind: lang.Implication, Children: make([]struct{}, 2)},
		{IsVar: true, VarID: 0},
		{IsVar: true, VarID: 1},
	})
	if !ok {
		t.Fatal("expected well-formed")
	}
	neg, _, ok := NewChecked(lang.ImpNeg, []Term[struct{}]{
		{Kind: lang.Negation, Children: make([]struct{}, 1)},
		{IsVar: true, VarID: 0},
	})
	if !ok {
		t.Fatal("expected well-formed")
	}

	a := NewArena(lang.ImpNeg, 8)
	implRoot := a.WriteNormal(impl, 0)
	negRoot := a.WriteNormal(neg, 10)
	if a.Unify(implRoot, negRoot) {
		t.Fatal("expected Implication and Negation to fail to unify")
	}
}

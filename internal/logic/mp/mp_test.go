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

package mp

import (
	"testing"

	"github.com/bodokat/hilbert-explorer/internal/logic/formula"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
	"github.com/bodokat/hilbert-explorer/internal/logic/parse"
)

func mustParse(t *testing.T, l lang.Language, s string) formula.Normal {
	t.Helper()
	n, err := parse.Polish(l, s)
	if err != nil {
		t.Fatalf("parse.Polish(%q) failed: %v", s, err)
	}
	return n
}

func TestApplyReflexiveAxiom(t *testing.T) {
	// P = a -> (b -> a); F = P -> (P -> P): P matches F's antecedent
	// exactly (up to renaming), so MP should yield F's consequent "P -> P"
	// with P's own variables.
	p := mustParse(t, lang.ImpNeg, "CaCba")
	f := mustParse(t, lang.ImpNeg, "CCaCbaCCaCbaCaCba")
	result, ok := Apply(p, f)
	if !ok {
		t.Fatal("expected Modus Ponens to succeed")
	}
	if got, want := result.String(), "CCaCbaCaCba"; got != want {
		t.Fatalf("Apply result = %q, want %q", got, want)
	}
}

func TestApplyNonImplicationRejected(t *testing.T) {
	p := mustParse(t, lang.ImpNeg, "CaCba")
	f := mustParse(t, lang.ImpNeg, "NNa") // not an implication
	if _, ok := Apply(p, f); ok {
		t.Fatal("expected Apply to reject a non-implication second argument")
	}
}

func TestApplyUnificationFailure(t *testing.T) {
	// P = "a -> b" (an implication shape), F's antecedent is "-a" (a
	// negation): the root constructors differ, so unification fails.
	p := mustParse(t, lang.ImpNeg, "Cab")
	f := mustParse(t, lang.ImpNeg, "CNaa")
	if _, ok := Apply(p, f); ok {
		t.Fatal("expected unification to fail on mismatched root constructors")
	}
}

func TestApplyDisjointRenaming(t *testing.T) {
	// P and F share a raw variable name ("a" in both source strings), but
	// the two are parsed independently and must not collide after Apply's
	// internal disjoint renaming.
	p := mustParse(t, lang.ImpNeg, "a") // P = Var(0)
	f := mustParse(t, lang.ImpNeg, "Caa")
	result, ok := Apply(p, f)
	if !ok {
		t.Fatal("expected Modus Ponens to succeed")
	}
	// F = a -> a; unifying P (a bare variable) with F's antecedent binds
	// P's variable to F's, so the consequent is just that same variable,
	// canonicalizing to "a".
	if got, want := result.String(), "a"; got != want {
		t.Fatalf("Apply result = %q, want %q", got, want)
	}
}

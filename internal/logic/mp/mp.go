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

// Package mp implements Modus Ponens between two Normal forms via
// unification, generalizing "from A and A -> B infer B" to unification of
// the premise against the implication's antecedent under a renaming that
// keeps the two formulas' variables disjoint.
package mp

import "github.com/bodokat/hilbert-explorer/internal/logic/formula"

// Apply attempts Modus Ponens between premise p and implication candidate f.
// It returns the consequent, unified and canonicalized, and true on success;
// ok is false if f's root isn't an implication, or if unification fails.
//
// Procedure: reject f up front if its root isn't an implication -- no arena
// needed for that case. Otherwise allocate an arena of capacity
// len(p)+len(f); write p at offset 0 with no variable shift, then write f
// shifted by MaxVar(p)+1 so the two formulas share no variable names. Unify
// p's root against f's antecedent; on success, materialize and canonicalize
// f's consequent from the (now substituted) arena.
func Apply(p, f formula.Normal) (formula.Normal, bool) {
	if !f.IsImplication() {
		return formula.Normal{}, false
	}

	arena := formula.NewArena(f.Lang, p.Len()+f.Len())
	pRoot := arena.WriteNormal(p, 0)
	shift := formula.MaxVar(p) + 1
	fRoot := arena.WriteNormal(f, shift)

	fTerm := arena.At(fRoot)
	antecedentIdx, consequentIdx := fTerm.Children[0], fTerm.Children[1]

	if !arena.Unify(pRoot, antecedentIdx) {
		return formula.Normal{}, false
	}
	return formula.FromArena(arena, consequentIdx), true
}

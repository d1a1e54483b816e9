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

import "github.com/bodokat/hilbert-explorer/internal/logic/lang"

// Arena is a growable sequence of Terms whose child payloads are indices
// into the same sequence. It is the mutable working space for unification:
// two Normal forms are written into one Arena (with variables shifted so
// they share no names), then substitution rewrites Var slots in place.
//
// An Arena is allocated per Modus Ponens attempt, filled, mutated, read once
// to materialize a result, then discarded.
type Arena struct {
	Lang  lang.Language
	terms []Term[int]
}

// NewArena allocates an Arena with room for capacity Terms without further
// growth, per the source's "allocate an arena of capacity |P|+|F|" sizing.
func NewArena(l lang.Language, capacity int) *Arena {
	return &Arena{Lang: l, terms: make([]Term[int], 0, capacity)}
}

// WriteNormal serializes n into the arena, adding varShift to every
// variable so that, e.g., writing P with shift 0 and F with shift
// MaxVar(P)+1 guarantees the two share no variable names. It returns the
// arena index of n's root.
//
// A structural Term's slot is reserved (appended as a zero value) before its
// children are written, so it can be patched with the children's absolute
// arena indices once those are known -- this reservation is the one
// interesting piece of pointer arithmetic the representation needs.
func (a *Arena) WriteNormal(n Normal, varShift int) int {
	var write func(pos int) (next, root int)
	write = func(pos int) (int, int) {
		t := n.terms[pos]
		if t.IsVar {
			root := len(a.terms)
			a.terms = append(a.terms, varTerm[int](t.VarID+varShift))
			return pos + 1, root
		}
		root := len(a.terms)
		a.terms = append(a.terms, Term[int]{}) // reserved
		children := make([]int, len(t.Children))
		next := pos + 1
		for i := range t.Children {
			var childRoot int
			next, childRoot = write(next)
			children[i] = childRoot
		}
		a.terms[root] = Term[int]{Kind: t.Kind, Children: children}
		return next, root
	}
	_, root := write(0)
	return root
}

// At panics if idx is out of range -- an Arena invariant violation, not a
// recoverable error, per the source's error taxonomy ("materializing from an
// out-of-range index" is a bug indicator).
func (a *Arena) At(idx int) Term[int] {
	if idx < 0 || idx >= len(a.terms) {
		panic("formula: arena index out of range")
	}
	return a.terms[idx]
}

// substitute rewrites every Var(v) slot in the arena to a clone of t.
func (a *Arena) substitute(v int, t Term[int]) {
	for i := range a.terms {
		if a.terms[i].IsVar && a.terms[i].VarID == v {
			a.terms[i] = t
		}
	}
}

// occurs reports whether var appears anywhere within t (following t's
// children through the arena), the cycle guard for substitution.
func (a *Arena) occurs(v int, t Term[int]) bool {
	if t.IsVar {
		return t.VarID == v
	}
	for _, c := range t.Children {
		if a.occurs(v, a.terms[c]) {
			return true
		}
	}
	return false
}

// Unify attempts to unify arena positions x and y in place, via a worklist
// of index pairs: Var/Var drops or substitutes, Var/Term substitutes after
// an occurs check, Term/Term requires matching Kinds and pushes child pairs.
// It returns false if no unifier exists; the arena is left partially
// mutated in that case, which is fine since callers discard it on failure.
func (a *Arena) Unify(x, y int) bool {
	worklist := [][2]int{{x, y}}
	for len(worklist) > 0 {
		pair := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		ta, tb := a.terms[pair[0]], a.terms[pair[1]]
		switch {
		case ta.IsVar && tb.IsVar:
			if ta.VarID != tb.VarID {
				a.substitute(ta.VarID, tb)
			}
		case ta.IsVar:
			if a.occurs(ta.VarID, tb) {
				return false
			}
			a.substitute(ta.VarID, tb)
		case tb.IsVar:
			if a.occurs(tb.VarID, ta) {
				return false
			}
			a.substitute(tb.VarID, ta)
		default:
			if ta.Kind != tb.Kind {
				return false
			}
			for i := range ta.Children {
				worklist = append(worklist, [2]int{ta.Children[i], tb.Children[i]})
			}
		}
	}
	return true
}

// FromArena materializes the Normal form rooted at idx, depth-first,
// dropping child payloads and canonicalizing the result once on completion.
func FromArena(a *Arena, idx int) Normal {
	var terms []Term[struct{}]
	var walk func(idx int)
	walk = func(idx int) {
		t := a.terms[idx]
		if t.IsVar {
			terms = append(terms, varTerm[struct{}](t.VarID))
			return
		}
		terms = append(terms, Term[struct{}]{Kind: t.Kind, Children: make([]struct{}, len(t.Children))})
		for _, c := range t.Children {
			walk(c)
		}
	}
	walk(idx)
	return newNormal(a.Lang, terms)
}

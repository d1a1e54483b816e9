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

// Package parse reads textual formulas, in either Polish or infix notation,
// into canonical Normal forms. Both syntaxes are boundary concerns: the
// saturation core only ever consumes the Normal forms this package produces.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bodokat/hilbert-explorer/internal/logic/formula"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
)

// ErrorKind discriminates the parse error taxonomy from the source: an
// input that ran out before a formula was complete, or an unrecognized
// character. Both grammars below only ever return a term once every
// required child position has been filled, and any leftover input is
// caught as UnexpectedChar before a Normal is ever built, so there is no
// reachable case where a complete-but-malformed buffer reaches
// formula.NewChecked -- that narrower arity-mismatch taxonomy spec.md
// describes abstractly belongs to formula.NewChecked itself (see its own
// tests), not to this package's error type.
type ErrorKind int

const (
	UnexpectedEnd ErrorKind = iota
	UnexpectedChar
)

// Error is the parser's single error type, per the source's flat error
// taxonomy (no wrapped causes -- a parse error is always a leaf).
type Error struct {
	Kind ErrorKind
	Char rune // set for UnexpectedChar
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return "parse: unexpected end of input"
	case UnexpectedChar:
		return fmt.Sprintf("parse: unexpected character %q", e.Char)
	default:
		return "parse: error"
	}
}

// Polish parses Polish-notation input: a single-letter constructor mnemonic
// (as registered on l) followed by its required operands, or any other
// letter/digit as a variable -- each distinct letter is assigned a fresh
// small-integer index on first sight.
func Polish(l lang.Language, s string) (formula.Normal, error) {
	p := &polishParser{lang: l, src: s, vars: make(map[byte]int)}
	terms, err := p.term()
	if err != nil {
		return formula.Normal{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return formula.Normal{}, &Error{Kind: UnexpectedChar, Char: rune(p.src[p.pos])}
	}
	n, _, ok := formula.NewChecked(l, terms)
	if !ok {
		panic("parse: internal invariant violated: recursive descent produced a malformed term buffer")
	}
	return n, nil
}

type polishParser struct {
	lang lang.Language
	src  string
	pos  int
	vars map[byte]int
}

func (p *polishParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *polishParser) term() ([]formula.Term[struct{}], error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &Error{Kind: UnexpectedEnd}
	}
	c := p.src[p.pos]
	if k, ok := p.lang.KindForMnemonic(c); ok {
		p.pos++
		out := []formula.Term[struct{}]{{Kind: k, Children: make([]struct{}, lang.Arity(k))}}
		for i := 0; i < lang.Arity(k); i++ {
			child, err := p.term()
			if err != nil {
				return nil, err
			}
			out = append(out, child...)
		}
		return out, nil
	}
	if isLetterOrDigit(c) {
		p.pos++
		id, ok := p.vars[c]
		if !ok {
			id = len(p.vars)
			p.vars[c] = id
		}
		return []formula.Term[struct{}]{{IsVar: true, VarID: id}}, nil
	}
	return nil, &Error{Kind: UnexpectedChar, Char: rune(c)}
}

func isLetterOrDigit(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

// Infix parses infix notation: digit-runs are variables (using their
// literal value as the index), "->" is right-associative implication, a "-"
// prefix is negation, and parentheses group.
func Infix(l lang.Language, s string) (formula.Normal, error) {
	p := &infixParser{lang: l, src: s}
	terms, err := p.expr()
	if err != nil {
		return formula.Normal{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return formula.Normal{}, &Error{Kind: UnexpectedChar, Char: rune(p.src[p.pos])}
	}
	n, _, ok := formula.NewChecked(l, terms)
	if !ok {
		panic("parse: internal invariant violated: recursive descent produced a malformed term buffer")
	}
	return n, nil
}

type infixParser struct {
	lang lang.Language
	src  string
	pos  int
}

func (p *infixParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

// expr parses a right-associative implication chain: term ('->' expr)?
func (p *infixParser) expr() ([]formula.Term[struct{}], error) {
	left, err := p.one()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return left, nil
	}
	if strings.HasPrefix(p.src[p.pos:], "->") {
		p.pos += 2
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		out := append([]formula.Term[struct{}]{{Kind: lang.Implication, Children: make([]struct{}, 2)}}, left...)
		out = append(out, right...)
		return out, nil
	}
	return left, nil
}

// exprToBracket parses a right-associative implication chain that must be
// terminated by a closing ')'.
func (p *infixParser) exprToBracket() ([]formula.Term[struct{}], error) {
	left, err := p.one()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &Error{Kind: UnexpectedEnd}
	}
	if p.src[p.pos] == ')' {
		p.pos++
		return left, nil
	}
	if strings.HasPrefix(p.src[p.pos:], "->") {
		p.pos += 2
		right, err := p.exprToBracket()
		if err != nil {
			return nil, err
		}
		out := append([]formula.Term[struct{}]{{Kind: lang.Implication, Children: make([]struct{}, 2)}}, left...)
		out = append(out, right...)
		return out, nil
	}
	return nil, &Error{Kind: UnexpectedChar, Char: rune(p.src[p.pos])}
}

func (p *infixParser) one() ([]formula.Term[struct{}], error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &Error{Kind: UnexpectedEnd}
	}
	c := p.src[p.pos]
	switch {
	case c == '(':
		p.pos++
		return p.exprToBracket()
	case c >= '0' && c <= '9':
		return p.variable()
	case c == '-':
		p.pos++
		p.skipSpace()
		inner, err := p.one()
		if err != nil {
			return nil, err
		}
		if !p.lang.Allows(lang.Negation) {
			return nil, &Error{Kind: UnexpectedChar, Char: '-'}
		}
		return append([]formula.Term[struct{}]{{Kind: lang.Negation, Children: make([]struct{}, 1)}}, inner...), nil
	default:
		return nil, &Error{Kind: UnexpectedChar, Char: rune(c)}
	}
}

func (p *infixParser) variable() ([]formula.Term[struct{}], error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return nil, &Error{Kind: UnexpectedChar, Char: rune(p.src[start])}
	}
	return []formula.Term[struct{}]{{IsVar: true, VarID: n}}, nil
}

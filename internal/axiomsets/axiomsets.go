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

// Package axiomsets is the built-in registry of named axiom schemata for the
// two supported calculi. Each set is parsed once, at package init, from its
// Polish-notation literal; a parse failure here means the registry itself
// ships a broken literal, which is a packaging bug rather than a user error,
// so failures are aggregated and reported together before panicking.
package axiomsets

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bodokat/hilbert-explorer/internal/logic/formula"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
	"github.com/bodokat/hilbert-explorer/internal/logic/parse"
)

// Set is a named, ready-to-saturate collection of axioms over one Language.
type Set struct {
	Name   string
	Lang   lang.Language
	Axioms []formula.Normal
}

var registry = map[string]Set{}

func register(name string, l lang.Language, literals []string) {
	axioms := make([]formula.Normal, len(literals))
	var errs error
	for i, lit := range literals {
		n, err := parse.Polish(l, lit)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("axiomsets: %s[%d] %q: %w", name, i, lit, err))
			continue
		}
		axioms[i] = n
	}
	if errs != nil {
		panic(errs)
	}
	registry[name] = Set{Name: name, Lang: l, Axioms: axioms}
}

func init() {
	// Frege's 6-axiom basis for {->, -}, the calculus's default.
	register("frege", lang.ImpNeg, []string{
		"CaCba",
		"CCaCbcCCabCac",
		"CCaCbcCbCac",
		"CCabCNbNa",
		"CNNaa",
		"CaNNa",
	})
	// Łukasiewicz's 3-axiom basis for {->, -}.
	register("lukasiewicz1", lang.ImpNeg, []string{
		"CCpqCCqrCpr",
		"CCNppp",
		"CpCNpq",
	})
	// Łukasiewicz and Tarski's single-axiom basis for {->, -}.
	register("lukasiewicz-tarski", lang.ImpNeg, []string{
		"CCCaCbaCCCNcCdNeCCcCdfCCedCefgChg",
	})
	// Meredith's single-axiom basis for {->, -}.
	register("meredith", lang.ImpNeg, []string{
		"CCCCCabCNcNdceCCeaCda",
	})
	// Church's 3-axiom basis for {->, F}.
	register("church", lang.ImpFalse, []string{
		"CaCba",
		"CCaCbcCCabCac",
		"CCCaFFa",
	})
	// Meredith's single-axiom basis for {->, F}.
	register("meredith1", lang.ImpFalse, []string{
		"CCCCCabCcFdeCCeaCca",
	})
}

// Lookup resolves a named axiom set.
func Lookup(name string) (Set, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names lists every registered axiom set, for CLI help text and validation.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

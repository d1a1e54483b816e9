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

// Package config defines the explorer's run parameters and the flag schema
// that populates them, shared between the CLI command and its tests so both
// parse flags identically.
package config

import "flag"

// Values is the resolved set of parameters for one explorer run.
type Values struct {
	AxiomSet   string
	Iterations int
	Search     string
	Stats      string
	Derive     string
	Lang       string
	Verbose    bool
}

// FlagSet builds a flag.FlagSet wired to populate v, matching the explorer
// command's flag surface: -i/--iterations, -s/--search, --stats, --derive,
// --lang, -v/--verbose. Long and short forms share a variable by registering
// the long name and aliasing the short one to the same destination.
func FlagSet(name string, v *Values) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.IntVar(&v.Iterations, "iterations", 5, "number of saturation steps to run")
	fs.IntVar(&v.Iterations, "i", 5, "shorthand for -iterations")

	fs.StringVar(&v.Search, "search", "", "halt once this formula (in --lang syntax) is derived")
	fs.StringVar(&v.Search, "s", "", "shorthand for -search")

	fs.StringVar(&v.Stats, "stats", "", "write a length histogram CSV to this path after the run")
	fs.StringVar(&v.Derive, "derive", "", "print a derivation for this formula after the run")
	fs.StringVar(&v.Lang, "lang", "imp-neg", "calculus to parse search/derive formulas under: imp-neg or imp-false")

	fs.BoolVar(&v.Verbose, "verbose", false, "raise log level to debug")
	fs.BoolVar(&v.Verbose, "v", false, "shorthand for -verbose")

	return fs
}

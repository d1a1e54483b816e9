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

// Package cli implements the explorer's command, in the hashicorp/cli
// Command shape (Help/Run/Synopsis) the teacher corpus's go.mod carries.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bodokat/hilbert-explorer/internal/axiomsets"
	"github.com/bodokat/hilbert-explorer/internal/config"
	"github.com/bodokat/hilbert-explorer/internal/logging"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
	"github.com/bodokat/hilbert-explorer/internal/logic/parse"
	"github.com/bodokat/hilbert-explorer/internal/logic/saturation"
	"github.com/bodokat/hilbert-explorer/internal/stats"
)

// Exit codes, per the CLI's documented contract: 0 success, 1 usage/flag
// error or a failed step or stats write, 2 a formula failed to parse, 3 a
// requested --search or --derive target was not in the theorem set after
// the run.
const (
	ExitOK = iota
	ExitUsage
	ExitParse
	ExitNotFound
)

// RunCommand is the explorer's sole subcommand: run N saturation steps over
// a named axiom set, optionally halting early on a search target and
// writing a stats file or derivation afterward.
type RunCommand struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (c *RunCommand) Synopsis() string {
	return "Saturate an axiom set by forward-chaining Modus Ponens"
}

func (c *RunCommand) Help() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Usage: explorer run [options] <axiom-set>")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "  Available axiom sets:", strings.Join(axiomsets.Names(), ", "))
	fmt.Fprintln(&b, "")
	config.FlagSet("run", &config.Values{}).VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&b, "  -%-12s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
	})
	return b.String()
}

func (c *RunCommand) Run(args []string) int {
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	var v config.Values
	fs := config.FlagSet("run", &v)
	fs.SetOutput(c.Stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(c.Stderr, "explorer run: expected exactly one axiom-set argument")
		return ExitUsage
	}
	v.AxiomSet = rest[0]

	l, ok := lang.ByName(v.Lang)
	if !ok {
		fmt.Fprintf(c.Stderr, "explorer run: unknown --lang %q\n", v.Lang)
		return ExitUsage
	}

	set, ok := axiomsets.Lookup(v.AxiomSet)
	if !ok {
		fmt.Fprintf(c.Stderr, "explorer run: unknown axiom set %q (available: %s)\n", v.AxiomSet, strings.Join(axiomsets.Names(), ", "))
		return ExitUsage
	}

	logger := logging.New(v.Verbose)

	var searchTarget *string
	if v.Search != "" {
		n, err := parse.Infix(l, v.Search)
		if err != nil {
			n2, err2 := parse.Polish(l, v.Search)
			if err2 != nil {
				fmt.Fprintf(c.Stderr, "explorer run: --search: %v\n", err)
				return ExitParse
			}
			n = n2
		}
		key := n.Key()
		searchTarget = &key
	}

	ctx := saturation.New(set.Axioms)
	ctx.Logger = logger

	found := false
	for i := 0; i < v.Iterations; i++ {
		if _, err := ctx.Step(context.Background()); err != nil {
			fmt.Fprintf(c.Stderr, "explorer run: step %d: %v\n", i, err)
			return ExitUsage
		}
		if searchTarget != nil {
			for _, m := range ctx.Entries() {
				if m.Form.Key() == *searchTarget {
					found = true
					break
				}
			}
		}
		if found {
			break
		}
	}

	if searchTarget != nil && !found {
		fmt.Fprintf(c.Stderr, "explorer run: search target %q not found within %d iterations\n", v.Search, v.Iterations)
		return ExitNotFound
	}

	if v.Stats != "" {
		f, err := os.Create(v.Stats)
		if err != nil {
			fmt.Fprintf(c.Stderr, "explorer run: --stats: %v\n", err)
			return ExitUsage
		}
		defer f.Close()
		if err := stats.Write(f, ctx.Entries()); err != nil {
			fmt.Fprintf(c.Stderr, "explorer run: --stats: %v\n", err)
			return ExitUsage
		}
	}

	if v.Derive != "" {
		n, err := parse.Infix(l, v.Derive)
		if err != nil {
			n2, err2 := parse.Polish(l, v.Derive)
			if err2 != nil {
				fmt.Fprintf(c.Stderr, "explorer run: --derive: %v\n", err)
				return ExitParse
			}
			n = n2
		}
		target := -1
		for _, m := range ctx.Entries() {
			if m.Form.Key() == n.Key() {
				target = m.Index
				break
			}
		}
		if target < 0 {
			fmt.Fprintf(c.Stderr, "explorer run: --derive: %q was never derived\n", v.Derive)
			return ExitNotFound
		}
		printDerivation(c.Stdout, ctx.Derivation(target))
	} else {
		for _, m := range ctx.Entries() {
			fmt.Fprintf(c.Stdout, "%d: %s\n", m.Index, m.Form.String())
		}
	}

	return ExitOK
}

func printDerivation(w io.Writer, chain []*saturation.Meta) {
	for _, m := range chain {
		edges := make([]string, 0, 1)
		for _, e := range m.Edges() {
			if e.Axiom {
				edges = append(edges, "AXIOM")
			} else {
				edges = append(edges, fmt.Sprintf("MP %d, %d", e.P, e.F))
			}
		}
		fmt.Fprintf(w, "%d: %s (%s)\n", m.Index, m.Form.String(), strings.Join(edges, "; "))
	}
}

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

// Package saturation is the forward-chaining engine: given a starting set of
// axioms, it repeatedly applies Modus Ponens across all known theorem pairs,
// adding every novel result (by canonical Normal form) along with the
// provenance edges that derived it. Named to avoid shadowing the standard
// library's context package, which Step itself accepts.
package saturation

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hashicorp/go-hclog"

	"github.com/bodokat/hilbert-explorer/internal/logic/formula"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
	"github.com/bodokat/hilbert-explorer/internal/logic/mp"
)

// workerLimit bounds in-flight Modus Ponens evaluations at GOMAXPROCS, since
// each one is pure CPU work with no I/O to overlap.
func workerLimit() int64 {
	return int64(runtime.GOMAXPROCS(0))
}

// Source records how one theorem was derived: either an axiom (no parents)
// or a Modus Ponens application of two prior theorems, identified by their
// index in the Context.
type Source struct {
	Axiom bool
	P, F  int // premise index, implication index -- unused when Axiom
}

// Meta is everything the Context tracks about one theorem beyond its
// formula: its index and the set of ways it has been derived so far. A set,
// not a single edge, since the same formula can emerge from more than one
// Modus Ponens pair -- losing those alternate derivations would make
// provenance reconstruction incomplete.
type Meta struct {
	Index int
	Form  formula.Normal
	edges map[Source]struct{}
}

// Edges returns a formula's recorded derivations in no particular order; use
// Derivation for a stable, ancestor-sorted proof listing.
func (m *Meta) Edges() []Source {
	out := make([]Source, 0, len(m.edges))
	for s := range m.edges {
		out = append(out, s)
	}
	return out
}

// Context holds the growing theorem set and drives saturation steps over
// it. The entries slice and byKey index are owned exclusively by the
// reconciliation goroutine inside Step; nothing else may touch them while a
// Step is in flight.
type Context struct {
	Lang    lang.Language
	entries []*Meta
	byKey   map[string]*Meta

	// MaxLen, when nonzero, drops any candidate whose Normal form exceeds
	// this length; workers check it before sending a candidate on to
	// reconciliation. Sound (every kept theorem is
	// still a real consequence) but incomplete (some theorems below the
	// bound may never be reached if they could only arise through a
	// longer intermediate). Zero means unbounded.
	MaxLen int

	// Logger, if non-nil, receives Info-level "entries added" summaries
	// after each Step and Debug-level notices per novel pair match. A nil
	// Logger means don't log, matching hclog.NewNullLogger's role in
	// tests without requiring callers to construct one.
	Logger hclog.Logger
}

// New builds a Context seeded with axioms, each recorded with an Axiom
// Source and no parents.
func New(axioms []formula.Normal) *Context {
	c := &Context{byKey: make(map[string]*Meta, len(axioms)*4)}
	if len(axioms) > 0 {
		c.Lang = axioms[0].Lang
	}
	for _, ax := range axioms {
		c.insert(ax, Source{Axiom: true})
	}
	return c
}

// insert adds form under a fresh index if its key is new, or records an
// additional derivation edge on the existing entry if not. Returns the
// entry either way. Must only be called from the reconciliation goroutine.
func (c *Context) insert(form formula.Normal, src Source) *Meta {
	if m, ok := c.byKey[form.Key()]; ok {
		if !src.Axiom {
			m.edges[src] = struct{}{}
		}
		return m
	}
	m := &Meta{Index: len(c.entries), Form: form, edges: map[Source]struct{}{src: {}}}
	c.entries = append(c.entries, m)
	c.byKey[form.Key()] = m
	return m
}

// Entries returns every theorem known so far, ordered by index (insertion
// order). The returned slice is a fresh copy; mutating it does not affect
// the Context.
func (c *Context) Entries() []*Meta {
	out := make([]*Meta, len(c.entries))
	copy(out, c.entries)
	return out
}

// candidate is what a worker sends to the reconciliation goroutine: a
// successful Modus Ponens result plus the pair indices that produced it.
type candidate struct {
	result formula.Normal
	src    Source
}

// Step runs one round of saturation: every (premise, implication) pair drawn
// from the theorems known at the start of the step is tried through Modus
// Ponens, concurrently, and every success is folded back into the Context by
// a single reconciliation goroutine. It returns the number of genuinely new
// theorems this step discovered (derivations onto an already-known formula
// don't count, though their edge is still recorded).
//
// The pair space is fixed to the Context's entries at call time; theorems
// discovered mid-step are not themselves combined with until the next Step,
// matching the "Context as of the start of this step" framing spec derives
// its pair space from.
func (c *Context) Step(ctx context.Context) (int, error) {
	base := c.Entries()
	n := len(base)

	candidates := make(chan candidate, 64)
	done := make(chan int, 1)
	go func() {
		added := 0
		for cand := range candidates {
			before := len(c.entries)
			c.insert(cand.result, cand.src)
			if len(c.entries) > before {
				added++
				if c.Logger != nil {
					c.Logger.Debug("novel theorem", "index", len(c.entries)-1, "formula", cand.result.String(), "via", cand.src)
				}
			}
		}
		done <- added
	}()

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(workerLimit())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p, f := base[i], base[j]
			g.Go(func() error {
				if err := sem.Acquire(gctx, 1); err != nil {
					return err
				}
				defer sem.Release(1)

				result, ok := mp.Apply(p.Form, f.Form)
				if !ok {
					return nil
				}
				if c.MaxLen != 0 && result.Len() > c.MaxLen {
					return nil
				}
				select {
				case candidates <- candidate{result: result, src: Source{P: p.Index, F: f.Index}}:
				case <-gctx.Done():
					return gctx.Err()
				}
				return nil
			})
		}
	}

	err := g.Wait()
	close(candidates)
	added := <-done

	if c.Logger != nil {
		c.Logger.Info("step complete", "entries_added", added, "total_entries", len(c.entries))
	}
	return added, err
}

// Derivation reconstructs a proof listing for the theorem at index idx: the
// theorem itself and every ancestor reachable through any of the recorded
// derivation edges, sorted ascending by index. Each returned Meta carries
// all of its recorded derivations.
func (c *Context) Derivation(idx int) []*Meta {
	visited := make(map[int]bool)
	var order []int
	var walk func(i int)
	walk = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true
		m := c.entries[i]
		for s := range m.edges {
			if !s.Axiom {
				walk(s.P)
				walk(s.F)
			}
		}
		order = append(order, i)
	}
	walk(idx)
	sort.Ints(order)
	out := make([]*Meta, len(order))
	for i, idx := range order {
		out[i] = c.entries[idx]
	}
	return out
}

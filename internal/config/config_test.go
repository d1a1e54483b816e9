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

package config

import "testing"

func TestFlagSetDefaults(t *testing.T) {
	var v Values
	fs := FlagSet("run", &v)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if v.Iterations != 5 {
		t.Errorf("Iterations = %d, want 5", v.Iterations)
	}
	if v.Lang != "imp-neg" {
		t.Errorf("Lang = %q, want imp-neg", v.Lang)
	}
	if v.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestFlagSetLongAndShortFormsShareDestination(t *testing.T) {
	var v Values
	fs := FlagSet("run", &v)
	if err := fs.Parse([]string{"-i", "10", "-s", "Caa"}); err != nil {
		t.Fatal(err)
	}
	if v.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10", v.Iterations)
	}
	if v.Search != "Caa" {
		t.Errorf("Search = %q, want Caa", v.Search)
	}
}

func TestFlagSetPositionalAxiomSet(t *testing.T) {
	var v Values
	fs := FlagSet("run", &v)
	if err := fs.Parse([]string{"-i", "3", "frege"}); err != nil {
		t.Fatal(err)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "frege" {
		t.Errorf("Args() = %v, want [frege]", got)
	}
}

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

package stats

import (
	"strings"
	"testing"

	"github.com/bodokat/hilbert-explorer/internal/logic/formula"
	"github.com/bodokat/hilbert-explorer/internal/logic/lang"
	"github.com/bodokat/hilbert-explorer/internal/logic/parse"
	"github.com/bodokat/hilbert-explorer/internal/logic/saturation"
)

func TestWriteHistogram(t *testing.T) {
	a, err := parse.Polish(lang.ImpNeg, "a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Polish(lang.ImpNeg, "Caa")
	if err != nil {
		t.Fatal(err)
	}
	ctx := saturation.New([]formula.Normal{a, b})

	var buf strings.Builder
	if err := Write(&buf, ctx.Entries()); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "len,amount\n") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "1,1") {
		t.Fatalf("expected a row for length 1 (the bare variable): %q", got)
	}
	if !strings.Contains(got, "3,1") {
		t.Fatalf("expected a row for length 3 (\"Caa\"): %q", got)
	}
}

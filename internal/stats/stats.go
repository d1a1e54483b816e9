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

// Package stats writes a length-histogram of a saturation run's theorem set
// as a two-column CSV: len,amount.
package stats

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/bodokat/hilbert-explorer/internal/logic/saturation"
)

// Write computes the distribution of Normal form lengths across entries and
// writes it to w as CSV, one row per distinct length, ascending.
func Write(w io.Writer, entries []*saturation.Meta) error {
	counts := make(map[int]int)
	for _, m := range entries {
		counts[m.Form.Len()]++
	}
	lengths := make([]int, 0, len(counts))
	for l := range counts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"len", "amount"}); err != nil {
		return err
	}
	for _, l := range lengths {
		if err := cw.Write([]string{strconv.Itoa(l), strconv.Itoa(counts[l])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

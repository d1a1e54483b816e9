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

// Package logging builds the hclog.Logger the rest of the explorer logs
// through, keyed off the CLI's verbosity flag rather than a config file.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the root logger. verbose selects hclog.Debug; otherwise
// hclog.Info, matching the CLI's -v/--verbose flag.
func New(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hilbert-explorer",
		Level:  level,
		Output: os.Stderr,
	})
}

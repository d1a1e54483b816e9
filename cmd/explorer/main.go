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

// Command explorer drives a forward-chaining saturation run over a named
// propositional axiom set.
package main

import (
	"os"

	hcli "github.com/hashicorp/cli"

	"github.com/bodokat/hilbert-explorer/internal/cli"
)

func main() {
	c := hcli.NewCLI("explorer", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]hcli.CommandFactory{
		"run": func() (hcli.Command, error) {
			return &cli.RunCommand{Stdout: os.Stdout, Stderr: os.Stderr}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		os.Exit(cli.ExitUsage)
	}
	os.Exit(exitCode)
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/consensys/go-padic/pkg/console"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "evaluate p-adic arithmetic interactively.",
	Long: `Repeatedly read a prime base and two operands A and B, then print A+B, A-B,
A*B and A/B.  An operand is written either as a fraction of decimal integers
(e.g. "-2/15"), as a comma separated list of digits, least significant first,
followed by its order (e.g. "3,2,1" then "-1"), or in canonical form (e.g.
"12.3").  Canonical form is limited to bases up to 7;  in larger bases a plain
decimal integer may be given instead.  Prompts are shown only when reading from
a terminal.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) {
	configureLogging(cmd)
	//
	prompt := term.IsTerminal(int(os.Stdin.Fd()))
	log.Debugf("starting session (prompts %t)", prompt)
	//
	session := console.NewSession(os.Stdin, os.Stdout, prompt, getFormat(cmd))
	//
	if err := session.Run(cmd.Context()); interrupted(err) {
		log.Debug("session interrupted")
	} else if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// interrupted checks whether an error arose from the user interrupting the
// program, which is not considered a failure.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func init() {
	rootCmd.AddCommand(replCmd)
}

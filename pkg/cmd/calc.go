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
	"os"
	"strings"

	"github.com/consensys/go-padic/pkg/console"
	"github.com/consensys/go-padic/pkg/padic"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [flags] A B",
	Short: "evaluate arithmetic on two p-adic numbers.",
	Long: `Print A+B, A-B, A*B and A/B for two operands in the base given by --base.
Operands are written as for "padic repl", with the order of any digit sequence
given by --order.  Use "--" before operands starting with a minus sign.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		base := GetUint(cmd, "base")
		if err := padic.CheckPrime(base); err != nil {
			console.ReportError(os.Stdout, "", err)
			os.Exit(2)
		}
		//
		operands := make([]padic.Number, len(args))
		//
		for i, arg := range args {
			var err error
			//
			arg = strings.TrimSpace(arg)
			operands[i], err = console.ParseOperand(arg, base, func() (string, error) {
				return GetString(cmd, "order"), nil
			})
			//
			if err != nil {
				console.ReportError(os.Stdout, arg, err)
				os.Exit(2)
			}
		}
		//
		results, err := console.Evaluate(operands[0], operands[1])
		if err != nil {
			console.ReportError(os.Stdout, "", err)
			os.Exit(1)
		}
		//
		console.WriteTable(os.Stdout, results, getFormat(cmd))
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().UintP("base", "p", 5, "prime base of both operands")
	calcCmd.Flags().String("order", "0", "order of operands given as digit sequences")
}

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
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ltl2aig/ltl2aig/pkg/pipeline"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [flags] formula part k",
	Short: "Translate an LTL specification into a k-co-Büchi safety-game AIG.",
	Long: `Translate an LTL specification (Wring format), an input/output partition file
and a recurrence bound k into a k-co-Büchi safety-game AIG, calling out to
ltl2ba and an external realizability checker along the way. Exits 10 if the
specification is realizable, 20 if unrealizable, 30 if the checker could not
decide.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		k, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Printf("invalid k %q: %s\n", args[2], err)
			os.Exit(1)
		}

		opts := pipeline.Options{
			FormulaFile:   args[0],
			PartitionFile: args[1],
			K:             k,
			Compositional: GetFlag(cmd, "compositional"),
			LTL2BAPath:    GetString(cmd, "ltl2ba"),
			CheckerPath:   GetString(cmd, "checker"),
		}

		result, err := pipeline.Run(context.Background(), opts)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}

		fmt.Println(result.OutputFile)
		os.Exit(result.ExitCode)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().BoolP("compositional", "c", false, "construct formulas compositionally")
	translateCmd.Flags().String("ltl2ba", "", "path to the ltl2ba binary (default: look up \"ltl2ba\" on $PATH)")
	translateCmd.Flags().String("checker", "", "path to the realizability checker binary (default: look up \"acacia\" on $PATH)")
}

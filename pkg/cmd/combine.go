// Copyright the Clifford-T estimator authors.
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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/or1426/Cliford-T-estimator/pkg/chform"
)

// sumCmd prints the componentwise sum of two basis states.
var sumCmd = &cobra.Command{
	Use:   "sum [flags] bits bits",
	Short: "print the componentwise sum of two basis states.",
	Long: `Construct the CH-forms of two computational basis states of equal
	qubit count and print their componentwise sum (entrywise modulo 2/4,
	phases multiplied).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		combine(cmd, args, (*chform.State).Add)
	},
}

// diffCmd prints the componentwise difference of two basis states.
var diffCmd = &cobra.Command{
	Use:   "diff [flags] bits bits",
	Short: "print the componentwise difference of two basis states.",
	Long: `Construct the CH-forms of two computational basis states of equal
	qubit count and print their componentwise difference (entrywise modulo
	2/4, phases divided).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		combine(cmd, args, (*chform.State).Sub)
	},
}

// combine parses two bitstrings into basis states and prints the result of
// the given binary operation on them.
func combine(cmd *cobra.Command, args []string, op func(*chform.State, *chform.State) (*chform.State, error)) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	states := make([]*chform.State, 2)
	//
	for i, arg := range args {
		bits, err := parseBits(arg)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		if states[i], err = chform.BasisFromBits(bits); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	}
	//
	result, err := op(states[0], states[1])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	printState(cmd, result)
}

func init() {
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(diffCmd)
	sumCmd.Flags().Bool("headers", false, "label the F/G/M/g/v/s/w blocks")
	diffCmd.Flags().Bool("headers", false, "label the F/G/M/g/v/s/w blocks")
}

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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/or1426/Cliford-T-estimator/pkg/chform"
)

// basisCmd constructs and prints a computational basis state.
var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "print a computational basis state in CH-form.",
	Long: `Construct the CH-form of a computational basis state, optionally
	deleting a qubit from it, and print the result.  With --qubits alone
	the all-zero state is produced; with --bits the state is |s>; with
	both, the bitstring is truncated or zero-extended to the requested
	qubit count.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		st := basisState(cmd)
		//
		if k := getInt(cmd, "delete-qubit"); k >= 0 {
			reduced, err := st.DeleteQubit(uint(k))
			if err != nil {
				log.Error(err)
				os.Exit(2)
			}
			//
			st = reduced
		}
		//
		printState(cmd, st)
	},
}

// basisState builds the basis state requested by the command line flags.
func basisState(cmd *cobra.Command) *chform.State {
	var (
		str = getString(cmd, "bits")
		n   = getUint(cmd, "qubits")
	)
	//
	if str == "" {
		return chform.Basis(n)
	}
	//
	bits, err := parseBits(str)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	// Without an explicit qubit count, the bitstring determines it.
	if !cmd.Flags().Changed("qubits") {
		st, err := chform.BasisFromBits(bits)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		return st
	}
	//
	st, err := chform.BasisFrom(n, bits)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	return st
}

// printState renders a state in the format selected by the --headers flag.
func printState(cmd *cobra.Command, st *chform.State) {
	var rendering string
	//
	if getFlag(cmd, "headers") {
		rendering = st.Tab()
	} else {
		rendering = st.String()
	}
	//
	warnIfWide(rendering)
	fmt.Print(rendering)
}

func init() {
	rootCmd.AddCommand(basisCmd)
	basisCmd.Flags().UintP("qubits", "n", 1, "number of qubits")
	basisCmd.Flags().StringP("bits", "s", "", "basis bitstring, e.g. 101")
	basisCmd.Flags().Bool("headers", false, "label the F/G/M/g/v/s/w blocks")
	basisCmd.Flags().IntP("delete-qubit", "k", -1, "delete the given qubit from the state")
}

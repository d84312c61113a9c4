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

// showCmd re-renders a state stored in a text file.
var showCmd = &cobra.Command{
	Use:   "show [flags] state_file",
	Short: "parse a CH-form state file and print it.",
	Long: `Parse a file holding the compact rendering of a CH-form state and
	print the state, optionally with block headers.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		st, err := chform.Parse(string(bytes))
		if err != nil {
			log.Errorf("%s: %s", args[0], err)
			os.Exit(2)
		}
		//
		printState(cmd, st)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("headers", false, "label the F/G/M/g/v/s/w blocks")
}

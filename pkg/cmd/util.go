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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected boolean flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected integer flag, or panic if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a bitstring given on the command line, e.g. "101", into a bit
// sequence.
func parseBits(str string) ([]uint8, error) {
	bits := make([]uint8, len(str))
	//
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("bitstring %q contains non-bit character %q", str, str[i])
		}
	}
	//
	return bits, nil
}

// Warn when a rendering is wider than the terminal, since the block layout
// only reads well with its columns intact.
func warnIfWide(rendering string) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return
	}
	//
	w, _, err := term.GetSize(fd)
	if err != nil {
		return
	}
	//
	for _, line := range strings.Split(rendering, "\n") {
		if len(line) > w {
			log.Warnf("state rendering is %d columns wide, terminal only %d", len(line), w)
			return
		}
	}
}

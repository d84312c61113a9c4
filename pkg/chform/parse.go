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
package chform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/or1426/Cliford-T-estimator/pkg/util/gf2"
	"github.com/or1426/Cliford-T-estimator/pkg/util/z4"
)

// Parse reconstructs a state from its compact rendering, i.e. it inverts
// String.  The first line must hold the qubit count, the first rows of F, G
// and M, the first gamma, v and s entries and the global phase; each
// subsequent line holds the corresponding fields for the next qubit.  Only
// states of at least one qubit have a parseable rendering, since the
// zero-qubit state renders as the empty string.
func Parse(text string) (*State, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	//
	fields := strings.Fields(lines[0])
	if len(fields) != 8 {
		return nil, fmt.Errorf("line 1: expected 8 fields, found %d", len(fields))
	}
	// Qubit count
	n, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil || n == 0 {
		return nil, fmt.Errorf("line 1: malformed qubit count %q", fields[0])
	}
	//
	if uint64(len(lines)) != n {
		return nil, fmt.Errorf("expected %d lines for a %d-qubit state, found %d", n, n, len(lines))
	}
	// Global phase
	phase, err := strconv.ParseComplex(fields[7], 128)
	if err != nil {
		return nil, fmt.Errorf("line 1: malformed phase %q", fields[7])
	}
	//
	st := &State{
		N:     uint(n),
		F:     gf2.NewMatrix(uint(n)),
		G:     gf2.NewMatrix(uint(n)),
		M:     gf2.NewMatrix(uint(n)),
		Gamma: z4.NewVector(uint(n)),
		V:     gf2.NewVector(uint(n)),
		S:     gf2.NewVector(uint(n)),
		Phase: phase,
	}
	//
	for i := uint(0); i < uint(n); i++ {
		// Continuation lines drop the qubit-count prefix and the phase.
		tokens := fields[1:7]
		//
		if i != 0 {
			if tokens = strings.Fields(lines[i]); len(tokens) != 6 {
				return nil, fmt.Errorf("line %d: expected 6 fields, found %d", i+1, len(tokens))
			}
		}
		//
		if err := parseRow(st.F, i, tokens[0]); err != nil {
			return nil, fmt.Errorf("line %d (F): %w", i+1, err)
		}
		//
		if err := parseRow(st.G, i, tokens[1]); err != nil {
			return nil, fmt.Errorf("line %d (G): %w", i+1, err)
		}
		//
		if err := parseRow(st.M, i, tokens[2]); err != nil {
			return nil, fmt.Errorf("line %d (M): %w", i+1, err)
		}
		//
		if err := parseScalars(st, i, tokens[3:6]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	//
	return st, nil
}

// parseRow fills row i of the given matrix from a contiguous run of '0' / '1'
// characters.
func parseRow(mat gf2.Matrix, i uint, token string) error {
	if uint(len(token)) != mat.Dim() {
		return fmt.Errorf("row %q has %d entries, expected %d", token, len(token), mat.Dim())
	}
	//
	for j := 0; j < len(token); j++ {
		switch token[j] {
		case '0':
			mat.Set(i, uint(j), 0)
		case '1':
			mat.Set(i, uint(j), 1)
		default:
			return fmt.Errorf("row %q contains non-bit character %q", token, token[j])
		}
	}
	//
	return nil
}

// parseScalars fills the ith gamma, v and s entries from their single-digit
// tokens.
func parseScalars(st *State, i uint, tokens []string) error {
	gamma, err := strconv.ParseUint(tokens[0], 10, 8)
	if err != nil || gamma > 3 {
		return fmt.Errorf("malformed gamma entry %q", tokens[0])
	}
	//
	st.Gamma.Set(i, int(gamma))
	//
	for k, vec := range []gf2.Vector{st.V, st.S} {
		switch tokens[k+1] {
		case "0":
			vec.Set(i, 0)
		case "1":
			vec.Set(i, 1)
		default:
			return fmt.Errorf("malformed bit entry %q", tokens[k+1])
		}
	}
	//
	return nil
}

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
	"strings"
)

// String renders this state in the compact block layout: the qubit count,
// then one line per qubit holding the corresponding rows of F, G, M followed
// by the gamma, v and s entries, all separated by single spaces.  Matrix rows
// are contiguous runs of '0' / '1' characters.  The global phase appears only
// on the first line, and continuation lines are padded with blanks matching
// the width of the qubit-count prefix so that columns stay aligned.
func (p *State) String() string {
	if p.N == 0 {
		return ""
	}
	//
	return p.prefix() + p.body()
}

// Tab renders this state as String does, but preceded by a header line
// labelling the N, F, G, M, g, v, s and w columns.
func (p *State) Tab() string {
	var (
		prefix = p.prefix()
		half   = int(p.N) / 2
		width  = int(p.N)
	)
	// Align each label with the midpoint of its block.
	header := "N" + blanks(len(prefix)-1+half) +
		"F" + blanks(width) +
		"G" + blanks(width) +
		"M" + blanks(width-half) +
		"g v s w\n"
	//
	return header + prefix + p.body()
}

// prefix returns the qubit-count prefix carried by the first line.
func (p *State) prefix() string {
	return fmt.Sprintf("%d ", p.N)
}

// body renders the per-qubit lines, excluding the prefix of the first line.
func (p *State) body() string {
	var (
		builder strings.Builder
		pad     = blanks(len(p.prefix()))
	)
	//
	for i := uint(0); i < p.N; i++ {
		if i != 0 {
			builder.WriteString(pad)
		}
		//
		builder.WriteString(p.F.Row(i).String())
		builder.WriteByte(' ')
		builder.WriteString(p.G.Row(i).String())
		builder.WriteByte(' ')
		builder.WriteString(p.M.Row(i).String())
		//
		fmt.Fprintf(&builder, " %d %d %d", p.Gamma.Get(i), p.V.Get(i), p.S.Get(i))
		//
		if i == 0 {
			fmt.Fprintf(&builder, " %v", p.Phase)
		}
		//
		builder.WriteByte('\n')
	}
	//
	return builder.String()
}

func blanks(n int) string {
	return strings.Repeat(" ", n)
}

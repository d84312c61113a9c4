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

import "testing"

func Test_Parse_01(t *testing.T) {
	checkRoundTrip(t, Basis(1))
}

func Test_Parse_02(t *testing.T) {
	checkRoundTrip(t, Basis(2))
}

func Test_Parse_03(t *testing.T) {
	st, err := BasisFromBits([]uint8{1, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	//
	checkRoundTrip(t, st)
}

func Test_Parse_04(t *testing.T) {
	checkRoundTrip(t, scrambled(5, 2))
}

func Test_Parse_05(t *testing.T) {
	// Two-digit qubit count
	checkRoundTrip(t, scrambled(11, 7))
}

func Test_Parse_Malformed_01(t *testing.T) {
	checkMalformed(t, "")
}

func Test_Parse_Malformed_02(t *testing.T) {
	checkMalformed(t, "1 1 1 0 0 0 0\n")
}

func Test_Parse_Malformed_03(t *testing.T) {
	// Qubit count disagrees with the line count.
	checkMalformed(t, "2 10 10 00 0 0 0 (1+0i)\n")
}

func Test_Parse_Malformed_04(t *testing.T) {
	// Non-bit character in a matrix row
	checkMalformed(t, "1 2 1 0 0 0 0 (1+0i)\n")
}

func Test_Parse_Malformed_05(t *testing.T) {
	// Gamma entry outside Z/4
	checkMalformed(t, "1 1 1 0 4 0 0 (1+0i)\n")
}

func Test_Parse_Malformed_06(t *testing.T) {
	// Unparseable phase
	checkMalformed(t, "1 1 1 0 0 0 0 phase\n")
}

func Test_Parse_Malformed_07(t *testing.T) {
	// Matrix row of the wrong width
	checkMalformed(t, "2 101 10 00 0 0 0 (1+0i)\n  01 01 00 0 0 0\n")
}

func checkRoundTrip(t *testing.T, st *State) {
	t.Parallel()
	//
	parsed, err := Parse(st.String())
	if err != nil {
		t.Fatal(err)
	}
	//
	if !parsed.Equal(st) {
		t.Errorf("parsed state %q differs from original %q", parsed, st)
	}
}

func checkMalformed(t *testing.T, text string) {
	t.Parallel()
	//
	if _, err := Parse(text); err == nil {
		t.Errorf("expected error parsing %q", text)
	}
}

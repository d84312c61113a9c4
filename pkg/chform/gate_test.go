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
	"testing"
)

// flipGate flips one bit of the basis bitstring, standing in for the external
// gate implementations the state type delegates to.
type flipGate struct {
	qubit uint
}

func (g flipGate) Apply(s *State) (*State, error) {
	if g.qubit >= s.N {
		return nil, fmt.Errorf("%w: qubit %d of %d-qubit state", ErrQubitOutOfRange, g.qubit, s.N)
	}
	//
	result := s.Clone()
	result.S.Set(g.qubit, 1-s.S.Get(g.qubit))
	//
	return result, nil
}

func Test_Gate_01(t *testing.T) {
	t.Parallel()
	//
	st, err := Basis(3).Apply(flipGate{qubit: 1})
	if err != nil {
		t.Fatal(err)
	}
	//
	if st.S.String() != "010" {
		t.Errorf("s == %s, expected 010", st.S)
	}
}

func Test_Gate_02(t *testing.T) {
	t.Parallel()
	// Gates compose fluently through the delegation hook.
	st, err := Basis(2).Apply(flipGate{qubit: 0})
	if err != nil {
		t.Fatal(err)
	}
	//
	if st, err = st.Apply(flipGate{qubit: 0}); err != nil {
		t.Fatal(err)
	}
	//
	if !st.Equal(Basis(2)) {
		t.Errorf("double flip did not restore the basis state")
	}
}

func Test_Gate_03(t *testing.T) {
	t.Parallel()
	// Errors from the gate surface unchanged.
	if _, err := Basis(2).Apply(flipGate{qubit: 5}); err == nil {
		t.Errorf("expected error from out-of-range gate")
	}
}

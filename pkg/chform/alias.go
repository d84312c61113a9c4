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

import "github.com/or1426/Cliford-T-estimator/pkg/util/gf2"

// The CH-form literature uses two naming conventions for the same six
// fields: (F, G, M, gamma, v, s, phase) and (A, B, C, g, v, s, w).  The
// struct fields carry the former; the accessors below expose the latter over
// the identical storage, so a write through either name is immediately
// visible through the other.  The gamma/g pair has no accessor because the
// name G already denotes the tableau matrix; use the Gamma field directly.

// A returns the F matrix under its alternative name.
func (p *State) A() gf2.Matrix {
	return p.F
}

// SetA replaces the F matrix under its alternative name.
func (p *State) SetA(m gf2.Matrix) {
	p.F = m
}

// B returns the G matrix under its alternative name.
func (p *State) B() gf2.Matrix {
	return p.G
}

// SetB replaces the G matrix under its alternative name.
func (p *State) SetB(m gf2.Matrix) {
	p.G = m
}

// C returns the M matrix under its alternative name.
func (p *State) C() gf2.Matrix {
	return p.M
}

// SetC replaces the M matrix under its alternative name.
func (p *State) SetC(m gf2.Matrix) {
	p.M = m
}

// W returns the global phase under its alternative name.
func (p *State) W() complex128 {
	return p.Phase
}

// SetW replaces the global phase under its alternative name.
func (p *State) SetW(w complex128) {
	p.Phase = w
}

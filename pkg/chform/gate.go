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

// Gate captures anything capable of transforming one CH-form state into
// another of the same qubit count, typically by applying a unitary.  The
// state type carries no gate logic itself: gate implementations live
// elsewhere and are composed with states through this capability alone.
type Gate interface {
	// Apply transforms the given state, producing a fresh state.
	Apply(s *State) (*State, error)
}

// Apply delegates transformation of this state to the given gate.
func (p *State) Apply(g Gate) (*State, error) {
	return g.Apply(p)
}

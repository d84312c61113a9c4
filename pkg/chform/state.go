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

// Package chform implements the CH-form representation of an N-qubit
// stabilizer state, following Bravyi et al. (arXiv:1808.00128).  A state is
// parameterised by a GF(2) tableau (F, G, M), a Z/4 phase-exponent vector
// gamma, a Hadamard-layer marker vector v, a computational-basis bitstring s
// and a complex global phase.
package chform

import (
	"errors"
	"fmt"

	"github.com/or1426/Cliford-T-estimator/pkg/util/gf2"
	"github.com/or1426/Cliford-T-estimator/pkg/util/z4"
)

// ErrShapeMismatch indicates an operation combining two states of unequal
// qubit count.
var ErrShapeMismatch = errors.New("qubit count mismatch")

// ErrQubitOutOfRange indicates a qubit index outside [0, N).
var ErrQubitOutOfRange = errors.New("qubit index out of range")

// State is an N-qubit stabilizer state in CH-form.  The matrices F, G, M are
// valued over GF(2), gamma over Z/4, and v, s over GF(2); Phase is the only
// field carrying continuous information.  Dimensions always agree: F, G, M
// are N x N and Gamma, V, S have length N.
//
// Matrices and vectors are reference types, so struct assignment aliases the
// underlying storage; use Clone for a true copy.  Every operation below
// returns a fresh State rather than mutating in place.
type State struct {
	// Number of qubits.
	N uint
	// F (also written A) partly determines the control unitary U_C.
	F gf2.Matrix
	// G (also written B) partly determines the control unitary U_C.
	G gf2.Matrix
	// M (also written C) holds the off-diagonal phase correlations of U_C.
	M gf2.Matrix
	// Gamma (written g in the CH-form literature) holds the per-qubit phase
	// exponents, in units of pi/2.
	Gamma z4.Vector
	// V marks which qubits carry a factor of the Hadamard layer U_H.
	V gf2.Vector
	// S is the underlying computational-basis bitstring.
	S gf2.Vector
	// Phase is the global normalisation/phase amplitude w.
	Phase complex128
}

// NewState returns the canonical single-qubit |0> state.
func NewState() *State {
	return Basis(1)
}

// Basis returns the n-qubit all-zero computational basis state |0...0>.  The
// canonical basis configuration has F = G = identity, M = 0, gamma = 0,
// v = 0 and phase 1.
func Basis(n uint) *State {
	return &State{
		N:     n,
		F:     gf2.Identity(n),
		G:     gf2.Identity(n),
		M:     gf2.NewMatrix(n),
		Gamma: z4.NewVector(n),
		V:     gf2.NewVector(n),
		S:     gf2.NewVector(n),
		Phase: complex(1, 0),
	}
}

// BasisFromBits returns the computational basis state |s> for the given
// bitstring, whose length determines the qubit count.  Entries which are
// neither 0 nor 1 yield an error.
func BasisFromBits[T gf2.Bit](bits []T) (*State, error) {
	s, err := gf2.VectorFromBits(bits)
	if err != nil {
		return nil, err
	}
	//
	return basis(s), nil
}

// BasisFromBools is BasisFromBits for boolean sequences, where true denotes
// 1.  Unlike BasisFromBits this cannot fail.
func BasisFromBools(bits []bool) *State {
	return basis(gf2.VectorFromBools(bits))
}

// BasisFrom returns the n-qubit computational basis state determined by the
// given bitstring after normalising it to length n: when n <= len(bits) the
// bitstring is truncated to its first n entries, otherwise it is right-padded
// with zeros.  The mismatch is a normalisation, never an error; entries which
// are neither 0 nor 1 still yield one.
func BasisFrom[T gf2.Bit](n uint, bits []T) (*State, error) {
	full, err := gf2.VectorFromBits(bits)
	if err != nil {
		return nil, err
	}
	//
	s := gf2.NewVector(n)
	//
	for i := uint(0); i < n && i < full.Len(); i++ {
		s.Set(i, full.Get(i))
	}
	//
	return basis(s), nil
}

// basis constructs the canonical basis state around an already-validated
// bitstring.
func basis(s gf2.Vector) *State {
	st := Basis(s.Len())
	st.S = s
	//
	return st
}

// DeleteQubit returns a fresh (N-1)-qubit state with row and column k struck
// from F, G, M and entry k struck from gamma, v and s; the phase is copied
// unchanged.  Note this is a raw structural slice: it performs no algebraic
// repair of the tableau, and whether the result remains a well-formed
// stabilizer description is the caller's responsibility.
func (p *State) DeleteQubit(k uint) (*State, error) {
	if k >= p.N {
		return nil, fmt.Errorf("%w: qubit %d of %d-qubit state", ErrQubitOutOfRange, k, p.N)
	}
	//
	return &State{
		N:     p.N - 1,
		F:     p.F.DeleteRowCol(k),
		G:     p.G.DeleteRowCol(k),
		M:     p.M.DeleteRowCol(k),
		Gamma: p.Gamma.Delete(k),
		V:     p.V.Delete(k),
		S:     p.S.Delete(k),
		Phase: p.Phase,
	}, nil
}

// Add returns the componentwise sum of two states of equal qubit count:
// F, G, M, v, s entrywise modulo two, gamma entrywise modulo four, and the
// phases multiplied.
func (p *State) Add(q *State) (*State, error) {
	if p.N != q.N {
		return nil, fmt.Errorf("%w: %d vs %d qubits", ErrShapeMismatch, p.N, q.N)
	}
	//
	return &State{
		N:     p.N,
		F:     p.F.Xor(q.F),
		G:     p.G.Xor(q.G),
		M:     p.M.Xor(q.M),
		Gamma: p.Gamma.Add(q.Gamma),
		V:     p.V.Xor(q.V),
		S:     p.S.Xor(q.S),
		Phase: p.Phase * q.Phase,
	}, nil
}

// Sub returns the componentwise difference of two states of equal qubit
// count: F, G, M, v, s entrywise modulo two, gamma entrywise modulo four
// (negative differences wrap), and the phases divided.
func (p *State) Sub(q *State) (*State, error) {
	if p.N != q.N {
		return nil, fmt.Errorf("%w: %d vs %d qubits", ErrShapeMismatch, p.N, q.N)
	}
	//
	return &State{
		N:     p.N,
		F:     p.F.Xor(q.F),
		G:     p.G.Xor(q.G),
		M:     p.M.Xor(q.M),
		Gamma: p.Gamma.Sub(q.Gamma),
		V:     p.V.Xor(q.V),
		S:     p.S.Xor(q.S),
		Phase: p.Phase / q.Phase,
	}, nil
}

// Clone creates a true copy of this state which ensures no aliasing between
// this state and the result.
func (p *State) Clone() *State {
	return &State{
		N:     p.N,
		F:     p.F.Clone(),
		G:     p.G.Clone(),
		M:     p.M.Clone(),
		Gamma: p.Gamma.Clone(),
		V:     p.V.Clone(),
		S:     p.S.Clone(),
		Phase: p.Phase,
	}
}

// Equal checks whether two states have the same qubit count and identical
// fields.  Phases are compared exactly; callers needing a floating-point
// tolerance should compare the phases themselves.
func (p *State) Equal(q *State) bool {
	return p.N == q.N &&
		p.F.Equal(q.F) && p.G.Equal(q.G) && p.M.Equal(q.M) &&
		p.Gamma.Equal(q.Gamma) && p.V.Equal(q.V) && p.S.Equal(q.S) &&
		p.Phase == q.Phase
}

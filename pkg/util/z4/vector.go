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

// Package z4 provides fixed-length vectors over the ring of integers modulo
// four.  Entries are stored as plain bytes, with the modulus enforced on
// every write rather than relying on wraparound at the storage width.
package z4

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadDigit indicates a value which was expected to lie in {0,1,2,3} but
// didn't.
var ErrBadDigit = errors.New("not a Z/4 digit")

// Vector is a fixed-length vector over Z/4.  Vectors are reference types: a
// copied Vector shares its backing array with the original, whilst Clone
// severs them.
type Vector struct {
	elems []uint8
}

// NewVector constructs a zero vector of the given length.
func NewVector(n uint) Vector {
	return Vector{make([]uint8, n)}
}

// VectorFromDigits constructs a vector from an ordered sequence of integers,
// each of which must lie in {0,1,2,3}.
func VectorFromDigits(digits []uint8) (Vector, error) {
	vec := NewVector(uint(len(digits)))
	//
	for i, d := range digits {
		if d > 3 {
			return Vector{}, fmt.Errorf("%w: entry %d is %d", ErrBadDigit, i, d)
		}
		//
		vec.elems[i] = d
	}
	//
	return vec, nil
}

// Len returns the length of this vector.
func (p Vector) Len() uint {
	return uint(len(p.elems))
}

// Get returns the ith entry, which always lies in {0,1,2,3}.
func (p Vector) Get(i uint) uint8 {
	return p.elems[i]
}

// Set updates the ith entry, reducing the given value modulo four.  Negative
// values wrap into {0,1,2,3} as in (Z/4,+).
func (p Vector) Set(i uint, val int) {
	p.elems[i] = uint8(((val % 4) + 4) % 4)
}

// Add computes the entrywise sum of two vectors modulo four, producing a
// fresh vector.  Both vectors must have the same length.
func (p Vector) Add(q Vector) Vector {
	p.checkLen(q)
	//
	vec := NewVector(p.Len())
	//
	for i := range p.elems {
		vec.elems[i] = (p.elems[i] + q.elems[i]) & 3
	}
	//
	return vec
}

// Sub computes the entrywise difference of two vectors modulo four, producing
// a fresh vector.  Negative differences wrap, so every entry of the result
// lies in {0,1,2,3}.  Both vectors must have the same length.
func (p Vector) Sub(q Vector) Vector {
	p.checkLen(q)
	//
	vec := NewVector(p.Len())
	//
	for i := range p.elems {
		vec.elems[i] = (p.elems[i] + 4 - q.elems[i]) & 3
	}
	//
	return vec
}

// Delete produces a fresh vector of length n-1 with the kth entry struck out,
// preserving the relative order of the remaining entries.
func (p Vector) Delete(k uint) Vector {
	if k >= p.Len() {
		panic(fmt.Sprintf("index %d out of bounds for vector of length %d", k, p.Len()))
	}
	//
	elems := make([]uint8, 0, len(p.elems)-1)
	elems = append(elems, p.elems[:k]...)
	elems = append(elems, p.elems[k+1:]...)
	//
	return Vector{elems}
}

// Clone creates a true copy of this vector which ensures no aliasing between
// this vector and the result.
func (p Vector) Clone() Vector {
	elems := make([]uint8, len(p.elems))
	copy(elems, p.elems)
	//
	return Vector{elems}
}

// Equal checks whether two vectors have the same length and entries.
func (p Vector) Equal(q Vector) bool {
	if len(p.elems) != len(q.elems) {
		return false
	}
	//
	for i := range p.elems {
		if p.elems[i] != q.elems[i] {
			return false
		}
	}
	//
	return true
}

// String renders this vector as a contiguous run of '0'..'3' characters.
func (p Vector) String() string {
	var builder strings.Builder
	//
	for _, d := range p.elems {
		builder.WriteByte('0' + d)
	}
	//
	return builder.String()
}

func (p Vector) checkLen(q Vector) {
	if len(p.elems) != len(q.elems) {
		panic(fmt.Sprintf("vector length mismatch (%d vs %d)", len(p.elems), len(q.elems)))
	}
}

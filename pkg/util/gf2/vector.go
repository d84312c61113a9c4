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
package gf2

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrBadBit indicates a value which was expected to be a bit (i.e. 0 or 1)
// but wasn't.
var ErrBadBit = errors.New("not a 0/1 bit")

// Bit captures any integer type whose values can be checked as bits.
type Bit interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vector is a fixed-length vector over GF(2), packed into machine words.
// Addition and subtraction coincide over GF(2), and both are exclusive or.
// Vectors are reference types: a copied Vector shares its backing words with
// the original, whilst Clone severs them.
type Vector struct {
	n    uint
	bits *bitset.BitSet
}

// NewVector constructs a zero vector of the given length.
func NewVector(n uint) Vector {
	return Vector{n, bitset.New(n)}
}

// VectorFromBits constructs a vector from an ordered sequence of integers,
// each of which must be 0 or 1.
func VectorFromBits[T Bit](bits []T) (Vector, error) {
	vec := NewVector(uint(len(bits)))
	//
	for i, b := range bits {
		if b != 0 && b != 1 {
			return Vector{}, fmt.Errorf("%w: entry %d is %d", ErrBadBit, i, b)
		}
		//
		vec.bits.SetTo(uint(i), b == 1)
	}
	//
	return vec, nil
}

// VectorFromBools constructs a vector from an ordered sequence of booleans,
// where true denotes 1.  Unlike VectorFromBits this cannot fail.
func VectorFromBools(bits []bool) Vector {
	vec := NewVector(uint(len(bits)))
	//
	for i, b := range bits {
		vec.bits.SetTo(uint(i), b)
	}
	//
	return vec
}

// Len returns the length of this vector.
func (p Vector) Len() uint {
	return p.n
}

// Get returns the ith entry as 0 or 1.
func (p Vector) Get(i uint) uint8 {
	p.checkBounds(i)
	//
	if p.bits.Test(i) {
		return 1
	}
	//
	return 0
}

// Set updates the ith entry, where bit must be 0 or 1.
func (p Vector) Set(i uint, bit uint8) {
	p.checkBounds(i)
	//
	if bit > 1 {
		panic(fmt.Sprintf("value %d is not a bit", bit))
	}
	//
	p.bits.SetTo(i, bit == 1)
}

// Xor computes the entrywise sum (equally, difference) of two vectors over
// GF(2), producing a fresh vector.  Both vectors must have the same length.
func (p Vector) Xor(q Vector) Vector {
	if p.n != q.n {
		panic(fmt.Sprintf("vector length mismatch (%d vs %d)", p.n, q.n))
	}
	//
	bits := p.bits.Clone()
	bits.InPlaceSymmetricDifference(q.bits)
	//
	return Vector{p.n, bits}
}

// Delete produces a fresh vector of length n-1 with the kth entry struck out,
// preserving the relative order of the remaining entries.
func (p Vector) Delete(k uint) Vector {
	p.checkBounds(k)
	//
	vec := NewVector(p.n - 1)
	//
	for i, j := uint(0), uint(0); i < p.n; i++ {
		if i != k {
			vec.bits.SetTo(j, p.bits.Test(i))
			j++
		}
	}
	//
	return vec
}

// Clone creates a true copy of this vector which ensures no aliasing between
// this vector and the result.
func (p Vector) Clone() Vector {
	return Vector{p.n, p.bits.Clone()}
}

// Equal checks whether two vectors have the same length and entries.
func (p Vector) Equal(q Vector) bool {
	if p.n != q.n {
		return false
	}
	//
	for i := uint(0); i < p.n; i++ {
		if p.bits.Test(i) != q.bits.Test(i) {
			return false
		}
	}
	//
	return true
}

// String renders this vector as a contiguous run of '0' / '1' characters.
func (p Vector) String() string {
	var builder strings.Builder
	//
	for i := uint(0); i < p.n; i++ {
		if p.bits.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String()
}

func (p Vector) checkBounds(i uint) {
	if i >= p.n {
		panic(fmt.Sprintf("index %d out of bounds for vector of length %d", i, p.n))
	}
}

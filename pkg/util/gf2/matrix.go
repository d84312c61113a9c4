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
	"fmt"
	"strings"
)

// Matrix is a square matrix over GF(2), stored as packed row vectors.  Like
// Vector, a copied Matrix shares its backing storage with the original.
type Matrix struct {
	n    uint
	rows []Vector
}

// NewMatrix constructs the n x n zero matrix.
func NewMatrix(n uint) Matrix {
	rows := make([]Vector, n)
	//
	for i := range rows {
		rows[i] = NewVector(n)
	}
	//
	return Matrix{n, rows}
}

// Identity constructs the n x n identity matrix.
func Identity(n uint) Matrix {
	mat := NewMatrix(n)
	//
	for i := uint(0); i < n; i++ {
		mat.rows[i].Set(i, 1)
	}
	//
	return mat
}

// Dim returns the dimension n of this (n x n) matrix.
func (p Matrix) Dim() uint {
	return p.n
}

// Get returns the entry at row i, column j as 0 or 1.
func (p Matrix) Get(i uint, j uint) uint8 {
	p.checkBounds(i)
	//
	return p.rows[i].Get(j)
}

// Set updates the entry at row i, column j, where bit must be 0 or 1.
func (p Matrix) Set(i uint, j uint, bit uint8) {
	p.checkBounds(i)
	//
	p.rows[i].Set(j, bit)
}

// Row returns the ith row of this matrix.  The row shares storage with the
// matrix, hence writes through it are visible in the matrix.
func (p Matrix) Row(i uint) Vector {
	p.checkBounds(i)
	//
	return p.rows[i]
}

// Xor computes the entrywise sum (equally, difference) of two matrices over
// GF(2), producing a fresh matrix.  Both matrices must have the same
// dimension.
func (p Matrix) Xor(q Matrix) Matrix {
	if p.n != q.n {
		panic(fmt.Sprintf("matrix dimension mismatch (%d vs %d)", p.n, q.n))
	}
	//
	rows := make([]Vector, p.n)
	//
	for i := range rows {
		rows[i] = p.rows[i].Xor(q.rows[i])
	}
	//
	return Matrix{p.n, rows}
}

// DeleteRowCol produces a fresh (n-1) x (n-1) matrix with both the kth row
// and the kth column struck out, preserving the relative order of the
// remaining rows and columns.
func (p Matrix) DeleteRowCol(k uint) Matrix {
	p.checkBounds(k)
	//
	rows := make([]Vector, 0, p.n-1)
	//
	for i := uint(0); i < p.n; i++ {
		if i != k {
			rows = append(rows, p.rows[i].Delete(k))
		}
	}
	//
	return Matrix{p.n - 1, rows}
}

// Clone creates a true copy of this matrix which ensures no aliasing between
// this matrix and the result.
func (p Matrix) Clone() Matrix {
	rows := make([]Vector, p.n)
	//
	for i := range rows {
		rows[i] = p.rows[i].Clone()
	}
	//
	return Matrix{p.n, rows}
}

// Equal checks whether two matrices have the same dimension and entries.
func (p Matrix) Equal(q Matrix) bool {
	if p.n != q.n {
		return false
	}
	//
	for i := range p.rows {
		if !p.rows[i].Equal(q.rows[i]) {
			return false
		}
	}
	//
	return true
}

// String renders this matrix with one contiguous '0' / '1' row per line.
func (p Matrix) String() string {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		if i != 0 {
			builder.WriteByte('\n')
		}
		//
		builder.WriteString(row.String())
	}
	//
	return builder.String()
}

func (p Matrix) checkBounds(i uint) {
	if i >= p.n {
		panic(fmt.Sprintf("index %d out of bounds for matrix of dimension %d", i, p.n))
	}
}

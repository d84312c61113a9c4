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
package z4

import (
	"errors"
	"testing"
)

func Test_Z4_Add_01(t *testing.T) {
	checkAdd(t, []uint8{0, 1, 2, 3}, []uint8{0, 0, 0, 0}, "0123")
}

func Test_Z4_Add_02(t *testing.T) {
	checkAdd(t, []uint8{0, 1, 2, 3}, []uint8{1, 1, 1, 1}, "1230")
}

func Test_Z4_Add_03(t *testing.T) {
	checkAdd(t, []uint8{3, 3, 3, 3}, []uint8{3, 2, 1, 0}, "2103")
}

func Test_Z4_Sub_01(t *testing.T) {
	checkSub(t, []uint8{0, 1, 2, 3}, []uint8{0, 0, 0, 0}, "0123")
}

func Test_Z4_Sub_02(t *testing.T) {
	// Negative differences wrap into {0..3}.
	checkSub(t, []uint8{0, 0, 0, 0}, []uint8{1, 2, 3, 0}, "3210")
}

func Test_Z4_Sub_03(t *testing.T) {
	checkSub(t, []uint8{1, 2, 3, 0}, []uint8{3, 3, 3, 3}, "2301")
}

func Test_Z4_Duality(t *testing.T) {
	t.Parallel()
	// (x - y) + y == x for all entries
	lhs, _ := VectorFromDigits([]uint8{0, 1, 2, 3, 3, 1})
	rhs, _ := VectorFromDigits([]uint8{3, 1, 0, 2, 1, 3})
	//
	if sum := lhs.Sub(rhs).Add(rhs); !sum.Equal(lhs) {
		t.Errorf("(x - y) + y == %s != %s", sum, lhs)
	}
}

func Test_Z4_Set(t *testing.T) {
	t.Parallel()
	//
	vec := NewVector(4)
	// The modulus is enforced on every write.
	vec.Set(0, 5)
	vec.Set(1, -1)
	vec.Set(2, -8)
	vec.Set(3, 3)
	//
	if vec.String() != "1300" {
		t.Errorf("rendered as %q, expected %q", vec.String(), "1300")
	}
}

func Test_Z4_Delete(t *testing.T) {
	t.Parallel()
	//
	vec, _ := VectorFromDigits([]uint8{0, 1, 2, 3})
	//
	if del := vec.Delete(2); del.String() != "013" {
		t.Errorf("%s delete 2 == %s, expected 013", vec, del)
	}
}

func Test_Z4_BadDigit(t *testing.T) {
	t.Parallel()
	//
	if _, err := VectorFromDigits([]uint8{0, 4}); !errors.Is(err, ErrBadDigit) {
		t.Errorf("expected ErrBadDigit, got %v", err)
	}
}

func Test_Z4_Aliasing(t *testing.T) {
	t.Parallel()
	//
	vec := NewVector(3)
	copied := vec
	cloned := vec.Clone()
	// Write through the copy.
	copied.Set(1, 2)
	//
	if vec.Get(1) != 2 {
		t.Errorf("copied vector does not share storage")
	}
	//
	if cloned.Get(1) != 0 {
		t.Errorf("cloned vector shares storage")
	}
}

func checkAdd(t *testing.T, lhs []uint8, rhs []uint8, expected string) {
	t.Parallel()
	//
	l, _ := VectorFromDigits(lhs)
	r, _ := VectorFromDigits(rhs)
	//
	if sum := l.Add(r); sum.String() != expected {
		t.Errorf("%s + %s == %s, expected %s", l, r, sum, expected)
	}
}

func checkSub(t *testing.T, lhs []uint8, rhs []uint8, expected string) {
	t.Parallel()
	//
	l, _ := VectorFromDigits(lhs)
	r, _ := VectorFromDigits(rhs)
	//
	if diff := l.Sub(r); diff.String() != expected {
		t.Errorf("%s - %s == %s, expected %s", l, r, diff, expected)
	}
}

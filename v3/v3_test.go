/*
 * v3_test.go, part of moltraj.
 *
 * Copyright 2024 The moltraj authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import "testing"

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("NVecs: got %d, want 2", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("At(1,2): got %v, want 6", A.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice length not divisible by 3 should have failed")
	}
}

func TestVecView(Te *testing.T) {
	A := Zeros(3)
	v := A.VecView(1)
	v.Set(0, 0, 7.0)
	if A.At(1, 0) != 7.0 {
		Te.Error("changes in a view must be reflected in the viewed matrix")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{
		1, 1, 1,
		2, 2, 2,
		3, 3, 3,
	})
	B := Zeros(2)
	B.SomeVecs(A, []int{2, 0}) //order is preserved verbatim
	if B.At(0, 0) != 3 || B.At(1, 0) != 1 {
		Te.Errorf("SomeVecs order: got %v and %v, want 3 and 1", B.At(0, 0), B.At(1, 0))
	}
	if err := B.SomeVecsSafe(A, []int{0, 1, 2}); err == nil {
		Te.Error("a shape mismatch should have come back as an error")
	}
}

func TestSwapVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{
		1, 1, 1,
		2, 2, 2,
	})
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 2 || A.At(1, 0) != 1 {
		Te.Error("SwapVecs did not swap")
	}
}

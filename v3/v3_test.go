/*
 * v3_test.go, part of gomatgen.
 *
 * Copyright 2026 The gomatgen authors
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

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("got %d vectors, want 2", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element (1,2): %f", A.At(1, 2))
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("a slice of length 4 should not build a matrix")
	}
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	v := A.VecView(1)
	if v.NVecs() != 1 || v.At(0, 0) != 4 {
		Te.Error("VecView returned the wrong row")
	}
	//views share memory with the viewed matrix
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("changing the view did not change the matrix")
	}
}

func TestVectorOps(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		Te.Errorf("wrong cross product: %v", z)
	}
	if x.Dot(y) != 0 {
		Te.Errorf("wrong dot product: %f", x.Dot(y))
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(v.Norm()-5) > 1e-12 {
		Te.Errorf("wrong norm: %f", v.Norm())
	}
	s := Zeros(1)
	s.Sub(x, y)
	if s.At(0, 0) != 1 || s.At(0, 1) != -1 {
		Te.Error("wrong subtraction")
	}
	s.Scale(2, v)
	if s.At(0, 0) != 6 {
		Te.Error("wrong scaling")
	}
}

func TestAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	shift, _ := NewMatrix([]float64{0, 0, 10})
	A.AddVec(A, shift)
	if A.At(0, 2) != 11 || A.At(1, 2) != 12 {
		Te.Error("AddVec did not shift every vector")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	B := A.SomeVecs([]int{2, 0})
	if B.NVecs() != 2 || B.At(0, 0) != 7 || B.At(1, 0) != 1 {
		Te.Error("SomeVecs picked the wrong vectors")
	}
	//the picked vectors are copies
	B.Set(0, 0, 100)
	if A.At(2, 0) == 100 {
		Te.Error("SomeVecs must copy, not view")
	}
}

/*
 * v3.go, part of gomatgen.
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

//Package v3 implements an Nx3 matrix of 3D coordinates on top of gonum.
//Within the package it is understood that a "vector" is a row of the matrix,
//i.e. the cartesian coordinates of one point in 3D space.
package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of row vectors in 3D space, wrapping a gonum dense matrix
// so it can be fed to any gonum operation.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum matrix embedded in A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix puts the given gonum matrix into a Matrix. It panics if A
// doesn't have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(fmt.Sprintf("v3: Dense2Matrix: matrix has %d columns, need 3", c))
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the ith vector of the matrix. Changes in the
// view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// SomeVecs returns a new Matrix with copies of the vectors of F at the
// positions given in list, in order. It panics if an index is out of range.
func (F *Matrix) SomeVecs(list []int) *Matrix {
	ret := Zeros(len(list))
	n := F.NVecs()
	for k, i := range list {
		if i < 0 || i >= n {
			panic(fmt.Sprintf("v3: SomeVecs: vector %d (requested as element %d) out of range", i, k))
		}
		ret.SetVec(k, F.RawRowView(i))
	}
	return ret
}

// SetVec replaces the ith vector of the receiver with the first 3 elements
// of v.
func (F *Matrix) SetVec(i int, v []float64) {
	if len(v) < 3 {
		panic("v3: SetVec: need at least 3 elements")
	}
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

// Copy returns a copy of the receiver.
func (F *Matrix) Copy() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}

// Sub puts a-b in the receiver. All three matrices must have the same number
// of vectors.
func (F *Matrix) Sub(a, b *Matrix) {
	F.Dense.Sub(a.Dense, b.Dense)
}

// Add puts a+b in the receiver. All three matrices must have the same number
// of vectors.
func (F *Matrix) Add(a, b *Matrix) {
	F.Dense.Add(a.Dense, b.Dense)
}

// Scale puts v*a in the receiver.
func (F *Matrix) Scale(v float64, a *Matrix) {
	F.Dense.Scale(v, a.Dense)
}

// AddVec adds the 1-vector matrix v to each vector of a, putting the result
// in the receiver.
func (F *Matrix) AddVec(a, v *Matrix) {
	if v.NVecs() != 1 {
		panic("v3: AddVec: v must contain exactly one vector")
	}
	n := a.NVecs()
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, a.At(i, j)+v.At(0, j))
		}
	}
}

// Cross puts the cross product of the first vectors of a and b in the first
// vector of the receiver.
func (F *Matrix) Cross(a, b *Matrix) {
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

// Dot returns the dot product between the first vectors of F and b.
func (F *Matrix) Dot(b *Matrix) float64 {
	var d float64
	for j := 0; j < 3; j++ {
		d += F.At(0, j) * b.At(0, j)
	}
	return d
}

// Norm returns the Euclidean norm of the first vector of F.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(F.Dot(F))
}

// String returns a human-readable representation, one vector per line.
func (F *Matrix) String() string {
	n := F.NVecs()
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("%9.4f %9.4f %9.4f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return strings.Join(lines, "\n")
}

// Error is the concrete error type of the v3 package. It is structured the
// same as the main package's but avoids a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return err.message
}

// Decorate appends info to the decoration slice and returns the slice. An
// empty string only retrieves the current value.
func (err Error) Decorate(info string) []string {
	if info != "" {
		err.deco = append(err.deco, info)
	}
	return err.deco
}

// Critical reports whether the error should stop the caller.
func (err Error) Critical() bool {
	return err.critical
}

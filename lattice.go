/*
 * lattice.go, part of gomatgen.
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

package matgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//tolerances for angle and length comparisons on lattices, generous enough
//for parameters read from text files.
const (
	latLenTol = 1e-5
	latAngTol = 1e-3
)

// Lattice is a crystal lattice. The three lattice vectors are the rows of a
// 3x3 matrix, in Angstrom.
type Lattice struct {
	m *mat.Dense
}

// NewLattice builds a lattice from a flat slice of 9 values, rows first. It
// returns an error if the vectors are linearly dependent or form a
// left-handed (negative-volume) cell.
func NewLattice(vecs []float64) (*Lattice, error) {
	if len(vecs) != 9 {
		return nil, newError("NewLattice", fmt.Sprintf("need 9 values, got %d", len(vecs)))
	}
	m := mat.NewDense(3, 3, vecs)
	if det := mat.Det(m); det <= 0 {
		return nil, newError("NewLattice", fmt.Sprintf("lattice vectors give a non-positive volume (%g)", det))
	}
	return &Lattice{m: m}, nil
}

// LatticeFromParameters builds a lattice from the cell lengths a, b, c (in
// Angstrom) and angles alpha, beta, gamma (in degrees), with the
// conventional orientation: c along z.
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, newError("LatticeFromParameters", "cell lengths must be positive")
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, newError("LatticeFromParameters", fmt.Sprintf("cell angle %g out of range (0, 180)", ang))
		}
	}
	ar := alpha * math.Pi / 180
	br := beta * math.Pi / 180
	gr := gamma * math.Pi / 180
	val := (math.Cos(ar)*math.Cos(br) - math.Cos(gr)) / (math.Sin(ar) * math.Sin(br))
	//clamp: rounding can push the cosine epsilon outside [-1, 1]
	val = math.Max(-1, math.Min(1, val))
	gstar := math.Acos(val)
	vecs := []float64{
		a * math.Sin(br), 0, a * math.Cos(br),
		-b * math.Sin(ar) * math.Cos(gstar), b * math.Sin(ar) * math.Sin(gstar), b * math.Cos(ar),
		0, 0, c,
	}
	return NewLattice(vecs)
}

// CubicLattice returns a cubic lattice with cell length a.
func CubicLattice(a float64) (*Lattice, error) {
	return LatticeFromParameters(a, a, a, 90, 90, 90)
}

// OrthorhombicLattice returns an orthorhombic lattice with the given cell
// lengths.
func OrthorhombicLattice(a, b, c float64) (*Lattice, error) {
	return LatticeFromParameters(a, b, c, 90, 90, 90)
}

// HexagonalLattice returns a hexagonal lattice with the given a and c cell
// lengths.
func HexagonalLattice(a, c float64) (*Lattice, error) {
	return LatticeFromParameters(a, a, c, 90, 90, 120)
}

// Matrix returns a copy of the 3x3 lattice matrix, rows being the lattice
// vectors.
func (L *Lattice) Matrix() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	d.Copy(L.m)
	return d
}

// Volume returns the cell volume in cubic Angstrom.
func (L *Lattice) Volume() float64 {
	return mat.Det(L.m)
}

// Lengths returns the lengths of the three lattice vectors.
func (L *Lattice) Lengths() [3]float64 {
	var ret [3]float64
	for i := 0; i < 3; i++ {
		ret[i] = math.Hypot(math.Hypot(L.m.At(i, 0), L.m.At(i, 1)), L.m.At(i, 2))
	}
	return ret
}

// Angles returns the cell angles alpha, beta, gamma in degrees.
func (L *Lattice) Angles() [3]float64 {
	le := L.Lengths()
	var ret [3]float64
	pairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for i, p := range pairs {
		var dot float64
		for j := 0; j < 3; j++ {
			dot += L.m.At(p[0], j) * L.m.At(p[1], j)
		}
		cos := dot / (le[p[0]] * le[p[1]])
		cos = math.Max(-1, math.Min(1, cos))
		ret[i] = math.Acos(cos) * 180 / math.Pi
	}
	return ret
}

// IsHexagonal reports whether the lattice has hexagonal metric: a == b,
// alpha == beta == 90 and gamma == 120, within loose tolerances.
func (L *Lattice) IsHexagonal() bool {
	le := L.Lengths()
	an := L.Angles()
	if math.Abs(le[0]-le[1]) > latLenTol {
		return false
	}
	return math.Abs(an[0]-90) < latAngTol && math.Abs(an[1]-90) < latAngTol && math.Abs(an[2]-120) < latAngTol
}

// Reciprocal returns the crystallographic reciprocal lattice (without the
// 2*pi factor), so that a_i . b_j = delta_ij. The reciprocal of the
// reciprocal is the original lattice.
func (L *Lattice) Reciprocal() *Lattice {
	var inv mat.Dense
	if err := inv.Inverse(L.m); err != nil {
		panic("matgen: Lattice.Reciprocal: singular lattice matrix") //can't happen, volume is checked at construction
	}
	rec := mat.NewDense(3, 3, nil)
	rec.CloneFrom(inv.T())
	return &Lattice{m: rec}
}

// CartesianCoords converts fractional coordinates to cartesian.
func (L *Lattice) CartesianCoords(frac [3]float64) [3]float64 {
	var ret [3]float64
	for j := 0; j < 3; j++ {
		ret[j] = frac[0]*L.m.At(0, j) + frac[1]*L.m.At(1, j) + frac[2]*L.m.At(2, j)
	}
	return ret
}

// FractionalCoords converts cartesian coordinates to fractional.
func (L *Lattice) FractionalCoords(cart [3]float64) [3]float64 {
	var inv mat.Dense
	if err := inv.Inverse(L.m); err != nil {
		panic("matgen: Lattice.FractionalCoords: singular lattice matrix")
	}
	var ret [3]float64
	for j := 0; j < 3; j++ {
		ret[j] = cart[0]*inv.At(0, j) + cart[1]*inv.At(1, j) + cart[2]*inv.At(2, j)
	}
	return ret
}

// DSpacing returns the interplanar spacing of the (hkl) plane family, in
// Angstrom. Panics on the (000) "plane", which has no spacing.
func (L *Lattice) DSpacing(h, k, l int) float64 {
	g := L.gnorm(h, k, l)
	if g == 0 {
		panic("matgen: Lattice.DSpacing: (000) has no interplanar spacing")
	}
	return 1 / g
}

//gnorm returns |h b1 + k b2 + l b3| on the crystallographic reciprocal
//lattice, i.e. 1/d_hkl.
func (L *Lattice) gnorm(h, k, l int) float64 {
	rec := L.Reciprocal()
	var g [3]float64
	hkl := [3]float64{float64(h), float64(k), float64(l)}
	for j := 0; j < 3; j++ {
		g[j] = hkl[0]*rec.m.At(0, j) + hkl[1]*rec.m.At(1, j) + hkl[2]*rec.m.At(2, j)
	}
	return math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
}

// RecipPoint is one reciprocal lattice point: its integer indices and the
// length of its reciprocal vector (1/d_hkl).
type RecipPoint struct {
	HKL [3]int
	G   float64
}

// PointsInSphere returns all reciprocal lattice points with |g| <= r,
// excluding the origin. The points are not ordered.
func (L *Lattice) PointsInSphere(r float64) []RecipPoint {
	if r <= 0 {
		return nil
	}
	le := L.Lengths()
	//|h| = |g . a| <= r |a|, and likewise for k, l
	hmax := int(math.Floor(r*le[0])) + 1
	kmax := int(math.Floor(r*le[1])) + 1
	lmax := int(math.Floor(r*le[2])) + 1
	rec := L.Reciprocal()
	var ret []RecipPoint
	for h := -hmax; h <= hmax; h++ {
		for k := -kmax; k <= kmax; k++ {
			for l := -lmax; l <= lmax; l++ {
				if h == 0 && k == 0 && l == 0 {
					continue
				}
				var g float64
				for j := 0; j < 3; j++ {
					gj := float64(h)*rec.m.At(0, j) + float64(k)*rec.m.At(1, j) + float64(l)*rec.m.At(2, j)
					g += gj * gj
				}
				g = math.Sqrt(g)
				if g <= r {
					ret = append(ret, RecipPoint{[3]int{h, k, l}, g})
				}
			}
		}
	}
	return ret
}

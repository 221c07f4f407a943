/*
 * xrd.go, part of gomatgen.
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

/*Package xrd computes powder X-ray diffraction patterns of crystal
structures.

The calculation follows the kinematic formalism of De Graef & McHenry,
Structure of Materials, chapters 11 and 12:

 1. Enumerate the crystallographic reciprocal lattice points inside the
    limiting sphere of radius 2/lambda (or the smaller shell implied by the
    requested two-theta range).

 2. For each point g_hkl, the Bragg condition gives
    sin(theta) = lambda |g| / 2.

 3. The structure factor is the occupancy-weighted sum of atomic scattering
    factors, F_hkl = sum_j f_j occu_j exp(2 pi i g.r_j), with the atomic
    scattering factors evaluated from the Cromer-Mann parameterization and
    optionally damped by Debye-Waller factors exp(-B_j s^2).

 4. The intensity is |F_hkl|^2, corrected by the Lorentz polarization
    factor (1 + cos^2 2theta) / (sin^2 theta cos theta).

Symmetrically equivalent reflections land on the same two-theta and are
merged into one peak, so no multiplicity correction is needed.
*/
package xrd

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	matgen "github.com/matgen-dev/gomatgen"
)

//peaks closer than TwoThetaTol degrees are merged; in scaled patterns,
//peaks below ScaledIntensityTol (relative to 100) are dropped.
const (
	TwoThetaTol        = 1e-5
	ScaledIntensityTol = 1e-3
)

// Wavelengths holds commonly used X-ray radiation wavelengths in Angstrom,
// by target metal and line.
var Wavelengths = map[string]float64{
	"CuKa":  1.54184,
	"CuKa2": 1.54439,
	"CuKa1": 1.54056,
	"CuKb1": 1.39222,
	"MoKa":  0.71073,
	"MoKa2": 0.71359,
	"MoKa1": 0.70930,
	"MoKb1": 0.63229,
	"CrKa":  2.29100,
	"CrKa2": 2.29361,
	"CrKa1": 2.28970,
	"CrKb1": 2.08487,
	"FeKa":  1.93735,
	"FeKa2": 1.93998,
	"FeKa1": 1.93604,
	"FeKb1": 1.75661,
	"CoKa":  1.79026,
	"CoKa2": 1.79285,
	"CoKa1": 1.78896,
	"CoKb1": 1.63079,
	"AgKa":  0.560885,
	"AgKa2": 0.563813,
	"AgKa1": 0.559421,
	"AgKb1": 0.497082,
}

// Calculator computes XRD patterns for a fixed radiation. The zero value is
// not usable; use NewCalculator or NewCalculatorWavelength.
type Calculator struct {
	Wavelength  float64            //in Angstrom
	DebyeWaller map[string]float64 //per-symbol B factors, optional
}

// NewCalculator returns a calculator for one of the radiations in
// Wavelengths, e.g. "CuKa" for Cu K-alpha. The empty string selects CuKa.
func NewCalculator(radiation string) (*Calculator, error) {
	if radiation == "" {
		radiation = "CuKa"
	}
	wl, ok := Wavelengths[radiation]
	if !ok {
		return nil, errorf("unknown radiation %q", radiation)
	}
	return &Calculator{Wavelength: wl}, nil
}

// NewCalculatorWavelength returns a calculator for a fixed wavelength in
// Angstrom.
func NewCalculatorWavelength(wl float64) (*Calculator, error) {
	if wl <= 0 {
		return nil, errorf("non-positive wavelength %g", wl)
	}
	return &Calculator{Wavelength: wl}, nil
}

//one flattened scattering center: a species at a site. Partially occupied
//sites contribute one center per species.
type center struct {
	symbol string
	occu   float64
	dw     float64
	frac   [3]float64
}

// Pattern computes the diffraction pattern of the structure between
// twoThetaMin and twoThetaMax degrees. If scaled is true, intensities are
// normalized so the strongest peak is 100 and negligible peaks are dropped.
func (C *Calculator) Pattern(s *matgen.Structure, scaled bool, twoThetaMin, twoThetaMax float64) (*Pattern, error) {
	if twoThetaMin < 0 || twoThetaMax <= twoThetaMin || twoThetaMax > 180 {
		return nil, errorf("bad two-theta range [%g, %g]", twoThetaMin, twoThetaMax)
	}
	lattice := s.Lattice
	isHex := lattice.IsHexagonal()

	//from the Bragg condition; reciprocal vector length is 1/d_hkl
	minR := 2 * math.Sin(twoThetaMin/2*math.Pi/180) / C.Wavelength
	maxR := 2 * math.Sin(twoThetaMax/2*math.Pi/180) / C.Wavelength

	pts := lattice.PointsInSphere(maxR)
	if minR > 0 {
		kept := pts[:0]
		for _, p := range pts {
			if p.G >= minR {
				kept = append(kept, p)
			}
		}
		pts = kept
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].G != pts[j].G {
			return pts[i].G < pts[j].G
		}
		for k := 0; k < 3; k++ {
			if pts[i].HKL[k] != pts[j].HKL[k] {
				return pts[i].HKL[k] > pts[j].HKL[k]
			}
		}
		return false
	})

	centers, err := C.flatten(s)
	if err != nil {
		return nil, err
	}

	var peaks []Peak
	for _, p := range pts {
		p := p //hkl below slices p.HKL; without per-iteration copies (Go <1.22) all stored slices would alias one array
		theta := math.Asin(C.Wavelength * p.G / 2)
		s1 := p.G / 2 //sin(theta)/lambda = |g|/2, since d = 1/|g|
		s2 := s1 * s1

		fhkl := complex(0, 0)
		for _, c := range centers {
			f, err := matgen.ScatteringFactor(c.symbol, s1)
			if err != nil {
				return nil, errDecorate(err, "Pattern")
			}
			gr := float64(p.HKL[0])*c.frac[0] + float64(p.HKL[1])*c.frac[1] + float64(p.HKL[2])*c.frac[2]
			damp := math.Exp(-c.dw * s2)
			fhkl += complex(f*c.occu*damp, 0) * cmplx.Exp(complex(0, 2*math.Pi*gr))
		}
		lorentz := (1 + math.Pow(math.Cos(2*theta), 2)) / (math.Pow(math.Sin(theta), 2) * math.Cos(theta))
		ihkl := real(fhkl * cmplx.Conj(fhkl))
		twoTheta := 2 * theta * 180 / math.Pi

		hkl := p.HKL[:]
		if isHex {
			//Miller-Bravais indices for hexagonal lattices
			hkl = []int{hkl[0], hkl[1], -hkl[0] - hkl[1], hkl[2]}
		}
		merged := false
		for i := range peaks {
			if math.Abs(peaks[i].TwoTheta-twoTheta) < TwoThetaTol {
				peaks[i].Intensity += ihkl * lorentz
				peaks[i].allHKL = append(peaks[i].allHKL, hkl)
				merged = true
				break
			}
		}
		if !merged {
			peaks = append(peaks, Peak{
				TwoTheta:  twoTheta,
				Intensity: ihkl * lorentz,
				DHkl:      1 / p.G,
				allHKL:    [][]int{hkl},
			})
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].TwoTheta < peaks[j].TwoTheta })

	var max float64
	for i := range peaks {
		peaks[i].Hkls = uniqueFamilies(peaks[i].allHKL)
		if peaks[i].Intensity > max {
			max = peaks[i].Intensity
		}
	}
	if max == 0 {
		return &Pattern{}, nil
	}
	kept := peaks[:0]
	for _, pk := range peaks {
		if pk.Intensity/max*100 > ScaledIntensityTol {
			kept = append(kept, pk)
		}
	}
	peaks = kept
	pat := &Pattern{Peaks: peaks}
	if scaled {
		pat.Normalize(100)
	}
	return pat, nil
}

func (C *Calculator) flatten(s *matgen.Structure) ([]center, error) {
	var centers []center
	for i := 0; i < s.Len(); i++ {
		site := s.Site(i)
		for sym, occu := range site.Species {
			if _, err := matgen.ScatteringFactor(sym, 0); err != nil {
				return nil, errorf("no scattering coefficients for element %s", sym)
			}
			centers = append(centers, center{
				symbol: sym,
				occu:   occu,
				dw:     C.DebyeWaller[sym],
				frac:   site.FracCoords,
			})
		}
	}
	return centers, nil
}

//uniqueFamilies groups the reflections that contributed to one peak by
//plane family: two index tuples belong to the same family when their
//absolute values agree up to reordering.
func uniqueFamilies(hkls [][]int) []HKLGroup {
	keyOf := func(hkl []int) string {
		abs := make([]int, len(hkl))
		for i, v := range hkl {
			if v < 0 {
				v = -v
			}
			abs[i] = v
		}
		sort.Ints(abs)
		return fmt.Sprint(abs)
	}
	order := []string{}
	rep := map[string][]int{}
	count := map[string]int{}
	for _, hkl := range hkls {
		k := keyOf(hkl)
		if _, ok := rep[k]; !ok {
			rep[k] = hkl
			order = append(order, k)
		}
		count[k]++
	}
	groups := make([]HKLGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, HKLGroup{HKL: rep[k], Multiplicity: count[k]})
	}
	return groups
}

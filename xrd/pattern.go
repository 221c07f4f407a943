/*
 * pattern.go, part of gomatgen.
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

package xrd

import (
	"fmt"
	"io"
	"strings"
)

// HKLGroup is one family of lattice planes contributing to a peak, with the
// number of symmetrically equivalent reflections that were merged into it.
// HKL has 3 indices, or 4 (Miller-Bravais) for hexagonal lattices.
type HKLGroup struct {
	HKL          []int
	Multiplicity int
}

func (g HKLGroup) String() string {
	idx := make([]string, len(g.HKL))
	for i, v := range g.HKL {
		idx[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Join(idx, " ") + ")"
}

// Peak is one diffraction peak: position in two-theta degrees, intensity in
// arbitrary units, interplanar spacing in Angstrom and the contributing
// plane families.
type Peak struct {
	TwoTheta  float64
	Intensity float64
	DHkl      float64
	Hkls      []HKLGroup

	allHKL [][]int //every merged reflection, kept for family grouping
}

// Pattern is a computed powder diffraction pattern, peaks in ascending
// two-theta order.
type Pattern struct {
	Peaks []Peak
}

// Normalize scales the intensities so the strongest peak has the given
// value. It does nothing on an empty or all-zero pattern.
func (P *Pattern) Normalize(value float64) {
	var max float64
	for _, pk := range P.Peaks {
		if pk.Intensity > max {
			max = pk.Intensity
		}
	}
	if max == 0 {
		return
	}
	for i := range P.Peaks {
		P.Peaks[i].Intensity = P.Peaks[i].Intensity / max * value
	}
}

// WriteTable writes a fixed-width peak table to out.
func (P *Pattern) WriteTable(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%10s %12s %10s  %s\n", "2theta", "intensity", "d_hkl", "hkl"); err != nil {
		return err
	}
	for _, pk := range P.Peaks {
		fams := make([]string, len(pk.Hkls))
		for i, g := range pk.Hkls {
			fams[i] = fmt.Sprintf("%v x%d", g, g.Multiplicity)
		}
		if _, err := fmt.Fprintf(out, "%10.4f %12.4f %10.4f  %s\n", pk.TwoTheta, pk.Intensity, pk.DHkl, strings.Join(fams, ", ")); err != nil {
			return err
		}
	}
	return nil
}

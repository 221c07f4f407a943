/*
 * structure.go, part of gomatgen.
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
)

//conversion from amu/A^3 to g/cm^3
const amuPerCubicAngstrom = 1.66053906892

// Site is one crystallographic site of a Structure: fractional coordinates
// plus the species occupying it. Occupancies are by symbol; a fully ordered
// site has a single species with occupancy 1.
type Site struct {
	Species    map[string]float64
	FracCoords [3]float64
}

// NewSite builds a fully occupied, single-species site.
func NewSite(symbol string, frac [3]float64) Site {
	return Site{Species: map[string]float64{symbol: 1}, FracCoords: frac}
}

// Occupancy returns the summed occupancy of the site.
func (S Site) Occupancy() float64 {
	var o float64
	for _, v := range S.Species {
		o += v
	}
	return o
}

// Structure is a periodic arrangement of sites on a lattice.
type Structure struct {
	Lattice *Lattice
	Sites   []Site
}

// NewStructure builds a structure and validates it: at least one site, all
// species known, occupancies in (0, 1].
func NewStructure(lattice *Lattice, sites []Site) (*Structure, error) {
	if lattice == nil {
		return nil, newError("NewStructure", "nil lattice given")
	}
	if len(sites) == 0 {
		return nil, newError("NewStructure", "structure needs at least one site")
	}
	for i, s := range sites {
		if len(s.Species) == 0 {
			return nil, newError("NewStructure", fmt.Sprintf("site %d has no species", i))
		}
		for sym, occu := range s.Species {
			if _, ok := symbolMass[sym]; !ok {
				return nil, newError("NewStructure", fmt.Sprintf("site %d: unknown element %q", i, sym))
			}
			if occu <= 0 || occu > 1 {
				return nil, newError("NewStructure", fmt.Sprintf("site %d: occupancy %g for %s out of (0, 1]", i, occu, sym))
			}
		}
		if s.Occupancy() > 1+compIntTol {
			return nil, newError("NewStructure", fmt.Sprintf("site %d: total occupancy %g exceeds 1", i, s.Occupancy()))
		}
	}
	return &Structure{Lattice: lattice, Sites: sites}, nil
}

// Len returns the number of sites.
func (S *Structure) Len() int {
	return len(S.Sites)
}

// Site returns the site at index i. Panics if out of range.
func (S *Structure) Site(i int) Site {
	if i < 0 || i >= len(S.Sites) {
		panic("matgen: Structure: requested Site out of bounds")
	}
	return S.Sites[i]
}

// Composition returns the composition of the structure, weighting species by
// occupancy.
func (S *Structure) Composition() Composition {
	comp := Composition{}
	for _, site := range S.Sites {
		for sym, occu := range site.Species {
			comp[sym] += occu
		}
	}
	return comp
}

// Density returns the density of the structure in g/cm3, or an error if an
// element has no tabulated mass.
func (S *Structure) Density() (float64, error) {
	w, err := S.Composition().Weight()
	if err != nil {
		return 0, errDecorate(err, "Density")
	}
	return w / S.Lattice.Volume() * amuPerCubicAngstrom, nil
}

// String returns a short summary such as "Structure: Cu4, 4 sites, a=3.615".
func (S *Structure) String() string {
	le := S.Lattice.Lengths()
	return fmt.Sprintf("Structure: %s, %d sites, a=%.4g", S.Composition().Formula(), S.Len(), le[0])
}

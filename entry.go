/*
 * entry.go, part of gomatgen.
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
)

//energies closer than this are considered equal when comparing entries.
const entryEnergyTol = 1e-8

// NormMode selects how an Entry is normalized.
type NormMode int

const (
	//PerFormulaUnit divides composition and energy by the reduction
	//factor of the composition, so the result refers to one reduced
	//formula unit.
	PerFormulaUnit NormMode = iota
	//PerAtom divides composition and energy by the total number of
	//atoms, so the composition amounts sum to 1.
	PerAtom
)

// Entry is a lightweight container for the energy associated with a chemical
// composition, the basic record of computed-materials analyses.
type Entry struct {
	Composition Composition
	Energy      float64 //in eV, by convention of the producing code
}

// NewEntry builds an entry from a composition given either as a Composition
// or as a formula string.
func NewEntry(composition interface{}, energy float64) (*Entry, error) {
	switch c := composition.(type) {
	case Composition:
		return &Entry{Composition: c.Copy(), Energy: energy}, nil
	case string:
		comp, err := ParseComposition(c)
		if err != nil {
			return nil, errDecorate(err, "NewEntry")
		}
		return &Entry{Composition: comp, Energy: energy}, nil
	}
	return nil, newError("NewEntry", fmt.Sprintf("composition must be a Composition or a formula string, got %T", composition))
}

// IsElement reports whether the composition of the entry is a single
// element.
func (E *Entry) IsElement() bool {
	return E.Composition.IsElement()
}

// EnergyPerAtom returns the energy of the entry divided by its number of
// atoms.
func (E *Entry) EnergyPerAtom() float64 {
	return E.Energy / E.Composition.NumAtoms()
}

// Normalize returns a new entry with composition and energy divided by the
// factor implied by mode: the formula reduction factor for PerFormulaUnit,
// the total number of atoms for PerAtom.
func (E *Entry) Normalize(mode NormMode) (*Entry, error) {
	var factor float64
	switch mode {
	case PerFormulaUnit:
		_, factor = E.Composition.Reduce()
	case PerAtom:
		factor = E.Composition.NumAtoms()
	default:
		return nil, newError("Normalize", fmt.Sprintf("unknown normalization mode %d", mode))
	}
	return &Entry{Composition: E.Composition.Div(factor), Energy: E.Energy / factor}, nil
}

// Equal reports whether two entries have the same composition and the same
// energy within tolerance. Scaled duplicates, i.e. physically equivalent
// materials, are not equal unless normalized first.
func (E *Entry) Equal(other *Entry) bool {
	if E == other {
		return true
	}
	if math.Abs(E.Energy-other.Energy) > entryEnergyTol {
		return false
	}
	return E.Composition.Equal(other.Composition, compIntTol)
}

// String returns a summary like "Entry: Fe2O3 with energy = -67.1958".
func (E *Entry) String() string {
	return fmt.Sprintf("Entry: %s with energy = %.4f", E.Composition.Formula(), E.Energy)
}

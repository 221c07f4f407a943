/*
 * molecule.go, part of gomatgen.
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

	v3 "github.com/matgen-dev/gomatgen/v3"
)

// Molecule is a non-periodic set of atoms with one set of cartesian
// coordinates, in Angstrom.
type Molecule struct {
	Atoms    []*Atom
	Coords   *v3.Matrix
	charge   int
	unpaired int
}

// NewMolecule makes a molecule from atoms and coordinates with the given
// total charge and number of unpaired electrons. It returns an error if
// either slice is nil or their lengths don't match. It doesn't check the
// charge or unpaired electrons for consistency with the atoms.
func NewMolecule(atoms []*Atom, coords *v3.Matrix, charge, unpaired int) (*Molecule, error) {
	if atoms == nil {
		return nil, newError("NewMolecule", "nil atoms given")
	}
	if coords == nil {
		return nil, newError("NewMolecule", "nil coordinates given")
	}
	if len(atoms) != coords.NVecs() {
		return nil, newError("NewMolecule", fmt.Sprintf("%d atoms but %d coordinate rows", len(atoms), coords.NVecs()))
	}
	mol := &Molecule{Atoms: atoms, Coords: coords, charge: charge, unpaired: unpaired}
	FillIndexes(mol)
	return mol, nil
}

// MoleculeFromSymbols builds a molecule from element symbols and a flat
// coordinate slice (x1,y1,z1,x2,...), assigning tabulated masses. This is the
// minimal constructor: two symbols and six numbers give a diatomic.
func MoleculeFromSymbols(symbols []string, coords []float64, charge, unpaired int) (*Molecule, error) {
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "MoleculeFromSymbols")
	}
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		m, err := Mass(s)
		if err != nil {
			return nil, errDecorate(err, "MoleculeFromSymbols")
		}
		atoms[i] = &Atom{Name: s, ID: i + 1, Symbol: s, Mass: m}
	}
	return NewMolecule(atoms, c, charge, unpaired)
}

//Molecule methods

// Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic("matgen: Molecule: requested Atom out of bounds")
	}
	return M.Atoms[i]
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Charge returns the total charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

// Unpaired returns the number of unpaired electrons in the molecule.
func (M *Molecule) Unpaired() int {
	return M.unpaired
}

// SetCharge sets the total charge of the molecule to i.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

// SetUnpaired sets the number of unpaired electrons of the molecule to i.
func (M *Molecule) SetUnpaired(i int) {
	M.unpaired = i
}

// Masses returns a slice with the masses of all atoms, or an error if any
// mass is missing.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, M.Len())
	for i := range M.Atoms {
		if M.Atoms[i].Mass <= 0 {
			return nil, newError("Masses", fmt.Sprintf("no mass for atom %d (%s)", i, M.Atoms[i].Symbol))
		}
		masses[i] = M.Atoms[i].Mass
	}
	return masses, nil
}

// FormalCharge returns the sum of the partial charges of all atoms.
func (M *Molecule) FormalCharge() float64 {
	var q float64
	for _, at := range M.Atoms {
		q += at.Charge
	}
	return q
}

// Composition returns the composition of the molecule. Atoms without a
// symbol are skipped.
func (M *Molecule) Composition() Composition {
	comp := Composition{}
	for _, at := range M.Atoms {
		if at.Symbol == "" {
			continue
		}
		comp[at.Symbol]++
	}
	return comp
}

// Copy returns a copy of the molecule, including coordinates.
func (M *Molecule) Copy() *Molecule {
	atoms := make([]*Atom, M.Len())
	for i, at := range M.Atoms {
		atoms[i] = at.Copy()
	}
	mol := &Molecule{Atoms: atoms, Coords: M.Coords.Copy(), charge: M.charge, unpaired: M.unpaired}
	return mol
}

// SomeAtoms returns a new molecule with the atoms at the positions given in
// list, in order. The atoms are shared with the original molecule, the
// coordinates are copied. The charge and multiplicity are inherited from the
// parent and not guaranteed to be meaningful for the selection.
func (M *Molecule) SomeAtoms(list []int) (*Molecule, error) {
	atoms := make([]*Atom, 0, len(list))
	n := M.Len()
	for k, i := range list {
		if i < 0 || i >= n {
			return nil, newError("SomeAtoms", fmt.Sprintf("atom requested (number %d, value %d) out of range", k, i))
		}
		atoms = append(atoms, M.Atoms[i])
	}
	return &Molecule{Atoms: atoms, Coords: M.Coords.SomeVecs(list), charge: M.charge, unpaired: M.unpaired}, nil
}

// Corrupted checks whether the molecule is inconsistent, i.e. the number of
// coordinate rows doesn't match the number of atoms.
func (M *Molecule) Corrupted() error {
	if M.Coords == nil {
		return newError("Corrupted", "molecule has no coordinates")
	}
	if M.Len() != M.Coords.NVecs() {
		return newError("Corrupted", fmt.Sprintf("inconsistent atoms/coordinates: %d atoms, %d rows", M.Len(), M.Coords.NVecs()))
	}
	return nil
}

// String returns a short human-readable summary of the molecule, such as
// "Molecule: C O, charge 0".
func (M *Molecule) String() string {
	return fmt.Sprintf("Molecule: %s, charge %d", M.Composition().Formula(), M.charge)
}

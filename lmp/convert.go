/*
 * convert.go, part of gomatgen.
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

package lmp

import (
	"fmt"
	"math"
	"sort"

	matgen "github.com/matgen-dev/gomatgen"
	v3 "github.com/matgen-dev/gomatgen/v3"
)

//force-field mass tables round atomic masses, so symbol guessing accepts
//this much absolute deviation.
const massGuessTol = 0.5

// Molecule converts the data file into a matgen.Molecule. Element symbols
// are guessed from the per-type masses; partial charges, molecule IDs and
// bonds carry over. Atoms are ordered by ID. The file should validate
// cleanly first: Molecule refuses files whose MustValidate fails.
func (D *Data) Molecule() (*matgen.Molecule, error) {
	if err := D.MustValidate(); err != nil {
		return nil, decorated(err, "Molecule")
	}
	symbols := make(map[int]string, D.NAtomTypes)
	for t := 1; t <= D.NAtomTypes; t++ {
		sym, err := matgen.SymbolFromMass(D.Masses[t], massGuessTol)
		if err != nil {
			return nil, decorated(err, fmt.Sprintf("Molecule: atom type %d", t))
		}
		symbols[t] = sym
	}
	recs := make([]*AtomRecord, len(D.Atoms))
	copy(recs, D.Atoms)
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	atoms := make([]*matgen.Atom, len(recs))
	coords := make([]float64, 0, len(recs)*3)
	index := make(map[int]int, len(recs)) //atom ID to position
	for i, r := range recs {
		sym := symbols[r.Type]
		atoms[i] = &matgen.Atom{
			Name:   sym,
			ID:     r.ID,
			MolID:  r.MolID,
			Type:   r.Type,
			Symbol: sym,
			Mass:   D.Masses[r.Type],
			Charge: r.Charge,
		}
		coords = append(coords, r.X, r.Y, r.Z)
		index[r.ID] = i
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, decorated(err, "Molecule")
	}
	charge := int(math.Round(D.TotalCharge()))
	mol, err := matgen.NewMolecule(atoms, c, charge, 0)
	if err != nil {
		return nil, decorated(err, "Molecule")
	}
	for k, t := range D.Bonds {
		at1 := atoms[index[t.Atoms[0]]]
		at2 := atoms[index[t.Atoms[1]]]
		dx := coords[at1.Index*3] - coords[at2.Index*3]
		dy := coords[at1.Index*3+1] - coords[at2.Index*3+1]
		dz := coords[at1.Index*3+2] - coords[at2.Index*3+2]
		b := &matgen.Bond{Index: k, At1: at1, At2: at2, Dist: math.Sqrt(dx*dx + dy*dy + dz*dz)}
		at1.Bonds = append(at1.Bonds, b)
		at2.Bonds = append(at2.Bonds, b)
	}
	return mol, nil
}

// FromMolecule builds a Data from a molecule and a box, assigning one atom
// type per element (alphabetically) and numbering atom IDs from 1 in the
// molecule's order. Bond, angle, dihedral and improper tables are left
// empty except for bonds present in the molecule, which all get type 1.
func FromMolecule(mol *matgen.Molecule, box Box) (*Data, error) {
	if err := mol.Corrupted(); err != nil {
		return nil, decorated(err, "FromMolecule")
	}
	comp := mol.Composition()
	syms := comp.Symbols()
	if len(syms) == 0 {
		return nil, errorf(0, "molecule has no atoms with element symbols")
	}
	typeOf := make(map[string]int, len(syms))
	d := NewData()
	d.Comment = fmt.Sprintf("%s, written by gomatgen", comp.Formula())
	d.Box = box
	for i, s := range syms {
		typeOf[s] = i + 1
		m, err := matgen.Mass(s)
		if err != nil {
			return nil, decorated(err, "FromMolecule")
		}
		d.Masses[i+1] = m
	}
	d.NAtomTypes = len(syms)
	d.NAtoms = mol.Len()
	matgen.FillIndexes(mol)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol == "" {
			return nil, errorf(0, "atom %d has no element symbol", i)
		}
		molid := at.MolID
		if molid == 0 {
			molid = 1
		}
		d.Atoms = append(d.Atoms, &AtomRecord{
			ID:     i + 1,
			MolID:  molid,
			Type:   typeOf[at.Symbol],
			Charge: at.Charge,
			X:      mol.Coords.At(i, 0),
			Y:      mol.Coords.At(i, 1),
			Z:      mol.Coords.At(i, 2),
		})
	}
	seen := map[int]bool{}
	for i := 0; i < mol.Len(); i++ {
		for _, b := range mol.Atom(i).Bonds {
			if seen[b.Index] {
				continue
			}
			seen[b.Index] = true
			d.Bonds = append(d.Bonds, &Term{
				ID:    len(d.Bonds) + 1,
				Type:  1,
				Atoms: []int{b.At1.Index + 1, b.At2.Index + 1},
			})
		}
	}
	d.NBonds = len(d.Bonds)
	if d.NBonds > 0 {
		d.NBondTypes = 1
	}
	return d, nil
}

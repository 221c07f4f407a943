/*
 * json.go, part of gomatgen.
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
	"encoding/json"
	"io"

	v3 "github.com/matgen-dev/gomatgen/v3"
)

//JSON wire types. These are flat mirrors of the in-memory types, so external
//tools don't depend on this library's structs.

type JSONAtom struct {
	Name   string    `json:"name,omitempty"`
	ID     int       `json:"id"`
	MolID  int       `json:"molid,omitempty"`
	Type   int       `json:"type,omitempty"`
	Symbol string    `json:"symbol"`
	Mass   float64   `json:"mass"`
	Charge float64   `json:"charge"`
	Coords []float64 `json:"coords"`
}

type JSONMolecule struct {
	Atoms  []JSONAtom `json:"atoms"`
	Charge int        `json:"charge"`
	Bonds  [][2]int   `json:"bonds,omitempty"` //pairs of 0-based atom indexes
}

// EncodeJSONMolecule writes mol to out as one JSON document.
func EncodeJSONMolecule(out io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "EncodeJSONMolecule")
	}
	j := JSONMolecule{Charge: mol.Charge()}
	j.Atoms = make([]JSONAtom, mol.Len())
	for i, at := range mol.Atoms {
		j.Atoms[i] = JSONAtom{
			Name:   at.Name,
			ID:     at.ID,
			MolID:  at.MolID,
			Type:   at.Type,
			Symbol: at.Symbol,
			Mass:   at.Mass,
			Charge: at.Charge,
			Coords: []float64{mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2)},
		}
	}
	FillIndexes(mol)
	seen := map[int]bool{}
	for _, at := range mol.Atoms {
		for _, b := range at.Bonds {
			if seen[b.Index] {
				continue
			}
			seen[b.Index] = true
			j.Bonds = append(j.Bonds, [2]int{b.At1.Index, b.At2.Index})
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(j)
}

// DecodeJSONMolecule reads one JSON molecule document from in. Bonds are
// restored with undetermined order and recomputed distances left at zero.
func DecodeJSONMolecule(in io.Reader) (*Molecule, error) {
	var j JSONMolecule
	if err := json.NewDecoder(in).Decode(&j); err != nil {
		return nil, errDecorate(err, "DecodeJSONMolecule")
	}
	atoms := make([]*Atom, len(j.Atoms))
	coords := make([]float64, 0, len(j.Atoms)*3)
	for i, ja := range j.Atoms {
		if len(ja.Coords) != 3 {
			return nil, newError("DecodeJSONMolecule", "every atom needs exactly 3 coordinates")
		}
		atoms[i] = &Atom{Name: ja.Name, ID: ja.ID, MolID: ja.MolID, Type: ja.Type, Symbol: ja.Symbol, Mass: ja.Mass, Charge: ja.Charge}
		coords = append(coords, ja.Coords...)
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "DecodeJSONMolecule")
	}
	mol, err := NewMolecule(atoms, c, j.Charge, 0)
	if err != nil {
		return nil, errDecorate(err, "DecodeJSONMolecule")
	}
	for k, pair := range j.Bonds {
		if pair[0] < 0 || pair[0] >= len(atoms) || pair[1] < 0 || pair[1] >= len(atoms) {
			return nil, newError("DecodeJSONMolecule", "bond references an atom out of range")
		}
		b := &Bond{Index: k, At1: atoms[pair[0]], At2: atoms[pair[1]]}
		atoms[pair[0]].Bonds = append(atoms[pair[0]].Bonds, b)
		atoms[pair[1]].Bonds = append(atoms[pair[1]].Bonds, b)
	}
	return mol, nil
}

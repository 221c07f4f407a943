/*
 * atom.go, part of gomatgen.
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

// Atom contains the per-atom information of a molecule or structure, except
// for the coordinates, which live in a separate v3.Matrix.
type Atom struct {
	Name   string //force-field or file atom name, when available
	ID     int    //1-based identifier from the source file
	MolID  int    //molecule identifier within the system
	Type   int    //force-field atom type, 1-based, 0 if unset
	Symbol string
	Mass   float64
	Charge float64 //partial charge, in e
	Index  int     //0-based position in its container, filled by FillIndexes
	Bonds  []*Bond
}

// Copy returns a copy of the Atom. Bonds are shared, not copied: a Bond
// points to its two atoms, so deep-copying it here would detach it from the
// rest of the molecule.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("matgen: attempted to copy a nil Atom")
	}
	at := new(Atom)
	at.Name = A.Name
	at.ID = A.ID
	at.MolID = A.MolID
	at.Type = A.Type
	at.Symbol = A.Symbol
	at.Mass = A.Mass
	at.Charge = A.Charge
	at.Index = A.Index
	at.Bonds = A.Bonds
	return at
}

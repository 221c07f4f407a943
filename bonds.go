/*
 * bonds.go, part of gomatgen.
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
	"sort"

	v3 "github.com/matgen-dev/gomatgen/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond is a chemical bond between two atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

// Cross returns the atom of the bond that is not the origin atom. It panics
// if origin is in neither end of the bond, as that is a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("matgen: Bond.Cross: the origin atom given is not present in the bond")
}

//removes the bond with index id from the slice
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

// RemoveBond removes b from the bond slices of both its atoms. It returns an
// error if the bond was not registered in one of them.
func RemoveBond(b *Bond) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	if len(b.At1.Bonds) == lenb1 {
		return newError("RemoveBond", fmt.Sprintf("failed to remove bond %d from atom %d", b.Index, b.At1.Index))
	}
	if len(b.At2.Bonds) == lenb2 {
		return newError("RemoveBond", fmt.Sprintf("failed to remove bond %d from atom %d", b.Index, b.At2.Index))
	}
	return nil
}

// AssignBonds assigns bonds to the atoms of mol based on a simple distance
// criterion, similar to that described in DOI:10.1186/1758-2946-3-33. It can
// get slow for large systems; it is not meant for macromolecules.
func AssignBonds(coord *v3.Matrix, mol Atomer) ([]*Bond, error) {
	var t1, t2 *v3.Matrix
	var at1, at2 *Atom
	FillIndexes(mol)
	t3 := v3.Zeros(1)
	bonds := make([]*Bond, 0, 10)
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		t1 = coord.VecView(i)
		at1 = mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			return nil, newError("AssignBonds", fmt.Sprintf("couldn't find the covalent radius for %s (atom %d)", at1.Symbol, i))
		}
		for j := i + 1; j < tot; j++ {
			t2 = coord.VecView(j)
			at2 = mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				return nil, newError("AssignBonds", fmt.Sprintf("couldn't find the covalent radius for %s (atom %d)", at2.Symbol, j))
			}
			t3.Sub(t2, t1)
			d := t3.Norm()
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b)
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //no specified maximum for this element.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			err := RemoveBond(at.Bonds[len(at.Bonds)-1]) //drop the longest bond
			if err != nil {
				return nil, errDecorate(err, "AssignBonds")
			}
		}
	}
	//drop the pruned bonds from the returned slice too
	kept := make([]*Bond, 0, len(bonds))
	for _, b := range bonds {
		if hasBond(b.At1, b.Index) && hasBond(b.At2, b.Index) {
			kept = append(kept, b)
		}
	}
	return kept, nil
}

func hasBond(at *Atom, index int) bool {
	for _, b := range at.Bonds {
		if b.Index == index {
			return true
		}
	}
	return false
}

// FillIndexes sets the Index field of every atom in mol to its current
// position.
func FillIndexes(mol Atomer) {
	for i := 0; i < mol.Len(); i++ {
		mol.Atom(i).Index = i
	}
}

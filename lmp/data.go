/*
 * data.go, part of gomatgen.
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

// Box holds the simulation box bounds, plus the tilt factors for triclinic
// boxes.
type Box struct {
	XLo, XHi   float64
	YLo, YHi   float64
	ZLo, ZHi   float64
	XY, XZ, YZ float64
	Triclinic  bool
}

// Lengths returns the box edge lengths.
func (B Box) Lengths() [3]float64 {
	return [3]float64{B.XHi - B.XLo, B.YHi - B.YLo, B.ZHi - B.ZLo}
}

// AtomRecord is one record of the Atoms section, atom style "full":
// atom-ID molecule-ID atom-type charge x y z, optionally followed by the
// three periodic image flags.
type AtomRecord struct {
	ID         int
	MolID      int
	Type       int
	Charge     float64
	X, Y, Z    float64
	IX, IY, IZ int
	HasImage   bool
}

// Term is one record of a connectivity section (Bonds, Angles, Dihedrals or
// Impropers): its ID, its type index and the 2, 3 or 4 atom IDs it couples.
type Term struct {
	ID    int
	Type  int
	Atoms []int
}

// Velocity is one record of the Velocities section.
type Velocity struct {
	ID         int
	VX, VY, VZ float64
}

// Data is a parsed LAMMPS data file. The N* fields mirror the header
// declarations; they are what the file claims, which Validate checks against
// what the sections contain.
type Data struct {
	Comment string //first line of the file

	NAtoms     int
	NBonds     int
	NAngles    int
	NDihedrals int
	NImpropers int

	NAtomTypes     int
	NBondTypes     int
	NAngleTypes    int
	NDihedralTypes int
	NImproperTypes int

	Box Box

	Masses map[int]float64 //by atom type, 1-based

	//coefficient tables by type index, 1-based. The parameters are carried
	//verbatim: interpreting them is the simulation engine's business.
	PairCoeffs     map[int][]float64
	BondCoeffs     map[int][]float64
	AngleCoeffs    map[int][]float64
	DihedralCoeffs map[int][]float64
	ImproperCoeffs map[int][]float64

	Atoms      []*AtomRecord
	Velocities []*Velocity
	Bonds      []*Term
	Angles     []*Term
	Dihedrals  []*Term
	Impropers  []*Term
}

// NewData returns an empty Data with all tables allocated.
func NewData() *Data {
	return &Data{
		Masses:         map[int]float64{},
		PairCoeffs:     map[int][]float64{},
		BondCoeffs:     map[int][]float64{},
		AngleCoeffs:    map[int][]float64{},
		DihedralCoeffs: map[int][]float64{},
		ImproperCoeffs: map[int][]float64{},
	}
}

// Atom returns the atom record with the given ID, or nil if absent.
func (D *Data) Atom(id int) *AtomRecord {
	for _, a := range D.Atoms {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// TotalCharge returns the sum of the partial charges of all atom records.
func (D *Data) TotalCharge() float64 {
	var q float64
	for _, a := range D.Atoms {
		q += a.Charge
	}
	return q
}

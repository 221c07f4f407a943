/*
 * matgen_test.go, part of gomatgen.
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
	"bytes"
	"math"
	"testing"
)

//TestXYZIO tests that XYZ files are read and written correctly.
func TestXYZIO(Te *testing.T) {
	mol, err := XYZReadFile("test/methanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 {
		Te.Errorf("read %d atoms, want 6", mol.Len())
	}
	if mol.Atom(4).Symbol != "O" {
		Te.Errorf("atom 4 read as %s, want O", mol.Atom(4).Symbol)
	}
	if math.Abs(mol.Coords.At(5, 1)-0.9) > 1e-9 {
		Te.Errorf("wrong y coordinate for the hydroxyl hydrogen: %f", mol.Coords.At(5, 1))
	}
	err = XYZWriteFile("test/methanolIO.xyz", mol, "rewritten")
	if err != nil {
		Te.Error(err)
	}
	mol2, err := XYZReadFile("test/methanolIO.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Errorf("round trip changed the atom count: %d vs %d", mol2.Len(), mol.Len())
	}
}

func TestMoleculeFromSymbols(Te *testing.T) {
	mol, err := MoleculeFromSymbols([]string{"C", "O"}, []float64{0, 0, 0, 0, 0, 1.128}, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 {
		Te.Errorf("got %d atoms, want 2", mol.Len())
	}
	if mol.Atom(1).Mass < 15.9 || mol.Atom(1).Mass > 16.1 {
		Te.Errorf("wrong mass assigned to O: %f", mol.Atom(1).Mass)
	}
	if mol.Composition().Formula() != "CO" {
		Te.Errorf("wrong formula: %s", mol.Composition().Formula())
	}
	//mismatched lengths must be refused
	_, err = MoleculeFromSymbols([]string{"C", "O"}, []float64{0, 0, 0}, 0, 0)
	if err == nil {
		Te.Error("expected an error for 2 symbols with 1 coordinate row")
	}
	_, err = MoleculeFromSymbols([]string{"Xx"}, []float64{0, 0, 0}, 0, 0)
	if err == nil {
		Te.Error("expected an error for an unknown element")
	}
}

func TestAssignBonds(Te *testing.T) {
	mol, err := XYZReadFile("test/methanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	bonds, err := AssignBonds(mol.Coords, mol)
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 5 {
		Te.Errorf("assigned %d bonds to methanol, want 5", len(bonds))
	}
	if len(mol.Atom(0).Bonds) != 4 {
		Te.Errorf("carbon got %d bonds, want 4", len(mol.Atom(0).Bonds))
	}
	if len(mol.Atom(4).Bonds) != 2 {
		Te.Errorf("oxygen got %d bonds, want 2", len(mol.Atom(4).Bonds))
	}
	for _, b := range bonds {
		if b.Dist <= tooclose {
			Te.Errorf("bond %d shorter than the clash threshold: %f", b.Index, b.Dist)
		}
	}
	//Cross walks to the other end of the bond
	b := mol.Atom(4).Bonds[0]
	if b.Cross(b.At1) != b.At2 || b.Cross(b.At2) != b.At1 {
		Te.Error("Bond.Cross doesn't return the opposite atom")
	}
}

func TestJSONIO(Te *testing.T) {
	mol, err := XYZReadFile("test/methanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := AssignBonds(mol.Coords, mol); err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeJSONMolecule(&buf, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := DecodeJSONMolecule(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Errorf("JSON round trip changed the atom count: %d vs %d", mol2.Len(), mol.Len())
	}
	if len(mol2.Atom(0).Bonds) != len(mol.Atom(0).Bonds) {
		Te.Errorf("JSON round trip changed the carbon bonds: %d vs %d", len(mol2.Atom(0).Bonds), len(mol.Atom(0).Bonds))
	}
	if mol2.Atom(4).Symbol != "O" {
		Te.Errorf("wrong symbol after JSON round trip: %s", mol2.Atom(4).Symbol)
	}
}

func TestComposition(Te *testing.T) {
	comp, err := ParseComposition("Fe2O3")
	if err != nil {
		Te.Fatal(err)
	}
	if comp.Formula() != "Fe2O3" {
		Te.Errorf("wrong formula: %s", comp.Formula())
	}
	w, err := comp.Weight()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(w-159.687) > 0.01 {
		Te.Errorf("wrong weight for Fe2O3: %f", w)
	}
	if comp.NumAtoms() != 5 {
		Te.Errorf("wrong atom count for Fe2O3: %f", comp.NumAtoms())
	}
	red, factor := comp.Copy().Reduce()
	if factor != 1 || !red.Equal(comp, 1e-10) {
		Te.Error("Fe2O3 should already be reduced")
	}
	big, err := ParseComposition("Fe4O6")
	if err != nil {
		Te.Fatal(err)
	}
	red, factor = big.Reduce()
	if factor != 2 || red.Formula() != "Fe2O3" {
		Te.Errorf("Fe4O6 reduced to %s with factor %f", red.Formula(), factor)
	}
	frac, err := ParseComposition("Fe0.5Ni0.5")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(frac["Fe"]-0.5) > 1e-12 || math.Abs(frac["Ni"]-0.5) > 1e-12 {
		Te.Error("fractional amounts parsed wrong")
	}
	for _, bad := range []string{"", "Xq2", "h2O", "Fe0O"} {
		if _, err := ParseComposition(bad); err == nil {
			Te.Errorf("formula %q should not parse", bad)
		}
	}
}

func TestEntry(Te *testing.T) {
	e, err := NewEntry("Fe2O3", -67.1958)
	if err != nil {
		Te.Fatal(err)
	}
	if e.String() != "Entry: Fe2O3 with energy = -67.1958" {
		Te.Errorf("wrong entry string: %s", e.String())
	}
	if math.Abs(e.EnergyPerAtom()-(-13.43916)) > 1e-9 {
		Te.Errorf("wrong energy per atom: %f", e.EnergyPerAtom())
	}
	if e.IsElement() {
		Te.Error("Fe2O3 is not an element")
	}
	perAtom, err := e.Normalize(PerAtom)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(perAtom.Composition.NumAtoms()-1) > 1e-10 {
		Te.Errorf("per-atom composition sums to %f", perAtom.Composition.NumAtoms())
	}
	if math.Abs(perAtom.Energy-e.EnergyPerAtom()) > 1e-12 {
		Te.Error("per-atom energy disagrees with EnergyPerAtom")
	}
	doubled, err := NewEntry("Fe4O6", 2*-67.1958)
	if err != nil {
		Te.Fatal(err)
	}
	if e.Equal(doubled) {
		Te.Error("scaled duplicates must not compare equal before normalization")
	}
	n1, err := e.Normalize(PerFormulaUnit)
	if err != nil {
		Te.Fatal(err)
	}
	n2, err := doubled.Normalize(PerFormulaUnit)
	if err != nil {
		Te.Fatal(err)
	}
	if !n1.Equal(n2) {
		Te.Error("normalized entries of the same material should be equal")
	}
	if _, err := NewEntry(42, 0.0); err == nil {
		Te.Error("an int is not a composition")
	}
}

func TestLattice(Te *testing.T) {
	cub, err := CubicLattice(3.615)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(cub.Volume()-3.615*3.615*3.615) > 1e-9 {
		Te.Errorf("wrong cubic volume: %f", cub.Volume())
	}
	le := cub.Lengths()
	an := cub.Angles()
	for i := 0; i < 3; i++ {
		if math.Abs(le[i]-3.615) > 1e-9 {
			Te.Errorf("wrong cell length %d: %f", i, le[i])
		}
		if math.Abs(an[i]-90) > 1e-9 {
			Te.Errorf("wrong cell angle %d: %f", i, an[i])
		}
	}
	if cub.IsHexagonal() {
		Te.Error("a cubic lattice is not hexagonal")
	}
	hex, err := HexagonalLattice(3.209, 5.211)
	if err != nil {
		Te.Fatal(err)
	}
	if !hex.IsHexagonal() {
		Te.Error("HexagonalLattice should report hexagonal metric")
	}
	if math.Abs(cub.DSpacing(1, 0, 0)-3.615) > 1e-9 {
		Te.Errorf("wrong d(100): %f", cub.DSpacing(1, 0, 0))
	}
	if math.Abs(cub.DSpacing(1, 1, 1)-3.615/math.Sqrt(3)) > 1e-9 {
		Te.Errorf("wrong d(111): %f", cub.DSpacing(1, 1, 1))
	}
	//reciprocal of the reciprocal is the original lattice
	rec2 := cub.Reciprocal().Reciprocal()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(rec2.Matrix().At(i, j)-cub.Matrix().At(i, j)) > 1e-9 {
				Te.Error("double reciprocal is not the original lattice")
			}
		}
	}
	frac := [3]float64{0.5, 0.5, 0.25}
	back := cub.FractionalCoords(cub.CartesianCoords(frac))
	for i := 0; i < 3; i++ {
		if math.Abs(back[i]-frac[i]) > 1e-9 {
			Te.Error("fractional-cartesian round trip failed")
		}
	}
	if _, err := NewLattice([]float64{1, 0, 0, 0, 1, 0}); err == nil {
		Te.Error("6 values should not build a lattice")
	}
	if _, err := NewLattice([]float64{1, 0, 0, 1, 0, 0, 0, 0, 1}); err == nil {
		Te.Error("linearly dependent vectors should not build a lattice")
	}
}

func TestPointsInSphere(Te *testing.T) {
	cub, err := CubicLattice(1)
	if err != nil {
		Te.Fatal(err)
	}
	pts := cub.PointsInSphere(1.05)
	//the six <100> points; sqrt(2) is already outside
	if len(pts) != 6 {
		Te.Errorf("got %d points, want 6", len(pts))
	}
	for _, p := range pts {
		if math.Abs(p.G-1) > 1e-9 {
			Te.Errorf("point %v has |g| = %f, want 1", p.HKL, p.G)
		}
		if p.HKL == [3]int{0, 0, 0} {
			Te.Error("the origin must be excluded")
		}
	}
	if cub.PointsInSphere(-1) != nil {
		Te.Error("a non-positive radius holds no points")
	}
}

func TestStructure(Te *testing.T) {
	lat, err := CubicLattice(3.615)
	if err != nil {
		Te.Fatal(err)
	}
	sites := []Site{
		NewSite("Cu", [3]float64{0, 0, 0}),
		NewSite("Cu", [3]float64{0.5, 0.5, 0}),
		NewSite("Cu", [3]float64{0.5, 0, 0.5}),
		NewSite("Cu", [3]float64{0, 0.5, 0.5}),
	}
	s, err := NewStructure(lat, sites)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Composition().Formula() != "Cu4" {
		Te.Errorf("wrong composition: %s", s.Composition().Formula())
	}
	d, err := s.Density()
	if err != nil {
		Te.Fatal(err)
	}
	//experimental density of copper is 8.96 g/cm3
	if math.Abs(d-8.93) > 0.05 {
		Te.Errorf("wrong density for copper: %f", d)
	}
	if _, err := NewStructure(lat, nil); err == nil {
		Te.Error("a structure needs sites")
	}
	bad := []Site{{Species: map[string]float64{"Cu": 1.5}}}
	if _, err := NewStructure(lat, bad); err == nil {
		Te.Error("occupancies above 1 must be refused")
	}
	if _, err := NewStructure(lat, []Site{NewSite("Xq", [3]float64{0, 0, 0})}); err == nil {
		Te.Error("unknown elements must be refused")
	}
}

func TestSymbolFromMass(Te *testing.T) {
	sym, err := SymbolFromMass(15.9994, 0.5)
	if err != nil || sym != "O" {
		Te.Errorf("mass 15.9994 guessed as %q (%v), want O", sym, err)
	}
	sym, err = SymbolFromMass(1.00794, 0.5)
	if err != nil || sym != "H" {
		Te.Errorf("mass 1.00794 guessed as %q (%v), want H", sym, err)
	}
	if _, err := SymbolFromMass(250, 0.5); err == nil {
		Te.Error("no element is near mass 250")
	}
}

func TestErrorDecoration(Te *testing.T) {
	err := newError("inner", "something broke")
	deco := errDecorate(err, "outer")
	chemErr, ok := deco.(Error)
	if !ok {
		Te.Fatal("decorated error lost its type")
	}
	trace := chemErr.Decorate("")
	if len(trace) != 2 || trace[0] != "inner" || trace[1] != "outer" {
		Te.Errorf("wrong decoration trace: %v", trace)
	}
}

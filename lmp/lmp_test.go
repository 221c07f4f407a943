/*
 * lmp_test.go, part of gomatgen.
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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMethanol(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)

	assert.Equal(t, "Methanol, OPLS-style partial charges", d.Comment)
	assert.Equal(t, 6, d.NAtoms)
	assert.Equal(t, 5, d.NBonds)
	assert.Equal(t, 7, d.NAngles)
	assert.Equal(t, 3, d.NDihedrals)
	assert.Equal(t, 0, d.NImpropers)
	assert.Equal(t, 4, d.NAtomTypes)
	assert.Equal(t, 3, d.NBondTypes)
	assert.Equal(t, 3, d.NAngleTypes)
	assert.Equal(t, 1, d.NDihedralTypes)

	assert.Equal(t, [3]float64{10, 10, 10}, d.Box.Lengths())
	assert.False(t, d.Box.Triclinic)

	require.Len(t, d.Masses, 4)
	assert.InDelta(t, 12.011, d.Masses[1], 1e-12)
	assert.InDelta(t, 15.9994, d.Masses[3], 1e-12)

	require.Len(t, d.Atoms, 6)
	o := d.Atom(5)
	require.NotNil(t, o)
	assert.Equal(t, 3, o.Type)
	assert.InDelta(t, -0.683, o.Charge, 1e-12)
	assert.InDelta(t, 1.41, o.X, 1e-12)
	assert.Nil(t, d.Atom(42))

	require.Len(t, d.Bonds, 5)
	assert.Equal(t, []int{1, 2}, d.Bonds[0].Atoms)
	assert.Equal(t, 3, d.Bonds[4].Type)
	require.Len(t, d.Angles, 7)
	assert.Equal(t, []int{1, 5, 6}, d.Angles[6].Atoms)
	require.Len(t, d.Dihedrals, 3)
	require.Len(t, d.Velocities, 6)
	assert.InDelta(t, -0.0034, d.Velocities[0].VY, 1e-12)

	assert.Len(t, d.PairCoeffs, 4)
	assert.Equal(t, []float64{320.0, 1.410}, d.BondCoeffs[2])
	assert.Equal(t, []float64{0.3, 1, 3}, d.DihedralCoeffs[1])

	assert.InDelta(t, 0.0, d.TotalCharge(), 1e-10)
	assert.Empty(t, d.Validate())
}

func TestReadGzip(t *testing.T) {
	plain, err := ReadFile("test/methanol.data")
	require.NoError(t, err)
	gz, err := ReadFile("test/methanol.data.gz")
	require.NoError(t, err)
	assert.Equal(t, plain, gz)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty data file"},
		{"bad header", "comment\n\nnonsense here\n", "unrecognized header"},
		{"bad count", "comment\n\nmany atoms\n", `bad count "many"`},
		{"short atom record", "comment\n\n1 atoms\n\nAtoms\n\n1 1 1 0.0 0.0\n", "7 or 10 fields"},
		{"duplicate section", "comment\n\nMasses\n\n1 12.011\n\nMasses\n", `duplicate section "Masses"`},
		{"duplicate mass", "comment\n\nMasses\n\n1 12.011\n1 1.008\n", "duplicate mass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadTolerantInput(t *testing.T) {
	//CRLF line endings and exponent-formatted floats both appear in
	//files written on other platforms or by analysis scripts.
	lines := []string{
		"lone oxygen",
		"",
		"1 atoms",
		"1 atom types",
		"-5.0e0 5.0e0 xlo xhi",
		"-5.0 5.0 ylo yhi",
		"-5.0 5.0 zlo zhi",
		"",
		"Masses",
		"",
		"1 1.59994e1",
		"",
		"Atoms # full",
		"",
		"1 1 1 -1.2e-1 1.41e0 0.0 2.5E-3",
		"",
	}
	d, err := Read(strings.NewReader(strings.Join(lines, "\r\n")))
	require.NoError(t, err)
	assert.Equal(t, 1, d.NAtoms)
	assert.InDelta(t, 15.9994, d.Masses[1], 1e-12)
	assert.InDelta(t, -5.0, d.Box.XLo, 1e-12)
	a := d.Atom(1)
	require.NotNil(t, a)
	assert.InDelta(t, -0.12, a.Charge, 1e-12)
	assert.InDelta(t, 1.41, a.X, 1e-12)
	assert.InDelta(t, 0.0025, a.Z, 1e-12)
	assert.Empty(t, d.Validate())
}

func TestErrorLineNumbers(t *testing.T) {
	_, err := Read(strings.NewReader("comment\n\n1 atoms\n\nAtoms\n\nbad record here too long maybe\n"))
	require.Error(t, err)
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 7, lerr.Line())
}

func TestValidateViolations(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)

	d.NAtoms = 7                               //count mismatch, plus IDs no longer cover 1..7
	d.Box.ZHi = d.Box.ZLo                      //degenerate box
	d.Masses[9] = 1.008                        //undeclared type
	d.Bonds[0].Atoms = []int{1, 99}            //missing atom
	d.Angles[0].Type = 5                       //undeclared angle type
	d.Velocities = append(d.Velocities, &Velocity{ID: 6})

	errs := d.Validate()
	require.NotEmpty(t, errs)
	all := Violations(errs)
	assert.Contains(t, all, "7 atoms declared but 6")
	assert.Contains(t, all, "zlo")
	assert.Contains(t, all, "undeclared atom type 9")
	assert.Contains(t, all, "missing atom ID 99")
	assert.Contains(t, all, "angle 1 has undeclared type 5")
	assert.Contains(t, all, "duplicate Velocities record for atom ID 6")

	require.Error(t, d.MustValidate())
	assert.Contains(t, d.MustValidate().Error(), "violations")
}

func TestWriteRoundTrip(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d))

	d2, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, d, d2)
}

func TestMoleculeConversion(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)

	mol, err := d.Molecule()
	require.NoError(t, err)
	require.Equal(t, 6, mol.Len())
	assert.Equal(t, 0, mol.Charge())
	assert.Equal(t, "CH4O", mol.Composition().Formula())

	//atoms come out ordered by ID, with symbols guessed from the masses
	assert.Equal(t, "C", mol.Atom(0).Symbol)
	assert.Equal(t, "H", mol.Atom(1).Symbol)
	assert.Equal(t, "O", mol.Atom(4).Symbol)
	assert.InDelta(t, -0.683, mol.Atom(4).Charge, 1e-12)
	assert.InDelta(t, 0.89, mol.Coords.At(2, 2), 1e-12)

	//carbon couples to three hydrogens and the oxygen
	assert.Len(t, mol.Atom(0).Bonds, 4)
	assert.Len(t, mol.Atom(4).Bonds, 2)
	//C-O bond length
	var co float64
	for _, b := range mol.Atom(0).Bonds {
		if b.Cross(mol.Atom(0)).Symbol == "O" {
			co = b.Dist
		}
	}
	assert.InDelta(t, 1.41, co, 1e-9)
}

func TestMoleculeRefusesBrokenFile(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)
	d.NAtoms = 7
	_, err = d.Molecule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violations")
}

func TestFromMolecule(t *testing.T) {
	d, err := ReadFile("test/methanol.data")
	require.NoError(t, err)
	mol, err := d.Molecule()
	require.NoError(t, err)

	box := Box{XLo: -5, XHi: 5, YLo: -5, YHi: 5, ZLo: -5, ZHi: 5}
	d2, err := FromMolecule(mol, box)
	require.NoError(t, err)

	assert.Equal(t, 6, d2.NAtoms)
	//one type per element, alphabetically: C, H, O
	assert.Equal(t, 3, d2.NAtomTypes)
	assert.InDelta(t, 12.011, d2.Masses[1], 1e-3)
	assert.InDelta(t, 1.008, d2.Masses[2], 1e-3)
	assert.InDelta(t, 15.999, d2.Masses[3], 1e-2)
	assert.Equal(t, 5, d2.NBonds)
	assert.Empty(t, d2.Validate())

	//charges survive the round trip
	assert.InDelta(t, d.TotalCharge(), d2.TotalCharge(), 1e-10)
}

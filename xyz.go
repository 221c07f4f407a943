/*
 * xyz.go, part of gomatgen.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/matgen-dev/gomatgen/v3"
)

// XYZRead reads a molecule from an XYZ-formatted stream: an atom count line,
// a free comment line, then one "Symbol x y z" record per atom.
func XYZRead(in io.Reader) (*Molecule, error) {
	r := bufio.NewReader(in)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return nil, newError("XYZRead", "empty XYZ stream")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, newError("XYZRead", "first line of an XYZ file must be a positive atom count")
	}
	if _, err := r.ReadString('\n'); err != nil {
		return nil, newError("XYZRead", "XYZ file truncated after the atom count")
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, newError("XYZRead", fmt.Sprintf("XYZ file truncated: %d atoms declared, %d read", natoms, i))
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, newError("XYZRead", fmt.Sprintf("atom line %d ill-formed: %q", i+1, strings.TrimSpace(line)))
		}
		at := &Atom{Name: fields[0], ID: i + 1, Symbol: fields[0]}
		at.Mass = symbolMass[at.Symbol] //zero for unknown elements, no error
		atoms[i] = at
		for j := 1; j <= 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, newError("XYZRead", fmt.Sprintf("bad coordinate %q in atom line %d", fields[j], i+1))
			}
			coords = append(coords, v)
		}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return NewMolecule(atoms, c, 0, 0)
}

// XYZReadFile reads a molecule from the XYZ file with the given name.
func XYZReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mol, err := XYZRead(f)
	if err != nil {
		return nil, errDecorate(err, "XYZReadFile: "+name)
	}
	return mol, nil
}

// XYZWrite writes the molecule to out in XYZ format, with comment as the
// second line.
func XYZWrite(out io.Writer, mol *Molecule, comment string) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	if strings.ContainsRune(comment, '\n') {
		return newError("XYZWrite", "comment can't span multiple lines")
	}
	fmt.Fprintf(out, "%d\n", mol.Len())
	fmt.Fprintf(out, "%s\n", comment)
	for i, at := range mol.Atoms {
		sym := at.Symbol
		if sym == "" {
			sym = "X"
		}
		_, err := fmt.Fprintf(out, "%-2s  %12.6f %12.6f %12.6f\n", sym, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
		if err != nil {
			return errDecorate(err, "XYZWrite")
		}
	}
	return nil
}

// XYZWriteFile writes the molecule to the named file in XYZ format,
// overwriting it if it exists.
func XYZWriteFile(name string, mol *Molecule, comment string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return XYZWrite(f, mol, comment)
}

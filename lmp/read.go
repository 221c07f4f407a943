/*
 * read.go, part of gomatgen.
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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//the section names this package understands, with the tuple arity of their
//connectivity records (0 for non-term sections).
var sectionArity = map[string]int{
	"Masses":          0,
	"Pair Coeffs":     0,
	"Bond Coeffs":     0,
	"Angle Coeffs":    0,
	"Dihedral Coeffs": 0,
	"Improper Coeffs": 0,
	"Atoms":           0,
	"Velocities":      0,
	"Bonds":           2,
	"Angles":          3,
	"Dihedrals":       4,
	"Impropers":       4,
}

//header count keywords, in the order LAMMPS writes them.
var countKeywords = []string{
	"atoms", "bonds", "angles", "dihedrals", "impropers",
	"atom types", "bond types", "angle types", "dihedral types", "improper types",
}

// Returns the string without LAMMPS comments (everything from '#' on),
// trailing carriage returns, and surrounding whitespace.
func cleanLine(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " \t\r\n")
}

// ReadFile reads and parses the LAMMPS data file with the given name. Files
// ending in ".gz" are decompressed on the fly.
func ReadFile(name string) (*Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, named(errorf(0, "not a valid gzip stream: %v", err), name)
		}
		defer gz.Close()
		in = gz
	}
	d, err := Read(in)
	return d, named(err, name)
}

// Read parses a LAMMPS data file from in.
func Read(in io.Reader) (*Data, error) {
	d := NewData()
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, errorf(0, "empty data file")
	}
	d.Comment = strings.Trim(sc.Text(), " \t\r\n")
	lineno := 1

	section := "" //empty means we are still in the header
	seen := map[string]bool{}
	for sc.Scan() {
		lineno++
		line := cleanLine(sc.Text())
		if line == "" {
			continue
		}
		if name, ok := sectionName(line); ok {
			if seen[name] {
				return nil, errorf(lineno, "duplicate section %q", name)
			}
			seen[name] = true
			section = name
			continue
		}
		if section == "" {
			if err := d.parseHeaderLine(line, lineno); err != nil {
				return nil, err
			}
			continue
		}
		if err := d.parseRecord(section, line, lineno); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errorf(lineno, "reading data file: %v", err)
	}
	return d, nil
}

//sectionName reports whether the cleaned line is a section header.
func sectionName(line string) (string, bool) {
	_, ok := sectionArity[line]
	return line, ok
}

func (D *Data) parseHeaderLine(line string, lineno int) error {
	fields := strings.Fields(line)
	//count declarations: "<n> atoms", "<n> atom types", ...
	for _, kw := range countKeywords {
		kwf := strings.Fields(kw)
		if len(fields) == 1+len(kwf) && strings.Join(fields[1:], " ") == kw {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return errorf(lineno, "bad count %q for %q", fields[0], kw)
			}
			D.setCount(kw, n)
			return nil
		}
	}
	//box bounds: "<lo> <hi> xlo xhi" and friends
	if len(fields) == 4 && strings.HasSuffix(fields[2], "lo") && strings.HasSuffix(fields[3], "hi") {
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return errorf(lineno, "bad box bounds %q", line)
		}
		switch fields[2] + " " + fields[3] {
		case "xlo xhi":
			D.Box.XLo, D.Box.XHi = lo, hi
		case "ylo yhi":
			D.Box.YLo, D.Box.YHi = lo, hi
		case "zlo zhi":
			D.Box.ZLo, D.Box.ZHi = lo, hi
		default:
			return errorf(lineno, "unrecognized box bounds %q", line)
		}
		return nil
	}
	//triclinic tilt: "<xy> <xz> <yz> xy xz yz"
	if len(fields) == 6 && fields[3] == "xy" && fields[4] == "xz" && fields[5] == "yz" {
		vals, err := parseFloats(fields[:3])
		if err != nil {
			return errorf(lineno, "bad tilt factors %q", line)
		}
		D.Box.XY, D.Box.XZ, D.Box.YZ = vals[0], vals[1], vals[2]
		D.Box.Triclinic = true
		return nil
	}
	return errorf(lineno, "unrecognized header line or undeclared section %q", line)
}

func (D *Data) setCount(keyword string, n int) {
	switch keyword {
	case "atoms":
		D.NAtoms = n
	case "bonds":
		D.NBonds = n
	case "angles":
		D.NAngles = n
	case "dihedrals":
		D.NDihedrals = n
	case "impropers":
		D.NImpropers = n
	case "atom types":
		D.NAtomTypes = n
	case "bond types":
		D.NBondTypes = n
	case "angle types":
		D.NAngleTypes = n
	case "dihedral types":
		D.NDihedralTypes = n
	case "improper types":
		D.NImproperTypes = n
	}
}

func (D *Data) parseRecord(section, line string, lineno int) error {
	fields := strings.Fields(line)
	switch section {
	case "Masses":
		if len(fields) != 2 {
			return errorf(lineno, "Masses record needs 2 fields, got %d", len(fields))
		}
		t, err := strconv.Atoi(fields[0])
		if err != nil {
			return errorf(lineno, "bad atom type %q in Masses", fields[0])
		}
		m, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return errorf(lineno, "bad mass %q in Masses", fields[1])
		}
		if _, dup := D.Masses[t]; dup {
			return errorf(lineno, "duplicate mass for atom type %d", t)
		}
		D.Masses[t] = m
	case "Pair Coeffs", "Bond Coeffs", "Angle Coeffs", "Dihedral Coeffs", "Improper Coeffs":
		if len(fields) < 2 {
			return errorf(lineno, "%s record needs a type and at least one coefficient", section)
		}
		t, err := strconv.Atoi(fields[0])
		if err != nil {
			return errorf(lineno, "bad type %q in %s", fields[0], section)
		}
		coeffs, err := parseFloats(fields[1:])
		if err != nil {
			return errorf(lineno, "bad coefficient in %s: %v", section, err)
		}
		table := D.coeffTable(section)
		if _, dup := table[t]; dup {
			return errorf(lineno, "duplicate %s entry for type %d", section, t)
		}
		table[t] = coeffs
	case "Atoms":
		a, err := parseAtomRecord(fields, lineno)
		if err != nil {
			return err
		}
		D.Atoms = append(D.Atoms, a)
	case "Velocities":
		if len(fields) != 4 {
			return errorf(lineno, "Velocities record needs 4 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return errorf(lineno, "bad atom ID %q in Velocities", fields[0])
		}
		v, err := parseFloats(fields[1:])
		if err != nil {
			return errorf(lineno, "bad velocity in record for atom %d: %v", id, err)
		}
		D.Velocities = append(D.Velocities, &Velocity{ID: id, VX: v[0], VY: v[1], VZ: v[2]})
	case "Bonds", "Angles", "Dihedrals", "Impropers":
		arity := sectionArity[section]
		if len(fields) != 2+arity {
			return errorf(lineno, "%s record needs %d fields, got %d", section, 2+arity, len(fields))
		}
		ints, err := parseInts(fields)
		if err != nil {
			return errorf(lineno, "bad %s record: %v", section, err)
		}
		term := &Term{ID: ints[0], Type: ints[1], Atoms: ints[2:]}
		switch section {
		case "Bonds":
			D.Bonds = append(D.Bonds, term)
		case "Angles":
			D.Angles = append(D.Angles, term)
		case "Dihedrals":
			D.Dihedrals = append(D.Dihedrals, term)
		case "Impropers":
			D.Impropers = append(D.Impropers, term)
		}
	}
	return nil
}

func (D *Data) coeffTable(section string) map[int][]float64 {
	switch section {
	case "Pair Coeffs":
		return D.PairCoeffs
	case "Bond Coeffs":
		return D.BondCoeffs
	case "Angle Coeffs":
		return D.AngleCoeffs
	case "Dihedral Coeffs":
		return D.DihedralCoeffs
	case "Improper Coeffs":
		return D.ImproperCoeffs
	}
	panic("lmp: no coefficient table for section " + section)
}

func parseAtomRecord(fields []string, lineno int) (*AtomRecord, error) {
	if len(fields) != 7 && len(fields) != 10 {
		return nil, errorf(lineno, "Atoms record (style full) needs 7 or 10 fields, got %d", len(fields))
	}
	ints, err := parseInts(fields[:3])
	if err != nil {
		return nil, errorf(lineno, "bad Atoms record: %v", err)
	}
	floats, err := parseFloats(fields[3:7])
	if err != nil {
		return nil, errorf(lineno, "bad Atoms record: %v", err)
	}
	a := &AtomRecord{
		ID: ints[0], MolID: ints[1], Type: ints[2],
		Charge: floats[0], X: floats[1], Y: floats[2], Z: floats[3],
	}
	if len(fields) == 10 {
		img, err := parseInts(fields[7:])
		if err != nil {
			return nil, errorf(lineno, "bad image flags in Atoms record: %v", err)
		}
		a.IX, a.IY, a.IZ = img[0], img[1], img[2]
		a.HasImage = true
	}
	return a, nil
}

func parseInts(fields []string) ([]int, error) {
	ret := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func parseFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

/*
 * write.go, part of gomatgen.
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
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteFile writes the data file with the given name, gzip-compressed if the
// name ends in ".gz". An existing file is overwritten.
func WriteFile(name string, d *Data) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var out io.Writer = f
	if strings.HasSuffix(name, ".gz") {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		out = gz
	}
	return named(Write(out, d), name)
}

// Write writes d to out in LAMMPS data format with canonical formatting.
// The output reads back into an equal Data.
func Write(out io.Writer, d *Data) error {
	w := bufio.NewWriter(out)

	comment := d.Comment
	if comment == "" {
		comment = "LAMMPS data file, written by gomatgen"
	}
	fmt.Fprintf(w, "%s\n\n", comment)

	fmt.Fprintf(w, "%d atoms\n", d.NAtoms)
	fmt.Fprintf(w, "%d bonds\n", d.NBonds)
	fmt.Fprintf(w, "%d angles\n", d.NAngles)
	fmt.Fprintf(w, "%d dihedrals\n", d.NDihedrals)
	fmt.Fprintf(w, "%d impropers\n\n", d.NImpropers)

	fmt.Fprintf(w, "%d atom types\n", d.NAtomTypes)
	fmt.Fprintf(w, "%d bond types\n", d.NBondTypes)
	fmt.Fprintf(w, "%d angle types\n", d.NAngleTypes)
	fmt.Fprintf(w, "%d dihedral types\n", d.NDihedralTypes)
	fmt.Fprintf(w, "%d improper types\n\n", d.NImproperTypes)

	fmt.Fprintf(w, "%.6f %.6f xlo xhi\n", d.Box.XLo, d.Box.XHi)
	fmt.Fprintf(w, "%.6f %.6f ylo yhi\n", d.Box.YLo, d.Box.YHi)
	fmt.Fprintf(w, "%.6f %.6f zlo zhi\n", d.Box.ZLo, d.Box.ZHi)
	if d.Box.Triclinic {
		fmt.Fprintf(w, "%.6f %.6f %.6f xy xz yz\n", d.Box.XY, d.Box.XZ, d.Box.YZ)
	}

	if len(d.Masses) > 0 {
		fmt.Fprint(w, "\nMasses\n\n")
		for _, t := range sortedKeys(d.Masses) {
			fmt.Fprintf(w, "%d %.4f\n", t, d.Masses[t])
		}
	}
	writeCoeffs(w, "Pair Coeffs", d.PairCoeffs)
	writeCoeffs(w, "Bond Coeffs", d.BondCoeffs)
	writeCoeffs(w, "Angle Coeffs", d.AngleCoeffs)
	writeCoeffs(w, "Dihedral Coeffs", d.DihedralCoeffs)
	writeCoeffs(w, "Improper Coeffs", d.ImproperCoeffs)

	if len(d.Atoms) > 0 {
		fmt.Fprint(w, "\nAtoms # full\n\n")
		for _, a := range d.Atoms {
			fmt.Fprintf(w, "%d %d %d %.6f %.6f %.6f %.6f", a.ID, a.MolID, a.Type, a.Charge, a.X, a.Y, a.Z)
			if a.HasImage {
				fmt.Fprintf(w, " %d %d %d", a.IX, a.IY, a.IZ)
			}
			fmt.Fprint(w, "\n")
		}
	}
	if len(d.Velocities) > 0 {
		fmt.Fprint(w, "\nVelocities\n\n")
		for _, v := range d.Velocities {
			fmt.Fprintf(w, "%d %.6f %.6f %.6f\n", v.ID, v.VX, v.VY, v.VZ)
		}
	}
	writeTerms(w, "Bonds", d.Bonds)
	writeTerms(w, "Angles", d.Angles)
	writeTerms(w, "Dihedrals", d.Dihedrals)
	writeTerms(w, "Impropers", d.Impropers)

	return w.Flush()
}

func writeCoeffs(w *bufio.Writer, section string, table map[int][]float64) {
	if len(table) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n\n", section)
	for _, t := range sortedKeys(table) {
		fmt.Fprintf(w, "%d", t)
		for _, c := range table[t] {
			fmt.Fprintf(w, " %.6g", c)
		}
		fmt.Fprint(w, "\n")
	}
}

func writeTerms(w *bufio.Writer, section string, terms []*Term) {
	if len(terms) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n\n", section)
	for _, t := range terms {
		fmt.Fprintf(w, "%d %d", t.ID, t.Type)
		for _, a := range t.Atoms {
			fmt.Fprintf(w, " %d", a)
		}
		fmt.Fprint(w, "\n")
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

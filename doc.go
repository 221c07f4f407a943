/*
 * doc.go, part of gomatgen.
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

/*Package matgen is the main package of the gomatgen library. It provides atom,
molecule and crystal-structure types, chemical compositions and computed-energy
entries, plus the lattice arithmetic shared by the analysis subpackages.


	**gomatgen capabilities**

    Reads/writes LAMMPS data files and XYZ files (lmp subpackage and this
	package, respectively), and validates LAMMPS data files against their
	declared counts and type tables.

    Builds molecules from explicit atoms and coordinates, guesses element
	symbols from force-field masses, and assigns bonds by a covalent-radius
	distance criterion.

    Parses chemical formulas into compositions, reduces them, and handles
	computed-energy entries (per-atom and per-formula-unit normalization).

    Computes powder X-ray diffraction patterns for crystal structures
	(xrd subpackage) and renders them to image files or a terminal
	(matplot subpackage).

    Captures environment metadata and renders minimal bug reports
	(report subpackage).

The library uses gonum as its numeric backend. Coordinates are Nx3 row-vector
matrices from the v3 subpackage; lattices are 3x3 gonum matrices with the
lattice vectors as rows.

Functions in this package that take an atom or site index panic when the index
is out of range. These are considered programming errors, not runtime
conditions, so they are not reported as errors.
*/
package matgen

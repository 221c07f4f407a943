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

/*Package lmp reads, writes and validates LAMMPS data files.

A LAMMPS data file is a plain-text description of a simulation's topology
and force-field coefficients: a free-form comment line, a header declaring
counts ("10 atoms", "4 atom types") and box bounds ("0.0 40.0 xlo xhi"),
then named sections ("Masses", "Pair Coeffs", "Bond Coeffs", "Angle
Coeffs", "Dihedral Coeffs", "Improper Coeffs", "Atoms", "Velocities",
"Bonds", "Angles", "Dihedrals", "Impropers"), each followed by
whitespace-delimited records. "#" starts a comment anywhere.

This package handles atom style "full" (id, molecule-id, type, charge,
x, y, z, optional image flags), which is what molecular force fields
produce. Files with the ".gz" suffix are compressed and decompressed
transparently.

Validate checks a parsed file against its own declarations: section record
counts versus header counts, uniqueness and range of atom IDs, type
indices versus declared type counts, and the arity and referents of the
connectivity sections. It reports every violation found, not only the
first, so a broken file can be fixed in one pass.
*/
package lmp

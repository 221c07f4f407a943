/*
 * interfaces.go, part of gomatgen.
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

// Atomer is the basic interface for anything holding an ordered set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Masses returns a slice with the masses of all atoms, or an error if
	//any of them is missing.
	Masses() ([]float64, error)
}

// Error is the interface for errors that the packages in this library
// implement. The Decorate method adds and retrieves information from the
// error without changing its type or wrapping it in something else.
// Each call appends the given string (a function name in the calling stack,
// optionally with extra info as "FunctionName: info") to the decoration slice
// and returns the slice. An empty string only retrieves the current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

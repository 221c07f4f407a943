/*
 * validate.go, part of gomatgen.
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

// Validate checks the parsed file against its own header declarations and
// returns every violation found. A nil return means the file is
// well-formed. The checks are:
//
//	- each section's record count equals the declared count;
//	- atom IDs are unique and cover exactly 1..NAtoms;
//	- every atom type, including those in Masses and the coefficient
//	  tables, is within 1..NAtomTypes, and the per-term types are within
//	  their declared type counts;
//	- every declared atom type has a positive mass;
//	- connectivity terms reference existing atom IDs, without repeats
//	  inside one term;
//	- Velocities reference existing atoms, at most once each;
//	- box bounds satisfy lo < hi on each axis.
func (D *Data) Validate() []error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, errorf(0, format, args...))
	}

	//declared counts versus section contents
	if len(D.Atoms) != D.NAtoms {
		fail("%d atoms declared but %d Atoms records found", D.NAtoms, len(D.Atoms))
	}
	if len(D.Bonds) != D.NBonds {
		fail("%d bonds declared but %d Bonds records found", D.NBonds, len(D.Bonds))
	}
	if len(D.Angles) != D.NAngles {
		fail("%d angles declared but %d Angles records found", D.NAngles, len(D.Angles))
	}
	if len(D.Dihedrals) != D.NDihedrals {
		fail("%d dihedrals declared but %d Dihedrals records found", D.NDihedrals, len(D.Dihedrals))
	}
	if len(D.Impropers) != D.NImpropers {
		fail("%d impropers declared but %d Impropers records found", D.NImpropers, len(D.Impropers))
	}

	//box
	if D.Box.XHi <= D.Box.XLo {
		fail("box: xlo (%g) must be below xhi (%g)", D.Box.XLo, D.Box.XHi)
	}
	if D.Box.YHi <= D.Box.YLo {
		fail("box: ylo (%g) must be below yhi (%g)", D.Box.YLo, D.Box.YHi)
	}
	if D.Box.ZHi <= D.Box.ZLo {
		fail("box: zlo (%g) must be below zhi (%g)", D.Box.ZLo, D.Box.ZHi)
	}

	//masses: one positive mass per declared atom type
	for t := 1; t <= D.NAtomTypes; t++ {
		m, ok := D.Masses[t]
		if !ok {
			fail("no mass for atom type %d", t)
		} else if m <= 0 {
			fail("non-positive mass %g for atom type %d", m, t)
		}
	}
	for t := range D.Masses {
		if t < 1 || t > D.NAtomTypes {
			fail("Masses entry for undeclared atom type %d (%d types declared)", t, D.NAtomTypes)
		}
	}

	//coefficient tables within declared type ranges
	checkTable := func(name string, table map[int][]float64, ntypes int) {
		for t := range table {
			if t < 1 || t > ntypes {
				fail("%s entry for undeclared type %d (%d types declared)", name, t, ntypes)
			}
		}
	}
	checkTable("Pair Coeffs", D.PairCoeffs, D.NAtomTypes)
	checkTable("Bond Coeffs", D.BondCoeffs, D.NBondTypes)
	checkTable("Angle Coeffs", D.AngleCoeffs, D.NAngleTypes)
	checkTable("Dihedral Coeffs", D.DihedralCoeffs, D.NDihedralTypes)
	checkTable("Improper Coeffs", D.ImproperCoeffs, D.NImproperTypes)

	//atom IDs unique, in 1..NAtoms; atom types declared
	ids := make(map[int]bool, len(D.Atoms))
	for _, a := range D.Atoms {
		if ids[a.ID] {
			fail("duplicate atom ID %d", a.ID)
		}
		ids[a.ID] = true
		if a.ID < 1 || a.ID > D.NAtoms {
			fail("atom ID %d out of range 1..%d", a.ID, D.NAtoms)
		}
		if a.Type < 1 || a.Type > D.NAtomTypes {
			fail("atom %d has undeclared type %d (%d types declared)", a.ID, a.Type, D.NAtomTypes)
		}
	}

	//connectivity
	checkTerms := func(name string, terms []*Term, arity, ntypes int) {
		termIDs := make(map[int]bool, len(terms))
		for _, t := range terms {
			if termIDs[t.ID] {
				fail("duplicate %s ID %d", name, t.ID)
			}
			termIDs[t.ID] = true
			if t.Type < 1 || t.Type > ntypes {
				fail("%s %d has undeclared type %d (%d types declared)", name, t.ID, t.Type, ntypes)
			}
			if len(t.Atoms) != arity {
				fail("%s %d couples %d atoms, needs %d", name, t.ID, len(t.Atoms), arity)
			}
			seen := map[int]bool{}
			for _, id := range t.Atoms {
				if !ids[id] {
					fail("%s %d references missing atom ID %d", name, t.ID, id)
				}
				if seen[id] {
					fail("%s %d references atom ID %d more than once", name, t.ID, id)
				}
				seen[id] = true
			}
		}
	}
	checkTerms("bond", D.Bonds, 2, D.NBondTypes)
	checkTerms("angle", D.Angles, 3, D.NAngleTypes)
	checkTerms("dihedral", D.Dihedrals, 4, D.NDihedralTypes)
	checkTerms("improper", D.Impropers, 4, D.NImproperTypes)

	//velocities
	vseen := make(map[int]bool, len(D.Velocities))
	for _, v := range D.Velocities {
		if !ids[v.ID] {
			fail("Velocities record for missing atom ID %d", v.ID)
		}
		if vseen[v.ID] {
			fail("duplicate Velocities record for atom ID %d", v.ID)
		}
		vseen[v.ID] = true
	}

	return errs
}

// MustValidate returns an error summarizing all violations, or nil if the
// file is well-formed.
func (D *Data) MustValidate() error {
	errs := D.Validate()
	if len(errs) == 0 {
		return nil
	}
	return errorf(0, "%d violations:\n%s", len(errs), Violations(errs))
}

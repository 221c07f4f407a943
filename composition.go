/*
 * composition.go, part of gomatgen.
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
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

//amounts closer to an integer than this are treated as that integer,
//e.g. when reducing a formula.
const compIntTol = 1e-8

// Composition maps element symbols to amounts. Amounts are positive but not
// necessarily integers: partial occupancies produce fractional amounts.
type Composition map[string]float64

// ParseComposition parses a chemical formula such as "LiFeO2", "H2O" or
// "C6H12O6" into a Composition. Amounts may be fractional ("Fe0.5Ni0.5").
// Nested groups are not supported. An unknown element symbol is an error.
func ParseComposition(formula string) (Composition, error) {
	comp := Composition{}
	s := strings.TrimSpace(formula)
	if s == "" {
		return nil, newError("ParseComposition", "empty formula")
	}
	i := 0
	for i < len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return nil, newError("ParseComposition", fmt.Sprintf("unexpected character %q in formula %q", s[i], formula))
		}
		j := i + 1
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
		sym := s[i:j]
		if _, ok := symbolMass[sym]; !ok {
			return nil, newError("ParseComposition", fmt.Sprintf("unknown element %q in formula %q", sym, formula))
		}
		k := j
		for k < len(s) && (s[k] == '.' || (s[k] >= '0' && s[k] <= '9')) {
			k++
		}
		amt := 1.0
		if k > j {
			var err error
			amt, err = strconv.ParseFloat(s[j:k], 64)
			if err != nil {
				return nil, newError("ParseComposition", fmt.Sprintf("bad amount %q in formula %q", s[j:k], formula))
			}
		}
		if amt <= 0 {
			return nil, newError("ParseComposition", fmt.Sprintf("non-positive amount for %s in formula %q", sym, formula))
		}
		comp[sym] += amt
		i = k
	}
	return comp, nil
}

// Symbols returns the element symbols of the composition in alphabetical
// order. All formula printing goes through this, so output is deterministic.
func (C Composition) Symbols() []string {
	syms := make([]string, 0, len(C))
	for s := range C {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// NumAtoms returns the total amount of atoms in the composition.
func (C Composition) NumAtoms() float64 {
	var n float64
	for _, v := range C {
		n += v
	}
	return n
}

// Weight returns the molecular weight of the composition in g/mol, or an
// error if an element has no tabulated mass.
func (C Composition) Weight() (float64, error) {
	var w float64
	for s, v := range C {
		m, ok := symbolMass[s]
		if !ok {
			return 0, newError("Weight", "no tabulated mass for element "+s)
		}
		w += m * v
	}
	return w, nil
}

// IsElement reports whether the composition contains a single element.
func (C Composition) IsElement() bool {
	return len(C) == 1
}

// Formula returns the formula with amounts as given, e.g. "Fe2 O3" is
// returned as "Fe2O3" and a plain carbon atom as "C". Fractional amounts are
// printed with the fewest digits that round-trip.
func (C Composition) Formula() string {
	var b strings.Builder
	for _, s := range C.Symbols() {
		b.WriteString(s)
		b.WriteString(fmtAmount(C[s]))
	}
	return b.String()
}

// Reduce returns the reduced composition and the reduction factor, so that
// reduced * factor == C. Fe4O6 reduces to Fe2O3 with factor 2. Compositions
// with fractional amounts are returned unchanged with factor 1.
func (C Composition) Reduce() (Composition, float64) {
	ints := make([]int, 0, len(C))
	for _, v := range C {
		r := math.Round(v)
		if math.Abs(v-r) > compIntTol || r == 0 {
			return C.Copy(), 1
		}
		ints = append(ints, int(r))
	}
	g := 0
	for _, v := range ints {
		g = gcd(g, v)
	}
	if g <= 1 {
		return C.Copy(), 1
	}
	red := Composition{}
	for s, v := range C {
		red[s] = math.Round(v) / float64(g)
	}
	return red, float64(g)
}

// ReducedFormula returns the formula of the reduced composition.
func (C Composition) ReducedFormula() string {
	red, _ := C.Reduce()
	return red.Formula()
}

// Copy returns a copy of the composition.
func (C Composition) Copy() Composition {
	n := Composition{}
	for s, v := range C {
		n[s] = v
	}
	return n
}

// Div returns the composition divided by the given factor.
func (C Composition) Div(factor float64) Composition {
	if factor == 0 {
		panic("matgen: Composition.Div: zero factor")
	}
	n := Composition{}
	for s, v := range C {
		n[s] = v / factor
	}
	return n
}

// Equal reports whether the two compositions contain the same elements with
// amounts equal within tol.
func (C Composition) Equal(other Composition, tol float64) bool {
	if len(C) != len(other) {
		return false
	}
	for s, v := range C {
		o, ok := other[s]
		if !ok || math.Abs(v-o) > tol {
			return false
		}
	}
	return true
}

func fmtAmount(v float64) string {
	r := math.Round(v)
	if math.Abs(v-r) <= compIntTol {
		if r == 1 {
			return ""
		}
		return strconv.Itoa(int(r))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

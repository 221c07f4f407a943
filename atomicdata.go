/*
 * atomicdata.go, part of gomatgen.
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
)

//A map for assigning mass to elements. Standard atomic weights,
//CIAAW 2021 abridged values.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Ti": 47.867,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"I":  126.904,
}

//Atomic numbers for the supported elements.
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Ti": 22,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

//A map for assigning covalent radii to elements, in Angstrom.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31 in the reference. H only ever has one bond, so a longer radius is harmless: the extra bonds get eliminated later.
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Ti": 1.60,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.50, //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Se": 1.20,
	"Br": 1.20,
	"I":  1.39,
}

//A map for checking that atoms don't have too many bonds.
//A value of 0 means undefined, i.e. the atom shouldn't be checked.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//X-ray atomic scattering-factor coefficients, International Tables for
//Crystallography Vol. C, Table 6.1.1.4 (Cromer-Mann parameterization):
//f(s) = sum_i a_i exp(-b_i s^2) + c, with s = sin(theta)/lambda in 1/Angstrom.
type scatteringCoeffs struct {
	A [4]float64
	B [4]float64
	C float64
}

var symbolScattering = map[string]scatteringCoeffs{
	"H":  {[4]float64{0.489918, 0.262003, 0.196767, 0.049879}, [4]float64{20.6593, 7.74039, 49.5519, 2.20159}, 0.001305},
	"Li": {[4]float64{1.1282, 0.7508, 0.6175, 0.4653}, [4]float64{3.9546, 1.0524, 85.3905, 168.261}, 0.0377},
	"C":  {[4]float64{2.31, 1.02, 1.5886, 0.865}, [4]float64{20.8439, 10.2075, 0.5687, 51.6512}, 0.2156},
	"N":  {[4]float64{12.2126, 3.1322, 2.0125, 1.1663}, [4]float64{0.0057, 9.8933, 28.9975, 0.5826}, -11.529},
	"O":  {[4]float64{3.0485, 2.2868, 1.5463, 0.867}, [4]float64{13.2771, 5.7011, 0.3239, 32.9089}, 0.2508},
	"F":  {[4]float64{3.5392, 2.6412, 1.517, 1.0243}, [4]float64{10.2825, 4.2944, 0.2615, 26.1476}, 0.2776},
	"Na": {[4]float64{4.7626, 3.1736, 1.2674, 1.1128}, [4]float64{3.285, 8.8422, 0.3136, 129.424}, 0.676},
	"Mg": {[4]float64{5.4204, 2.1735, 1.2269, 2.3073}, [4]float64{2.8275, 79.2611, 0.3808, 7.1937}, 0.8584},
	"Al": {[4]float64{6.4202, 1.9002, 1.5936, 1.9646}, [4]float64{3.0387, 0.7426, 31.5472, 85.0886}, 1.1151},
	"Si": {[4]float64{6.2915, 3.0353, 1.9891, 1.541}, [4]float64{2.4386, 32.3337, 0.6785, 81.6937}, 1.1407},
	"P":  {[4]float64{6.4345, 4.1791, 1.78, 1.4908}, [4]float64{1.9067, 27.157, 0.526, 68.1645}, 1.1149},
	"S":  {[4]float64{6.9053, 5.2034, 1.4379, 1.5863}, [4]float64{1.4679, 22.2151, 0.2536, 56.172}, 0.8669},
	"Cl": {[4]float64{11.4604, 7.1964, 6.2556, 1.6455}, [4]float64{0.0104, 1.1662, 18.5194, 47.7784}, -9.5574},
	"K":  {[4]float64{8.2186, 7.4398, 1.0519, 0.8659}, [4]float64{12.7949, 0.7748, 213.187, 41.6841}, 1.4228},
	"Ca": {[4]float64{8.6266, 7.3873, 1.5899, 1.0211}, [4]float64{10.4421, 0.6599, 85.7484, 178.437}, 1.3751},
	"Ti": {[4]float64{9.7595, 7.3558, 1.6991, 1.9021}, [4]float64{7.8508, 0.5, 35.6338, 116.105}, 1.2807},
	"Fe": {[4]float64{11.7695, 7.3573, 3.5222, 2.3045}, [4]float64{4.7611, 0.3072, 15.3535, 76.8805}, 1.0369},
	"Ni": {[4]float64{12.8376, 7.292, 4.4438, 2.38}, [4]float64{3.8785, 0.2565, 12.1763, 66.3421}, 1.0341},
	"Cu": {[4]float64{13.338, 7.1676, 5.6158, 1.6735}, [4]float64{3.5828, 0.247, 11.3966, 64.8126}, 1.191},
	"Zn": {[4]float64{14.0743, 7.0318, 5.1652, 2.41}, [4]float64{3.2655, 0.2333, 10.3163, 58.7097}, 1.3041},
}

// Mass returns the mass for the element with the given symbol, or an error
// if the element is not tabulated.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, newError("Mass", "no tabulated mass for element "+symbol)
	}
	return m, nil
}

// AtomicNumber returns Z for the element with the given symbol, or an error
// if the element is not tabulated.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, newError("AtomicNumber", "no tabulated atomic number for element "+symbol)
	}
	return z, nil
}

// ScatteringFactor evaluates the X-ray atomic scattering factor of the
// element with the given symbol at s = sin(theta)/lambda (in 1/Angstrom).
// It returns an error for elements without tabulated coefficients.
func ScatteringFactor(symbol string, s float64) (float64, error) {
	co, ok := symbolScattering[symbol]
	if !ok {
		return 0, newError("ScatteringFactor", "no scattering coefficients for element "+symbol)
	}
	s2 := s * s
	f := co.C
	for i := 0; i < 4; i++ {
		f += co.A[i] * math.Exp(-co.B[i]*s2)
	}
	return f, nil
}

// SymbolFromMass returns the symbol of the tabulated element whose mass is
// closest to m, as long as the difference is below tol. Force-field mass
// tables round atomic masses, so an exact match can't be required.
func SymbolFromMass(m, tol float64) (string, error) {
	best := ""
	bestdiff := tol
	for sym, ref := range symbolMass {
		d := m - ref
		if d < 0 {
			d = -d
		}
		if d < bestdiff {
			bestdiff = d
			best = sym
		}
	}
	if best == "" {
		return "", newError("SymbolFromMass", fmt.Sprintf("no element within %.3g of mass %.4f", tol, m))
	}
	return best, nil
}

/*
 * main.go, part of gomatgen.
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	matgen "github.com/matgen-dev/gomatgen"
	"github.com/matgen-dev/gomatgen/internal/config"
	"github.com/matgen-dev/gomatgen/lmp"
	"github.com/matgen-dev/gomatgen/matplot"
	"github.com/matgen-dev/gomatgen/report"
	"github.com/matgen-dev/gomatgen/xrd"
)

var (
	outFile   string
	format    string
	comment   string
	radiation string
	wlFlag    float64
	ttMin     float64
	ttMax     float64
	plotFile  string
	ascii     bool
	unscaled  bool
	title     string
	expected  string
	got       string
	steps     []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "matgen",
		Short:        "molecular data file and diffraction toolkit",
		SilenceUsage: true,
	}

	checkCmd := &cobra.Command{
		Use:   "check [datafile]...",
		Short: "validate LAMMPS data files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}

	infoCmd := &cobra.Command{
		Use:   "info [datafile]",
		Short: "summarize a LAMMPS data file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [datafile]",
		Short: "convert a LAMMPS data file to xyz or json",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	convertCmd.Flags().StringVar(&format, "format", "xyz", "output format: xyz or json")
	convertCmd.Flags().StringVar(&comment, "comment", "", "comment line for xyz output")

	xrdCmd := &cobra.Command{
		Use:   "xrd [structure.yaml]",
		Short: "compute a powder diffraction pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  runXRD,
	}
	xrdCmd.Flags().StringVar(&radiation, "radiation", "CuKa", "x-ray source")
	xrdCmd.Flags().Float64Var(&wlFlag, "wavelength", 0, "explicit wavelength in angstroms (overrides --radiation)")
	xrdCmd.Flags().Float64Var(&ttMin, "min", 0, "minimum two theta in degrees")
	xrdCmd.Flags().Float64Var(&ttMax, "max", 90, "maximum two theta in degrees")
	xrdCmd.Flags().StringVar(&plotFile, "plot", "", "write a plot to this file (png/svg/pdf)")
	xrdCmd.Flags().BoolVar(&ascii, "ascii", false, "render the pattern as an ascii graph")
	xrdCmd.Flags().BoolVar(&unscaled, "unscaled", false, "report raw intensities instead of scaling to 100")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "emit a bug report template with environment info",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	reportCmd.Flags().StringVar(&title, "title", "Bug report", "report title")
	reportCmd.Flags().StringVar(&expected, "expected", "", "expected behavior")
	reportCmd.Flags().StringVar(&got, "got", "", "observed behavior")
	reportCmd.Flags().StringArrayVar(&steps, "step", nil, "step to reproduce (repeatable)")

	rootCmd.AddCommand(checkCmd, infoCmd, convertCmd, xrdCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	var bad int
	for _, name := range args {
		d, err := lmp.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			bad++
			continue
		}
		if errs := d.Validate(); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, lmp.Violations(errs))
			fmt.Printf("%s: %d violation(s)\n", name, len(errs))
			bad++
			continue
		}
		fmt.Printf("%s: ok\n", name)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", bad, len(args))
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := lmp.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", args[0])
	if d.Comment != "" {
		fmt.Printf("comment: %s\n", d.Comment)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "atoms\t%d\t(%d types)\n", d.NAtoms, d.NAtomTypes)
	fmt.Fprintf(w, "bonds\t%d\t(%d types)\n", d.NBonds, d.NBondTypes)
	fmt.Fprintf(w, "angles\t%d\t(%d types)\n", d.NAngles, d.NAngleTypes)
	fmt.Fprintf(w, "dihedrals\t%d\t(%d types)\n", d.NDihedrals, d.NDihedralTypes)
	fmt.Fprintf(w, "impropers\t%d\t(%d types)\n", d.NImpropers, d.NImproperTypes)
	if err := w.Flush(); err != nil {
		return err
	}

	le := d.Box.Lengths()
	fmt.Printf("box: %.4g x %.4g x %.4g A", le[0], le[1], le[2])
	if d.Box.Triclinic {
		fmt.Printf(" (triclinic, tilt %.4g %.4g %.4g)", d.Box.XY, d.Box.XZ, d.Box.YZ)
	}
	fmt.Println()
	fmt.Printf("total charge: %.4f\n", d.TotalCharge())

	mol, err := d.Molecule()
	if err != nil {
		fmt.Printf("composition: unavailable (%v)\n", err)
		return nil
	}
	fmt.Printf("composition: %s\n", mol.Composition().Formula())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	d, err := lmp.ReadFile(args[0])
	if err != nil {
		return err
	}
	mol, err := d.Molecule()
	if err != nil {
		return err
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(format) {
	case "xyz":
		c := comment
		if c == "" {
			c = "converted from " + filepath.Base(args[0])
		}
		return matgen.XYZWrite(out, mol, c)
	case "json":
		return matgen.EncodeJSONMolecule(out, mol)
	default:
		return fmt.Errorf("unknown format %q (want xyz or json)", format)
	}
}

func runXRD(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	st, err := cfg.Structure()
	if err != nil {
		return err
	}

	var calc *xrd.Calculator
	if wlFlag > 0 {
		calc, err = xrd.NewCalculatorWavelength(wlFlag)
	} else {
		calc, err = xrd.NewCalculator(radiation)
	}
	if err != nil {
		return err
	}

	pat, err := calc.Pattern(st, !unscaled, ttMin, ttMax)
	if err != nil {
		return err
	}

	fmt.Printf("structure: %s\n", st)
	fmt.Printf("wavelength: %.5f A\n\n", calc.Wavelength)
	if err := pat.WriteTable(os.Stdout); err != nil {
		return err
	}

	if ascii {
		fmt.Println()
		fmt.Println(matplot.ASCII(pat, 80, 15))
	}
	if plotFile != "" {
		if err := matplot.PatternPlot(pat, st.Composition().Formula(), plotFile); err != nil {
			return err
		}
		fmt.Printf("\nplot written to %s\n", plotFile)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	r := report.New(title)
	r.Steps = steps
	r.Expected = expected
	r.Got = got

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return r.Render(out)
}

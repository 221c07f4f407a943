/*
 * report.go, part of gomatgen.
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

//Package report captures environment metadata and renders minimal,
//reproducible bug reports as markdown. It replaces the usual "please paste
//your versions and a snippet" issue scaffold with something a tool can emit.
package report

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"time"
)

// Env is a snapshot of the runtime environment, the part of a bug report
// people forget to include.
type Env struct {
	GoVersion string
	OS        string
	Arch      string
	Hostname  string
	Main      string            //main module path and version
	Deps      map[string]string //dependency module path to version
	Taken     time.Time
}

// CaptureEnv collects the environment of the running binary. Dependency
// versions come from the build info recorded by the Go toolchain; binaries
// built without module support get an empty dependency table.
func CaptureEnv() Env {
	env := Env{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Deps:      map[string]string{},
		Taken:     time.Now(),
	}
	env.Hostname, _ = os.Hostname()
	if info, ok := debug.ReadBuildInfo(); ok {
		env.Main = info.Main.Path
		if info.Main.Version != "" {
			env.Main += " " + info.Main.Version
		}
		for _, d := range info.Deps {
			env.Deps[d.Path] = d.Version
		}
	}
	return env
}

// Report is a minimal bug report: what was run, what was expected, what
// happened, on which environment.
type Report struct {
	Title    string
	Env      Env
	Steps    []string //steps to reproduce, in order
	Snippet  string   //minimal self-contained reproduction code
	Expected string
	Got      string
}

// New returns a report with the environment captured and the default
// two-atom molecule snippet, ready to be filled in.
func New(title string) *Report {
	return &Report{
		Title:   title,
		Env:     CaptureEnv(),
		Snippet: DefaultSnippet,
	}
}

// DefaultSnippet is the smallest interesting reproduction program: build a
// two-atom molecule and print it.
const DefaultSnippet = `mol, err := matgen.MoleculeFromSymbols(
	[]string{"C", "O"},
	[]float64{0, 0, 0, 0, 0, 1.128},
	0, 0)
if err != nil {
	log.Fatal(err)
}
fmt.Println(mol)`

// Render writes the report as markdown to out.
func (R *Report) Render(out io.Writer) error {
	title := R.Title
	if title == "" {
		title = "Bug report"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprint(&b, "## Environment\n\n")
	fmt.Fprint(&b, "| key | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| go | %s |\n", R.Env.GoVersion)
	fmt.Fprintf(&b, "| platform | %s/%s |\n", R.Env.OS, R.Env.Arch)
	if R.Env.Hostname != "" {
		fmt.Fprintf(&b, "| host | %s |\n", R.Env.Hostname)
	}
	if R.Env.Main != "" {
		fmt.Fprintf(&b, "| module | %s |\n", R.Env.Main)
	}
	if !R.Env.Taken.IsZero() {
		fmt.Fprintf(&b, "| taken | %s |\n", R.Env.Taken.Format(time.RFC3339))
	}
	for _, path := range sortedDepPaths(R.Env.Deps) {
		fmt.Fprintf(&b, "| dep %s | %s |\n", path, R.Env.Deps[path])
	}

	if len(R.Steps) > 0 {
		fmt.Fprint(&b, "\n## Steps to reproduce\n\n")
		for i, s := range R.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	fmt.Fprint(&b, "\n## Minimal reproduction\n\n")
	fmt.Fprintf(&b, "```go\n%s\n```\n", strings.TrimRight(R.Snippet, "\n"))

	fmt.Fprint(&b, "\n## Expected\n\n")
	fmt.Fprintf(&b, "%s\n", orPlaceholder(R.Expected))
	fmt.Fprint(&b, "\n## Got\n\n")
	fmt.Fprintf(&b, "%s\n", orPlaceholder(R.Got))

	_, err := io.WriteString(out, b.String())
	return err
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_fill me in_"
	}
	return s
}

func sortedDepPaths(deps map[string]string) []string {
	paths := make([]string, 0, len(deps))
	for p := range deps {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

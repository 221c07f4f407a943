/*
 * report_test.go, part of gomatgen.
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

package report

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureEnv(t *testing.T) {
	env := CaptureEnv()
	assert.Equal(t, runtime.Version(), env.GoVersion)
	assert.Equal(t, runtime.GOOS, env.OS)
	assert.Equal(t, runtime.GOARCH, env.Arch)
	assert.NotNil(t, env.Deps)
	assert.False(t, env.Taken.IsZero())
}

func TestRender(t *testing.T) {
	r := New("Two-atom molecule prints wrong")
	r.Steps = []string{"build the molecule", "print it"}
	r.Expected = "a two-line atom listing"
	r.Got = "a panic"

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Two-atom molecule prints wrong\n"))
	assert.Contains(t, out, "## Environment")
	assert.Contains(t, out, "| go | "+runtime.Version())
	assert.Contains(t, out, "1. build the molecule")
	assert.Contains(t, out, "2. print it")
	assert.Contains(t, out, "MoleculeFromSymbols")
	assert.Contains(t, out, "## Expected\n\na two-line atom listing")
	assert.Contains(t, out, "## Got\n\na panic")
}

func TestRenderPlaceholders(t *testing.T) {
	r := &Report{Snippet: "x := 1"}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Bug report\n"))
	assert.Contains(t, out, "```go\nx := 1\n```")
	assert.Contains(t, out, "_fill me in_")
	assert.NotContains(t, out, "## Steps to reproduce")
}

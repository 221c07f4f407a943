/*
 * config_test.go, part of gomatgen.
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

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const copperYAML = `lattice:
  a: 3.615
  b: 3.615
  c: 3.615
  alpha: 90
  beta: 90
  gamma: 90
sites:
  - species: Cu
    coords: [0, 0, 0]
  - species: Cu
    coords: [0.5, 0.5, 0]
  - species: Cu
    coords: [0.5, 0, 0.5]
  - species: Cu
    coords: [0, 0.5, 0.5]
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "structure.yaml")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, copperYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lattice.A != 3.615 {
		t.Errorf("expected a 3.615, got %f", cfg.Lattice.A)
	}
	if len(cfg.Sites) != 4 {
		t.Fatalf("expected 4 sites, got %d", len(cfg.Sites))
	}
	//omitted occupancies default to 1
	for i, s := range cfg.Sites {
		if s.Occupancy != 1 {
			t.Errorf("site %d occupancy %f, expected 1", i, s.Occupancy)
		}
	}
}

func TestStructure(t *testing.T) {
	cfg, err := Load(writeTemp(t, copperYAML))
	if err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Structure()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Errorf("expected 4 sites, got %d", s.Len())
	}
	if math.Abs(s.Lattice.Volume()-3.615*3.615*3.615) > 1e-9 {
		t.Errorf("wrong cell volume: %f", s.Lattice.Volume())
	}
	if s.Composition().Formula() != "Cu4" {
		t.Errorf("wrong composition: %s", s.Composition().Formula())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(s string) string
		wantErr string
	}{
		{"negative length", func(s string) string { return strings.Replace(s, "a: 3.615", "a: -1", 1) }, "lengths"},
		{"bad angle", func(s string) string { return strings.Replace(s, "gamma: 90", "gamma: 200", 1) }, "angles"},
		{"no sites", func(s string) string { return strings.Split(s, "sites:")[0] }, "no sites"},
		{"bad coords", func(s string) string { return strings.Replace(s, "[0, 0, 0]", "[0, 0]", 1) }, "3 fractional coordinates"},
		{"bad occupancy", func(s string) string {
			return strings.Replace(s, "coords: [0, 0, 0]", "coords: [0, 0, 0]\n    occupancy: 1.5", 1)
		}, "occupancy"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tc.mangle(copperYAML)))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Load(writeTemp(t, copperYAML))
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "saved.yaml")
	if err := Save(name, cfg); err != nil {
		t.Fatal(err)
	}
	cfg2, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg2.Sites) != len(cfg.Sites) || cfg2.Lattice.A != cfg.Lattice.A {
		t.Error("save/load round trip changed the configuration")
	}
}

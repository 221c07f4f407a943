/*
 * config.go, part of gomatgen.
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

//Package config loads crystal structure descriptions from YAML files so the
//command line tools can work on structures without generated code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matgen-dev/gomatgen"
)

type StructureConfig struct {
	Lattice LatticeConfig `yaml:"lattice"`
	Sites   []SiteConfig  `yaml:"sites"`
}

type LatticeConfig struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

type SiteConfig struct {
	Species   string    `yaml:"species"`
	Coords    []float64 `yaml:"coords"`
	Occupancy float64   `yaml:"occupancy"`
}

func Load(path string) (*StructureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &StructureConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *StructureConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parts yaml decoding cannot: positive cell lengths,
// angles in (0, 180), three fractional coordinates per site and occupancies
// in (0, 1]. A zero occupancy is rewritten to 1 so fully occupied sites can
// omit the field.
func (c *StructureConfig) Validate() error {
	l := c.Lattice
	if l.A <= 0 || l.B <= 0 || l.C <= 0 {
		return fmt.Errorf("config: lattice lengths must be positive, got a=%g b=%g c=%g", l.A, l.B, l.C)
	}
	for _, ang := range []float64{l.Alpha, l.Beta, l.Gamma} {
		if ang <= 0 || ang >= 180 {
			return fmt.Errorf("config: lattice angles must be in (0, 180) degrees, got %g", ang)
		}
	}
	if len(c.Sites) == 0 {
		return fmt.Errorf("config: structure has no sites")
	}
	for i := range c.Sites {
		s := &c.Sites[i]
		if s.Species == "" {
			return fmt.Errorf("config: site %d has no species", i)
		}
		if len(s.Coords) != 3 {
			return fmt.Errorf("config: site %d needs 3 fractional coordinates, got %d", i, len(s.Coords))
		}
		if s.Occupancy == 0 {
			s.Occupancy = 1
		}
		if s.Occupancy < 0 || s.Occupancy > 1 {
			return fmt.Errorf("config: site %d occupancy %g outside (0, 1]", i, s.Occupancy)
		}
	}
	return nil
}

// Structure builds the in-memory structure the configuration describes.
func (c *StructureConfig) Structure() (*matgen.Structure, error) {
	lat, err := matgen.LatticeFromParameters(c.Lattice.A, c.Lattice.B, c.Lattice.C,
		c.Lattice.Alpha, c.Lattice.Beta, c.Lattice.Gamma)
	if err != nil {
		return nil, err
	}
	sites := make([]matgen.Site, 0, len(c.Sites))
	for _, s := range c.Sites {
		sites = append(sites, matgen.Site{
			Species:    map[string]float64{s.Species: s.Occupancy},
			FracCoords: [3]float64{s.Coords[0], s.Coords[1], s.Coords[2]},
		})
	}
	return matgen.NewStructure(lat, sites)
}

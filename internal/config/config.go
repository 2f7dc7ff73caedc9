// Package config loads mosaic settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every knob for one mosaic run. Values left out of the
// YAML file keep their defaults.
type Config struct {
	Size       int         `yaml:"size"`        // Hexes per mosaic side
	Seed       int64       `yaml:"seed"`        // Random seed (0 = drawn from the OS)
	Borders    bool        `yaml:"borders"`     // Outline every placed hexagon
	TileHeight float64     `yaml:"tile_height"` // Corner-to-corner tile height in SVG units
	Style      StyleConfig `yaml:"style"`
	Tiles      []int       `yaml:"tiles"` // Interior tile numbers to draw from
	Noise      NoiseConfig `yaml:"noise"`
	Output     string      `yaml:"output"` // Mosaic SVG path
	Sheet      string      `yaml:"sheet"`  // Contact sheet SVG path ("" = skip)
}

// StyleConfig overrides the stroke styling. Zero widths derive from the
// tile height instead.
type StyleConfig struct {
	WideWidth float64 `yaml:"wide_width"`
	ThinWidth float64 `yaml:"thin_width"`
	WideColor string  `yaml:"wide_color"`
	ThinColor string  `yaml:"thin_color"`
}

// NoiseConfig switches tile choice from uniform randomness to a smooth
// simplex field, which clusters similar tiles into drifting regions.
type NoiseConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"` // Sample spacing in hex widths (0 = default)
}

// Default returns the classic mosaic configuration.
func Default() Config {
	return Config{
		Size:       9,
		TileHeight: 100,
		Style: StyleConfig{
			WideColor: "black",
			ThinColor: "white",
		},
		Tiles:  []int{1, 2, 3, 4},
		Output: "hexagon.svg",
	}
}

// Load reads a YAML file over the defaults, so a config file only needs
// the values it wants to change.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	return cfg, nil
}

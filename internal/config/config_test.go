package config

import (
	"os"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "truchet_*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Size != 9 {
		t.Errorf("Size = %d, want 9", cfg.Size)
	}
	if cfg.TileHeight != 100 {
		t.Errorf("TileHeight = %v, want 100", cfg.TileHeight)
	}
	if !reflect.DeepEqual(cfg.Tiles, []int{1, 2, 3, 4}) {
		t.Errorf("Tiles = %v, want [1 2 3 4]", cfg.Tiles)
	}
	if cfg.Style.WideColor != "black" || cfg.Style.ThinColor != "white" {
		t.Errorf("colors = %q/%q, want black/white", cfg.Style.WideColor, cfg.Style.ThinColor)
	}
	if cfg.Output != "hexagon.svg" {
		t.Errorf("Output = %q, want hexagon.svg", cfg.Output)
	}
	if cfg.Noise.Enabled {
		t.Error("noise should be off by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	file := writeTemp(t, `size: 4
seed: 1234
borders: true
style:
  wide_color: steelblue
tiles: [2, 4]
noise:
  enabled: true
  scale: 0.5
output: mosaic.svg
sheet: sheet.svg
`)

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Size != 4 || cfg.Seed != 1234 || !cfg.Borders {
		t.Errorf("top-level overrides not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Tiles, []int{2, 4}) {
		t.Errorf("Tiles = %v, want [2 4]", cfg.Tiles)
	}
	if !cfg.Noise.Enabled || cfg.Noise.Scale != 0.5 {
		t.Errorf("Noise = %+v, want enabled at scale 0.5", cfg.Noise)
	}
	if cfg.Output != "mosaic.svg" || cfg.Sheet != "sheet.svg" {
		t.Errorf("outputs = %q/%q", cfg.Output, cfg.Sheet)
	}

	// Untouched keys keep their defaults.
	if cfg.TileHeight != 100 {
		t.Errorf("TileHeight = %v, want default 100", cfg.TileHeight)
	}
	if cfg.Style.WideColor != "steelblue" {
		t.Errorf("WideColor = %q, want steelblue", cfg.Style.WideColor)
	}
	if cfg.Style.ThinColor != "white" {
		t.Errorf("ThinColor = %q, want default white", cfg.Style.ThinColor)
	}
	if cfg.Style.WideWidth != 0 {
		t.Errorf("WideWidth = %v, want 0 (derive from height)", cfg.Style.WideWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("no_such_config.yaml"); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestLoadBadYAML(t *testing.T) {
	file := writeTemp(t, "tiles: [1, 2\n")
	if _, err := Load(file); err == nil {
		t.Fatal("malformed YAML accepted")
	}
}

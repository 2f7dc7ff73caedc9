// Command truchet renders a hexagonal Truchet mosaic as SVG.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cdelker/hexagonal-truchet/internal/config"
	"github.com/cdelker/hexagonal-truchet/internal/entropy"
	"github.com/cdelker/hexagonal-truchet/internal/geometry"
	"github.com/cdelker/hexagonal-truchet/internal/hexgrid"
	"github.com/cdelker/hexagonal-truchet/internal/render"
	"github.com/cdelker/hexagonal-truchet/internal/tiles"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	size       = flag.Int("size", 0, "hexes per mosaic side (overrides config)")
	seed       = flag.Int64("seed", 0, "random seed (overrides config)")
	output     = flag.String("out", "", "mosaic SVG path (overrides config)")
	sheet      = flag.String("sheet", "", "also write a tile contact sheet to this path")
	noise      = flag.Bool("noise", false, "drive tile choice with a simplex noise field")
	borders    = flag.Bool("borders", false, "outline every placed hexagon")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// ── Configuration ─────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		slog.Info("config loaded", "path", *configPath)
	}
	if *size > 0 {
		cfg.Size = *size
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *sheet != "" {
		cfg.Sheet = *sheet
	}
	if *noise {
		cfg.Noise.Enabled = true
	}
	if *borders {
		cfg.Borders = true
	}

	if cfg.Seed == 0 {
		cfg.Seed = entropy.CryptoSeed()
	}

	slog.Info("generating mosaic",
		"size", cfg.Size,
		"seed", cfg.Seed,
		"tiles", cfg.Tiles,
		"noise", cfg.Noise.Enabled,
	)

	// ── Tile Set ──────────────────────────────────────────────────────
	m := geometry.Default()
	if cfg.TileHeight > 0 {
		m = geometry.ForHeight(cfg.TileHeight)
	}

	st := tiles.DefaultStyle(m)
	if cfg.Style.WideWidth > 0 {
		st.WideWidth = cfg.Style.WideWidth
	}
	if cfg.Style.ThinWidth > 0 {
		st.ThinWidth = cfg.Style.ThinWidth
	}
	if cfg.Style.WideColor != "" {
		st.WideColor = cfg.Style.WideColor
	}
	if cfg.Style.ThinColor != "" {
		st.ThinColor = cfg.Style.ThinColor
	}

	set, err := tiles.Standard(m, st, cfg.Tiles...)
	if err != nil {
		slog.Error("failed to build tile set", "error", err)
		os.Exit(1)
	}

	// ── Randomness ────────────────────────────────────────────────────
	var src entropy.Source
	if cfg.Noise.Enabled {
		src = entropy.NewField(cfg.Seed, cfg.Noise.Scale)
	} else {
		src = entropy.Seeded(cfg.Seed)
	}

	// ── Grid ──────────────────────────────────────────────────────────
	grid, err := hexgrid.New(hexgrid.Config{
		Size:    cfg.Size,
		Borders: cfg.Borders,
		Metrics: m,
		Source:  src,
	})
	if err != nil {
		slog.Error("failed to build grid", "error", err)
		os.Exit(1)
	}

	for _, sym := range set.Interior {
		if err := grid.AddTile(sym); err != nil {
			slog.Error("failed to register tile", "tile", sym.ID(), "error", err)
			os.Exit(1)
		}
	}
	if err := grid.AddEdgeTile(set.Edge); err != nil {
		slog.Error("failed to register edge tile", "error", err)
		os.Exit(1)
	}
	if err := grid.AddCornerTile(set.Corner); err != nil {
		slog.Error("failed to register corner tile", "error", err)
		os.Exit(1)
	}

	doc, err := grid.PlaceAll()
	if err != nil {
		slog.Error("failed to place tiles", "error", err)
		os.Exit(1)
	}

	// ── Output ────────────────────────────────────────────────────────
	f, err := os.Create(cfg.Output)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	n, err := doc.WriteTo(f)
	if err != nil {
		f.Close()
		slog.Error("failed to write mosaic", "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		slog.Error("failed to close output file", "error", err)
		os.Exit(1)
	}

	slog.Info("mosaic written",
		"path", cfg.Output,
		"bytes", n,
		"cells", len(doc.Placements()),
		"seed", cfg.Seed,
	)

	// ── Contact Sheet ─────────────────────────────────────────────────
	if cfg.Sheet != "" {
		defs := make([]render.Def, 0, len(set.Interior)+2)
		for _, sym := range set.Interior {
			defs = append(defs, sym)
		}
		defs = append(defs, set.Edge, set.Corner)

		sf, err := os.Create(cfg.Sheet)
		if err != nil {
			slog.Error("failed to create sheet file", "error", err)
			os.Exit(1)
		}
		if err := render.WriteSheet(sf, m, defs...); err != nil {
			sf.Close()
			slog.Error("failed to write contact sheet", "error", err)
			os.Exit(1)
		}
		if err := sf.Close(); err != nil {
			slog.Error("failed to close sheet file", "error", err)
			os.Exit(1)
		}
		slog.Info("contact sheet written", "path", cfg.Sheet, "tiles", len(defs))
	}
}

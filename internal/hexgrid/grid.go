package hexgrid

import (
	"fmt"

	"github.com/cdelker/hexagonal-truchet/internal/entropy"
	"github.com/cdelker/hexagonal-truchet/internal/geometry"
	"github.com/cdelker/hexagonal-truchet/internal/render"
)

// Tile is the engine's view of a tile: an identity and a bounding box.
// Everything else about its content belongs to the renderer.
type Tile interface {
	ID() string
	Size() (w, h float64)
}

// Config holds grid construction parameters.
type Config struct {
	Size    int              // tiles along one edge of the mosaic
	Borders bool             // outline every tile definition
	Metrics geometry.Metrics // zero value: geometry.Default()
	Source  entropy.Source   // nil: the process-wide generator
}

// Grid is the placement engine: three tile pools and the document the
// placements land in.
type Grid struct {
	size    int
	metrics geometry.Metrics
	source  entropy.Source

	interior []Tile
	edge     []Tile
	corner   []Tile
	ids      map[string]bool

	doc *render.Document
}

// New validates the configuration and prepares an empty grid that
// exclusively owns its output document.
func New(cfg Config) (*Grid, error) {
	if cfg.Size < 1 {
		return nil, fmt.Errorf("grid size must be at least 1, got %d", cfg.Size)
	}
	m := cfg.Metrics
	if m.Height == 0 {
		m = geometry.Default()
	}
	src := cfg.Source
	if src == nil {
		src = entropy.Global()
	}
	return &Grid{
		size:    cfg.Size,
		metrics: m,
		source:  src,
		ids:     make(map[string]bool),
		doc:     render.New(m, cfg.Size, cfg.Borders),
	}, nil
}

// Size returns the number of tiles along one edge of the mosaic.
func (g *Grid) Size() int {
	return g.size
}

// AddTile registers a tile for the grid interior. Tile IDs must be unique
// across all three pools; a duplicate fails here rather than at render
// time.
func (g *Grid) AddTile(t Tile) error {
	return g.register(&g.interior, t)
}

// AddEdgeTile registers a tile for the cells along the mosaic rim. The
// engine rotates it so its A and F sides hug the boundary.
func (g *Grid) AddEdgeTile(t Tile) error {
	return g.register(&g.edge, t)
}

// AddCornerTile registers a tile for the six rim corners. The engine
// rotates it so its A side faces inward, and paints it beneath the
// neighboring cells.
func (g *Grid) AddCornerTile(t Tile) error {
	return g.register(&g.corner, t)
}

func (g *Grid) register(pool *[]Tile, t Tile) error {
	id := t.ID()
	if g.ids[id] {
		return fmt.Errorf("tile %q already registered", id)
	}
	g.ids[id] = true
	*pool = append(*pool, t)

	// Tiles that know how to draw themselves become document templates.
	// Stub tiles without artwork still place fine.
	if def, ok := t.(render.Def); ok {
		g.doc.Define(def)
	}
	return nil
}

// PlaceAll fills every cell of the grid with exactly one tile reference
// and returns the finished document. Interior cells draw a random tile
// and a random rotation; rim cells draw from the edge and corner pools
// with rotations fixed by their position. Rim cells whose pools are empty
// degrade to an unrotated interior tile.
func (g *Grid) PlaceAll() (*render.Document, error) {
	n := g.size
	if n >= 2 && len(g.interior) == 0 {
		return nil, fmt.Errorf("no interior tiles registered for grid size %d", n)
	}
	if n == 1 && len(g.interior) == 0 && len(g.edge) == 0 && len(g.corner) == 0 {
		return nil, fmt.Errorf("no tiles registered")
	}

	for q := -(n - 1); q <= n-1; q++ {
		for r := -(n - 1); r <= n-1; r++ {
			cell := Axial{Q: q, R: r}
			// Cube coordinate constraint: |s| beyond the rim means the
			// (q, r) square corner is outside the hexagon.
			if abs(cell.S()) > n-1 {
				continue
			}
			g.place(cell)
		}
	}
	return g.doc, nil
}

// Document returns the grid's output document.
func (g *Grid) Document() *render.Document {
	return g.doc
}

// place classifies one cell and records its placement. Branch order
// matters: corner beats edge beats interior, and empty pools fall
// through rather than fail.
func (g *Grid) place(cell Axial) {
	if p, ok := g.source.(entropy.Positioned); ok {
		p.MoveTo(cell.Q, cell.R)
	}

	x, y := g.pixel(cell)
	boundary := cell.Ring() == g.size-1

	switch {
	case boundary && onAxis(cell) && len(g.corner) > 0:
		t := g.corner[g.source.Intn(len(g.corner))]
		g.doc.Place(render.Placement{
			TileID:   t.ID(),
			X:        x,
			Y:        y,
			Rotation: cornerRotation(cell, g.size),
			Beneath:  true,
		})
	case boundary && len(g.edge) > 0:
		t := g.edge[g.source.Intn(len(g.edge))]
		g.doc.Place(render.Placement{
			TileID:   t.ID(),
			X:        x,
			Y:        y,
			Rotation: edgeRotation(cell, g.size),
		})
	case boundary:
		// No rim pools: an unrotated interior tile keeps the cell filled.
		t := g.interior[g.source.Intn(len(g.interior))]
		g.doc.Place(render.Placement{TileID: t.ID(), X: x, Y: y})
	default:
		t := g.interior[g.source.Intn(len(g.interior))]
		g.doc.Place(render.Placement{
			TileID:   t.ID(),
			X:        x,
			Y:        y,
			Rotation: g.source.Intn(6),
		})
	}
}

// pixel converts a cell to the top-left corner of its tile's bounding box
// using even-r offset columns.
func (g *Grid) pixel(cell Axial) (x, y float64) {
	par := floorMod(cell.R, 2)
	col := cell.Q + (cell.R-par)/2

	x = float64(col)*g.metrics.Width + float64(par)*(g.metrics.Width/2) - g.metrics.Width/2
	y = float64(cell.R)*(g.metrics.Height*3/4) - g.metrics.Height/2
	return x, y
}

// edgeRotation aligns an edge tile with the rim side its cell sits on.
// First match wins; corner cells satisfying two conditions take the
// earlier one when they fall through to the edge pool.
func edgeRotation(cell Axial, size int) int {
	n := size - 1
	switch {
	case cell.R == n:
		return 2
	case cell.R == -n:
		return 5
	case cell.S() == n:
		return 4
	case cell.Q == -n:
		return 3
	case cell.Q == n:
		return 0
	default: // s == -n
		return 1
	}
}

// cornerRotation orients a corner tile at one of the six mosaic corners.
// First match wins.
func cornerRotation(cell Axial, size int) int {
	n := size - 1
	s := cell.S()
	switch {
	case cell.Q == 0 && s == n:
		return 4
	case s == 0 && cell.Q == n:
		return 5
	case cell.Q == 0 && cell.R == n:
		return 1
	case cell.R == 0 && s == n:
		return 3
	case s == 0 && cell.R == n:
		return 2
	default: // r == 0, q == n
		return 0
	}
}

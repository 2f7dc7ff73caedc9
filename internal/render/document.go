// Package render assembles tile definitions and placement references into
// SVG documents. Tiles serialize once into the defs block; every cell of
// the mosaic is a <use> pointing back at one of them.
package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

// coordDecimals is the serialization precision for canvas coordinates.
const coordDecimals = 4

// Def is a reusable drawing template. A template draws its own content at
// the tile-local origin; the document positions references to it.
type Def interface {
	ID() string
	Size() (w, h float64)
	Draw(*svg.SVG)
}

// Placement references one definition at a pixel position. Rotation is in
// 60 degree units about the tile center; zero serializes without any
// transform. Beneath placements paint under everything else.
type Placement struct {
	TileID   string
	X, Y     float64
	Rotation int
	Beneath  bool
}

// Document accumulates definitions and placements for one mosaic.
type Document struct {
	metrics geometry.Metrics
	size    int
	borders bool

	defs       []Def
	defined    map[string]bool
	placements []Placement
}

// New prepares an empty document for a mosaic with the given number of
// tiles along one edge. With borders set, every definition is decorated
// with the hexagon outline for checking tile alignment.
func New(m geometry.Metrics, size int, borders bool) *Document {
	return &Document{
		metrics: m,
		size:    size,
		borders: borders,
		defined: make(map[string]bool),
	}
}

// Define records a template. Recording the same ID again is a no-op.
func (d *Document) Define(def Def) {
	if d.defined[def.ID()] {
		return
	}
	d.defined[def.ID()] = true
	d.defs = append(d.defs, def)
}

// Defined reports whether a template with the given ID has been recorded.
func (d *Document) Defined(id string) bool {
	return d.defined[id]
}

// Place appends a placement. A Beneath placement is prepended instead, so
// it paints before, and therefore under, everything already placed.
func (d *Document) Place(p Placement) {
	if p.Beneath {
		d.placements = append([]Placement{p}, d.placements...)
		return
	}
	d.placements = append(d.placements, p)
}

// Placements returns the placement list in paint order. Coordinates here
// stay exact float64s regardless of how serialization rounds them.
func (d *Document) Placements() []Placement {
	return d.placements
}

// WriteTo serializes the document as a standalone SVG with the viewBox
// centered on the mosaic origin.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = coordDecimals

	width, height := d.metrics.Canvas(d.size)
	canvas.Startview(width, height, -width/2, -height/2, width, height)

	canvas.Def()
	for _, def := range d.defs {
		canvas.Gid(def.ID())
		def.Draw(canvas)
		if d.borders {
			canvas.Path(d.metrics.OutlinePath(), `stroke="gray"`, `fill="none"`)
		}
		canvas.Gend()
	}
	canvas.DefEnd()

	canvas.Group()
	for _, p := range d.placements {
		if p.Rotation == 0 {
			canvas.Use(p.X, p.Y, "#"+p.TileID)
			continue
		}
		cx := p.X + d.metrics.Width/2
		cy := p.Y + d.metrics.Height/2
		rot := fmt.Sprintf(`transform="rotate(%d, %.*f %.*f)"`,
			p.Rotation*60, coordDecimals, cx, coordDecimals, cy)
		canvas.Use(p.X, p.Y, "#"+p.TileID, rot)
	}
	canvas.Gend()
	canvas.End()

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

package tiles

import (
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

// Symbol is one reusable tile: an ID, a bounding box, and the stroked
// paths drawn when a document expands its definition. It satisfies both
// the grid's tile interface and the renderer's definition interface.
type Symbol struct {
	id   string
	w, h float64

	paths []strokedPath
}

type strokedPath struct {
	d       string
	color   string
	width   float64
	rounded bool
}

// NewSymbol creates an empty tile covering the metrics' bounding box.
func NewSymbol(id string, m geometry.Metrics) *Symbol {
	return &Symbol{id: id, w: m.Width, h: m.Height}
}

// ID identifies the tile. IDs must be unique within one grid.
func (s *Symbol) ID() string {
	return s.id
}

// Size reports the tile's bounding box.
func (s *Symbol) Size() (w, h float64) {
	return s.w, s.h
}

// AddPath appends a stroked path. Paths draw in insertion order, so a wide
// stroke added before a thin one sits beneath it.
func (s *Symbol) AddPath(d, color string, width float64) {
	s.paths = append(s.paths, strokedPath{d: d, color: color, width: width})
}

// AddRoundedPath appends a stroked path with round line caps, for curves
// whose loose ends stay visible inside the tile.
func (s *Symbol) AddRoundedPath(d, color string, width float64) {
	s.paths = append(s.paths, strokedPath{d: d, color: color, width: width, rounded: true})
}

// PathCount returns the number of strokes in the tile.
func (s *Symbol) PathCount() int {
	return len(s.paths)
}

// Draw emits the tile's paths onto the canvas at the local origin.
func (s *Symbol) Draw(c *svg.SVG) {
	for _, p := range s.paths {
		style := []string{
			fmt.Sprintf(`stroke="%s"`, p.color),
			fmt.Sprintf(`stroke-width="%g"`, p.width),
			`fill="none"`,
		}
		if p.rounded {
			style = append(style, `stroke-linecap="round"`)
		}
		c.Path(p.d, style...)
	}
}

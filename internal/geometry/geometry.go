// Package geometry derives the fixed hexagon dimensions shared by the tile
// builders, the placement engine, and the renderer. Everything follows from
// a single tile height, computed once and passed around by value.
package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/jbeda/geom"
)

// DefaultHeight is the point-to-point tile height used when none is given.
const DefaultHeight = 100

// Vertex labels index Metrics.Vertices, clockwise with B the top point.
const (
	VertexA = iota // upper left
	VertexB        // top
	VertexC        // upper right
	VertexD        // lower right
	VertexE        // bottom
	VertexF        // lower left
)

// Metrics holds the dimensions of one tile. Tile-local (0, 0) is the top
// left of the bounding box surrounding the hexagon.
type Metrics struct {
	Height  float64 // point-to-point vertical extent
	Width   float64 // flat-to-flat horizontal extent
	EdgeLen float64 // length of one hexagon edge

	// Vertices of the hexagon, clockwise from the upper left.
	Vertices [6]geom.Coord
}

// ForHeight derives every dimension from the point-to-point height h.
func ForHeight(h float64) Metrics {
	w := math.Sqrt(3) / 2 * h
	return Metrics{
		Height:  h,
		Width:   w,
		EdgeLen: h / 2,
		Vertices: [6]geom.Coord{
			{X: 0, Y: h / 4},
			{X: w / 2, Y: 0},
			{X: w, Y: h / 4},
			{X: w, Y: 3 * h / 4},
			{X: w / 2, Y: h},
			{X: 0, Y: 3 * h / 4},
		},
	}
}

// Default returns the metrics for DefaultHeight.
func Default() Metrics {
	return ForHeight(DefaultHeight)
}

// Canvas returns the drawing area for a mosaic with the given number of
// tiles along one edge. The height keeps the hexagon aspect ratio.
func (m Metrics) Canvas(size int) (w, h float64) {
	w = m.Width*2*float64(size) - m.Width
	h = w * math.Sqrt(3) / 2
	return w, h
}

// OutlinePath returns SVG path data tracing the hexagon boundary, used for
// tile border decoration.
func (m Metrics) OutlinePath() string {
	var b strings.Builder
	v := m.Vertices
	fmt.Fprintf(&b, "M %g %g L", v[0].X, v[0].Y)
	for _, p := range v[1:] {
		fmt.Fprintf(&b, " %g %g", p.X, p.Y)
	}
	b.WriteString(" Z")
	return b.String()
}

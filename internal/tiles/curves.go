// Package tiles builds the Truchet tile artwork: stroked curves that enter
// and leave a hexagon through the midpoints of its sides, so that any two
// adjacent tiles continue each other's lines.
package tiles

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

// Side identifies one of the six hexagon sides, clockwise from the left.
type Side int

const (
	SideA Side = iota // left
	SideB             // upper left
	SideC             // upper right
	SideD             // right
	SideE             // lower right
	SideF             // lower left
)

func (s Side) String() string {
	if s < SideA || s > SideF {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return [...]string{"A", "B", "C", "D", "E", "F"}[s]
}

// Kind classifies the curve drawn between two sides.
type Kind int

const (
	KindArc   Kind = iota // adjacent sides: circular arc, radius EdgeLen/2
	KindChord             // opposite sides: straight line across the tile
	KindBend              // sides two apart: quadratic bend through the middle
	KindStub              // side A into the tile interior (corner tiles)
)

// KindBetween resolves the curve kind for an unordered side pair. The pairs
// E-F and A-B have no curve; they would collide with the A-F arc family.
func KindBetween(from, to Side) (Kind, error) {
	if to < from {
		from, to = to, from
	}
	switch [2]Side{from, to} {
	case [2]Side{SideA, SideF}, [2]Side{SideB, SideC},
		[2]Side{SideC, SideD}, [2]Side{SideD, SideE}:
		return KindArc, nil
	case [2]Side{SideA, SideD}, [2]Side{SideB, SideE}, [2]Side{SideC, SideF}:
		return KindChord, nil
	case [2]Side{SideA, SideC}, [2]Side{SideB, SideF}:
		return KindBend, nil
	}
	return 0, fmt.Errorf("no curve between sides %s and %s", from, to)
}

// DefaultOverlap is how far strokes reach past the tile edge. Most SVG
// renderers leave a hairline gap between exactly abutting shapes; the
// overlap hides it.
const DefaultOverlap = 1.0

// Anchors holds the stroke endpoints on each side: the exact midpoint plus
// two extension points pushed outward along the side's normal. Wide strokes
// end at the single extension, thin strokes at the double, so the thin line
// always outlasts the wide one at a seam.
type Anchors struct {
	Mid   [6]geom.Coord
	Outer [6]geom.Coord // single extension
	Far   [6]geom.Coord // double extension
}

// AnchorsFor computes the side anchors for the given metrics and overlap.
func AnchorsFor(m geometry.Metrics, overlap float64) Anchors {
	w, h := m.Width, m.Height
	e := overlap
	e60 := e * math.Sin(math.Pi/3)
	return Anchors{
		Mid: [6]geom.Coord{
			{X: 0, Y: h / 2},
			{X: w / 4, Y: h / 8},
			{X: 3 * w / 4, Y: h / 8},
			{X: w, Y: h / 2},
			{X: 3 * w / 4, Y: 7 * h / 8},
			{X: w / 4, Y: 7 * h / 8},
		},
		Outer: [6]geom.Coord{
			{X: -e, Y: h / 2},
			{X: w/4 - e/2, Y: h/8 - e60},
			{X: 3*w/4 + e/2, Y: h/8 - e60},
			{X: w + e, Y: h / 2},
			{X: 3*w/4 + e/2, Y: 7*h/8 + e60},
			{X: w/4 - e/2, Y: 7*h/8 + e60},
		},
		Far: [6]geom.Coord{
			{X: -2 * e, Y: h / 2},
			{X: w/4 - e, Y: h/8 - 2*e60},
			{X: 3*w/4 + e, Y: h/8 - 2*e60},
			{X: w + 2*e, Y: h / 2},
			{X: 3*w/4 + e, Y: 7*h/8 + 2*e60},
			{X: w/4 - e, Y: 7*h/8 + 2*e60},
		},
	}
}

// StrokeClass picks which extension anchors terminate a path.
type StrokeClass int

const (
	StrokeWide StrokeClass = iota // ends at the single extension
	StrokeThin                    // ends at the double extension
)

// PathData builds the SVG path data connecting two sides. Arcs and bends
// route extension, midpoint, curve, midpoint, extension; chords run
// extension to extension directly.
func PathData(an Anchors, m geometry.Metrics, from, to Side, class StrokeClass) (string, error) {
	if to < from {
		from, to = to, from
	}
	kind, err := KindBetween(from, to)
	if err != nil {
		return "", err
	}

	ext := an.Outer
	if class == StrokeThin {
		ext = an.Far
	}
	p0, p1 := ext[from], ext[to]
	m0, m1 := an.Mid[from], an.Mid[to]

	switch kind {
	case KindChord:
		return fmt.Sprintf("M %s L %s", pt(p0), pt(p1)), nil
	case KindBend:
		// Control point at (W/2, W/2) pulls both bends through the same
		// middle region.
		c := m.Width / 2
		return fmt.Sprintf("M %s L %s Q %g %g %s L %s",
			pt(p0), pt(m0), c, c, pt(m1), pt(p1)), nil
	default:
		r := m.EdgeLen / 2
		// Only the A-F arc turns against the clock.
		sweep := 0
		if from == SideA && to == SideF {
			sweep = 1
		}
		return fmt.Sprintf("M %s L %s A %g %g 0 0 %d %s L %s",
			pt(p0), pt(m0), r, r, sweep, pt(m1), pt(p1)), nil
	}
}

// StubData builds the corner tile's half-curve from side A into the tile
// interior. Wide stubs start at the single extension, thin stubs at the
// exact midpoint.
func StubData(an Anchors, m geometry.Metrics, class StrokeClass) string {
	start := an.Outer[SideA]
	if class == StrokeThin {
		start = an.Mid[SideA]
	}
	return fmt.Sprintf("M %s L %g %g", pt(start), m.Width/8, m.Height/2)
}

func pt(c geom.Coord) string {
	return fmt.Sprintf("%g %g", c.X, c.Y)
}

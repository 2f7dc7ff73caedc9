package tiles

import (
	"fmt"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

// Style sets the stroke widths and colors for a tile set. Every span draws
// twice: the wide stroke beneath, the thin stroke riding on top of it.
type Style struct {
	WideWidth float64
	ThinWidth float64
	WideColor string
	ThinColor string
}

// DefaultStyle is the classic look: the wide stroke nearly fills the space
// between curves, the thin stroke traces their middle.
func DefaultStyle(m geometry.Metrics) Style {
	return Style{
		WideWidth: m.Width/2 - 6,
		ThinWidth: 12,
		WideColor: "black",
		ThinColor: "white",
	}
}

// Set is a complete tile family ready for grid registration.
type Set struct {
	Interior []*Symbol
	Edge     *Symbol
	Corner   *Symbol
}

// interiorSpans lists the side pairs connected by each numbered tile.
// Every tile touches all six sides exactly once, which is what lets the
// grid rotate them freely.
var interiorSpans = map[int][][2]Side{
	1: {{SideA, SideF}, {SideB, SideC}, {SideD, SideE}},
	2: {{SideA, SideF}, {SideC, SideD}, {SideB, SideE}},
	3: {{SideA, SideD}, {SideB, SideE}, {SideC, SideF}},
	4: {{SideA, SideC}, {SideB, SideF}, {SideD, SideE}},
}

// Standard builds the classic family: the requested numbered interior tiles
// (1 through 4) plus the edge and corner rim tiles.
func Standard(m geometry.Metrics, st Style, numbers ...int) (*Set, error) {
	an := AnchorsFor(m, DefaultOverlap)

	set := &Set{}
	for _, n := range numbers {
		spans, ok := interiorSpans[n]
		if !ok {
			return nil, fmt.Errorf("no interior tile numbered %d", n)
		}
		sym := NewSymbol(fmt.Sprintf("tile%d", n), m)
		for _, span := range spans {
			if err := addSpan(sym, an, m, st, span[0], span[1]); err != nil {
				return nil, fmt.Errorf("tile%d: %w", n, err)
			}
		}
		set.Interior = append(set.Interior, sym)
	}

	// Rim tile: a single arc joining sides A and F. The grid rotates it so
	// those sides hug the mosaic boundary.
	edge := NewSymbol("edge", m)
	if err := addSpan(edge, an, m, st, SideA, SideF); err != nil {
		return nil, fmt.Errorf("edge tile: %w", err)
	}
	set.Edge = edge

	// Corner tile: stubs fading into the interior, rounded so the loose
	// ends look finished.
	corner := NewSymbol("corner", m)
	corner.AddRoundedPath(StubData(an, m, StrokeWide), st.WideColor, st.WideWidth)
	corner.AddRoundedPath(StubData(an, m, StrokeThin), st.ThinColor, st.ThinWidth)
	set.Corner = corner

	return set, nil
}

// addSpan draws one wide-under-thin stroke pair between two sides.
func addSpan(sym *Symbol, an Anchors, m geometry.Metrics, st Style, from, to Side) error {
	wide, err := PathData(an, m, from, to, StrokeWide)
	if err != nil {
		return err
	}
	thin, err := PathData(an, m, from, to, StrokeThin)
	if err != nil {
		return err
	}
	sym.AddPath(wide, st.WideColor, st.WideWidth)
	sym.AddPath(thin, st.ThinColor, st.ThinWidth)
	return nil
}

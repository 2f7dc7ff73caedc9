// Package hexgrid places Truchet tiles onto a hexagonal grid. Interior
// cells take a random tile and spin; boundary cells take edge and corner
// tiles with fixed rotations so the artwork's curves continue cleanly
// around the rim. Uses axial coordinates (q, r) for the grid; see
// redblobgames.com/grids/hexagons for the coordinate system.
package hexgrid

// Axial represents a grid cell position using axial coordinates. The third
// cube coordinate s is derived: s = -q - r. The cell (0, 0) is the center
// of the grid.
type Axial struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Ring returns the cell's hex distance from the grid center: the max of
// the three absolute cube coordinates.
func (a Axial) Ring() int {
	q := abs(a.Q)
	r := abs(a.R)
	s := abs(a.S())

	max := q
	if r > max {
		max = r
	}
	if s > max {
		max = s
	}
	return max
}

// onAxis reports whether the cell lies on one of the three axes through
// the center, where the mosaic's corners sit.
func onAxis(a Axial) bool {
	return a.Q == 0 || a.R == 0 || a.S() == 0
}

// floorMod returns the non-negative remainder of x/m. Go's % truncates
// toward zero, which would break the offset-column math for negative rows.
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

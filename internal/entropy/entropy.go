// Package entropy supplies the random draws made during tile placement.
// Every decision flows through a Source, so a run is reproducible whenever
// its source is.
package entropy

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source yields uniform indexes for pool and rotation picks.
type Source interface {
	// Intn returns an index in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Positioned is implemented by sources whose draws depend on the grid cell
// being placed. The placement engine announces each cell before drawing.
type Positioned interface {
	MoveTo(q, r int)
}

// Seeded returns a deterministic source. Two sources built from the same
// seed produce identical draw sequences.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Global returns the process-wide generator. Draws are not reproducible.
func Global() Source {
	return global{}
}

type global struct{}

func (global) Intn(n int) int {
	return rand.Intn(n)
}

// Field is a spatially correlated source: draws quantize simplex noise
// sampled under the current cell, so neighboring cells make similar picks
// and the mosaic develops regions instead of pure static. Two independent
// noise layers keep the tile pick and the follow-up spin pick decorrelated.
type Field struct {
	pick  opensimplex.Noise
	spin  opensimplex.Noise
	scale float64

	x, y  float64
	draws int
}

// DefaultFieldScale is the noise frequency in cell units. Smaller values
// make broader regions of matching tiles.
const DefaultFieldScale = 0.35

// NewField creates a noise-backed source. A scale of 0 uses
// DefaultFieldScale.
func NewField(seed int64, scale float64) *Field {
	if scale == 0 {
		scale = DefaultFieldScale
	}
	return &Field{
		pick:  opensimplex.NewNormalized(seed),
		spin:  opensimplex.NewNormalized(seed + 1),
		scale: scale,
	}
}

// MoveTo positions the field under a grid cell, projecting axial
// coordinates onto the cartesian plane: x = q + r/2, y = r*sqrt(3)/2.
func (f *Field) MoveTo(q, r int) {
	f.x = float64(q) + float64(r)*0.5
	f.y = float64(r) * math.Sqrt(3) / 2
	f.draws = 0
}

// Intn quantizes the noise under the current cell into [0, n). The first
// draw per cell samples the pick layer, later draws the spin layer.
func (f *Field) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn called with non-positive n")
	}
	layer := f.pick
	if f.draws > 0 {
		layer = f.spin
	}
	f.draws++

	v := layer.Eval2(f.x*f.scale, f.y*f.scale)
	idx := int(v * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

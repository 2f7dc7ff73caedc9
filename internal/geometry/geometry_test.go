package geometry

import (
	"math"
	"strings"
	"testing"
)

const tol = 1e-9

func TestForHeightDerivations(t *testing.T) {
	m := ForHeight(100)

	if math.Abs(m.Width-100*math.Sqrt(3)/2) > tol {
		t.Errorf("width = %v, want %v", m.Width, 100*math.Sqrt(3)/2)
	}
	if m.EdgeLen != 50 {
		t.Errorf("edge length = %v, want 50", m.EdgeLen)
	}
	if m.Height != 100 {
		t.Errorf("height = %v, want 100", m.Height)
	}
}

func TestVertices(t *testing.T) {
	m := ForHeight(100)
	w := m.Width

	cases := []struct {
		idx  int
		x, y float64
	}{
		{VertexA, 0, 25},
		{VertexB, w / 2, 0},
		{VertexC, w, 25},
		{VertexD, w, 75},
		{VertexE, w / 2, 100},
		{VertexF, 0, 75},
	}
	for _, c := range cases {
		v := m.Vertices[c.idx]
		if math.Abs(v.X-c.x) > tol || math.Abs(v.Y-c.y) > tol {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", c.idx, v.X, v.Y, c.x, c.y)
		}
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Height; got != DefaultHeight {
		t.Errorf("default height = %v, want %v", got, DefaultHeight)
	}
}

func TestCanvas(t *testing.T) {
	m := Default()

	for size := 1; size <= 9; size++ {
		w, h := m.Canvas(size)
		wantW := m.Width * float64(2*size-1)
		if math.Abs(w-wantW) > tol {
			t.Errorf("size %d: canvas width = %v, want %v", size, w, wantW)
		}
		if math.Abs(h-w*math.Sqrt(3)/2) > tol {
			t.Errorf("size %d: canvas height = %v, want %v", size, h, w*math.Sqrt(3)/2)
		}
	}
}

func TestOutlinePath(t *testing.T) {
	d := ForHeight(100).OutlinePath()

	if !strings.HasPrefix(d, "M 0 25 L ") {
		t.Errorf("outline path starts %q, want move to upper left vertex", d)
	}
	if !strings.HasSuffix(d, " 0 75 Z") {
		t.Errorf("outline path ends %q, want close after lower left vertex", d)
	}
	if n := strings.Count(d, " "); n != 14 {
		t.Errorf("outline path %q has %d separators, want 14", d, n)
	}
}

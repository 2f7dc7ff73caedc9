package render

import (
	"bytes"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo/float"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

type stubDef struct {
	id string
}

func (s stubDef) ID() string {
	return s.id
}

func (s stubDef) Size() (w, h float64) {
	return 10, 10
}

func (s stubDef) Draw(c *svg.SVG) {
	c.Path("M 0 0 L 10 10", `stroke="black"`, `fill="none"`)
}

func TestDefineOnce(t *testing.T) {
	doc := New(geometry.Default(), 2, false)
	doc.Define(stubDef{id: "t1"})
	doc.Define(stubDef{id: "t1"})
	doc.Define(stubDef{id: "t2"})

	if !doc.Defined("t1") || !doc.Defined("t2") {
		t.Fatal("definitions not recorded")
	}
	if doc.Defined("t3") {
		t.Fatal("phantom definition")
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, `<g id="t1"`); n != 1 {
		t.Errorf("t1 defined %d times, want 1", n)
	}
}

func TestPlaceOrdering(t *testing.T) {
	doc := New(geometry.Default(), 3, false)
	doc.Place(Placement{TileID: "a", X: 1})
	doc.Place(Placement{TileID: "b", X: 2})
	doc.Place(Placement{TileID: "under", Beneath: true})
	doc.Place(Placement{TileID: "c", X: 3})

	got := doc.Placements()
	want := []string{"under", "a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("placement count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].TileID != id {
			t.Errorf("placement %d = %q, want %q", i, got[i].TileID, id)
		}
	}
}

func TestWriteToStructure(t *testing.T) {
	m := geometry.Default()
	doc := New(m, 2, false)
	doc.Define(stubDef{id: "plain"})
	doc.Define(stubDef{id: "spun"})

	doc.Place(Placement{TileID: "plain", X: -m.Width / 2, Y: -m.Height / 2})
	doc.Place(Placement{TileID: "spun", X: 10, Y: 20, Rotation: 2})

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()
	if n != int64(len(out)) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, len(out))
	}

	for _, want := range []string{"<defs>", "</defs>", "viewBox=", `xlink:href="#plain"`, `xlink:href="#spun"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// A 2-unit rotation serializes as 120 degrees about the tile center.
	if !strings.Contains(out, "rotate(120, ") {
		t.Errorf("missing rotation transform in %q", out)
	}

	// A zero rotation leaves the reference untransformed.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, `#plain`) && strings.Contains(line, "transform") {
			t.Errorf("unrotated placement got a transform: %q", line)
		}
	}
}

func TestWriteToBeneathPaintsFirst(t *testing.T) {
	doc := New(geometry.Default(), 2, false)
	doc.Define(stubDef{id: "top"})
	doc.Define(stubDef{id: "bottom"})
	doc.Place(Placement{TileID: "top"})
	doc.Place(Placement{TileID: "bottom", Beneath: true})

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()

	body := out[strings.Index(out, "</defs>"):]
	if strings.Index(body, `#bottom`) > strings.Index(body, `#top`) {
		t.Error("beneath placement serialized after normal placement")
	}
}

func TestWriteToBorders(t *testing.T) {
	doc := New(geometry.Default(), 2, true)
	doc.Define(stubDef{id: "t1"})
	doc.Define(stubDef{id: "t2"})

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n := strings.Count(buf.String(), `stroke="gray"`); n != 2 {
		t.Errorf("outline count = %d, want one per definition", n)
	}
}

func TestWriteSheet(t *testing.T) {
	m := geometry.Default()
	defs := []Def{stubDef{id: "t1"}, stubDef{id: "t2"}, stubDef{id: "corner"}}

	var buf bytes.Buffer
	if err := WriteSheet(&buf, m, defs...); err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, "<use"); n != 3 {
		t.Errorf("use count = %d, want 3", n)
	}
	if n := strings.Count(out, `stroke="gray"`); n != 3 {
		t.Errorf("outline count = %d, want one per tile", n)
	}
	// First tile sits half a gap in from the sheet edge.
	if !strings.Contains(out, `x="7.5000"`) {
		t.Error("first tile not offset by half the sheet gap")
	}
}

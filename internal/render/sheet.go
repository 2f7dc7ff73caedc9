package render

import (
	"bytes"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/cdelker/hexagonal-truchet/internal/geometry"
)

// sheetGap is the spacing between tiles on a contact sheet.
const sheetGap = 15.0

// WriteSheet serializes a contact sheet: every definition laid out in a
// row with its hexagon outline, for previewing a tile family outside the
// mosaic.
func WriteSheet(w io.Writer, m geometry.Metrics, defs ...Def) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Decimals = coordDecimals

	width := (m.Width + sheetGap) * float64(len(defs))
	height := m.Height + sheetGap
	canvas.Startview(width, height, 0, 0, width, height)

	canvas.Def()
	for _, def := range defs {
		canvas.Gid(def.ID())
		def.Draw(canvas)
		canvas.Path(m.OutlinePath(), `stroke="gray"`, `fill="none"`)
		canvas.Gend()
	}
	canvas.DefEnd()

	for i, def := range defs {
		x := sheetGap/2 + float64(i)*(m.Width+sheetGap)
		canvas.Use(x, sheetGap/2, "#"+def.ID())
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

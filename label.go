package markers

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/markers/typeface"
)

// DrawLabel draws s with the midpoint of its ink centered on cx and the
// top of the line at top. The pen lands on whole pixels so the ink
// measured by the face is the ink drawn.
func DrawLabel(dc *gg.Context, face typeface.Face, s string, cx, top float64, col gg.RGBA) {
	if s == "" {
		return
	}
	left, width := face.InkBounds(s)
	pen := math.Round(cx-float64(width)/2) - float64(left)
	baseline := math.Round(top + face.Ascent())
	face.Draw(dc, s, pen, baseline, col)
}

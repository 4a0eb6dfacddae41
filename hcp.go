package markers

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	hcpCenter      = designSize / 2
	hcpOuter       = 200
	hcpMiddle      = 140
	hcpInner       = 60
	hcpAtom        = 30
	hcpAtomRing    = 220
	hcpFeature     = 15
	hcpFeatureRing = 180
)

// hcpRing returns six points at distance r from the center, at angles
// k*60 degrees plus offset.
func hcpRing(r, offset float64) []Point {
	return RegularPolygon(6, hcpCenter, hcpCenter, r, offset)
}

func drawHCP(dc *gg.Context) {
	fillPolygon(dc, Hexagon(hcpCenter, hcpCenter, hcpOuter), style{Fill: ink, Outline: ink, Width: 1})
	fillPolygon(dc, Hexagon(hcpCenter, hcpCenter, hcpMiddle), style{Fill: paper, Outline: ink, Width: 3})
	fillPolygon(dc, Hexagon(hcpCenter, hcpCenter, hcpInner), style{Fill: ink, Outline: ink, Width: 1})

	// Corner atoms are hexagons themselves.
	for _, c := range hcpRing(hcpAtomRing, 0) {
		fillPolygon(dc, Hexagon(c.X, c.Y, hcpAtom), style{Fill: gray, Outline: ink, Width: 2})
	}

	for _, f := range hcpRing(hcpFeatureRing, math.Pi/6) {
		fillCircle(dc, f.X, f.Y, hcpFeature, style{Fill: paper, Outline: ink, Width: 2})
	}
}

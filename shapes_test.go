package markers

import (
	"math"
	"testing"
)

const eps = 1e-9

// angleOf returns the angle of p around (cx, cy) in [0, 2pi).
func angleOf(p Point, cx, cy float64) float64 {
	a := math.Atan2(p.Y-cy, p.X-cx)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// isMultiple reports whether a is a multiple of step, allowing for the
// wrap at 2pi.
func isMultiple(a, step float64) bool {
	r := math.Mod(a, step)
	return r < 1e-9 || step-r < 1e-9
}

func TestHexagon(t *testing.T) {
	tests := []struct {
		cx, cy, r float64
	}{
		{320, 320, 200},
		{320, 320, 140},
		{320, 320, 60},
		{540, 320, 30},
		{210, 509.5255888325765, 30},
		{0, 0, 1},
	}
	for _, tt := range tests {
		pts := Hexagon(tt.cx, tt.cy, tt.r)
		if len(pts) != 6 {
			t.Fatalf("Hexagon(%v, %v, %v) returned %d points, want 6", tt.cx, tt.cy, tt.r, len(pts))
		}
		for k, p := range pts {
			d := math.Hypot(p.X-tt.cx, p.Y-tt.cy)
			if math.Abs(d-tt.r) > eps {
				t.Errorf("vertex %d of hexagon r=%v at distance %v", k, tt.r, d)
			}
			a := angleOf(p, tt.cx, tt.cy)
			if !isMultiple(a, math.Pi/3) {
				t.Errorf("vertex %d of hexagon r=%v at angle %v deg, want a multiple of 60", k, tt.r, a*180/math.Pi)
			}
			want := float64(k) * math.Pi / 3
			if k > 0 && math.Abs(a-want) > eps {
				t.Errorf("vertex %d at angle %v, want %v", k, a, want)
			}
		}
	}
}

func TestRegularPolygon(t *testing.T) {
	for _, n := range []int{3, 4, 5, 8} {
		pts := RegularPolygon(n, 10, 20, 5, math.Pi/4)
		if len(pts) != n {
			t.Fatalf("RegularPolygon(%d) returned %d points", n, len(pts))
		}
		for i := range pts {
			j := (i + 1) % n
			side := math.Hypot(pts[j].X-pts[i].X, pts[j].Y-pts[i].Y)
			want := 2 * 5 * math.Sin(math.Pi/float64(n))
			if math.Abs(side-want) > eps {
				t.Errorf("n=%d side %d length %v, want %v", n, i, side, want)
			}
		}
	}
}

func TestDiamond(t *testing.T) {
	got := Diamond(320, 320, 220)
	want := []Point{{320, 100}, {540, 320}, {320, 540}, {100, 320}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Diamond vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBCCFaces(t *testing.T) {
	front, top, side := bccFaces()
	tests := []struct {
		name string
		got  []Point
		want []Point
	}{
		{"front", front, []Point{{220, 320}, {420, 320}, {420, 420}, {220, 420}}},
		{"top", top, []Point{{220, 320}, {320, 254}, {520, 254}, {420, 320}}},
		{"side", side, []Point{{420, 320}, {520, 254}, {520, 353}, {420, 420}}},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s vertex %d = %v, want %v", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

func TestHCPRings(t *testing.T) {
	atoms := hcpRing(hcpAtomRing, 0)
	features := hcpRing(hcpFeatureRing, math.Pi/6)
	for i := range atoms {
		if d := math.Hypot(atoms[i].X-hcpCenter, atoms[i].Y-hcpCenter); math.Abs(d-hcpAtomRing) > eps {
			t.Errorf("atom %d at distance %v, want %v", i, d, hcpAtomRing)
		}
		a := angleOf(features[i], hcpCenter, hcpCenter) - math.Pi/6
		if !isMultiple(a, math.Pi/3) {
			t.Errorf("feature %d at %v deg, want 30 + k*60", i, (a+math.Pi/6)*180/math.Pi)
		}
	}
}

func TestMarkerGeometryInsideFrame(t *testing.T) {
	inside := func(p Point, r float64) bool {
		return p.X-r >= borderWidth && p.Y-r >= borderWidth &&
			p.X+r <= designSize-borderWidth && p.Y+r <= designSize-borderWidth
	}
	for _, p := range bccDots {
		if !inside(p, bccDot) {
			t.Errorf("BCC atom %v overlaps the frame", p)
		}
	}
	for _, p := range fccFaceDots {
		if !inside(p, fccFaceDot) {
			t.Errorf("FCC face atom %v overlaps the frame", p)
		}
	}
	for _, p := range fccSquares {
		if !inside(p, fccSquare) {
			t.Errorf("FCC square %v overlaps the frame", p)
		}
	}
	for _, p := range hcpRing(hcpAtomRing, 0) {
		if !inside(p, hcpAtom) {
			t.Errorf("HCP atom %v overlaps the frame", p)
		}
	}
}

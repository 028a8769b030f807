// seehuhn.de/go/softdraw - a software rasterizer for widget toolkits
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package softdraw

import (
	"math"
	"slices"
	"testing"
)

func TestPolygonTooFewPoints(t *testing.T) {
	s := NewSurface(Sz(10, 10), LayoutARGB)
	DrawPolygon(s, nil, White, nil)
	DrawPolygon(s, []Point{{1, 1}}, White, nil)
	DrawPolygon(s, []Point{{1, 1}, {8, 8}}, White, nil)
	if n := countSet(s); n != 0 {
		t.Errorf("%d pixels set", n)
	}
}

func TestPolygonSquare(t *testing.T) {
	s := NewSurface(Sz(64, 64), LayoutARGB)
	DrawPolygon(s, []Point{{20, 20}, {40, 20}, {40, 40}, {20, 40}}, White, nil)
	if n := countSet(s); n != 400 {
		t.Errorf("%d pixels set, expected 400", n)
	}
	for y := range 64 {
		for x := range 64 {
			inside := x >= 20 && x < 40 && y >= 20 && y < 40
			if got := s.ColorAt(x, y) == White; got != inside {
				t.Fatalf("pixel (%d, %d): set=%t", x, y, got)
			}
		}
	}
}

func TestPolygonOrientation(t *testing.T) {
	cw := []Point{{5, 5}, {25, 5}, {30, 20}, {10, 28}}
	ccw := slices.Clone(cw)
	slices.Reverse(ccw)

	a := NewSurface(Sz(32, 32), LayoutARGB)
	b := NewSurface(Sz(32, 32), LayoutARGB)
	DrawPolygon(a, cw, White, nil)
	DrawPolygon(b, ccw, White, nil)
	if !slices.Equal(a.Pix(), b.Pix()) {
		t.Error("result depends on vertex order")
	}
	if countSet(a) == 0 {
		t.Error("nothing drawn")
	}
}

func TestPolygonClip(t *testing.T) {
	s := NewSurface(Sz(64, 64), LayoutARGB)
	clip := R(30, 25, 100, 5)
	DrawPolygon(s, []Point{{20, 20}, {40, 20}, {40, 40}, {20, 40}}, White, &clip)
	if n := countSet(s); n != 10*5 {
		t.Errorf("%d pixels set, expected 50", n)
	}
	for y := range 64 {
		for x := range 64 {
			if s.PixelAt(x, y) != 0 && !clip.Contains(Pt(x, y)) {
				t.Fatalf("pixel (%d, %d) outside clip", x, y)
			}
		}
	}
}

func TestPolygonOffscreen(t *testing.T) {
	s := NewSurface(Sz(16, 16), LayoutARGB)
	DrawPolygon(s, []Point{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}, White, nil)
	if n := countSet(s); n != 100 {
		t.Errorf("%d pixels set, expected 100", n)
	}

	s = NewSurface(Sz(16, 16), LayoutARGB)
	DrawPolygon(s, []Point{{20, 20}, {30, 20}, {30, 30}}, White, nil)
	DrawPolygon(s, []Point{{-20, -20}, {-3, -20}, {-3, -3}}, White, nil)
	if n := countSet(s); n != 0 {
		t.Errorf("%d pixels set by invisible polygons", n)
	}
}

func TestPolygonCollinear(t *testing.T) {
	s := NewSurface(Sz(16, 16), LayoutARGB)
	DrawPolygon(s, []Point{{1, 1}, {5, 5}, {9, 9}}, White, nil)
	DrawPolygon(s, []Point{{1, 8}, {5, 8}, {12, 8}}, White, nil)
	if n := countSet(s); n != 0 {
		t.Errorf("%d pixels set by degenerate polygons", n)
	}
}

func TestPolygonTranslucent(t *testing.T) {
	s := NewSurface(Sz(16, 16), LayoutARGB)
	Fill(s, &Black, nil)

	// the alpha value is applied once per pixel
	red := Color{R: 255, A: 128}
	DrawPolygon(s, []Point{{2, 2}, {12, 2}, {12, 12}, {2, 12}}, red, nil)

	want := Color{R: 128, A: 0xFF}
	if got := s.ColorAt(5, 5); got != want {
		t.Errorf("got %v, expected %v", got, want)
	}
	if got := s.ColorAt(14, 14); got != Black {
		t.Errorf("outside pixel changed to %v", got)
	}
}

func TestPolygonNoAlphaTarget(t *testing.T) {
	s := NewSurface(Sz(16, 16), LayoutXRGB)
	c := Color{R: 10, G: 20, B: 30, A: 0xFF}
	DrawPolygon(s, []Point{{2, 2}, {12, 2}, {7, 12}}, c, nil)
	if got := s.ColorAt(7, 5); got != c {
		t.Errorf("got %v, expected %v", got, c)
	}
	if s.PixelAt(7, 5)>>24 != 0 {
		t.Errorf("unused byte written: %08x", s.PixelAt(7, 5))
	}
}

// TestPolygonCircleArea compares the area of a filled circle to the
// exact value.
func TestPolygonCircleArea(t *testing.T) {
	const r = 100
	pts := make([]Point, 0, 360)
	for i := range 360 {
		phi := float64(i) * math.Pi / 180
		pts = append(pts, Pt(128+int(math.Round(r*math.Cos(phi))), 128+int(math.Round(r*math.Sin(phi)))))
	}
	s := NewSurface(Sz(256, 256), LayoutARGB)
	DrawPolygon(s, pts, White, nil)

	got := float64(countSet(s))
	want := math.Pi * r * r
	if math.Abs(got-want)/want > 0.02 {
		t.Errorf("area %g, expected about %g", got, want)
	}
}

// TestPolygonSpanConvexity checks that every row of a convex polygon is
// a single contiguous run of pixels.
func TestPolygonSpanConvexity(t *testing.T) {
	s := NewSurface(Sz(64, 64), LayoutARGB)
	DrawPolygon(s, []Point{{32, 2}, {60, 20}, {50, 60}, {10, 55}, {4, 18}}, White, nil)
	for y := range 64 {
		runs := 0
		prev := false
		for x := range 64 {
			set := s.PixelAt(x, y) != 0
			if set && !prev {
				runs++
			}
			prev = set
		}
		if runs > 1 {
			t.Errorf("row %d has %d runs", y, runs)
		}
	}
}

func TestRasterizerReuse(t *testing.T) {
	r := NewRasterizer(nil)
	big := NewSurface(Sz(100, 100), LayoutARGB)
	r.Polygon(big, []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, White)

	small := NewSurface(Sz(10, 10), LayoutARGB)
	r.Polygon(small, []Point{{2, 2}, {6, 2}, {6, 6}, {2, 6}}, White)
	if n := countSet(small); n != 16 {
		t.Errorf("%d pixels set, expected 16", n)
	}
}

func TestCompareEdges(t *testing.T) {
	a := &edge{x: 5, dx: 1, dy: 2}
	b := &edge{x: 5, dx: 2, dy: 2}
	c := &edge{x: 6, dx: -10, dy: 1}
	if compareEdges(a, b) >= 0 {
		t.Error("shallower slope should sort first")
	}
	if compareEdges(b, c) >= 0 {
		t.Error("smaller x should sort first")
	}
	if compareEdges(a, a) != 0 {
		t.Error("edge not equal to itself")
	}
}

func TestEdgeStep(t *testing.T) {
	// Stepping an edge must track the line through its end points.
	cases := []struct{ x0, y0, x1, y1 int }{
		{0, 0, 3, 10},
		{0, 0, 10, 3},
		{10, 0, 0, 7},
		{5, 0, 5, 8},
		{0, 0, 9, 9},
	}
	for _, c := range cases {
		e := newEdge(Pt(c.x0, c.y0), Pt(c.x1, c.y1))
		for y := c.y0; y < c.y1; y++ {
			exact := float64(c.x0) + float64(c.x1-c.x0)*float64(y-c.y0)/float64(c.y1-c.y0)
			if math.Abs(float64(e.x)-exact) > 0.5 {
				t.Errorf("%v: row %d: x=%d, expected about %.2f", c, y, e.x, exact)
			}
			e.step()
		}
		if e.x != c.x1 {
			t.Errorf("%v: ends at x=%d", c, e.x)
		}
	}
}

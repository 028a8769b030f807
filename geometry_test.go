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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestIntersectNil(t *testing.T) {
	b := R(3, 4, 10, 20)
	if got := Intersect(nil, b); got != b {
		t.Errorf("Intersect(nil, %v) = %v", b, got)
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		a, b, want Rect
	}{
		{R(0, 0, 10, 10), R(5, 5, 10, 10), R(5, 5, 5, 5)},
		{R(0, 0, 10, 10), R(2, 3, 4, 5), R(2, 3, 4, 5)},
		{R(0, 0, 10, 10), R(10, 0, 5, 5), Rect{}},  // touching edges
		{R(0, 0, 10, 10), R(20, 20, 5, 5), Rect{}}, // disjoint
		{R(0, 0, 10, 10), R(5, 20, 10, 5), Rect{}}, // overlap on x only
		{R(-5, -5, 10, 10), R(0, 0, 100, 100), R(0, 0, 5, 5)},
		{R(0, 0, 10, 10), R(0, 0, 0, 10), Rect{}},
	}
	for _, c := range cases {
		got := c.a.Intersect(c.b)
		if got != c.want {
			t.Errorf("%v ∩ %v = %v, expected %v", c.a, c.b, got, c.want)
		}
		if rev := c.b.Intersect(c.a); rev != got {
			t.Errorf("%v ∩ %v = %v, not symmetric", c.b, c.a, rev)
		}
		if !got.Empty() && (got.Size.Width > min(c.a.Size.Width, c.b.Size.Width) ||
			got.Size.Height > min(c.a.Size.Height, c.b.Size.Height)) {
			t.Errorf("%v ∩ %v = %v is larger than an input", c.a, c.b, got)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := R(2, 3, 4, 5)
	inside := []Point{{2, 3}, {5, 7}, {3, 4}}
	outside := []Point{{1, 3}, {6, 3}, {2, 8}, {2, 2}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("%v should contain %v", r, p)
		}
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("%v should not contain %v", r, p)
		}
	}
	if r.Area() != 20 {
		t.Errorf("area %d, expected 20", r.Area())
	}
	if (Rect{Size: Size{Width: -1, Height: 5}}).Area() != 0 {
		t.Error("rectangle with negative width has non-zero area")
	}
}

func TestRectFromGeom(t *testing.T) {
	g := rect.Rect{LLx: 1.5, LLy: 2, URx: 10.2, URy: 7}
	got := RectFromGeom(g)
	want := R(1, 2, 10, 5)
	if got != want {
		t.Errorf("RectFromGeom(%v) = %v, expected %v", g, got, want)
	}
	if back := RectFromGeom(want.Geom()); back != want {
		t.Errorf("round trip of %v gives %v", want, back)
	}
}

func TestAnchorPoint(t *testing.T) {
	container := R(10, 20, 100, 50)
	obj := Sz(20, 10)
	cases := []struct {
		a    Anchor
		want Point
	}{
		{AnchorNone, Pt(10, 20)},
		{AnchorNorthWest, Pt(10, 20)},
		{AnchorNorth, Pt(50, 20)},
		{AnchorNorthEast, Pt(90, 20)},
		{AnchorEast, Pt(90, 40)},
		{AnchorSouthEast, Pt(90, 60)},
		{AnchorSouth, Pt(50, 60)},
		{AnchorSouthWest, Pt(10, 60)},
		{AnchorWest, Pt(10, 40)},
		{AnchorCenter, Pt(50, 40)},
	}
	for _, c := range cases {
		if got := AnchorPoint(c.a, container, obj); got != c.want {
			t.Errorf("%v: got %v, expected %v", c.a, got, c.want)
		}
	}
}

func TestAnchorString(t *testing.T) {
	if s := AnchorSouthEast.String(); s != "southeast" {
		t.Errorf("got %q", s)
	}
	if s := Anchor(42).String(); s != "Anchor(42)" {
		t.Errorf("got %q", s)
	}
}

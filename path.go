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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default curve flattening tolerance in device
// pixels, used by Contours when a non-positive flatness is given.
const DefaultFlatness = 0.25

// Contour is a polygon or polyline in surface coordinates, obtained from
// one subpath of a vector path.
type Contour struct {
	Points []Point

	// Closed is set if the subpath ended with a ClosePath command.
	Closed bool
}

// Outline returns the points of the contour in the form expected by
// Rasterizer.Polyline: for closed contours the first point is repeated
// at the end.
func (c Contour) Outline() []Point {
	if !c.Closed || len(c.Points) < 2 {
		return c.Points
	}
	res := make([]Point, len(c.Points)+1)
	copy(res, c.Points)
	res[len(c.Points)] = c.Points[0]
	return res
}

// Contours converts a vector path into integer point sequences, one per
// subpath.  The path is mapped to surface coordinates by ctm (the zero
// matrix means identity), curves are flattened into line segments with
// the given tolerance, and coordinates are rounded down to the pixel grid.
// Consecutive duplicate points are removed, and the start point of a
// closed subpath is not repeated at its end.
//
// The Points of every contour can be passed to Rasterizer.Polygon, and
// the Outline to Rasterizer.Polyline.
func Contours(p path.Path, ctm matrix.Matrix, flatness float64) []Contour {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	if flatness <= 0 {
		flatness = DefaultFlatness
	}
	f := flattener{ctm: ctm, flatness: flatness}

	var res []Contour
	var cur []Point
	var current, start vec.Vec2
	flush := func(closed bool) {
		if closed && len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			res = append(res, Contour{Points: cur, Closed: closed})
		}
		cur = nil
	}
	add := func(v vec.Vec2) {
		q := f.device(v)
		if len(cur) > 0 && cur[len(cur)-1] == q {
			return
		}
		cur = append(cur, q)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = pts[0]
			start = current
			add(current)
		case path.CmdLineTo:
			if cur == nil {
				add(current)
			}
			add(pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if cur == nil {
				add(current)
			}
			f.quadratic(current, pts[0], pts[1], add)
			current = pts[1]
		case path.CmdCubeTo:
			if cur == nil {
				add(current)
			}
			f.cubic(current, pts[0], pts[1], pts[2], add)
			current = pts[2]
		case path.CmdClose:
			current = start
			flush(true)
		}
	}
	flush(false)
	return res
}

// flattener turns Bézier curves into polylines in device space.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

func (f *flattener) device(v vec.Vec2) Point {
	m := f.ctm
	x := m[0]*v.X + m[2]*v.Y + m[4]
	y := m[1]*v.X + m[3]*v.Y + m[5]
	return Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// linear applies only the 2×2 linear part of the CTM to a vector.
func (f *flattener) linear(v vec.Vec2) vec.Vec2 {
	m := f.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// quadratic flattens the quadratic Bézier p0, p1, p2 and calls emit for
// every point after p0.
func (f *flattener) quadratic(p0, p1, p2 vec.Vec2, emit func(vec.Vec2)) {
	// error vector e = (P0 - 2*P1 + P2) / 4, measured in device space
	e := f.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if d := e.Length(); d > f.flatness {
		n = int(math.Ceil(math.Sqrt(d / f.flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubic flattens the cubic Bézier p0, ..., p3 and calls emit for every
// point after p0.  The number of segments follows Wang's formula.
func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2, emit func(vec.Vec2)) {
	d1 := f.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

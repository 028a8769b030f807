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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20), // curves down
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_stroked",
		Path:   quadraticCurveOpen(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(10, 50, 10, 10, 54, 54, 54, 14), // S-curve with inflection
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic_stroked",
		Path:   cubicCurveOpen(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 3),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rounded_rectangle",
		Path:   roundedRectangle(8, 16, 56, 48, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32), // all points equal
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return (&builder{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close().
		Path()
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve (for stroking).
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return (&builder{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Path()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&builder{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close().
		Path()
}

// cubicCurveOpen builds an open path with a cubic Bezier curve (for stroking).
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return (&builder{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Path()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) path.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&builder{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close().
		Path()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	kx := rx * kappa
	ky := ry * kappa

	return (&builder{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close().
		Path()
}

// roundedRectangle builds a rectangle with corners rounded to radius r.
func roundedRectangle(x1, y1, x2, y2, r float64) path.Path {
	k := r * kappa

	return (&builder{}).
		MoveTo(pt(x1+r, y1)).
		LineTo(pt(x2-r, y1)).
		CubeTo(pt(x2-r+k, y1), pt(x2, y1+r-k), pt(x2, y1+r)).
		LineTo(pt(x2, y2-r)).
		CubeTo(pt(x2, y2-r+k), pt(x2-r+k, y2), pt(x2-r, y2)).
		LineTo(pt(x1+r, y2)).
		CubeTo(pt(x1+r-k, y2), pt(x1, y2-r+k), pt(x1, y2-r)).
		LineTo(pt(x1, y1+r)).
		CubeTo(pt(x1, y1+r-k), pt(x1+r-k, y1), pt(x1+r, y1)).
		Close().
		Path()
}

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

// Package testcases contains named drawing scenes used by the tests,
// benchmarks and tools of the softdraw module.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to draw
	Width  int           // surface width in pixels
	Height int           // surface height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
	Clip   rect.Rect     // clip rectangle (zero-value means no clipping)

	// Pixels is the exact number of pixels the operation sets.
	// Zero means the test case does not pin this down.
	Pixels int
}

// Operation is the drawing operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill fills every subpath as a polygon.
type Fill struct{}

func (Fill) isOperation() {}

// Stroke draws every subpath as a one pixel wide polyline.
// Closed subpaths are drawn with their closing segment.
type Stroke struct{}

func (Stroke) isOperation() {}

// HasClip reports whether the test case restricts drawing to Clip.
func (tc TestCase) HasClip() bool {
	return tc.Clip != (rect.Rect{})
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	open := polyline(pts...)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, p := range open {
			if !yield(cmd, p) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// rectFromCorners returns the clip rectangle with the given corners.
func rectFromCorners(x0, y0, x1, y1 float64) rect.Rect {
	return rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1}
}

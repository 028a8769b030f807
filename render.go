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

// Package softdraw implements the drawing layer of a small widget
// toolkit: pixel surfaces with configurable channel order, one pixel wide
// polylines, scanline polygon fill, rectangle fill and copy with optional
// alpha blending, and the color encoding of picking ids.
//
// All drawing operations take an optional clipping rectangle. Pixels
// outside of the clipping rectangle and outside of the target surface are
// never written.
package softdraw

//go:generate go run ./testcases/export

import "seehuhn.de/go/softdraw/testcases"

// RenderExample draws a test case onto dst using color c.
// Each subpath of the test case is converted with Contours and then
// filled as a polygon or drawn as a polyline, depending on the operation
// of the test case.
func RenderExample(tc testcases.TestCase, dst *Surface, c Color) {
	var clip *Rect
	if tc.HasClip() {
		r := RectFromGeom(tc.Clip)
		clip = &r
	}
	r := NewRasterizer(clip)

	for _, contour := range Contours(tc.Path, tc.CTM, DefaultFlatness) {
		switch tc.Op.(type) {
		case testcases.Fill:
			r.Polygon(dst, contour.Points, c)
		case testcases.Stroke:
			r.Polyline(dst, contour.Outline(), c)
		}
	}
}

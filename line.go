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

// DrawPolyline draws the line segments connecting consecutive points of
// pts, using a one pixel wide pen. See Rasterizer.Polyline for details.
func DrawPolyline(dst *Surface, pts []Point, c Color, clip *Rect) {
	r := Rasterizer{Clip: clip}
	r.Polyline(dst, pts, c)
}

// Polyline draws the line segments connecting consecutive points of pts
// onto dst.  Each covered pixel is overwritten with c, without blending.
// A single point draws one pixel.
//
// Every pixel of the polyline is written once per visit of the pen:
// vertices shared by two segments are drawn once, and if the last point
// equals the first, the closing pixel is not drawn a second time.
func (r *Rasterizer) Polyline(dst *Surface, pts []Point, c Color) {
	if len(pts) == 0 {
		return
	}
	bounds := Intersect(r.Clip, dst.Rect())
	if bounds.Empty() {
		Logger().Debug("polyline outside clip", "clip", r.Clip)
		return
	}

	p := dst.layout.Pack(c)
	tracePolyline(pts, func(x, y int) {
		if bounds.Contains(Point{X: x, Y: y}) {
			dst.pix[y*dst.width+x] = p
		}
	})
}

// tracePolyline calls plot for every pixel of the polyline through pts.
// The start of each segment is the end of the previous one and is not
// repeated.  If the path is closed, the first pixel is not repeated
// either.
func tracePolyline(pts []Point, plot func(x, y int)) {
	plot(pts[0].X, pts[0].Y)

	closed := len(pts) > 2 && pts[len(pts)-1] == pts[0]
	for i := 1; i < len(pts); i++ {
		skipLast := closed && i == len(pts)-1
		traceSegment(pts[i-1], pts[i], skipLast, plot)
	}
}

// traceSegment steps from a to b with Bresenham's algorithm and calls plot
// for every pixel after a.  If skipLast is set, b itself is not plotted.
func traceSegment(a, b Point, skipLast bool, plot func(x, y int)) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}

	x, y := a.X, a.Y
	errAcc := 0
	if dx > dy {
		// x is the major axis
		for i := 1; i <= dx; i++ {
			x += sx
			errAcc += dy
			if 2*errAcc > dx {
				y += sy
				errAcc -= dx
			}
			if i == dx && skipLast {
				break
			}
			plot(x, y)
		}
	} else {
		for i := 1; i <= dy; i++ {
			y += sy
			errAcc += dx
			if 2*errAcc > dy {
				x += sx
				errAcc -= dy
			}
			if i == dy && skipLast {
				break
			}
			plot(x, y)
		}
	}
}

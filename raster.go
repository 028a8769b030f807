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
	"cmp"
	"slices"
)

// edge is a non-horizontal polygon side, oriented from its upper end
// (smaller y) to its lower end.
type edge struct {
	yMin int // first scanline crossed by the edge
	yMax int // first scanline no longer crossed by the edge
	x    int // x-intersection with the current scanline

	// remainder of the x-intersection, in units of 1/dy
	errAcc int
	dx, dy int // dy > 0
}

// compareEdges orders edges by x-intersection, with ties broken by
// ascending slope dx/dy.
func compareEdges(a, b *edge) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c
	}
	// dy > 0 for both edges, so the slopes compare like the cross products.
	return cmp.Compare(int64(a.dx)*int64(b.dy), int64(b.dx)*int64(a.dy))
}

// newEdge returns the edge from p0 to p1, where p0.Y < p1.Y.
// The x-intersection is rounded to the nearest pixel.
func newEdge(p0, p1 Point) edge {
	return edge{
		yMin:   p0.Y,
		yMax:   p1.Y,
		x:      p0.X,
		dx:     p1.X - p0.X,
		dy:     p1.Y - p0.Y,
		errAcc: (p1.Y - p0.Y) / 2,
	}
}

// step advances the edge to the next scanline.
func (e *edge) step() {
	e.advance(1)
}

// advance moves the edge down by n scanlines.
// Afterwards 0 <= errAcc < dy, and x + errAcc/dy exceeds the exact
// intersection by about one half.
func (e *edge) advance(n int) {
	e.errAcc += e.dx * n
	q, r := e.errAcc/e.dy, e.errAcc%e.dy
	if r < 0 {
		q--
		r += e.dy
	}
	e.x += q
	e.errAcc = r
}

// Rasterizer draws polygons and polylines onto surfaces.
// Create one instance and reuse it for many shapes; internal buffers grow
// as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip restricts drawing to this rectangle.
	// Nil means that the whole surface may be drawn to.
	Clip *Rect

	edges   []edge   // edge table, sorted by (yMin, x, slope)
	active  []int    // indices into edges, sorted by (x, slope)
	scratch *Surface // offscreen buffer for polygon fills
}

// NewRasterizer returns a Rasterizer which draws inside clip.
func NewRasterizer(clip *Rect) *Rasterizer {
	return &Rasterizer{Clip: clip}
}

// DrawPolygon fills the polygon with vertices pts. See Rasterizer.Polygon
// for details.
func DrawPolygon(dst *Surface, pts []Point, c Color, clip *Rect) {
	r := Rasterizer{Clip: clip}
	r.Polygon(dst, pts, c)
}

// Polygon fills the polygon with vertices pts onto dst.  The polygon is
// closed implicitly: the last point connects back to the first.  At
// least three points are required, otherwise nothing is drawn.
//
// On scanline y, the pixels x_a <= x < x_b between pairs of polygon
// sides are covered, where x_a and x_b are the intersections of the sides
// with the line at height y, rounded to the nearest integer.  An
// axis-aligned rectangle with corners (x0, y0) and (x1, y1) thus covers
// exactly (x1-x0)×(y1-y0) pixels.  Self-intersecting polygons are filled
// with the even-odd rule.
//
// The alpha channel of c is applied exactly once to every covered pixel.
func (r *Rasterizer) Polygon(dst *Surface, pts []Point, c Color) {
	if len(pts) < 3 {
		return
	}

	box, ok := r.collectEdges(pts, dst.height)
	if ok {
		box = box.Intersect(dst.Rect())
	}
	if !ok || box.Empty() {
		Logger().Debug("polygon has empty bounding box", "points", len(pts))
		return
	}

	off := r.scratchSurface(dst, box.Size)
	r.scanConvert(off, box, off.layout.Pack(c.Opaque()))

	// Composite the offscreen buffer onto the destination, applying the
	// alpha value of c only once.
	target := Intersect(r.Clip, box)
	if target.Empty() {
		return
	}
	sr := Rect{Min: target.Min.Sub(box.Min), Size: target.Size}
	blendRect(dst, target.Min, off, sr, c.A)
}

// collectEdges builds the edge table for the polygon pts.
// Edges entirely above the surface or starting below row height-1
// are dropped.  The returned rectangle is the bounding box of all
// remaining edges, with the y range clamped to the surface.
func (r *Rasterizer) collectEdges(pts []Point, height int) (box Rect, ok bool) {
	r.edges = r.edges[:0]

	var xMin, xMax, yMin, yMax int
	for i, p0 := range pts {
		p1 := pts[(i+1)%len(pts)]
		if p0.Y == p1.Y {
			continue // horizontal sides do not cross any scanline
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		if p1.Y <= 0 || p0.Y >= height {
			continue
		}

		e := newEdge(p0, p1)
		if e.yMin < 0 {
			// start the edge at row 0
			e.advance(-e.yMin)
			e.yMin = 0
		}
		r.edges = append(r.edges, e)

		ex0, ex1 := min(p0.X, p1.X), max(p0.X, p1.X)
		if !ok {
			xMin, xMax, yMin, yMax = ex0, ex1, e.yMin, e.yMax
			ok = true
		} else {
			xMin = min(xMin, ex0)
			xMax = max(xMax, ex1)
			yMin = min(yMin, e.yMin)
			yMax = max(yMax, e.yMax)
		}
	}
	if !ok {
		return Rect{}, false
	}

	slices.SortStableFunc(r.edges, func(a, b edge) int {
		if c := cmp.Compare(a.yMin, b.yMin); c != 0 {
			return c
		}
		return compareEdges(&a, &b)
	})

	yMax = min(yMax, height)
	return Rect{
		Min:  Point{X: xMin, Y: yMin},
		Size: Size{Width: xMax - xMin, Height: yMax - yMin},
	}, true
}

// scanConvert fills the interior of the polygon described by r.edges into
// off, which covers the device rectangle box.
func (r *Rasterizer) scanConvert(off *Surface, box Rect, p uint32) {
	r.active = r.active[:0]
	next := 0

	yEnd := box.Min.Y + box.Size.Height
	for y := box.Min.Y; y < yEnd; y++ {
		r.updateActive(y, &next)

		row := off.pix[(y-box.Min.Y)*off.width : (y-box.Min.Y+1)*off.width]
		for i := 0; i+1 < len(r.active); i += 2 {
			x0 := max(r.edges[r.active[i]].x-box.Min.X, 0)
			x1 := min(r.edges[r.active[i+1]].x-box.Min.X, off.width)
			for x := x0; x < x1; x++ {
				row[x] = p
			}
		}

		for _, idx := range r.active {
			r.edges[idx].step()
		}
		r.sortActive()
	}
}

// updateActive removes the edges which end at or before scanline y from
// the active edge list and merges in the edges starting at y.
// The active list stays sorted by (x, slope).
func (r *Rasterizer) updateActive(y int, next *int) {
	r.active = slices.DeleteFunc(r.active, func(idx int) bool {
		return r.edges[idx].yMax <= y
	})

	for *next < len(r.edges) && r.edges[*next].yMin <= y {
		idx := *next
		*next++
		if r.edges[idx].yMax <= y {
			continue
		}
		e := &r.edges[idx]
		pos := len(r.active)
		for pos > 0 && compareEdges(&r.edges[r.active[pos-1]], e) > 0 {
			pos--
		}
		r.active = slices.Insert(r.active, pos, idx)
	}
}

// sortActive restores the (x, slope) order of the active edge list after
// all edges were stepped.  Only neighbouring edges can change places
// between scanlines, so a stable insertion sort is sufficient.
func (r *Rasterizer) sortActive() {
	a := r.active
	for i := 1; i < len(a); i++ {
		idx := a[i]
		j := i
		for j > 0 && compareEdges(&r.edges[a[j-1]], &r.edges[idx]) > 0 {
			a[j] = a[j-1]
			j--
		}
		a[j] = idx
	}
}

// scratchSurface returns a cleared offscreen surface of the given size
// with the channel order of dst and an alpha channel.  The pixel buffer
// is reused across calls.
func (r *Rasterizer) scratchSurface(dst *Surface, size Size) *Surface {
	if r.scratch == nil {
		r.scratch = &Surface{}
	}
	s := r.scratch
	s.pix = allocPixels(size, s.pix)
	s.width = size.Width
	s.height = size.Height
	s.layout = dst.layout.WithAlpha()
	return s
}

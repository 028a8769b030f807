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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Point is an integer position in surface coordinates.
// The y axis points down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is an integer extent.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle given by its top-left corner and its
// size. The pixels covered are Min.X <= x < Min.X+Width and
// Min.Y <= y < Min.Y+Height.
//
// The zero Rect is used as the "no region" result.
type Rect struct {
	Min  Point
	Size Size
}

// R returns the rectangle with top-left corner (x, y) and size w×h.
func R(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Max returns the exclusive bottom-right corner of r.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Size.Empty()
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Size.Width * r.Size.Height
}

// Contains reports whether the pixel at p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.Size.Width &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.Size.Height
}

// Intersect returns the overlap of r and s, or the zero Rect if they do
// not overlap on both axes.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.Min.X, s.Min.X)
	y0 := max(r.Min.Y, s.Min.Y)
	x1 := min(r.Min.X+r.Size.Width, s.Min.X+s.Size.Width)
	y1 := min(r.Min.Y+r.Size.Height, s.Min.Y+s.Size.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}

	// The size can never exceed that of either input, even if a caller
	// passes a rectangle with a negative size.
	w := min(x1-x0, r.Size.Width, s.Size.Width)
	h := min(y1-y0, r.Size.Height, s.Size.Height)
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{Min: Point{X: x0, Y: y0}, Size: Size{Width: w, Height: h}}
}

// Intersect returns the overlap of a and b. A nil a stands for "no
// restriction", in which case b is returned unchanged.
func Intersect(a *Rect, b Rect) Rect {
	if a == nil {
		return b
	}
	return a.Intersect(b)
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Min, r.Size.Width, r.Size.Height)
}

// Geom converts r into a floating point rectangle from the geom module.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Min.X + r.Size.Width),
		URy: float64(r.Min.Y + r.Size.Height),
	}
}

// RectFromGeom returns the smallest integer rectangle which contains g.
// The y axis of g is taken to point down, like the surface y axis.
func RectFromGeom(g rect.Rect) Rect {
	x0 := int(math.Floor(min(g.LLx, g.URx)))
	y0 := int(math.Floor(min(g.LLy, g.URy)))
	x1 := int(math.Ceil(max(g.LLx, g.URx)))
	y1 := int(math.Ceil(max(g.LLy, g.URy)))
	return Rect{Min: Point{X: x0, Y: y0}, Size: Size{Width: x1 - x0, Height: y1 - y0}}
}

// Anchor names one of nine reference positions inside a rectangle.
type Anchor int

// The zero value AnchorNone places objects like AnchorNorthWest.
const (
	AnchorNone Anchor = iota
	AnchorCenter
	AnchorNorth
	AnchorNorthEast
	AnchorEast
	AnchorSouthEast
	AnchorSouth
	AnchorSouthWest
	AnchorWest
	AnchorNorthWest
)

var anchorNames = [...]string{
	AnchorNone:      "none",
	AnchorCenter:    "center",
	AnchorNorth:     "north",
	AnchorNorthEast: "northeast",
	AnchorEast:      "east",
	AnchorSouthEast: "southeast",
	AnchorSouth:     "south",
	AnchorSouthWest: "southwest",
	AnchorWest:      "west",
	AnchorNorthWest: "northwest",
}

func (a Anchor) String() string {
	if a >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// AnchorPoint returns the top-left position at which an object of size obj
// must be placed so that it touches, or is centred on, the anchor position
// a of the container.
func AnchorPoint(a Anchor, container Rect, obj Size) Point {
	left := container.Min.X
	top := container.Min.Y
	right := container.Min.X + container.Size.Width - obj.Width
	bottom := container.Min.Y + container.Size.Height - obj.Height
	midX := container.Min.X + container.Size.Width/2 - obj.Width/2
	midY := container.Min.Y + container.Size.Height/2 - obj.Height/2

	switch a {
	case AnchorCenter:
		return Point{X: midX, Y: midY}
	case AnchorNorth:
		return Point{X: midX, Y: top}
	case AnchorNorthEast:
		return Point{X: right, Y: top}
	case AnchorEast:
		return Point{X: right, Y: midY}
	case AnchorSouthEast:
		return Point{X: right, Y: bottom}
	case AnchorSouth:
		return Point{X: midX, Y: bottom}
	case AnchorSouthWest:
		return Point{X: left, Y: bottom}
	case AnchorWest:
		return Point{X: left, Y: midY}
	default:
		return Point{X: left, Y: top}
	}
}

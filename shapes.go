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
)

// Arc returns points along the circular arc around center from angle start
// to angle end (in radians, end > start).  Angles grow anticlockwise on
// screen, with 0 pointing to the right.  The first and last points are the
// exact end points of the arc; in between, points are spaced so that
// neighbouring points are about π/8 pixels apart.
func Arc(center Point, radius int, start, end float64) []Point {
	at := func(angle float64) Point {
		return Point{
			X: int(math.Floor(float64(center.X) + float64(radius)*math.Cos(angle))),
			Y: int(math.Floor(float64(center.Y) - float64(radius)*math.Sin(angle))),
		}
	}
	if radius <= 0 {
		return []Point{center}
	}

	step := math.Pi / float64(8*radius)
	n := int(math.Ceil((end-start)/step)) + 1
	pts := make([]Point, 0, max(n, 2))
	pts = append(pts, at(start))
	for angle := start + step; angle < end; angle += step {
		pts = append(pts, at(angle))
	}
	pts = append(pts, at(end))
	return pts
}

// FramePart selects which part of a rounded frame is returned by
// RoundedFrame.
type FramePart int

const (
	// FrameWhole is the complete outline.
	FrameWhole FramePart = iota

	// FrameUpper is the upper-left half, cut along the diagonal through
	// the top-right and bottom-left corners.
	FrameUpper

	// FrameLower is the lower-right half, complementary to FrameUpper.
	FrameLower
)

// RoundedFrame returns the outline of the rectangle r with corners rounded
// to the given radius, or one of its two diagonal halves. Together the
// two halves cover the whole frame; buttons use them to draw raised and
// sunken borders.
func RoundedFrame(r Rect, radius int, part FramePart) []Point {
	x, y := r.Min.X, r.Min.Y
	w, h := r.Size.Width, r.Size.Height

	topLeft := Point{X: x + radius, Y: y + radius}
	bottomLeft := Point{X: x + radius, Y: y + h - radius}
	bottomRight := Point{X: x + w - radius, Y: y + h - radius}
	topRight := Point{X: x + w - radius, Y: y + radius}

	// points where the cut crosses the horizontal centre line
	half := h / 2
	midLeft := Point{X: x + half, Y: y + half}
	midRight := Point{X: x + w - half, Y: y + half}

	var pts []Point
	switch part {
	case FrameUpper:
		pts = append(pts, Arc(topLeft, radius, math.Pi/2, math.Pi)...)
		pts = append(pts, Arc(bottomLeft, radius, math.Pi, 5*math.Pi/4)...)
		pts = append(pts, midLeft, midRight)
		pts = append(pts, Arc(topRight, radius, math.Pi/4, math.Pi/2)...)
	case FrameLower:
		pts = append(pts, Arc(bottomLeft, radius, 5*math.Pi/4, 3*math.Pi/2)...)
		pts = append(pts, Arc(bottomRight, radius, 3*math.Pi/2, 2*math.Pi)...)
		pts = append(pts, Arc(topRight, radius, 0, math.Pi/4)...)
		pts = append(pts, midRight, midLeft)
	default:
		pts = append(pts, Arc(topLeft, radius, math.Pi/2, math.Pi)...)
		pts = append(pts, Arc(bottomLeft, radius, math.Pi, 3*math.Pi/2)...)
		pts = append(pts, Arc(bottomRight, radius, 3*math.Pi/2, 2*math.Pi)...)
		pts = append(pts, Arc(topRight, radius, 0, math.Pi/2)...)
	}
	return pts
}

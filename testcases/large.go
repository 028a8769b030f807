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

// largeCases contains test cases with many scanlines and many polygons,
// so that the edge tables and the offscreen buffer of the rasterizer are
// grown and reused.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{},
		Pixels: 412 * 412,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{},
		Pixels: 64 * 56 * 56,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{},
		Pixels: 512 * 300,
	},
	{
		Name:   "large_circle",
		Path:   circle(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Fill{},
	},
	{
		Name:   "large_window_clip",
		Path:   circle(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Fill{},
		Clip:   rectFromCorners(100, 100, 300, 200),
		Pixels: 200 * 100,
	},
}

// rectangleGrid builds a grid of rectangles, one subpath per cell.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var cells []path.Path
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			cells = append(cells, rectangle(x1, y1, x2, y2))
		}
	}
	return concat(cells...)
}

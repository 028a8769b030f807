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
	"math"

	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Op:     Fill{},
		CTM:    matrix.Matrix{2, 0, 0, 2, 24, 24},
		Pixels: 40 * 40,
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{0.5, 0, 0, 0.5, 12, 12},
		Pixels: 40 * 40,
	},
	{
		Name:   "scale_10x",
		Path:   rectangle(0, 0, 4, 4),
		Width:  128,
		Height: 128,
		Op:     Fill{},
		CTM:    matrix.Matrix{10, 0, 0, 10, 44, 44},
		Pixels: 40 * 40,
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    rotateAround(45, 32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   rectangle(-15, -10, 15, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{0, 1, -1, 0, 32, 32},
		Pixels: 20 * 30,
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    rotateAround(5, 32, 32),
	},

	// non-uniform scaling
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 25),
		Width:  128,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{2, 0, 0, 1, 64, 32},
	},

	// shear
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
	},
	{
		Name:   "shear_vertical",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{1, 0.5, 0, 1, 32, 32},
	},

	// flipped y axis, as used for PDF-style user space
	{
		Name:   "flip_y",
		Path:   triangle(10, 10, 54, 10, 32, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
	{
		Name:   "rotated_outline",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		CTM:    rotateAround(30, 32, 32),
	},
}

// rotateAround returns a rotation by deg degrees, followed by a
// translation to (cx, cy).
func rotateAround(deg, cx, cy float64) matrix.Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{c, s, -s, c, cx, cy}
}

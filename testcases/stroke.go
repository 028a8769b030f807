package testcases

import (
	"seehuhn.de/go/geom/path"
)

var strokeCases = []TestCase{
	{
		Name:   "horizontal",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 45,
	},
	{
		Name:   "vertical",
		Path:   polyline(pt(32, 10), pt(32, 54)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 45,
	},
	{
		Name:   "diagonal",
		Path:   polyline(pt(10, 10), pt(50, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 41,
	},
	{
		Name:   "steep",
		Path:   polyline(pt(20, 5), pt(30, 60)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 56,
	},
	{
		Name:   "shallow_reverse",
		Path:   polyline(pt(60, 40), pt(4, 30)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 57,
	},
	{
		Name:   "corner",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "closed_rectangle",
		Path:   rectangle(10, 10, 50, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 140,
	},
	{
		Name:   "closed_triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "single_point",
		Path:   polyline(pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 1,
	},
	{
		Name:   "clipped_line",
		Path:   horizontalLine(0, 32, 63),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Clip:   rectFromCorners(0, 0, 5, 64),
		Pixels: 5,
	},
	{
		Name:   "partly_offscreen",
		Path:   polyline(pt(-20, 32), pt(40, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		Pixels: 41,
	},
	{
		Name:   "zigzag",
		Path:   polyline(pt(4, 50), pt(16, 14), pt(28, 50), pt(40, 14), pt(52, 50), pt(60, 30)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return polyline(pt(x1, y), pt(x2, y))
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polyline(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

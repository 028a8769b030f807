package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Pixels: 44 * 44,
	},
	{
		Name:   "square_20",
		Path:   rectangle(20, 20, 40, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Pixels: 400,
	},
	{
		Name:   "diamond",
		Path:   diamond(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "clockwise",
		Path:   polygon(pt(10, 10), pt(10, 40), pt(40, 40), pt(40, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Pixels: 900,
	},
	{
		Name:   "concave",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 56), pt(32, 24), pt(8, 56)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "top_left_offscreen",
		Path:   rectangle(-10, -10, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Pixels: 400,
	},
	{
		Name:   "bottom_right_offscreen",
		Path:   rectangle(50, 50, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Pixels: 14 * 14,
	},
	{
		Name:   "fully_offscreen",
		Path:   rectangle(70, 70, 90, 90),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "clipped",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		Clip:   rectFromCorners(20, 20, 30, 40),
		Pixels: 10 * 20,
	},
	{
		Name:   "collinear",
		Path:   polygon(pt(10, 10), pt(20, 20), pt(30, 30)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "thin_sliver",
		Path:   polygon(pt(5, 30), pt(60, 31), pt(5, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	// five points, connecting every second point
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// diamond builds a diamond (rotated square) path.
func diamond(cx, cy, r float64) path.Path {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

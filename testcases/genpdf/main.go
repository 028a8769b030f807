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

// Command genpdf generates reference images for the rasterizer tests.
// It creates PDFs from test cases and renders them to PNGs using
// Ghostscript.  Next to every reference image, the image produced by
// softdraw is written, so that the two can be compared side by side.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/softdraw"
	"seehuhn.de/go/softdraw/testcases"
)

func main() {
	refDir := flag.String("d", "testdata/reference", "output directory")
	skipGS := flag.Bool("no-gs", false, "write PDF files only, do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		slog.Error("cannot create output directory", "err", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, *refDir, name, !*skipGS); err != nil {
				slog.Error("cannot generate reference", "name", name, "err", err)
				os.Exit(1)
			}
		}
	}
}

func generate(tc testcases.TestCase, dir, name string, runGS bool) error {
	pdfPath := filepath.Join(dir, name+".pdf")
	pngPath := filepath.Join(dir, name+".png")
	ownPath := filepath.Join(dir, name+".softdraw.png")

	if err := generatePDF(tc, pdfPath); err != nil {
		return err
	}
	if runGS {
		if err := renderPNG(pdfPath, pngPath); err != nil {
			return err
		}
		if tc.HasClip() {
			if err := maskPNG(pngPath, softdraw.RectFromGeom(tc.Clip)); err != nil {
				return err
			}
		}
	}

	dst := softdraw.NewSurface(softdraw.Sz(tc.Width, tc.Height), softdraw.LayoutARGB)
	softdraw.Fill(dst, &softdraw.Black, nil)
	softdraw.RenderExample(tc, dst, softdraw.White)
	return writePNG(ownPath, dst)
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, white shapes
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	// Set stroke parameters before path construction (PDF requirement)
	if _, ok := tc.Op.(testcases.Stroke); ok {
		page.SetLineWidth(1)
		page.SetLineCap(graphics.LineCapSquare)
		page.SetLineJoin(graphics.LineJoinMiter)
	}

	// PDF has no quadratic curves, so these are raised to cubics.
	var current vec.Vec2
	for cmd, pts := range tc.Path {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdQuadTo:
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			current = pts[1]
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			current = pts[2]
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch tc.Op.(type) {
	case testcases.Fill:
		// the scanline fill pairs up crossings, which is the even-odd rule
		page.FillEvenOdd()
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// maskPNG blackens all pixels of the image file outside clip.
func maskPNG(pngPath string, clip softdraw.Rect) error {
	f, err := os.Open(pngPath)
	if err != nil {
		return err
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	s := softdraw.SurfaceFromImage(img, softdraw.LayoutARGB)
	masked := softdraw.NewSurface(s.Size(), softdraw.LayoutARGB)
	softdraw.Fill(masked, &softdraw.Black, nil)
	if err := softdraw.Copy(masked, &clip, s, &clip, false); err != nil {
		return fmt.Errorf("mask %s: %w", pngPath, err)
	}
	return writePNG(pngPath, masked)
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

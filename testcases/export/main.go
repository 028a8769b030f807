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

// Command export writes the test case definitions to JSON, together with
// the integer contours the rasterizer sees after flattening.
// Run from the softdraw module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/softdraw"
	"seehuhn.de/go/softdraw/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		slog.Error("cannot create output directory", "err", err)
		os.Exit(1)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		slog.Error("cannot create output file", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("cannot write test cases", "file", *outFile, "err", err)
		os.Exit(1)
	}
	slog.Info("test cases exported", "file", *outFile, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Path     []jsonSegment `json:"path"`
	Op       string        `json:"op"`
	CTM      []float64     `json:"ctm,omitempty"`
	Clip     []int         `json:"clip,omitempty"`
	Pixels   int           `json:"pixels,omitempty"`
	Contours []jsonContour `json:"contours"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonContour struct {
	Points [][2]int `json:"points"`
	Closed bool     `json:"closed,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
		Pixels: tc.Pixels,
	}

	switch tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
	case testcases.Stroke:
		jtc.Op = "stroke"
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	if tc.HasClip() {
		r := softdraw.RectFromGeom(tc.Clip)
		jtc.Clip = []int{r.Min.X, r.Min.Y, r.Size.Width, r.Size.Height}
	}

	for _, c := range softdraw.Contours(tc.Path, tc.CTM, softdraw.DefaultFlatness) {
		jc := jsonContour{Closed: c.Closed}
		for _, p := range c.Points {
			jc.Points = append(jc.Points, [2]int{p.X, p.Y})
		}
		jtc.Contours = append(jtc.Contours, jc)
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

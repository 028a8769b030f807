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
// Command preview shows softdraw output in a terminal.
//
// Every character cell displays two pixels, using the upper half block
// character with the upper pixel as foreground and the lower pixel as
// background color.  By default a small window with widgets is shown;
// clicking on a widget displays its name, found through the picking
// surface.  With -case, a single test case is shown instead.
//
// Press q or Escape to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/softdraw"
	"seehuhn.de/go/softdraw/testcases"
)

func main() {
	caseName := flag.String("case", "", "show the test case with this name (category_name)")
	list := flag.Bool("list", false, "list the test case names and exit")
	logFile := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	if *list {
		for _, name := range slices.Sorted(maps.Keys(allCases())) {
			fmt.Println(name)
		}
		return
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		softdraw.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var tc *testcases.TestCase
	if *caseName != "" {
		c, ok := allCases()[*caseName]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown test case %q, use -list\n", *caseName)
			os.Exit(1)
		}
		tc = &c
	}

	if err := run(tc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func allCases() map[string]testcases.TestCase {
	res := make(map[string]testcases.TestCase)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			res[category+"_"+tc.Name] = tc
		}
	}
	return res
}

type viewer struct {
	screen tcell.Screen
	tc     *testcases.TestCase

	visible *softdraw.Surface
	picker  *softdraw.Picker
	names   map[uint32]string
	status  string
}

func run(tc *testcases.TestCase) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := &viewer{screen: screen, tc: tc}
	v.status = "click on a widget, q to quit"
	if tc != nil {
		v.status = tc.Name + ", q to quit"
	}
	if err := v.layout(); err != nil {
		return err
	}
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			if err := v.layout(); err != nil {
				return err
			}
			screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			v.click(softdraw.Pt(x, 2*y))
			v.draw()
		}
	}
}

// layout allocates surfaces matching the terminal size and paints the
// scene.
func (v *viewer) layout() error {
	cols, rows := v.screen.Size()
	size := softdraw.Sz(cols, 2*(rows-1))
	if v.tc != nil {
		size = softdraw.Sz(v.tc.Width, v.tc.Height)
	}
	if size.Empty() {
		return nil
	}

	v.visible = softdraw.NewSurface(size, softdraw.LayoutXRGB)
	v.picker = softdraw.NewPicker(size, softdraw.LayoutXRGB)
	v.names = make(map[uint32]string)

	v.visible.Lock()
	defer v.visible.Unlock()
	if v.tc != nil {
		softdraw.Fill(v.visible, &softdraw.Black, nil)
		softdraw.RenderExample(*v.tc, v.visible, softdraw.White)
		return nil
	}
	return v.paintWidgets(size)
}

// paintWidgets draws a window with a few widgets onto the visible and
// the picking surface.
func (v *viewer) paintWidgets(size softdraw.Size) error {
	p := softdraw.NewPainter(v.visible, v.picker.Surface())
	v.picker.Clear(nil)

	newID := func(name string) (uint32, error) {
		id, err := v.picker.NewID()
		if err != nil {
			return 0, err
		}
		v.names[id] = name
		return id, nil
	}

	bg := softdraw.Color{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	root, err := newID("toplevel")
	if err != nil {
		return err
	}
	p.Frame(root, softdraw.Rect{Size: size}, bg, softdraw.ReliefNone, 0, nil)

	panel := softdraw.R(2, 2, size.Width-4, size.Height-4)
	panelID, err := newID("panel")
	if err != nil {
		return err
	}
	p.Frame(panelID, panel, bg, softdraw.ReliefSunken, 2, nil)

	buttons := []struct {
		name   string
		color  softdraw.Color
		relief softdraw.Relief
		anchor softdraw.Anchor
	}{
		{"ok", softdraw.Color{R: 0x40, G: 0xA0, B: 0x40, A: 0xFF}, softdraw.ReliefRaised, softdraw.AnchorSouthEast},
		{"cancel", softdraw.Color{R: 0xC0, G: 0x40, B: 0x40, A: 0xFF}, softdraw.ReliefRaised, softdraw.AnchorSouthWest},
		{"help", softdraw.Color{R: 0x40, G: 0x60, B: 0xC0, A: 0xFF}, softdraw.ReliefSunken, softdraw.AnchorNorthEast},
	}
	inner := softdraw.R(panel.Min.X+4, panel.Min.Y+4, panel.Size.Width-8, panel.Size.Height-8)
	if inner.Size.Width < 12 || inner.Size.Height < 12 {
		return nil
	}
	bSize := softdraw.Sz(min(24, inner.Size.Width/3), min(10, inner.Size.Height/3))
	for _, b := range buttons {
		id, err := newID(b.name)
		if err != nil {
			return err
		}
		at := softdraw.AnchorPoint(b.anchor, inner, bSize)
		p.Button(id, softdraw.Rect{Min: at, Size: bSize}, b.color, b.relief, 2, 3, &panel)
	}

	// a translucent star, partly covering the panel border
	starID, err := newID("star")
	if err != nil {
		return err
	}
	c := softdraw.AnchorPoint(softdraw.AnchorCenter, inner, softdraw.Size{})
	r := min(inner.Size.Width, inner.Size.Height) / 3
	star := []softdraw.Point{
		{X: c.X, Y: c.Y - r},
		{X: c.X + r*59/100, Y: c.Y + r*81/100},
		{X: c.X - r*95/100, Y: c.Y - r*31/100},
		{X: c.X + r*95/100, Y: c.Y - r*31/100},
		{X: c.X - r*59/100, Y: c.Y + r*81/100},
	}
	p.Polygon(starID, star, softdraw.Color{R: 0xFF, G: 0xD0, B: 0x00, A: 0xA0}, &panel)
	outline := append(slices.Clone(star), star[0])
	p.Polyline(starID, outline, softdraw.Black, &panel)
	return nil
}

func (v *viewer) click(pt softdraw.Point) {
	if v.tc != nil || v.picker == nil {
		return
	}
	id, ok := v.picker.Pick(pt)
	if !ok {
		v.status = "nothing at " + pt.String()
		return
	}
	v.status = fmt.Sprintf("%s (id %d) at %v", v.names[id], id, pt)
}

// draw copies the visible surface to the terminal.
func (v *viewer) draw() {
	v.screen.Clear()
	if v.visible != nil {
		size := v.visible.Size()
		for y := 0; y < size.Height; y += 2 {
			for x := range size.Width {
				top := v.visible.ColorAt(x, y)
				bottom := top
				if y+1 < size.Height {
					bottom = v.visible.ColorAt(x, y+1)
				}
				style := tcell.StyleDefault.
					Foreground(tcellColor(top)).
					Background(tcellColor(bottom))
				v.screen.SetContent(x, y/2, '▀', nil, style)
			}
		}
	}

	_, rows := v.screen.Size()
	for i, r := range []rune(strings.TrimSpace(v.status)) {
		v.screen.SetContent(i, rows-1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func tcellColor(c softdraw.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

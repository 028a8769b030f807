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
)

// MaxPickID is the number of distinct picking ids. Ids must be smaller
// than this value, so that they fit into the three color channels.
const MaxPickID = 1 << 24

// IDToColor returns the opaque picking color for id.
// It panics if id is not smaller than MaxPickID.
func IDToColor(id uint32) Color {
	if id >= MaxPickID {
		panic(fmt.Sprintf("softdraw: picking id %d out of range", id))
	}
	return Color{
		R: uint8(id >> 16),
		G: uint8(id >> 8),
		B: uint8(id),
		A: 0xFF,
	}
}

// ColorToID returns the picking id encoded by c. The alpha channel is
// ignored.
func ColorToID(c Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Picker owns the hidden picking surface of an application window and
// hands out picking ids.  Every widget paints its shape onto the picking
// surface in its own flat picking color, so that the widget under a
// given pixel can be found by reading back a single pixel.
//
// Id 0 is reserved for the background; it is the color the picking
// surface is cleared to.
type Picker struct {
	surface *Surface
	next    uint32
}

// NewPicker allocates a picking surface of the given size.
func NewPicker(size Size, layout Layout) *Picker {
	return &Picker{
		surface: NewSurface(size, layout),
		next:    1,
	}
}

// Surface returns the picking surface.
func (p *Picker) Surface() *Surface {
	return p.surface
}

// NewID returns a fresh picking id. Ids are handed out in increasing
// order and are never reused.
func (p *Picker) NewID() (uint32, error) {
	if p.next >= MaxPickID {
		return 0, ErrPickIDsExhausted
	}
	id := p.next
	p.next++
	return id, nil
}

// Clear resets the picking surface to the background id, inside clip.
func (p *Picker) Clear(clip *Rect) {
	bg := IDToColor(0)
	Fill(p.surface, &bg, clip)
}

// Pick returns the picking id painted at pt. The result is false if pt
// lies outside the surface or no widget was painted there.
func (p *Picker) Pick(pt Point) (uint32, bool) {
	if !p.surface.Rect().Contains(pt) {
		return 0, false
	}
	c, _ := p.surface.layout.Unpack(p.surface.PixelAt(pt.X, pt.Y))
	id := ColorToID(c)
	return id, id != 0
}

// Painter draws widget shapes onto a visible surface and the matching
// picking surface at the same time, so that the two stay pixel-exact
// copies of each other apart from their colors.
type Painter struct {
	Visible *Surface
	Picking *Surface

	r Rasterizer
}

// NewPainter returns a Painter which draws to the given surfaces.
// The two surfaces must have the same size.
func NewPainter(visible, picking *Surface) *Painter {
	return &Painter{Visible: visible, Picking: picking}
}

// Fill fills clip with c on the visible surface and with the picking color
// of id on the picking surface.
func (p *Painter) Fill(id uint32, c Color, clip *Rect) {
	pc := IDToColor(id)
	Fill(p.Visible, &c, clip)
	Fill(p.Picking, &pc, clip)
}

// Polygon fills the polygon pts on both surfaces.
func (p *Painter) Polygon(id uint32, pts []Point, c Color, clip *Rect) {
	p.r.Clip = clip
	p.r.Polygon(p.Visible, pts, c)
	p.r.Polygon(p.Picking, pts, IDToColor(id))
}

// Polyline draws the polyline pts on both surfaces.
func (p *Painter) Polyline(id uint32, pts []Point, c Color, clip *Rect) {
	p.r.Clip = clip
	p.r.Polyline(p.Visible, pts, c)
	p.r.Polyline(p.Picking, pts, IDToColor(id))
}

// Relief selects how the border of a frame is shaded.
type Relief int

// Supported border styles.
const (
	ReliefNone Relief = iota
	ReliefRaised
	ReliefSunken
)

// Frame draws a rectangular widget frame: the interior in c and, unless
// relief is ReliefNone, a border of the given width using the lighter and
// darker variants of c.  The whole rectangle is assigned to id on the
// picking surface.
func (p *Painter) Frame(id uint32, r Rect, c Color, relief Relief, border int, clip *Rect) {
	area := Intersect(clip, r)
	if area.Empty() {
		return
	}
	p.Fill(id, c, &area)
	if relief == ReliefNone || border <= 0 {
		return
	}

	light, dark := c.Lighter(), c.Darker()
	if relief == ReliefSunken {
		light, dark = dark, light
	}
	w, h := r.Size.Width, r.Size.Height
	x, y := r.Min.X, r.Min.Y
	topLeft := []Rect{
		R(x, y, w, border),
		R(x, y, border, h-border),
	}
	bottomRight := []Rect{
		R(x, y+h-border, w, border),
		R(x+w-border, y+border, border, h-border),
	}
	for _, b := range topLeft {
		if part := b.Intersect(area); !part.Empty() {
			Fill(p.Visible, &light, &part)
		}
	}
	for _, b := range bottomRight {
		if part := b.Intersect(area); !part.Empty() {
			Fill(p.Visible, &dark, &part)
		}
	}
}

// Button draws a button with rounded corners: the upper and lower halves
// of the border in the two relief shades and the face in c.  On the
// picking surface, the full outline is assigned to id.
func (p *Painter) Button(id uint32, r Rect, c Color, relief Relief, border, radius int, clip *Rect) {
	light, dark := c.Lighter(), c.Darker()
	if relief == ReliefSunken {
		light, dark = dark, light
	}

	upper := RoundedFrame(r, radius, FrameUpper)
	lower := RoundedFrame(r, radius, FrameLower)
	p.Polygon(id, upper, light, clip)
	p.Polygon(id, lower, dark, clip)

	face := R(r.Min.X+border, r.Min.Y+border, r.Size.Width-2*border, r.Size.Height-2*border)
	if face.Empty() {
		return
	}
	p.r.Clip = clip
	p.r.Polygon(p.Visible, RoundedFrame(face, radius, FrameWhole), c)
}

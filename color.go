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
	"image/color"
)

// Color is a non-premultiplied RGBA color with 8 bits per channel.
// An alpha value of 0xFF is fully opaque.
type Color struct {
	R, G, B, A uint8
}

// Some frequently used colors.
var (
	Black = Color{0, 0, 0, 0xFF}
	White = Color{0xFF, 0xFF, 0xFF, 0xFF}
)

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Opaque returns c with the alpha channel set to 0xFF.
func (c Color) Opaque() Color {
	c.A = 0xFF
	return c
}

// reliefStep is the per-channel offset used for the light and dark
// variations of a widget color.
const reliefStep = 10

// Lighter returns an opaque, slightly lighter version of c.
// This is used for the lit side of raised borders.
func (c Color) Lighter() Color {
	return Color{
		R: uint8(min(int(c.R)+reliefStep, 0xFF)),
		G: uint8(min(int(c.G)+reliefStep, 0xFF)),
		B: uint8(min(int(c.B)+reliefStep, 0xFF)),
		A: 0xFF,
	}
}

// Darker returns an opaque, slightly darker version of c.
func (c Color) Darker() Color {
	return Color{
		R: uint8(max(int(c.R)-reliefStep, 0)),
		G: uint8(max(int(c.G)-reliefStep, 0)),
		B: uint8(max(int(c.B)-reliefStep, 0)),
		A: 0xFF,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// NoAlpha is the Layout.A value of a pixel format without alpha channel.
const NoAlpha = -1

// Layout describes the channel order of a 32-bit pixel. Each field gives
// the byte index (0 = least significant byte) which holds the channel.
type Layout struct {
	R, G, B, A int
}

// Common pixel layouts. The names list the channels from the most
// significant byte down, as they appear in a hexadecimal pixel value.
var (
	LayoutARGB = Layout{R: 2, G: 1, B: 0, A: 3}
	LayoutABGR = Layout{R: 0, G: 1, B: 2, A: 3}
	LayoutRGBA = Layout{R: 3, G: 2, B: 1, A: 0}
	LayoutXRGB = Layout{R: 2, G: 1, B: 0, A: NoAlpha}
)

// Valid reports whether the layout uses distinct byte indices in the
// range 0-3 for all its channels.
func (l Layout) Valid() bool {
	var used [4]bool
	idx := []int{l.R, l.G, l.B}
	if l.A != NoAlpha {
		idx = append(idx, l.A)
	}
	for _, i := range idx {
		if i < 0 || i > 3 || used[i] {
			return false
		}
		used[i] = true
	}
	return true
}

// HasAlpha reports whether pixels in this layout carry an alpha channel.
func (l Layout) HasAlpha() bool {
	return l.A != NoAlpha
}

// WithAlpha returns l with an alpha channel. If l has none, alpha is
// placed into the byte not used by red, green and blue.
func (l Layout) WithAlpha() Layout {
	if l.HasAlpha() {
		return l
	}
	l.A = 6 - l.R - l.G - l.B
	return l
}

// Pack converts c into a pixel value of layout l. The alpha component is
// dropped if l has no alpha channel.
func (l Layout) Pack(c Color) uint32 {
	p := uint32(c.R)<<(8*l.R) | uint32(c.G)<<(8*l.G) | uint32(c.B)<<(8*l.B)
	if l.A != NoAlpha {
		p |= uint32(c.A) << (8 * l.A)
	}
	return p
}

// Unpack converts the pixel value p of layout l into a color.
// If l has no alpha channel, hasAlpha is false and c.A is zero.
func (l Layout) Unpack(p uint32) (c Color, hasAlpha bool) {
	c.R = uint8(p >> (8 * l.R))
	c.G = uint8(p >> (8 * l.G))
	c.B = uint8(p >> (8 * l.B))
	if l.A == NoAlpha {
		return c, false
	}
	c.A = uint8(p >> (8 * l.A))
	return c, true
}

func (l Layout) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Layout{%d,%d,%d,%d}", l.R, l.G, l.B, l.A)
	}
	var names [4]byte
	for i := range names {
		names[i] = 'x'
	}
	names[3-l.R] = 'r'
	names[3-l.G] = 'g'
	names[3-l.B] = 'b'
	if l.A != NoAlpha {
		names[3-l.A] = 'a'
	}
	return string(names[:])
}

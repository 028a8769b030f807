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
	"image"
	"image/color"
	"sync"
)

// maxScratchPixels bounds the size of any surface allocated by this
// package.  Requests beyond this limit are treated like an allocation
// failure.
const maxScratchPixels = 1 << 28

// Surface is a rectangular buffer of 32-bit pixels in row-major order.
// The stride of a surface equals its width.
//
// Drawing functions never lock a surface themselves. The code which owns
// a surface brackets every sequence of drawing calls with Lock and Unlock.
type Surface struct {
	mu     sync.Mutex
	width  int
	height int
	layout Layout
	pix    []uint32
}

// NewSurface allocates a surface of the given size, with all pixels set to
// zero.  NewSurface panics with an *AllocError if the size is negative or
// too large, and if layout is not a valid channel layout.
func NewSurface(size Size, layout Layout) *Surface {
	if !layout.Valid() {
		panic(fmt.Sprintf("softdraw: invalid pixel layout %v", layout))
	}
	return &Surface{
		width:  size.Width,
		height: size.Height,
		layout: layout,
		pix:    allocPixels(size, nil),
	}
}

// NewScratch allocates an offscreen surface of the given size which uses
// the channel order of like. The scratch surface always has an alpha
// channel, even if like has none.
func NewScratch(like *Surface, size Size) *Surface {
	return NewSurface(size, like.layout.WithAlpha())
}

// allocPixels returns a zeroed pixel buffer for a surface of the given
// size, reusing buf if it has enough capacity.
func allocPixels(size Size, buf []uint32) []uint32 {
	w, h := size.Width, size.Height
	if w < 0 || h < 0 || (h > 0 && w > maxScratchPixels/h) {
		panic(&AllocError{Size: size})
	}
	n := w * h
	if cap(buf) >= n {
		buf = buf[:n]
		clear(buf)
		return buf
	}
	return make([]uint32, n)
}

// SurfaceFromImage returns a new surface with the given layout holding a
// copy of img. Pixel (0, 0) of the surface corresponds to
// img.Bounds().Min.
func SurfaceFromImage(img image.Image, layout Layout) *Surface {
	b := img.Bounds()
	s := NewSurface(Size{Width: b.Dx(), Height: b.Dy()}, layout)
	for y := range s.height {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = layout.Pack(Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return s
}

// Lock acquires exclusive access to the pixel buffer.
func (s *Surface) Lock() {
	s.mu.Lock()
}

// Unlock releases the lock acquired by Lock.
func (s *Surface) Unlock() {
	s.mu.Unlock()
}

// Size returns the dimensions of the surface.
func (s *Surface) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Rect returns the rectangle covered by the surface, with top-left
// corner (0, 0).
func (s *Surface) Rect() Rect {
	return Rect{Size: Size{Width: s.width, Height: s.height}}
}

// Layout returns the channel order of the surface pixels.
func (s *Surface) Layout() Layout {
	return s.layout
}

// Pix returns the underlying pixel buffer. Pixel (x, y) is stored at
// index y*width + x.
func (s *Surface) Pix() []uint32 {
	return s.pix
}

// offset returns the buffer index of pixel (x, y).
// It panics if the pixel lies outside the surface.
func (s *Surface) offset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic(fmt.Sprintf("softdraw: pixel (%d,%d) outside %dx%d surface",
			x, y, s.width, s.height))
	}
	return y*s.width + x
}

// PixelAt returns the raw value of pixel (x, y).
func (s *Surface) PixelAt(x, y int) uint32 {
	return s.pix[s.offset(x, y)]
}

// SetPixel sets the raw value of pixel (x, y).
func (s *Surface) SetPixel(x, y int, p uint32) {
	s.pix[s.offset(x, y)] = p
}

// ColorAt returns the color of pixel (x, y). Pixels of surfaces without
// alpha channel are reported as opaque.
func (s *Surface) ColorAt(x, y int) Color {
	c, hasAlpha := s.layout.Unpack(s.PixelAt(x, y))
	if !hasAlpha {
		c.A = 0xFF
	}
	return c
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}
	}
	c := s.ColorAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

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
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(Sz(7, 3), LayoutRGBA)
	if s.Size() != Sz(7, 3) {
		t.Errorf("size %v", s.Size())
	}
	if len(s.Pix()) != 21 {
		t.Errorf("buffer has %d pixels", len(s.Pix()))
	}
	for i, p := range s.Pix() {
		if p != 0 {
			t.Fatalf("pixel %d not cleared", i)
		}
	}
	if s.Bounds() != image.Rect(0, 0, 7, 3) {
		t.Errorf("bounds %v", s.Bounds())
	}
}

func TestNewSurfaceTooLarge(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		var allocErr *AllocError
		if !ok || !errors.As(err, &allocErr) {
			t.Fatalf("expected *AllocError panic, got %v", r)
		}
		if allocErr.Size != Sz(1<<20, 1<<20) {
			t.Errorf("wrong size in error: %v", allocErr.Size)
		}
	}()
	NewSurface(Sz(1<<20, 1<<20), LayoutARGB)
}

func TestNewSurfaceInvalidLayout(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid layout accepted")
		}
	}()
	NewSurface(Sz(1, 1), Layout{R: 0, G: 0, B: 0, A: 0})
}

func TestNewScratch(t *testing.T) {
	screen := NewSurface(Sz(10, 10), LayoutXRGB)
	s := NewScratch(screen, Sz(4, 4))
	if !s.Layout().HasAlpha() {
		t.Error("scratch surface has no alpha channel")
	}
	if s.Layout().R != screen.Layout().R || s.Layout().B != screen.Layout().B {
		t.Errorf("scratch layout %v does not match %v", s.Layout(), screen.Layout())
	}
}

func TestAllocPixelsReuse(t *testing.T) {
	buf := allocPixels(Sz(10, 10), nil)
	buf[5] = 0xDEADBEEF
	again := allocPixels(Sz(5, 5), buf)
	if &again[0] != &buf[0] {
		t.Error("buffer was not reused")
	}
	if again[5] != 0 {
		t.Error("reused buffer was not cleared")
	}
}

func TestColorAt(t *testing.T) {
	s := NewSurface(Sz(2, 2), LayoutXRGB)
	s.SetPixel(1, 1, 0x00102030)
	c := s.ColorAt(1, 1)
	if c != (Color{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("got %v", c)
	}
}

func TestPixelOutOfRange(t *testing.T) {
	s := NewSurface(Sz(2, 2), LayoutARGB)
	defer func() {
		if recover() == nil {
			t.Error("out of range access did not panic")
		}
	}()
	s.PixelAt(2, 0)
}

func TestSurfaceFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	img.SetNRGBA(6, 6, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	s := SurfaceFromImage(img, LayoutABGR)
	if s.Size() != Sz(3, 2) {
		t.Fatalf("size %v", s.Size())
	}
	if c := s.ColorAt(1, 1); c != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("got %v", c)
	}
	if got := s.At(1, 1).(color.NRGBA); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("At: got %v", got)
	}
}

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
	"slices"
	"testing"
)

func TestFill(t *testing.T) {
	s := NewSurface(Sz(10, 10), LayoutARGB)
	red := Color{R: 0xFF, A: 0xFF}
	clip := R(2, 3, 4, 5)
	Fill(s, &red, &clip)

	for y := range 10 {
		for x := range 10 {
			c := s.ColorAt(x, y)
			inside := clip.Contains(Pt(x, y))
			if inside && c != red {
				t.Errorf("(%d, %d) = %v, expected %v", x, y, c, red)
			} else if !inside && c != (Color{}) {
				t.Errorf("(%d, %d) = %v outside clip", x, y, c)
			}
		}
	}
}

func TestFillDefaults(t *testing.T) {
	s := NewSurface(Sz(3, 3), LayoutRGBA)
	Fill(s, nil, nil)
	for i, p := range s.Pix() {
		if p != LayoutRGBA.Pack(Black) {
			t.Fatalf("pixel %d = %08x", i, p)
		}
	}
}

func TestFillClipOutside(t *testing.T) {
	s := NewSurface(Sz(3, 3), LayoutARGB)
	clip := R(5, 5, 2, 2)
	Fill(s, &White, &clip)
	for i, p := range s.Pix() {
		if p != 0 {
			t.Fatalf("pixel %d written", i)
		}
	}
}

func TestCopyRaw(t *testing.T) {
	src := NewSurface(Sz(4, 4), LayoutARGB)
	src.SetPixel(1, 1, 0x12345678)
	dst := NewSurface(Sz(4, 4), LayoutARGB)

	sr := R(1, 1, 2, 2)
	dr := R(2, 2, 2, 2)
	if err := Copy(dst, &dr, src, &sr, false); err != nil {
		t.Fatal(err)
	}
	if p := dst.PixelAt(2, 2); p != 0x12345678 {
		t.Errorf("got %08x, expected raw copy including alpha", p)
	}
}

func TestCopyBlend(t *testing.T) {
	src := NewSurface(Sz(1, 1), LayoutARGB)
	src.SetPixel(0, 0, LayoutARGB.Pack(Color{R: 255, A: 128}))
	dst := NewSurface(Sz(1, 1), LayoutABGR)
	Fill(dst, &Color{A: 10}, nil)

	if err := Copy(dst, nil, src, nil, true); err != nil {
		t.Fatal(err)
	}
	got := dst.ColorAt(0, 0)
	want := Color{R: 128, A: 0xFF}
	if got != want {
		t.Errorf("got %v, expected %v", got, want)
	}
}

func TestCopySizeMismatch(t *testing.T) {
	src := NewSurface(Sz(4, 4), LayoutARGB)
	Fill(src, &White, nil)
	dst := NewSurface(Sz(4, 4), LayoutARGB)
	before := slices.Clone(dst.Pix())

	sr := R(0, 0, 2, 2)
	dr := R(0, 0, 3, 2)
	err := Copy(dst, &dr, src, &sr, false)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("got %v, expected ErrSizeMismatch", err)
	}
	if !slices.Equal(before, dst.Pix()) {
		t.Error("destination modified")
	}
}

func TestCopyBlendNoAlpha(t *testing.T) {
	src := NewSurface(Sz(2, 2), LayoutXRGB)
	dst := NewSurface(Sz(2, 2), LayoutARGB)
	if err := Copy(dst, nil, src, nil, true); !errors.Is(err, ErrNoAlpha) {
		t.Errorf("got %v, expected ErrNoAlpha", err)
	}
}

func TestCopyClipped(t *testing.T) {
	src := NewSurface(Sz(4, 4), LayoutARGB)
	Fill(src, &White, nil)
	dst := NewSurface(Sz(4, 4), LayoutARGB)

	// half of the destination region lies outside dst
	dr := R(2, 0, 4, 4)
	if err := Copy(dst, &dr, src, nil, false); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := Color{}
			if x >= 2 {
				want = White
			}
			if c := dst.ColorAt(x, y); c != want {
				t.Errorf("(%d, %d) = %v, expected %v", x, y, c, want)
			}
		}
	}
}

func TestBlit(t *testing.T) {
	src := NewSurface(Sz(4, 4), LayoutARGB)
	for y := range 4 {
		for x := range 4 {
			src.SetPixel(x, y, LayoutARGB.Pack(Color{R: uint8(x), G: uint8(y), A: 0xFF}))
		}
	}
	dst := NewSurface(Sz(10, 10), LayoutXRGB)

	clip := R(6, 6, 10, 10)
	if err := Blit(dst, Pt(5, 5), src, nil, &clip); err != nil {
		t.Fatal(err)
	}
	for y := range 10 {
		for x := range 10 {
			c := dst.ColorAt(x, y)
			if x >= 6 && x < 9 && y >= 6 && y < 9 {
				want := Color{R: uint8(x - 5), G: uint8(y - 5), A: 0xFF}
				if c != want {
					t.Errorf("(%d, %d) = %v, expected %v", x, y, c, want)
				}
			} else if c != (Color{A: 0xFF}) {
				t.Errorf("(%d, %d) = %v written outside clip", x, y, c)
			}
		}
	}
}

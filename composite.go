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

// Fill sets every pixel of dst inside clip to c. A nil clip fills the
// whole surface, a nil color means opaque black.
func Fill(dst *Surface, c *Color, clip *Rect) {
	col := Black
	if c != nil {
		col = *c
	}
	r := Intersect(clip, dst.Rect())
	if r.Empty() {
		return
	}

	p := dst.layout.Pack(col)
	for y := r.Min.Y; y < r.Min.Y+r.Size.Height; y++ {
		start := y*dst.width + r.Min.X
		row := dst.pix[start : start+r.Size.Width]
		for i := range row {
			row[i] = p
		}
	}
}

// Copy transfers the pixels of the region srcRect of src to the region
// dstRect of dst. A nil rectangle stands for the whole surface. Both
// regions must have the same size, otherwise ErrSizeMismatch is returned
// and dst is not modified.
//
// If blend is false, pixel values are copied verbatim, including the alpha
// byte.  If blend is true, each source pixel is composited over the
// destination pixel using the source alpha, and the destination becomes
// opaque.  Blending requires a source with alpha channel; for other
// sources ErrNoAlpha is returned.
//
// Parts of the regions which fall outside either surface are skipped.
func Copy(dst *Surface, dstRect *Rect, src *Surface, srcRect *Rect, blend bool) error {
	dr := dst.Rect()
	if dstRect != nil {
		dr = *dstRect
	}
	sr := src.Rect()
	if srcRect != nil {
		sr = *srcRect
	}
	if dr.Size != sr.Size {
		Logger().Debug("copy rejected", "dst", dr, "src", sr)
		return fmt.Errorf("copy %v to %v: %w", sr, dr, ErrSizeMismatch)
	}
	if blend && !src.layout.HasAlpha() {
		Logger().Debug("blend rejected", "layout", src.layout)
		return ErrNoAlpha
	}

	dr, sr = clipPair(dr, sr, dst.Rect(), src.Rect())
	if dr.Empty() {
		return nil
	}
	if blend {
		blendRect(dst, dr.Min, src, sr, 0xFF)
	} else {
		copyRect(dst, dr.Min, src, sr)
	}
	return nil
}

// clipPair shrinks the equally sized rectangles dr and sr so that dr lies
// within dBounds and sr lies within sBounds, keeping the two in
// correspondence.
func clipPair(dr, sr, dBounds, sBounds Rect) (Rect, Rect) {
	shift := sr.Min.Sub(dr.Min)

	r := dr.Intersect(dBounds)
	sBounds.Min = sBounds.Min.Sub(shift)
	r = r.Intersect(sBounds)
	if r.Empty() {
		return Rect{}, Rect{}
	}
	return r, Rect{Min: r.Min.Add(shift), Size: r.Size}
}

// copyRect copies the pixels of sr to dst at position at.
// All rectangles must already be clipped to the surfaces.
func copyRect(dst *Surface, at Point, src *Surface, sr Rect) {
	w := sr.Size.Width
	for j := range sr.Size.Height {
		d := (at.Y+j)*dst.width + at.X
		s := (sr.Min.Y+j)*src.width + sr.Min.X
		copy(dst.pix[d:d+w], src.pix[s:s+w])
	}
}

// blendRect composites the pixels of sr over dst at position at. The
// source alpha is scaled by opacity.  Destination pixels are written with
// full alpha.  All rectangles must already be clipped to the surfaces and
// src must have an alpha channel.
func blendRect(dst *Surface, at Point, src *Surface, sr Rect, opacity uint8) {
	sl := src.layout
	dl := dst.layout
	op := uint32(opacity)
	for j := range sr.Size.Height {
		d := (at.Y+j)*dst.width + at.X
		s := (sr.Min.Y+j)*src.width + sr.Min.X
		dRow := dst.pix[d : d+sr.Size.Width]
		sRow := src.pix[s : s+sr.Size.Width]
		for i, sp := range sRow {
			a := (sp >> (8 * sl.A)) & 0xFF
			if op != 0xFF {
				a = a * op / 0xFF
			}
			if a == 0 {
				continue
			}
			dp := dRow[i]
			na := 0xFF - a
			r := ((sp>>(8*sl.R))&0xFF*a + (dp>>(8*dl.R))&0xFF*na) / 0xFF
			g := ((sp>>(8*sl.G))&0xFF*a + (dp>>(8*dl.G))&0xFF*na) / 0xFF
			b := ((sp>>(8*sl.B))&0xFF*a + (dp>>(8*dl.B))&0xFF*na) / 0xFF
			out := r<<(8*dl.R) | g<<(8*dl.G) | b<<(8*dl.B)
			if dl.A != NoAlpha {
				out |= 0xFF << (8 * dl.A)
			}
			dRow[i] = out
		}
	}
}

// Blit composites the region srcRect of src (the whole surface if nil)
// onto dst, with its top-left corner placed at where.  Only the part
// which falls inside clip is drawn; the source origin is shifted to
// match.  This is how images and rendered text are placed inside a
// widget.
func Blit(dst *Surface, where Point, src *Surface, srcRect *Rect, clip *Rect) error {
	sr := src.Rect()
	if srcRect != nil {
		sr = *srcRect
	}
	placed := Rect{Min: where, Size: sr.Size}
	visible := Intersect(clip, placed)
	if visible.Empty() {
		return nil
	}
	from := Rect{
		Min:  sr.Min.Add(visible.Min.Sub(where)),
		Size: visible.Size,
	}
	return Copy(dst, &visible, src, &from, true)
}

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
	"fmt"
)

var (
	// ErrSizeMismatch is returned by Copy if the source and destination
	// regions differ in size.
	ErrSizeMismatch = errors.New("softdraw: source and destination sizes differ")

	// ErrNoAlpha is returned when blending from a surface which has no
	// alpha channel.
	ErrNoAlpha = errors.New("softdraw: source surface has no alpha channel")

	// ErrPickIDsExhausted is returned by Picker.NewID once all picking
	// colors are in use.
	ErrPickIDsExhausted = errors.New("softdraw: picking ids exhausted")
)

// AllocError is the panic value used when a pixel buffer cannot be
// allocated.
type AllocError struct {
	Size Size
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("softdraw: cannot allocate %dx%d pixel buffer",
		e.Size.Width, e.Size.Height)
}

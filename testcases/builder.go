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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// builder records path commands with a fluent interface.
type builder struct {
	cmds []path.Command
	args [][]vec.Vec2
}

func (b *builder) add(cmd path.Command, pts ...vec.Vec2) *builder {
	b.cmds = append(b.cmds, cmd)
	b.args = append(b.args, pts)
	return b
}

func (b *builder) MoveTo(p vec.Vec2) *builder { return b.add(path.CmdMoveTo, p) }

func (b *builder) LineTo(p vec.Vec2) *builder { return b.add(path.CmdLineTo, p) }

func (b *builder) QuadTo(c, p vec.Vec2) *builder { return b.add(path.CmdQuadTo, c, p) }

func (b *builder) CubeTo(c1, c2, p vec.Vec2) *builder { return b.add(path.CmdCubeTo, c1, c2, p) }

func (b *builder) Close() *builder { return b.add(path.CmdClose) }

// Path returns an iterator over the recorded commands.
func (b *builder) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, cmd := range b.cmds {
			if !yield(cmd, b.args[i]) {
				return
			}
		}
	}
}

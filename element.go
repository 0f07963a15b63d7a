// seehuhn.de/go/crossings - point and shape containment for 2D paths
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

package crossings

import (
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Command identifies the kind of a path element.
type Command uint8

// These are the commands used in path elements.
const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	default:
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
}

// Element is a single path command together with all coordinates needed to
// draw it.  From is the current point before the element (equal to To for
// CmdMoveTo).  Ctrl1 is used by CmdQuadTo and CmdCubeTo, Ctrl2 only by
// CmdCubeTo.  For CmdClose, To is the start of the subpath being closed.
type Element struct {
	Cmd   Command
	From  vec.Vec2
	Ctrl1 vec.Vec2
	Ctrl2 vec.Vec2
	To    vec.Vec2
}

// IsEmpty reports whether the element draws nothing.
func (e Element) IsEmpty() bool {
	switch e.Cmd {
	case CmdMoveTo:
		return true
	case CmdLineTo, CmdClose:
		return e.From == e.To
	case CmdQuadTo:
		return e.From == e.To && e.From == e.Ctrl1
	case CmdCubeTo:
		return e.From == e.To && e.From == e.Ctrl1 && e.From == e.Ctrl2
	}
	return true
}

// transform applies an affine map to all points of the element.
func (e Element) transform(m matrix.Matrix) Element {
	apply := func(v vec.Vec2) vec.Vec2 {
		x, y := m.Apply(v.X, v.Y)
		return vec.Vec2{X: x, Y: y}
	}
	e.From = apply(e.From)
	e.To = apply(e.To)
	switch e.Cmd {
	case CmdQuadTo:
		e.Ctrl1 = apply(e.Ctrl1)
	case CmdCubeTo:
		e.Ctrl1 = apply(e.Ctrl1)
		e.Ctrl2 = apply(e.Ctrl2)
	}
	return e
}

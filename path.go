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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is a stored outline together with its fill rule.
//
// The builder methods append elements and return the path, so that calls
// can be chained:
//
//	p := crossings.NewPath(crossings.NonZero).
//		MoveTo(vec.Vec2{X: 0, Y: 0}).
//		LineTo(vec.Vec2{X: 1, Y: 0}).
//		LineTo(vec.Vec2{X: 1, Y: 1}).
//		Close()
type Path struct {
	Rule     FillRule
	Elements []Element
}

// NewPath returns an empty path using the given fill rule.
func NewPath(rule FillRule) *Path {
	return &Path{Rule: rule}
}

// current returns the end point of the last element.
func (p *Path) current() vec.Vec2 {
	if len(p.Elements) == 0 {
		return vec.Vec2{}
	}
	return p.Elements[len(p.Elements)-1].To
}

// subpathStart returns the point of the most recent MoveTo.
func (p *Path) subpathStart() vec.Vec2 {
	for i := len(p.Elements) - 1; i >= 0; i-- {
		if p.Elements[i].Cmd == CmdMoveTo {
			return p.Elements[i].To
		}
	}
	return vec.Vec2{}
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.Elements = append(p.Elements, Element{Cmd: CmdMoveTo, From: pt, To: pt})
	return p
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.Elements = append(p.Elements, Element{Cmd: CmdLineTo, From: p.current(), To: pt})
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c and end
// point pt.
func (p *Path) QuadTo(c, pt vec.Vec2) *Path {
	p.Elements = append(p.Elements, Element{Cmd: CmdQuadTo, From: p.current(), Ctrl1: c, To: pt})
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1, c2 and end
// point pt.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.Elements = append(p.Elements, Element{Cmd: CmdCubeTo, From: p.current(), Ctrl1: c1, Ctrl2: c2, To: pt})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Elements = append(p.Elements, Element{Cmd: CmdClose, From: p.current(), To: p.subpathStart()})
	return p
}

// Iter returns a new cursor over the path elements.
func (p *Path) Iter() Iterator {
	return &pathIter{p: p}
}

// IterTransform returns a new cursor which maps every point through the
// affine transformation m.  The path itself is not modified.
func (p *Path) IterTransform(m matrix.Matrix) Iterator {
	if m == matrix.Identity {
		return &pathIter{p: p}
	}
	return &pathIter{p: p, m: &m}
}

// FromGeom converts a geom path into a Path with the given fill rule.
func FromGeom(g path.Path, rule FillRule) *Path {
	p := NewPath(rule)
	for cmd, pts := range g {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0])
		case path.CmdLineTo:
			p.LineTo(pts[0])
		case path.CmdQuadTo:
			p.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			p.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}

// Geom returns the path as a geom path.  The fill rule is not part of the
// result.
func (p *Path) Geom() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for _, e := range p.Elements {
			var ok bool
			switch e.Cmd {
			case CmdMoveTo:
				buf[0] = e.To
				ok = yield(path.CmdMoveTo, buf[:1])
			case CmdLineTo:
				buf[0] = e.To
				ok = yield(path.CmdLineTo, buf[:1])
			case CmdQuadTo:
				buf[0], buf[1] = e.Ctrl1, e.To
				ok = yield(path.CmdQuadTo, buf[:2])
			case CmdCubeTo:
				buf[0], buf[1], buf[2] = e.Ctrl1, e.Ctrl2, e.To
				ok = yield(path.CmdCubeTo, buf[:3])
			case CmdClose:
				ok = yield(path.CmdClose, nil)
			default:
				ok = true
			}
			if !ok {
				return
			}
		}
	}
}

// shape classifies the path for the Iterator flags.
func (p *Path) shape() (curved, multi, closed bool) {
	moves := 0
	for _, e := range p.Elements {
		switch e.Cmd {
		case CmdMoveTo:
			moves++
		case CmdQuadTo, CmdCubeTo:
			curved = true
		}
	}
	multi = moves > 1
	closed = len(p.Elements) > 0 && p.Elements[len(p.Elements)-1].Cmd == CmdClose
	return curved, multi, closed
}

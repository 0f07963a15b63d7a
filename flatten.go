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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings/segment"
)

const (
	// DefaultFlatness is the default maximum distance between a curve and
	// the polyline which replaces it.
	DefaultFlatness = 0.1

	// DefaultLimit is the default maximum number of recursive
	// subdivisions applied to a single curve.
	DefaultLimit = 10

	// holdGrow is the number of points by which the hold buffer is
	// extended when a subdivision runs out of space.
	holdGrow = 12

	// holdInitial is the initial size of the hold buffer, enough for one
	// subdivided cubic.
	holdInitial = 7
)

// Flattener is an Iterator which replaces the quadratic and cubic segments
// of another iterator by straight lines.  Curves are bisected recursively
// until every piece is within the given flatness of its chord, or until the
// subdivision limit is reached.  In the latter case the approximation is
// coarser than requested.
//
// Pending curve pieces are kept in a hold buffer.  The piece being refined
// always starts at hold[holdIndex]; the pieces to its right follow it, and
// the end point of the whole curve is at hold[holdEnd].  The levels stack
// records how often each pending piece has been subdivided.
type Flattener struct {
	src      Iterator
	flatness float64
	limit    int

	flatness2  float64
	hold       []vec.Vec2
	holdIndex  int
	holdEnd    int
	holdCmd    Command
	levels     []int
	levelIndex int

	pt      vec.Vec2 // point to emit with the next element
	current vec.Vec2 // end point of the last element read from src
	move    vec.Vec2 // start of the current subpath
	last    vec.Vec2 // last emitted point
	capped  bool     // the current curve hit the depth limit

	done bool
	err  error
}

// NewFlattener returns an iterator which flattens the curves of src.
// Negative values of flatness and limit are treated as zero.
func NewFlattener(src Iterator, flatness float64, limit int) *Flattener {
	flatness = max(flatness, 0)
	limit = max(limit, 0)
	f := &Flattener{
		src:       src,
		flatness:  flatness,
		limit:     limit,
		flatness2: flatness * flatness,
		hold:      make([]vec.Vec2, holdInitial),
		levels:    make([]int, limit+1),
	}
	f.searchNext()
	return f
}

// ensureHold makes room for want more points in front of holdIndex.
func (f *Flattener) ensureHold(want int) {
	if f.holdIndex-want >= 0 {
		return
	}
	grown := make([]vec.Vec2, len(f.hold)+holdGrow)
	copy(grown[f.holdIndex+holdGrow:], f.hold[f.holdIndex:])
	f.hold = grown
	f.holdIndex += holdGrow
	f.holdEnd += holdGrow
}

// searchNext reads ahead so that the next element can be returned.
func (f *Flattener) searchNext() {
	fresh := false
	var e Element
	if f.holdIndex >= f.holdEnd {
		if !f.src.HasNext() {
			f.done = true
			return
		}
		var err error
		e, err = f.src.Next()
		if err != nil {
			f.err = err
			f.done = true
			return
		}
		f.holdCmd = e.Cmd
		f.levelIndex = 0
		f.levels[0] = 0
		f.capped = false
		fresh = true
	}

	switch f.holdCmd {
	case CmdMoveTo, CmdLineTo:
		f.current = e.To
		if f.holdCmd == CmdMoveTo {
			f.move = f.current
		}
		f.pt = f.current
		f.holdIndex = 0
		f.holdEnd = 0

	case CmdClose:
		f.current = f.move
		f.pt = f.move
		f.holdIndex = 0
		f.holdEnd = 0

	case CmdQuadTo:
		if fresh {
			n := len(f.hold)
			f.holdIndex = n - 3
			f.holdEnd = n - 1
			f.hold[f.holdIndex] = f.current
			f.hold[f.holdIndex+1] = e.Ctrl1
			f.hold[f.holdIndex+2] = e.To
			f.current = e.To
		}
		level := f.levels[f.levelIndex]
		for quadFlatness(f.hold[f.holdIndex:]) >= f.flatness2 {
			if level >= f.limit {
				f.noteCapped()
				break
			}
			f.ensureHold(2)
			subdivideQuad(f.hold[f.holdIndex-2:])
			f.holdIndex -= 2

			// Both halves are one level deeper than the original piece.
			level++
			f.levels[f.levelIndex] = level
			f.levelIndex++
			f.levels[f.levelIndex] = level
		}
		// hold[holdIndex+2] is the end of a flat piece.
		f.holdIndex += 2
		f.levelIndex--
		f.pt = f.hold[f.holdIndex]

	case CmdCubeTo:
		if fresh {
			n := len(f.hold)
			f.holdIndex = n - 4
			f.holdEnd = n - 1
			f.hold[f.holdIndex] = f.current
			f.hold[f.holdIndex+1] = e.Ctrl1
			f.hold[f.holdIndex+2] = e.Ctrl2
			f.hold[f.holdIndex+3] = e.To
			f.current = e.To
		}
		level := f.levels[f.levelIndex]
		for cubeFlatness(f.hold[f.holdIndex:]) >= f.flatness2 {
			if level >= f.limit {
				f.noteCapped()
				break
			}
			f.ensureHold(3)
			subdivideCube(f.hold[f.holdIndex-3:])
			f.holdIndex -= 3

			level++
			f.levels[f.levelIndex] = level
			f.levelIndex++
			f.levels[f.levelIndex] = level
		}
		f.holdIndex += 3
		f.levelIndex--
		f.pt = f.hold[f.holdIndex]
	}
}

func (f *Flattener) noteCapped() {
	if f.capped {
		return
	}
	f.capped = true
	Logger().Debug("flattening depth limit reached",
		"limit", f.limit,
		"flatness", f.flatness,
		"end", f.current)
}

// HasNext implements the Iterator interface.
func (f *Flattener) HasNext() bool {
	return !f.done || f.err != nil
}

// Next implements the Iterator interface.  The elements returned are
// MoveTo, LineTo and Close only.
func (f *Flattener) Next() (Element, error) {
	if f.err != nil {
		err := f.err
		f.err = nil
		return Element{}, err
	}
	if f.done {
		return Element{}, fmt.Errorf("flattener: %w", ErrExhausted)
	}

	var e Element
	switch f.holdCmd {
	case CmdClose:
		e = Element{Cmd: CmdClose, From: f.last, To: f.move}
	case CmdMoveTo:
		e = Element{Cmd: CmdMoveTo, From: f.pt, To: f.pt}
	default:
		e = Element{Cmd: CmdLineTo, From: f.last, To: f.pt}
	}
	f.last = e.To

	f.searchNext()
	return e, nil
}

// Restart implements the Iterator interface.
func (f *Flattener) Restart() Iterator {
	return NewFlattener(f.src.Restart(), f.flatness, f.limit)
}

// Rule implements the Iterator interface.
func (f *Flattener) Rule() FillRule {
	return f.src.Rule()
}

// IsPolyline implements the Iterator interface.
func (f *Flattener) IsPolyline() bool {
	return f.src.IsPolyline() || (!f.src.IsMultiParts() && !f.src.IsPolygon())
}

// IsCurved implements the Iterator interface.  A flattened path never
// contains curves.
func (f *Flattener) IsCurved() bool {
	return false
}

// IsPolygon implements the Iterator interface.
func (f *Flattener) IsPolygon() bool {
	return f.src.IsPolygon()
}

// IsMultiParts implements the Iterator interface.
func (f *Flattener) IsMultiParts() bool {
	return f.src.IsMultiParts()
}

// quadFlatness returns the squared distance of the control point of the
// quadratic curve q[0:3] from the chord.
func quadFlatness(q []vec.Vec2) float64 {
	return segment.DistanceSquaredSegmentPoint(q[0], q[2], q[1])
}

// cubeFlatness returns the larger squared distance of the two control
// points of the cubic curve c[0:4] from the chord.
func cubeFlatness(c []vec.Vec2) float64 {
	return math.Max(
		segment.DistanceSquaredSegmentPoint(c[0], c[3], c[1]),
		segment.DistanceSquaredSegmentPoint(c[0], c[3], c[2]))
}

// subdivideQuad splits the quadratic curve q[2:5] at t=1/2.  The left half
// is stored in q[0:3], the right half in q[2:5].
func subdivideQuad(q []vec.Vec2) {
	p0, c, p2 := q[2], q[3], q[4]
	l := p0.Add(c).Mul(0.5)
	r := c.Add(p2).Mul(0.5)
	m := l.Add(r).Mul(0.5)
	q[0], q[1], q[2], q[3], q[4] = p0, l, m, r, p2
}

// subdivideCube splits the cubic curve c[3:7] at t=1/2.  The left half is
// stored in c[0:4], the right half in c[3:7].
func subdivideCube(c []vec.Vec2) {
	p0, c1, c2, p3 := c[3], c[4], c[5], c[6]
	a := p0.Add(c1).Mul(0.5)
	b := c1.Add(c2).Mul(0.5)
	d := c2.Add(p3).Mul(0.5)
	ab := a.Add(b).Mul(0.5)
	bd := b.Add(d).Mul(0.5)
	m := ab.Add(bd).Mul(0.5)
	c[0], c[1], c[2], c[3], c[4], c[5], c[6] = p0, a, ab, m, bd, d, p3
}

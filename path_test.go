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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func square(rule FillRule, x0, y0, x1, y1 float64) *Path {
	return NewPath(rule).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestPathElements(t *testing.T) {
	p := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		QuadTo(vec.Vec2{X: 5, Y: 3}, vec.Vec2{X: 4, Y: 5}).
		Close()

	want := []Element{
		{Cmd: CmdMoveTo, From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 1, Y: 1}},
		{Cmd: CmdLineTo, From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 4, Y: 1}},
		{Cmd: CmdQuadTo, From: vec.Vec2{X: 4, Y: 1}, Ctrl1: vec.Vec2{X: 5, Y: 3}, To: vec.Vec2{X: 4, Y: 5}},
		{Cmd: CmdClose, From: vec.Vec2{X: 4, Y: 5}, To: vec.Vec2{X: 1, Y: 1}},
	}
	got, err := Collect(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("elements differ (-want +got):\n%s", d)
	}
}

func TestIteratorRestart(t *testing.T) {
	p := square(EvenOdd, 0, 0, 1, 1)
	it := p.Iter()
	first, err := Collect(it)
	if err != nil {
		t.Fatal(err)
	}
	if it.HasNext() {
		t.Fatal("iterator not exhausted")
	}
	_, err = it.Next()
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("Next after end: got %v, want ErrExhausted", err)
	}

	second, err := Collect(it.Restart())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("restart changed the elements (-first +second):\n%s", d)
	}
	if it.Restart().Rule() != EvenOdd {
		t.Error("restart lost the fill rule")
	}
}

func TestIterTransform(t *testing.T) {
	p := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})

	m := matrix.Matrix{2, 0, 0, 3, 10, 20}
	got, err := Collect(p.IterTransform(m))
	if err != nil {
		t.Fatal(err)
	}
	want := []Element{
		{Cmd: CmdMoveTo, From: vec.Vec2{X: 10, Y: 20}, To: vec.Vec2{X: 10, Y: 20}},
		{
			Cmd:   CmdCubeTo,
			From:  vec.Vec2{X: 10, Y: 20},
			Ctrl1: vec.Vec2{X: 12, Y: 20},
			Ctrl2: vec.Vec2{X: 12, Y: 23},
			To:    vec.Vec2{X: 10, Y: 23},
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("transformed elements differ (-want +got):\n%s", d)
	}

	// the stored path is unchanged
	if p.Elements[1].To != (vec.Vec2{X: 0, Y: 1}) {
		t.Errorf("path was modified: %v", p.Elements[1])
	}

	// shear, and restarted cursors keep the transformation
	shear := matrix.Matrix{1, 0, 1, 1, 0, 0}
	it := p.IterTransform(shear)
	if _, err := Collect(it); err != nil {
		t.Fatal(err)
	}
	got, err = Collect(it.Restart())
	if err != nil {
		t.Fatal(err)
	}
	if got[1].Ctrl2 != (vec.Vec2{X: 2, Y: 1}) || got[1].To != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("sheared curve: %v", got[1])
	}
}

func TestGeomRoundTrip(t *testing.T) {
	g := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 0}).
		QuadTo(vec.Vec2{X: 3, Y: 1}, vec.Vec2{X: 2, Y: 2}).
		CubeTo(vec.Vec2{X: 1, Y: 3}, vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 0, Y: 2}).
		Close()

	type step struct {
		Cmd path.Command
		Pts []vec.Vec2
	}
	steps := func(p path.Path) []step {
		var res []step
		for cmd, pts := range p {
			res = append(res, step{cmd, append([]vec.Vec2(nil), pts...)})
		}
		return res
	}

	p := FromGeom(g.Iter(), EvenOdd)
	if p.Rule != EvenOdd {
		t.Errorf("rule = %s", p.Rule)
	}
	if d := cmp.Diff(steps(g.Iter()), steps(p.Geom())); d != "" {
		t.Errorf("round trip differs (-want +got):\n%s", d)
	}
}

func TestIteratorFlags(t *testing.T) {
	open := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1})
	curved := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}).
		Close()
	multi := square(NonZero, 0, 0, 1, 1)
	multi.MoveTo(vec.Vec2{X: 3, Y: 3}).LineTo(vec.Vec2{X: 4, Y: 3}).Close()

	cases := []struct {
		name                             string
		it                               Iterator
		polyline, curve, polygon, several bool
	}{
		{"open", open.Iter(), true, false, false, false},
		{"square", square(NonZero, 0, 0, 1, 1).Iter(), false, false, true, false},
		{"curved", curved.Iter(), false, true, false, false},
		{"multi", multi.Iter(), false, false, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.it.IsPolyline(); got != c.polyline {
				t.Errorf("IsPolyline() = %t", got)
			}
			if got := c.it.IsCurved(); got != c.curve {
				t.Errorf("IsCurved() = %t", got)
			}
			if got := c.it.IsPolygon(); got != c.polygon {
				t.Errorf("IsPolygon() = %t", got)
			}
			if got := c.it.IsMultiParts(); got != c.several {
				t.Errorf("IsMultiParts() = %t", got)
			}
		})
	}
}

func TestElementIsEmpty(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 2}
	b := vec.Vec2{X: 3, Y: 2}
	cases := []struct {
		e    Element
		want bool
	}{
		{Element{Cmd: CmdMoveTo, From: a, To: a}, true},
		{Element{Cmd: CmdLineTo, From: a, To: a}, true},
		{Element{Cmd: CmdLineTo, From: a, To: b}, false},
		{Element{Cmd: CmdQuadTo, From: a, Ctrl1: b, To: a}, false},
		{Element{Cmd: CmdCubeTo, From: a, Ctrl1: a, Ctrl2: a, To: a}, true},
		{Element{Cmd: CmdClose, From: b, To: a}, false},
	}
	for i, c := range cases {
		if got := c.e.IsEmpty(); got != c.want {
			t.Errorf("%d: %s.IsEmpty() = %t", i, c.e.Cmd, got)
		}
	}
}

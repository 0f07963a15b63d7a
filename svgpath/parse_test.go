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

package svgpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
)

func elements(t *testing.T, p *crossings.Path) []crossings.Element {
	t.Helper()
	els, err := crossings.Collect(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	return els
}

func TestParse(t *testing.T) {
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	cases := []struct {
		name string
		in   string
		want *crossings.Path
	}{
		{
			name: "empty",
			in:   "  ",
			want: crossings.NewPath(crossings.NonZero),
		},
		{
			name: "triangle",
			in:   "M 10 20 L 30 40 L 10 40 Z",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(10, 20)).LineTo(pt(30, 40)).LineTo(pt(10, 40)).Close(),
		},
		{
			name: "implicit_lineto",
			in:   "M0,0 10,0 10,10z",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).Close(),
		},
		{
			name: "relative",
			in:   "m 1 1 l 2 0 0 2 -2 0 z m 10 0 h 5 v 5 H 11 V 1 Z",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(1, 1)).LineTo(pt(3, 1)).LineTo(pt(3, 3)).LineTo(pt(1, 3)).Close().
				MoveTo(pt(11, 1)).LineTo(pt(16, 1)).LineTo(pt(16, 6)).LineTo(pt(11, 6)).LineTo(pt(11, 1)).Close(),
		},
		{
			name: "compact_numbers",
			in:   "M.5-.5L10-2.5",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0.5, -0.5)).LineTo(pt(10, -2.5)),
		},
		{
			name: "smooth_cubic",
			in:   "M 0 0 C 0 10 10 10 10 0 S 20 -10 20 0",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0, 0)).
				CubeTo(pt(0, 10), pt(10, 10), pt(10, 0)).
				CubeTo(pt(10, -10), pt(20, -10), pt(20, 0)),
		},
		{
			name: "smooth_cubic_alone",
			in:   "M 0 0 s 5 5 10 0",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0, 0)).
				CubeTo(pt(0, 0), pt(5, 5), pt(10, 0)),
		},
		{
			name: "smooth_quad",
			in:   "M 0 0 Q 5 10 10 0 T 20 0 t 10 0",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0, 0)).
				QuadTo(pt(5, 10), pt(10, 0)).
				QuadTo(pt(15, -10), pt(20, 0)).
				QuadTo(pt(25, 10), pt(30, 0)),
		},
		{
			name: "degenerate_arc",
			in:   "M 0 0 A 0 5 0 0 1 10 0",
			want: crossings.NewPath(crossings.NonZero).
				MoveTo(pt(0, 0)).LineTo(pt(10, 0)),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Parse(c.in, crossings.NonZero)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(elements(t, c.want), elements(t, p)); d != "" {
				t.Errorf("elements differ (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseRule(t *testing.T) {
	p := MustParse("M 0 0 L 1 1", crossings.EvenOdd)
	if p.Rule != crossings.EvenOdd {
		t.Errorf("rule = %v, want evenodd", p.Rule)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"L 10 10",
		"M 10",
		"M 0 0 X 1 2",
		"M 0 0 A 5 5 0 2 0 10 0",
		"M 0 0 L 1 2 3",
	}
	for _, s := range cases {
		if _, err := Parse(s, crossings.NonZero); err == nil {
			t.Errorf("Parse(%q) succeeded", s)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("Z", crossings.NonZero)
}

func TestArc(t *testing.T) {
	p := MustParse("M 0 0 A 10 10 0 0 1 20 0", crossings.NonZero)
	els := elements(t, p)
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3", len(els))
	}

	center := vec.Vec2{X: 10, Y: 0}
	mid := els[1].To
	if d := mid.Sub(vec.Vec2{X: 10, Y: -10}).Length(); d > 1e-9 {
		t.Errorf("arc midpoint %v, want (10,-10)", mid)
	}
	if els[2].To != (vec.Vec2{X: 20, Y: 0}) {
		t.Errorf("arc end %v, want (20,0)", els[2].To)
	}

	// the cubic pieces stay close to the circle
	for _, e := range els[1:] {
		if e.Cmd != crossings.CmdCubeTo {
			t.Fatalf("unexpected %v", e.Cmd)
		}
		b := e.From.Mul(0.125).
			Add(e.Ctrl1.Mul(0.375)).
			Add(e.Ctrl2.Mul(0.375)).
			Add(e.To.Mul(0.125))
		r := b.Sub(center).Length()
		if math.Abs(r-10) > 0.01 {
			t.Errorf("arc radius %g at curve midpoint, want 10", r)
		}
	}

	// the other sweep direction bulges the other way
	q := MustParse("M 0 0 A 10 10 0 0 0 20 0", crossings.NonZero)
	if mid := elements(t, q)[1].To; math.Abs(mid.Y-10) > 1e-9 {
		t.Errorf("arc midpoint %v, want (10,10)", mid)
	}
}

func TestArcScaledRadii(t *testing.T) {
	// radii too small to reach the end point are scaled up
	p := MustParse("M 0 0 A 1 1 0 0 1 20 0", crossings.NonZero)
	box, ok, err := crossings.Bounds(p.Iter())
	if err != nil || !ok {
		t.Fatal(ok, err)
	}
	if math.Abs(box.LLy+10) > 0.1 || math.Abs(box.URy) > 1e-9 {
		t.Errorf("bounds %v, want a half circle of radius 10", box)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("M 10 20 L 30 40 Z")
	f.Add("m1 1 h2v2h-2z")
	f.Add("M0 0 A 5 5 30 1 0 10 10")
	f.Add("M0 0 Q 1 1 2 0 T 4 0")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse(s, crossings.EvenOdd)
		if err != nil {
			return
		}
		if _, err := crossings.ContainsPoint(p.Iter(), vec.Vec2{X: 1, Y: 1}); err != nil {
			t.Fatal(err)
		}
	})
}

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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestContainsPointBoundary(t *testing.T) {
	sq := square(EvenOdd, 0, 0, 4, 4)
	cases := []struct {
		name string
		p    vec.Vec2
		want bool
	}{
		{"inside", vec.Vec2{X: 2, Y: 2}, true},
		{"vertex", vec.Vec2{X: 4, Y: 4}, true},
		{"move_point", vec.Vec2{X: 0, Y: 0}, true},
		{"left_edge", vec.Vec2{X: 0, Y: 2}, true},
		{"bottom_edge", vec.Vec2{X: 2, Y: 0}, true},
		{"right_edge", vec.Vec2{X: 4, Y: 2}, false},
		{"top_edge", vec.Vec2{X: 2, Y: 4}, false},
		{"outside", vec.Vec2{X: 5, Y: 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ContainsPoint(sq.Iter(), c.p)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("ContainsPoint(%v) = %t", c.p, got)
			}
		})
	}
}

func TestContainsRect(t *testing.T) {
	sq := square(NonZero, 0, 0, 10, 10)
	cases := []struct {
		r    rect.Rect
		want bool
	}{
		{rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}, true},
		{rect.Rect{LLx: 2, LLy: 2, URx: 12, URy: 8}, false},
		{rect.Rect{LLx: -2, LLy: -2, URx: 12, URy: 12}, false},
		{rect.Rect{LLx: 20, LLy: 2, URx: 22, URy: 8}, false},
		{rect.Rect{LLx: 2, LLy: 2, URx: 2, URy: 8}, false},
	}
	for _, c := range cases {
		got, err := ContainsRect(sq.Iter(), c.r)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("ContainsRect(%v) = %t", c.r, got)
		}
	}

	// open paths are closed implicitly
	open := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 10})
	got, err := ContainsRect(open.Iter(), rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("implicitly closed path does not contain rectangle")
	}
}

func TestIntersectsShapes(t *testing.T) {
	sq := square(NonZero, 0, 0, 10, 10)
	type query func(Iterator) (bool, error)
	cases := []struct {
		name string
		q    query
		want bool
	}{
		{"rect_inside", func(it Iterator) (bool, error) {
			return IntersectsRect(it, rect.Rect{LLx: 4, LLy: 4, URx: 6, URy: 6})
		}, true},
		{"rect_outside", func(it Iterator) (bool, error) {
			return IntersectsRect(it, rect.Rect{LLx: 11, LLy: 4, URx: 16, URy: 6})
		}, false},
		{"circle_around", func(it Iterator) (bool, error) {
			return IntersectsCircle(it, vec.Vec2{X: 5, Y: 5}, 20)
		}, true},
		{"circle_outside", func(it Iterator) (bool, error) {
			return IntersectsCircle(it, vec.Vec2{X: 15, Y: 15}, 5)
		}, false},
		{"ellipse_across", func(it Iterator) (bool, error) {
			return IntersectsEllipse(it, rect.Rect{LLx: 8, LLy: 4, URx: 14, URy: 6})
		}, true},
		{"segment_inside", func(it Iterator) (bool, error) {
			return IntersectsSegment(it, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 3})
		}, true},
		{"segment_outside", func(it Iterator) (bool, error) {
			return IntersectsSegment(it, vec.Vec2{X: 11, Y: 1}, vec.Vec2{X: 12, Y: 3})
		}, false},
		{"triangle_around", func(it Iterator) (bool, error) {
			return IntersectsTriangle(it, vec.Vec2{X: -20, Y: -5}, vec.Vec2{X: 30, Y: -5}, vec.Vec2{X: 5, Y: 40})
		}, true},
		{"round_rect_corner", func(it Iterator) (bool, error) {
			// the rounded corner keeps away from the square
			return IntersectsRoundRect(it, rect.Rect{LLx: 9, LLy: 9, URx: 20, URy: 20}, 4, 4)
		}, false},
		{"round_rect_edge", func(it Iterator) (bool, error) {
			return IntersectsRoundRect(it, rect.Rect{LLx: 8, LLy: 2, URx: 20, URy: 8}, 2, 2)
		}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.q(sq.Iter())
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %t, want %t", got, c.want)
			}
		})
	}
}

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

package shapes_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
	"seehuhn.de/go/crossings/shapes"
)

func contains(t *testing.T, p *crossings.Path, x, y float64) bool {
	t.Helper()
	inside, err := crossings.ContainsPoint(p.Iter(), vec.Vec2{X: x, Y: y})
	require.NoError(t, err)
	return inside
}

func TestRect(t *testing.T) {
	p := shapes.Rect(rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 4})
	assert.Equal(t, crossings.NonZero, p.Rule)
	assert.True(t, contains(t, p, 3, 3))
	assert.False(t, contains(t, p, 6, 3))

	// counter-clockwise with y up
	r, err := crossings.CrossingsFromPoint(p.Iter(), vec.Vec2{X: 3, Y: 3}, crossings.Standard)
	require.NoError(t, err)
	assert.Equal(t, crossings.Count(1), r)
}

func TestRoundRect(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	p := shapes.RoundRect(r, 3, 3)
	assert.False(t, contains(t, p, 0.3, 0.3), "corner")
	assert.False(t, contains(t, p, 9.7, 9.7), "corner")
	assert.True(t, contains(t, p, 5, 0.5))
	assert.True(t, contains(t, p, 1, 5))

	box, ok, err := crossings.Bounds(p.Iter())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0, box.LLx, 1e-9)
	assert.InDelta(t, 10, box.URy, 1e-9)

	// without arcs the outline is the plain rectangle
	if d := cmp.Diff(shapes.Rect(r).Elements, shapes.RoundRect(r, 0, 3).Elements); d != "" {
		t.Errorf("zero arc width (-want +got):\n%s", d)
	}

	// oversized arcs turn the rectangle into an ellipse
	big := shapes.RoundRect(r, 100, 100)
	assert.False(t, contains(t, big, 1, 1))
	assert.True(t, contains(t, big, 5, 5))
}

func TestCircle(t *testing.T) {
	p := shapes.Circle(vec.Vec2{X: 0, Y: 0}, 10)
	assert.True(t, contains(t, p, 0, 0))
	assert.True(t, contains(t, p, 6.8, 6.8))
	assert.False(t, contains(t, p, 7.2, 7.2))
	assert.True(t, contains(t, p, -9.5, 0))
	assert.False(t, contains(t, p, 0, -10.5))

	length, err := crossings.Length(p.Iter())
	require.NoError(t, err)
	assert.InDelta(t, 20*math.Pi, length, 0.5)
}

func TestEllipse(t *testing.T) {
	p := shapes.Ellipse(rect.Rect{LLx: -4, LLy: -1, URx: 4, URy: 1})
	assert.True(t, contains(t, p, 3.5, 0))
	assert.False(t, contains(t, p, 0, 1.2))
	assert.False(t, contains(t, p, 3.5, 0.8))

	box, ok, err := crossings.Bounds(p.Iter())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -4, box.LLx, 1e-9)
	assert.InDelta(t, 4, box.URx, 1e-9)
	assert.InDelta(t, -1, box.LLy, 1e-9)
	assert.InDelta(t, 1, box.URy, 1e-9)
}

func TestTriangleAndSegment(t *testing.T) {
	tri := shapes.Triangle(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 0, Y: 4})
	assert.True(t, contains(t, tri, 1, 1))
	assert.False(t, contains(t, tri, 3, 3))

	seg := shapes.Segment(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 4})
	els, err := crossings.Collect(seg.Iter())
	require.NoError(t, err)
	require.Len(t, els, 2)
	assert.Equal(t, crossings.CmdLineTo, els[1].Cmd)
	assert.False(t, seg.Iter().IsPolygon())

	length, err := crossings.Length(seg.Iter())
	require.NoError(t, err)
	assert.InDelta(t, 5, length, 1e-12)
}

func TestOrientedRect(t *testing.T) {
	p := shapes.OrientedRect(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, 2, 1)
	assert.True(t, contains(t, p, 1.2, 1.2))
	assert.True(t, contains(t, p, 0.5, -0.5))
	assert.False(t, contains(t, p, 0.9, -0.9))
	assert.False(t, contains(t, p, 1.6, 1.6))
}

func TestParallelogram(t *testing.T) {
	p := shapes.Parallelogram(
		vec.Vec2{X: 5, Y: 5},
		vec.Vec2{X: 1, Y: 0}, 3,
		vec.Vec2{X: 1, Y: 1}, math.Sqrt2)

	box, ok, err := crossings.Bounds(p.Iter())
	require.NoError(t, err)
	require.True(t, ok)
	want := rect.Rect{LLx: 1, LLy: 4, URx: 9, URy: 6}
	assert.InDelta(t, want.LLx, box.LLx, 1e-9)
	assert.InDelta(t, want.LLy, box.LLy, 1e-9)
	assert.InDelta(t, want.URx, box.URx, 1e-9)
	assert.InDelta(t, want.URy, box.URy, 1e-9)

	assert.True(t, contains(t, p, 5, 5))
	assert.False(t, contains(t, p, 1.5, 5.5))
	assert.True(t, contains(t, p, 8, 5.5))
}

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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-6

func TestBounds(t *testing.T) {
	dome := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 100, Y: 100}). // isolated point
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0}).
		Close()

	box, ok, err := Bounds(dome.Iter())
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0, box.LLx, epsilon)
	assert.InDelta(t, 0, box.LLy, epsilon)
	assert.InDelta(t, 10, box.URx, epsilon)
	assert.LessOrEqual(t, box.URy, 5+epsilon)
	assert.Greater(t, box.URy, 5-DefaultFlatness)

	box, ok, err = ControlBounds(dome.Iter())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}, box)

	_, ok, err = Bounds(NewPath(NonZero).MoveTo(vec.Vec2{X: 1, Y: 1}).Iter())
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = ControlBounds(NewPath(NonZero).Iter())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLength(t *testing.T) {
	l, err := Length(square(NonZero, 0, 0, 3, 2).Iter())
	require.NoError(t, err)
	assert.InDelta(t, 10, l, epsilon)

	open := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 3, Y: 4}).
		LineTo(vec.Vec2{X: 3, Y: 0})
	l, err = Length(open.Iter())
	require.NoError(t, err)
	assert.InDelta(t, 9, l, epsilon)

	l, err = Length(circlePath(NonZero, vec.Vec2{}, 10).Iter())
	require.NoError(t, err)
	assert.InDelta(t, 20*math.Pi, l, 0.5)
	assert.Less(t, l, 20*math.Pi)
}

func TestClosestPoint(t *testing.T) {
	sq := square(NonZero, 0, 0, 3, 2)
	cases := []struct {
		p, want vec.Vec2
	}{
		{vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1}}, // inside
		{vec.Vec2{X: 5, Y: 1}, vec.Vec2{X: 3, Y: 1}},
		{vec.Vec2{X: -1, Y: -1}, vec.Vec2{X: 0, Y: 0}},
		{vec.Vec2{X: 1.5, Y: 7}, vec.Vec2{X: 1.5, Y: 2}},
	}
	for _, c := range cases {
		got, ok, err := ClosestPoint(sq.Iter(), c.p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, c.want.X, got.X, epsilon, "point %v", c.p)
		assert.InDelta(t, c.want.Y, got.Y, epsilon, "point %v", c.p)
	}

	// an open path has no inside
	open := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4})
	got, _, err := ClosestPoint(open.Iter(), vec.Vec2{X: 3.5, Y: 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 4, got.X, epsilon)
	assert.InDelta(t, 1.5, got.Y, epsilon)

	_, ok, err := ClosestPoint(NewPath(NonZero).Iter(), vec.Vec2{})
	require.NoError(t, err)
	assert.False(t, ok)

	bad := &Path{Elements: []Element{{Cmd: CmdLineTo, To: vec.Vec2{X: 1, Y: 1}}}}
	_, _, err = ClosestPoint(bad.Iter(), vec.Vec2{})
	assert.ErrorIs(t, err, ErrMissingMoveTo)
}

// TestFarthestPointIsVertex checks that both coordinates of the result come
// from the same path point.
func TestFarthestPointIsVertex(t *testing.T) {
	tri := NewPath(NonZero).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 2}).
		LineTo(vec.Vec2{X: 1, Y: 10}).
		Close()

	got, ok, err := FarthestPoint(tri.Iter(), vec.Vec2{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 10, Y: 2}, got)

	got, _, err = FarthestPoint(tri.Iter(), vec.Vec2{X: 10, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2{X: 1, Y: 10}, got)

	_, ok, err = FarthestPoint(NewPath(NonZero).Iter(), vec.Vec2{})
	require.NoError(t, err)
	assert.False(t, ok)
}

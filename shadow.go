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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings/segment"
)

// Shadow casts the outline of a path onto segments of another path.
//
// Inside the bounding box of the path, the outline itself is tested.
// Outside the box, the shadow behaves like a rectangle: it consists of two
// rails which extend from the top and bottom rows of the box to the right.
//
// A Shadow only keeps a restartable iterator, so it can be used for many
// queries.
type Shadow struct {
	src    Iterator
	box    rect.Rect
	empty  bool
	engine *Engine
}

// NewShadow creates a shadow for the path.  The bounding box is computed
// from the flattened outline.
func (e *Engine) NewShadow(it Iterator) (*Shadow, error) {
	box, ok, err := e.Bounds(it.Restart())
	if err != nil {
		return nil, fmt.Errorf("shadow bounds: %w", err)
	}
	return &Shadow{src: it, box: box, empty: !ok, engine: e}, nil
}

// NewShadowBounds creates a shadow for a path with known bounding box.
func (e *Engine) NewShadowBounds(it Iterator, box rect.Rect) *Shadow {
	return &Shadow{src: it, box: box, engine: e}
}

// NewShadow calls [Engine.NewShadow] with the default parameters.
func NewShadow(it Iterator) (*Shadow, error) {
	return defaultEngine.NewShadow(it)
}

// Bounds returns the bounding box of the path casting the shadow.
func (s *Shadow) Bounds() rect.Rect {
	return s.box
}

// Crossings adds the crossings of the segment p0-p1 with the shadow to
// acc.  The result is [Intersects] if the segment touches the interior of
// the path.
func (s *Shadow) Crossings(acc Result, p0, p1 vec.Vec2) (Result, error) {
	if s.empty || acc.IsIntersects() {
		return acc, nil
	}

	r := crossingsRectSegment(acc, s.box, p0, p1)
	if !r.IsIntersects() {
		return r, nil
	}

	st := &shadowState{
		box:    s.box,
		x4yMin: s.box.LLx,
		x4yMax: s.box.LLx,
	}
	it := s.src.Restart()
	err := s.engine.discretize(it, p0, p1, st, OpenIsEmpty)
	if err != nil {
		return acc, err
	}

	switch {
	case st.crossings.IsIntersects():
		r = Intersects
	case st.crossings.n&it.Rule().ShapeMask() != 0:
		r = Intersects
	default:
		inc := 0
		if st.hasX4yMin {
			inc++
		}
		if st.hasX4yMax {
			inc++
		}
		if p0.Y >= p1.Y {
			inc = -inc
		}
		r = acc.Add(inc)
	}
	Logger().Debug("shadow query", "box", s.box, "from", p0, "to", p1, "result", r)
	return r, nil
}

func (s *Shadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return s.Crossings(acc, p0, p1)
}

func (*Shadow) closeStops(acc Result) bool { return !acc.IsZero() }

// shadowState collects the crossings of one candidate segment with the
// outline of a shadow path.  x4yMin and x4yMax are the rightmost points
// where the candidate crosses the bottom and top rows of the box.
type shadowState struct {
	box       rect.Rect
	crossings Result

	hasX4yMin, hasX4yMax bool
	x4yMin, x4yMax       float64
}

func (st *shadowState) setYMin(x, y float64) {
	if segment.CompareEpsilon(y, st.box.LLy) <= 0 && x > st.x4yMin {
		st.x4yMin = x
		st.hasX4yMin = true
	}
}

func (st *shadowState) setYMax(x, y float64) {
	if segment.CompareEpsilon(y, st.box.URy) >= 0 && x > st.x4yMax {
		st.x4yMax = x
		st.hasX4yMax = true
	}
}

// discretize walks the shadow path and tests each of its segments against
// the candidate segment c0-c1.  Curves are flattened on the fly.
func (e *Engine) discretize(it Iterator, c0, c1 vec.Vec2, st *shadowState, policy Policy) error {
	if !it.HasNext() || st.crossings.IsIntersects() {
		return nil
	}
	el, err := it.Next()
	if err != nil {
		return err
	}
	if el.Cmd != CmdMoveTo {
		Logger().Warn("malformed shadow path", "first", el.Cmd)
		return fmt.Errorf("shadow element 0 is %s: %w", el.Cmd, ErrMissingMoveTo)
	}

	cur := el.To
	mov := cur
	for !st.crossings.IsIntersects() && it.HasNext() {
		el, err = it.Next()
		if err != nil {
			return err
		}
		switch el.Cmd {
		case CmdMoveTo:
			mov = el.To
			cur = mov

		case CmdLineTo:
			crossSegmentTwoShadowLines(st, cur, el.To, c0, c1)
			if st.crossings.IsIntersects() {
				return nil
			}
			cur = el.To

		case CmdQuadTo, CmdCubeTo:
			el.From = cur
			err = e.discretize(e.flatten(el, it.Rule()), c0, c1, st, Standard)
			if err != nil || st.crossings.IsIntersects() {
				return err
			}
			cur = el.To

		case CmdClose:
			if cur != mov {
				crossSegmentTwoShadowLines(st, cur, mov, c0, c1)
			}
			if !st.crossings.IsZero() {
				return nil
			}
			cur = mov
		}
	}

	if cur != mov && !st.crossings.IsIntersects() {
		switch policy {
		case AutoClose:
			crossSegmentTwoShadowLines(st, cur, mov, c0, c1)
		case OpenIsEmpty:
			st.crossings = Count(0)
		}
	}
	return nil
}

// crossSegmentTwoShadowLines records how the candidate segment c0-c1
// crosses the shadow cast by the segment sh0-sh1.
func crossSegmentTwoShadowLines(st *shadowState, sh0, sh1, c0, c1 vec.Vec2) {
	xMin, xMax := min(sh0.X, sh1.X), max(sh0.X, sh1.X)
	yMin, yMax := min(sh0.Y, sh1.Y), max(sh0.Y, sh1.Y)

	if c0.Y < yMin && c1.Y < yMin {
		return
	}
	if c0.Y > yMax && c1.Y > yMax {
		return
	}
	if c0.X < xMin && c1.X < xMin {
		return
	}

	if c0.X >= xMax && c1.X >= xMax {
		// The candidate lies right of the shadow segment.
		if c0.Y == c1.Y {
			return
		}
		alpha := (c1.X - c0.X) / (c1.Y - c0.Y)
		if c0.Y < c1.Y {
			if c0.Y <= yMin {
				st.setYMin(c0.X+(yMin-c0.Y)*alpha, yMin)
				st.crossings = st.crossings.Add(1)
			}
			if c1.Y >= yMax {
				st.setYMax(c0.X+(yMax-c0.Y)*alpha, yMax)
				st.crossings = st.crossings.Add(1)
			}
		} else {
			if c1.Y <= yMin {
				st.setYMin(c0.X+(yMin-c0.Y)*alpha, yMin)
				st.crossings = st.crossings.Add(-1)
			}
			if c0.Y >= yMax {
				st.setYMax(c0.X+(yMax-c0.Y)*alpha, yMax)
				st.crossings = st.crossings.Add(-1)
			}
		}
		return
	}

	if segment.IntersectsWithoutEnds(sh0, sh1, c0, c1) {
		st.crossings = Intersects
		return
	}

	lo, hi := sh0, sh1
	if sh0.Y > sh1.Y {
		lo, hi = sh1, sh0
	}
	side1 := segment.Side(lo, hi, c0, 0)
	side2 := segment.Side(lo, hi, c1, 0)
	if side1 > 0 || side2 > 0 {
		crossSegmentShadowLine(st, hi.X, yMax, c0, c1, true)
		crossSegmentShadowLine(st, lo.X, yMin, c0, c1, false)
	}
}

// crossSegmentShadowLine records a crossing of the candidate c0-c1 with
// the horizontal ray which extends from (shadowX, shadowY) to the right.
func crossSegmentShadowLine(st *shadowState, shadowX, shadowY float64, c0, c1 vec.Vec2, isMax bool) {
	if shadowY < c0.Y && shadowY < c1.Y {
		return
	}
	if shadowY > c0.Y && shadowY > c1.Y {
		return
	}
	if shadowX > c0.X && shadowX > c1.X {
		return
	}
	if c0.Y == c1.Y {
		return
	}
	xIntercept := c0.X + (shadowY-c0.Y)*(c1.X-c0.X)/(c1.Y-c0.Y)
	if shadowX > xIntercept {
		return
	}

	if isMax {
		st.setYMax(xIntercept, shadowY)
	} else {
		st.setYMin(xIntercept, shadowY)
	}
	if c0.Y < c1.Y {
		st.crossings = st.crossings.Add(1)
	} else {
		st.crossings = st.crossings.Add(-1)
	}
}

// PathIntersectsPath reports whether the interiors of the paths a and b
// overlap.  The fill rule of a is used.  The path b is cast against the
// shadow of a.  If no part of the boundary of b reaches into a, the closed
// subpaths of b may still lie inside a: then the vertices and edge
// midpoints of b which are not on the outline of a decide.  Paths which
// only touch do not intersect.
func (e *Engine) PathIntersectsPath(a, b Iterator) (bool, error) {
	mask := a.Rule().ShapeMask()
	s, err := e.NewShadow(a)
	if err != nil {
		return false, err
	}
	r, err := e.CrossingsFromPath(b.Restart(), s, OpenIsEmpty)
	if err != nil {
		return false, err
	}
	if r.Fills(mask) {
		return true, nil
	}

	pts, err := e.closedOutlinePoints(b.Restart())
	if err != nil || len(pts) == 0 {
		return false, err
	}
	var sum vec.Vec2
	for _, q := range pts {
		sum = sum.Add(q)
		on, err := e.onOutline(a.Restart(), q)
		if err != nil {
			return false, err
		}
		if !on {
			return e.strictlyInside(a.Restart(), q)
		}
	}

	// The whole outline of b lies on the outline of a.
	c := sum.Mul(1 / float64(len(pts)))
	on, err := e.onOutline(a.Restart(), c)
	if err != nil || on {
		return false, err
	}
	inB, err := e.strictlyInside(b.Restart(), c)
	if err != nil || !inB {
		return false, err
	}
	return e.strictlyInside(a.Restart(), c)
}

// outlineEpsilon is the distance below which a point counts as lying on
// a path outline.
const outlineEpsilon = 1e-9

// closedOutlinePoints returns the vertices and edge midpoints of the
// flattened closed subpaths of it.  Open subpaths are skipped.
func (e *Engine) closedOutlinePoints(it Iterator) ([]vec.Vec2, error) {
	fl := NewFlattener(it, e.Flatness, e.Limit)
	var pts, sub []vec.Vec2
	for fl.HasNext() {
		el, err := fl.Next()
		if err != nil {
			return nil, err
		}
		switch el.Cmd {
		case CmdMoveTo:
			sub = append(sub[:0], el.To)
		case CmdLineTo:
			sub = append(sub, el.From.Add(el.To).Mul(0.5), el.To)
		case CmdClose:
			sub = append(sub, el.From.Add(el.To).Mul(0.5))
			pts = append(pts, sub...)
			sub = sub[:0]
		}
	}
	return pts, nil
}

// onOutline reports whether q lies on the flattened outline of it.
func (e *Engine) onOutline(it Iterator, q vec.Vec2) (bool, error) {
	fl := NewFlattener(it, e.Flatness, e.Limit)
	for fl.HasNext() {
		el, err := fl.Next()
		if err != nil {
			return false, err
		}
		if el.Cmd != CmdLineTo && el.Cmd != CmdClose {
			continue
		}
		if segment.DistanceSquaredSegmentPoint(el.From, el.To, q) <= outlineEpsilon*outlineEpsilon {
			return true, nil
		}
	}
	return false, nil
}

// strictlyInside reports whether q, a point known not to lie on the
// outline of it, is inside the path.
func (e *Engine) strictlyInside(it Iterator, q vec.Vec2) (bool, error) {
	mask := it.Rule().PointMask()
	r, err := e.CrossingsFromPoint(it, q, OpenIsEmpty)
	if err != nil {
		return false, err
	}
	return !r.IsIntersects() && r.Fills(mask), nil
}

// PathIntersectsPath calls [Engine.PathIntersectsPath] with the default
// parameters.
func PathIntersectsPath(a, b Iterator) (bool, error) {
	return defaultEngine.PathIntersectsPath(a, b)
}

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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ContainsPoint reports whether p lies inside the path.  A point which
// coincides with an end point of a path element counts as inside.  Other
// boundary points follow the half-open convention of the crossing count:
// left and bottom edges are inside, right and top edges outside.  Open
// paths contain nothing.
func (e *Engine) ContainsPoint(it Iterator, p vec.Vec2) (bool, error) {
	mask := it.Rule().PointMask()
	r, err := e.CrossingsFromPoint(it, p, OpenIsEmpty)
	if err != nil {
		return false, err
	}
	return r.Fills(mask), nil
}

// ContainsRect reports whether the rectangle r lies entirely inside the
// path.  The path is closed implicitly.  Empty rectangles are never
// contained.
func (e *Engine) ContainsRect(it Iterator, r rect.Rect) (bool, error) {
	if isEmpty(r) {
		return false, nil
	}
	mask := it.Rule().ShapeMask()
	res, err := e.CrossingsFromRect(it, r, AutoClose)
	if err != nil {
		return false, err
	}
	return !res.IsIntersects() && res.Fills(mask), nil
}

// IntersectsRect reports whether the interior of the path overlaps the
// rectangle r.
func (e *Engine) IntersectsRect(it Iterator, r rect.Rect) (bool, error) {
	if isEmpty(r) {
		return false, nil
	}
	return fills(it.Rule())(e.CrossingsFromRect(it, r, OpenIsEmpty))
}

// IntersectsCircle reports whether the interior of the path overlaps the
// circle.
func (e *Engine) IntersectsCircle(it Iterator, center vec.Vec2, radius float64) (bool, error) {
	return fills(it.Rule())(e.CrossingsFromCircle(it, center, radius, OpenIsEmpty))
}

// IntersectsEllipse reports whether the interior of the path overlaps the
// ellipse inscribed in frame.
func (e *Engine) IntersectsEllipse(it Iterator, frame rect.Rect) (bool, error) {
	return fills(it.Rule())(e.CrossingsFromEllipse(it, frame, OpenIsEmpty))
}

// IntersectsSegment reports whether the segment a-b meets the interior
// of the path.
func (e *Engine) IntersectsSegment(it Iterator, a, b vec.Vec2) (bool, error) {
	return fills(it.Rule())(e.CrossingsFromSegment(it, a, b, OpenIsEmpty))
}

// IntersectsTriangle reports whether the interior of the path overlaps
// the triangle.
func (e *Engine) IntersectsTriangle(it Iterator, t1, t2, t3 vec.Vec2) (bool, error) {
	return fills(it.Rule())(e.CrossingsFromTriangle(it, t1, t2, t3, OpenIsEmpty))
}

// IntersectsRoundRect reports whether the interior of the path overlaps
// the rectangle r with rounded corners.
func (e *Engine) IntersectsRoundRect(it Iterator, r rect.Rect, arcWidth, arcHeight float64) (bool, error) {
	return fills(it.Rule())(e.CrossingsFromRoundRect(it, r, arcWidth, arcHeight, OpenIsEmpty))
}

// fills converts the result of a shape crossing computation into a
// boolean, using the shape mask of the rule.
func fills(rule FillRule) func(Result, error) (bool, error) {
	mask := rule.ShapeMask()
	return func(r Result, err error) (bool, error) {
		if err != nil {
			return false, err
		}
		return r.Fills(mask), nil
	}
}

// ContainsPoint calls [Engine.ContainsPoint] with the default parameters.
func ContainsPoint(it Iterator, p vec.Vec2) (bool, error) {
	return defaultEngine.ContainsPoint(it, p)
}

// ContainsRect calls [Engine.ContainsRect] with the default parameters.
func ContainsRect(it Iterator, r rect.Rect) (bool, error) {
	return defaultEngine.ContainsRect(it, r)
}

// IntersectsRect calls [Engine.IntersectsRect] with the default
// parameters.
func IntersectsRect(it Iterator, r rect.Rect) (bool, error) {
	return defaultEngine.IntersectsRect(it, r)
}

// IntersectsCircle calls [Engine.IntersectsCircle] with the default
// parameters.
func IntersectsCircle(it Iterator, center vec.Vec2, radius float64) (bool, error) {
	return defaultEngine.IntersectsCircle(it, center, radius)
}

// IntersectsEllipse calls [Engine.IntersectsEllipse] with the default
// parameters.
func IntersectsEllipse(it Iterator, frame rect.Rect) (bool, error) {
	return defaultEngine.IntersectsEllipse(it, frame)
}

// IntersectsSegment calls [Engine.IntersectsSegment] with the default
// parameters.
func IntersectsSegment(it Iterator, a, b vec.Vec2) (bool, error) {
	return defaultEngine.IntersectsSegment(it, a, b)
}

// IntersectsTriangle calls [Engine.IntersectsTriangle] with the default
// parameters.
func IntersectsTriangle(it Iterator, t1, t2, t3 vec.Vec2) (bool, error) {
	return defaultEngine.IntersectsTriangle(it, t1, t2, t3)
}

// IntersectsRoundRect calls [Engine.IntersectsRoundRect] with the default
// parameters.
func IntersectsRoundRect(it Iterator, r rect.Rect, arcWidth, arcHeight float64) (bool, error) {
	return defaultEngine.IntersectsRoundRect(it, r, arcWidth, arcHeight)
}

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

// Package crossings decides whether points and shapes lie inside 2D paths.
//
// The central tool is the crossing number: a path is walked element by
// element, and every time its boundary crosses the "shadow" of a query
// shape (the region extending from the shape to the right), a signed count
// is updated.  If the boundary touches the shape itself, the walk stops
// with the result [Intersects].  A fill rule then turns the count into an
// inside/outside decision.
//
// Curves are replaced by polylines on the fly, see [Flattener].  Paths
// are tested against other paths by casting one path as a shadow onto the
// other, see [Shadow].
package crossings

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Engine holds the curve approximation parameters used when a crossing
// computation meets a quadratic or cubic segment.
//
// An Engine is not modified by any of its methods and can be shared
// between goroutines.
type Engine struct {
	// Flatness is the maximum distance between a curve and the polyline
	// which replaces it.  Must be positive.
	Flatness float64

	// Limit is the maximum number of recursive subdivisions of a single
	// curve.
	Limit int
}

// NewEngine returns an Engine with the default flatness and subdivision
// limit.
func NewEngine() *Engine {
	return &Engine{
		Flatness: DefaultFlatness,
		Limit:    DefaultLimit,
	}
}

var defaultEngine = NewEngine()

// shadow is the segment-level part of a crossing computation.
type shadow interface {
	// cross adds the crossings of the segment p0-p1 to acc.
	cross(acc Result, p0, p1 vec.Vec2) (Result, error)

	// closeStops reports whether a walk stops after closing a subpath
	// with the given result.
	closeStops(acc Result) bool
}

// flatten returns an iterator over the line segments which approximate a
// single curve element.
func (e *Engine) flatten(curve Element, rule FillRule) Iterator {
	return NewFlattener(&curveSource{curve: curve, rule: rule}, e.Flatness, e.Limit)
}

// walk accumulates the crossings of all elements of it with sh.
func (e *Engine) walk(it Iterator, acc Result, sh shadow, policy Policy) (Result, error) {
	if !it.HasNext() {
		return acc, nil
	}
	el, err := it.Next()
	if err != nil {
		return acc, err
	}
	if el.Cmd != CmdMoveTo {
		Logger().Warn("malformed path", "first", el.Cmd)
		return acc, fmt.Errorf("element 0 is %s: %w", el.Cmd, ErrMissingMoveTo)
	}

	cur := el.To
	mov := cur
	for !acc.IsIntersects() && it.HasNext() {
		el, err = it.Next()
		if err != nil {
			return acc, err
		}
		switch el.Cmd {
		case CmdMoveTo:
			mov = el.To
			cur = mov

		case CmdLineTo:
			acc, err = sh.cross(acc, cur, el.To)
			if err != nil || acc.IsIntersects() {
				return acc, err
			}
			cur = el.To

		case CmdQuadTo, CmdCubeTo:
			el.From = cur
			acc, err = e.walk(e.flatten(el, it.Rule()), acc, sh, Standard)
			if err != nil || acc.IsIntersects() {
				return acc, err
			}
			cur = el.To

		case CmdClose:
			if cur != mov {
				acc, err = sh.cross(acc, cur, mov)
				if err != nil {
					return acc, err
				}
			}
			if sh.closeStops(acc) {
				return acc, nil
			}
			cur = mov
		}
	}

	if cur != mov {
		switch policy {
		case AutoClose:
			acc, err = sh.cross(acc, cur, mov)
		case OpenIsEmpty:
			if !acc.IsIntersects() {
				acc = Count(0)
			}
		}
	}
	return acc, err
}

type pointShadow struct {
	p vec.Vec2
}

func (s pointShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	if p1 == s.p {
		return Intersects, nil
	}
	return acc.Add(crossingsPointSegment(s.p, p0, p1)), nil
}

func (pointShadow) closeStops(Result) bool { return false }

type rectShadow struct {
	r rect.Rect
}

func (s rectShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return crossingsRectSegment(acc, s.r, p0, p1), nil
}

func (rectShadow) closeStops(acc Result) bool { return !acc.IsZero() }

type circleShadow struct {
	center vec.Vec2
	radius float64
}

func (s circleShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return crossingsCircleSegment(acc, s.center, s.radius, p0, p1), nil
}

func (circleShadow) closeStops(acc Result) bool { return acc.IsIntersects() }

type ellipseShadow struct {
	frame rect.Rect
}

func (s ellipseShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return crossingsEllipseSegment(acc, s.frame, p0, p1), nil
}

func (ellipseShadow) closeStops(acc Result) bool { return acc.IsIntersects() }

type segmentShadow struct {
	a, b vec.Vec2
}

func (s segmentShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return crossingsSegmentSegment(acc, s.a, s.b, p0, p1), nil
}

func (segmentShadow) closeStops(acc Result) bool { return !acc.IsZero() }

func (s *triangleShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return s.crossings(acc, p0, p1), nil
}

func (*triangleShadow) closeStops(acc Result) bool { return !acc.IsZero() }

type roundRectShadow struct {
	r      rect.Rect
	aw, ah float64
}

func (s roundRectShadow) cross(acc Result, p0, p1 vec.Vec2) (Result, error) {
	return crossingsRoundRectSegment(acc, s.r, s.aw, s.ah, p0, p1), nil
}

func (roundRectShadow) closeStops(acc Result) bool { return !acc.IsZero() }

// isEmpty reports whether r has no interior.
func isEmpty(r rect.Rect) bool {
	return r.URx <= r.LLx || r.URy <= r.LLy
}

// CrossingsFromPoint computes the crossings of the path with the ray which
// extends from p to the right.  If an end point of a path element equals
// p, the result is [Intersects].
func (e *Engine) CrossingsFromPoint(it Iterator, p vec.Vec2, policy Policy) (Result, error) {
	return e.walk(it, Count(0), pointShadow{p: p}, policy)
}

// CrossingsFromRect computes the crossings of the path with the shadow of
// the rectangle r.  The result is [Intersects] if the path boundary
// enters the rectangle.  Empty rectangles give a count of zero.
func (e *Engine) CrossingsFromRect(it Iterator, r rect.Rect, policy Policy) (Result, error) {
	if isEmpty(r) {
		return Count(0), nil
	}
	return e.walk(it, Count(0), rectShadow{r: r}, policy)
}

// CrossingsFromCircle computes the crossings of the path with the shadow
// of a circle.  Circles with a non-positive radius give a count of zero.
func (e *Engine) CrossingsFromCircle(it Iterator, center vec.Vec2, radius float64, policy Policy) (Result, error) {
	if radius <= 0 {
		return Count(0), nil
	}
	return e.walk(it, Count(0), circleShadow{center: center, radius: radius}, policy)
}

// CrossingsFromEllipse computes the crossings of the path with the shadow
// of the ellipse inscribed in frame.  Empty frames give a count of zero.
func (e *Engine) CrossingsFromEllipse(it Iterator, frame rect.Rect, policy Policy) (Result, error) {
	if isEmpty(frame) {
		return Count(0), nil
	}
	return e.walk(it, Count(0), ellipseShadow{frame: frame}, policy)
}

// CrossingsFromSegment computes the crossings of the path with the shadow
// of the segment a-b.
func (e *Engine) CrossingsFromSegment(it Iterator, a, b vec.Vec2, policy Policy) (Result, error) {
	return e.walk(it, Count(0), segmentShadow{a: a, b: b}, policy)
}

// CrossingsFromTriangle computes the crossings of the path with the shadow
// of the triangle t1, t2, t3.
func (e *Engine) CrossingsFromTriangle(it Iterator, t1, t2, t3 vec.Vec2, policy Policy) (Result, error) {
	return e.walk(it, Count(0), newTriangleShadow(t1, t2, t3), policy)
}

// CrossingsFromRoundRect computes the crossings of the path with the
// shadow of the rectangle r with rounded corners.  The corner radii are
// clamped to half the rectangle size.  Empty rectangles give a count of
// zero.
func (e *Engine) CrossingsFromRoundRect(it Iterator, r rect.Rect, arcWidth, arcHeight float64, policy Policy) (Result, error) {
	if isEmpty(r) {
		return Count(0), nil
	}
	aw := min(max(arcWidth, 0), (r.URx-r.LLx)/2)
	ah := min(max(arcHeight, 0), (r.URy-r.LLy)/2)
	return e.walk(it, Count(0), roundRectShadow{r: r, aw: aw, ah: ah}, policy)
}

// CrossingsFromPath computes the crossings of the path with the shadow of
// another path.
func (e *Engine) CrossingsFromPath(it Iterator, s *Shadow, policy Policy) (Result, error) {
	return e.walk(it, Count(0), s, policy)
}

// CrossingsFromPoint calls [Engine.CrossingsFromPoint] with the default
// parameters.
func CrossingsFromPoint(it Iterator, p vec.Vec2, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromPoint(it, p, policy)
}

// CrossingsFromRect calls [Engine.CrossingsFromRect] with the default
// parameters.
func CrossingsFromRect(it Iterator, r rect.Rect, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromRect(it, r, policy)
}

// CrossingsFromCircle calls [Engine.CrossingsFromCircle] with the default
// parameters.
func CrossingsFromCircle(it Iterator, center vec.Vec2, radius float64, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromCircle(it, center, radius, policy)
}

// CrossingsFromEllipse calls [Engine.CrossingsFromEllipse] with the
// default parameters.
func CrossingsFromEllipse(it Iterator, frame rect.Rect, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromEllipse(it, frame, policy)
}

// CrossingsFromSegment calls [Engine.CrossingsFromSegment] with the
// default parameters.
func CrossingsFromSegment(it Iterator, a, b vec.Vec2, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromSegment(it, a, b, policy)
}

// CrossingsFromTriangle calls [Engine.CrossingsFromTriangle] with the
// default parameters.
func CrossingsFromTriangle(it Iterator, t1, t2, t3 vec.Vec2, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromTriangle(it, t1, t2, t3, policy)
}

// CrossingsFromRoundRect calls [Engine.CrossingsFromRoundRect] with the
// default parameters.
func CrossingsFromRoundRect(it Iterator, r rect.Rect, arcWidth, arcHeight float64, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromRoundRect(it, r, arcWidth, arcHeight, policy)
}

// CrossingsFromPath calls [Engine.CrossingsFromPath] with the default
// parameters.
func CrossingsFromPath(it Iterator, s *Shadow, policy Policy) (Result, error) {
	return defaultEngine.CrossingsFromPath(it, s, policy)
}

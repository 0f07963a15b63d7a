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

	"seehuhn.de/go/crossings/segment"
)

// crossingsPointSegment returns the signed number of times the segment
// p0-p1 crosses the ray which extends from p to the right.  Upward
// segments (increasing y) count +1, downward segments -1.
func crossingsPointSegment(p, p0, p1 vec.Vec2) int {
	if p.Y < p0.Y && p.Y < p1.Y {
		return 0
	}
	if p.Y >= p0.Y && p.Y >= p1.Y {
		return 0
	}
	if p.X >= p0.X && p.X >= p1.X {
		return 0
	}
	if p.X < p0.X && p.X < p1.X {
		return upDown(p0.Y, p1.Y)
	}
	xIntercept := p0.X + (p.Y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
	if p.X >= xIntercept {
		return 0
	}
	return upDown(p0.Y, p1.Y)
}

// crossingsPointSegmentStrict is like crossingsPointSegment, but a ray
// through an end point or touching the segment from the right still
// counts.  Horizontal segments never count.
func crossingsPointSegmentStrict(p, p0, p1 vec.Vec2) int {
	if p0.Y == p1.Y {
		return 0
	}
	if p.Y < p0.Y && p.Y < p1.Y {
		return 0
	}
	if p.Y > p0.Y && p.Y > p1.Y {
		return 0
	}
	if p.X > p0.X && p.X > p1.X {
		return 0
	}
	if p.X < p0.X && p.X < p1.X {
		return upDown(p0.Y, p1.Y)
	}
	xIntercept := p0.X + (p.Y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
	if p.X > xIntercept {
		return 0
	}
	return upDown(p0.Y, p1.Y)
}

func upDown(y0, y1 float64) int {
	if y0 < y1 {
		return 1
	}
	return -1
}

// rightOfShadow updates the count for a segment which lies entirely to
// the right of a shadow spanning [yMin, yMax] vertically.  Each of the two
// rails crossed contributes one unit.
func rightOfShadow(acc Result, y0, y1, yMin, yMax float64) Result {
	switch {
	case y0 < y1:
		if y0 <= yMin {
			acc = acc.Add(1)
		}
		if y1 >= yMax {
			acc = acc.Add(1)
		}
	case y1 < y0:
		if y1 <= yMin {
			acc = acc.Add(-1)
		}
		if y0 >= yMax {
			acc = acc.Add(-1)
		}
	}
	return acc
}

// crossingsRectSegment accumulates the crossings of the segment p0-p1
// with the shadow of the rectangle r.
func crossingsRectSegment(acc Result, r rect.Rect, p0, p1 vec.Vec2) Result {
	if p0.Y >= r.URy && p1.Y >= r.URy {
		return acc
	}
	if p0.Y <= r.LLy && p1.Y <= r.LLy {
		return acc
	}
	if p0.X <= r.LLx && p1.X <= r.LLx {
		return acc
	}
	if p0.X >= r.URx && p1.X >= r.URx {
		return rightOfShadow(acc, p0.Y, p1.Y, r.LLy, r.URy)
	}

	// Both ranges overlap.  An end point strictly inside means the
	// boundary enters the rectangle.
	if strictlyInside(p0, r) || strictlyInside(p1, r) {
		return Intersects
	}

	// Clip the segment to the vertical range of the rectangle.
	xi0 := p0.X
	if p0.Y < r.LLy {
		xi0 += (r.LLy - p0.Y) * (p1.X - p0.X) / (p1.Y - p0.Y)
	} else if p0.Y > r.URy {
		xi0 += (r.URy - p0.Y) * (p1.X - p0.X) / (p1.Y - p0.Y)
	}
	xi1 := p1.X
	if p1.Y < r.LLy {
		xi1 += (r.LLy - p1.Y) * (p0.X - p1.X) / (p0.Y - p1.Y)
	} else if p1.Y > r.URy {
		xi1 += (r.URy - p1.Y) * (p0.X - p1.X) / (p0.Y - p1.Y)
	}
	if xi0 <= r.LLx && xi1 <= r.LLx {
		return acc
	}
	if xi0 >= r.URx && xi1 >= r.URx {
		return rightOfShadow(acc, p0.Y, p1.Y, r.LLy, r.URy)
	}
	return Intersects
}

func strictlyInside(p vec.Vec2, r rect.Rect) bool {
	return p.X > r.LLx && p.X < r.URx && p.Y > r.LLy && p.Y < r.URy
}

// crossingsCircleSegment accumulates the crossings of the segment p0-p1
// with the shadow of a circle.
func crossingsCircleSegment(acc Result, center vec.Vec2, radius float64, p0, p1 vec.Vec2) Result {
	xMin := center.X - radius
	yMin := center.Y - radius
	yMax := center.Y + radius
	if p0.Y <= yMin && p1.Y <= yMin {
		return acc
	}
	if p0.Y >= yMax && p1.Y >= yMax {
		return acc
	}
	if p0.X <= xMin && p1.X <= xMin {
		return acc
	}
	if p0.X >= center.X+radius && p1.X >= center.X+radius {
		return rightOfShadow(acc, p0.Y, p1.Y, yMin, yMax)
	}
	if segment.CircleIntersects(center, radius, p0, p1) {
		return Intersects
	}
	n := crossingsPointSegment(vec.Vec2{X: center.X, Y: yMin}, p0, p1)
	n += crossingsPointSegment(vec.Vec2{X: center.X, Y: yMax}, p0, p1)
	return acc.Add(n)
}

// crossingsEllipseSegment accumulates the crossings of the segment p0-p1
// with the shadow of the ellipse inscribed in frame.
func crossingsEllipseSegment(acc Result, frame rect.Rect, p0, p1 vec.Vec2) Result {
	if p0.Y <= frame.LLy && p1.Y <= frame.LLy {
		return acc
	}
	if p0.Y >= frame.URy && p1.Y >= frame.URy {
		return acc
	}
	if p0.X <= frame.LLx && p1.X <= frame.LLx {
		return acc
	}
	if p0.X >= frame.URx && p1.X >= frame.URx {
		return rightOfShadow(acc, p0.Y, p1.Y, frame.LLy, frame.URy)
	}
	if segment.EllipseIntersects(frame, p0, p1, true) {
		return Intersects
	}
	xc := (frame.LLx + frame.URx) / 2
	n := crossingsPointSegment(vec.Vec2{X: xc, Y: frame.LLy}, p0, p1)
	n += crossingsPointSegment(vec.Vec2{X: xc, Y: frame.URy}, p0, p1)
	return acc.Add(n)
}

// crossingsSegmentSegment accumulates the crossings of the segment p0-p1
// with the shadow of the segment s1-s2.
func crossingsSegmentSegment(acc Result, s1, s2, p0, p1 vec.Vec2) Result {
	xMin, xMax := min(s1.X, s2.X), max(s1.X, s2.X)
	yMin, yMax := min(s1.Y, s2.Y), max(s1.Y, s2.Y)
	if p0.Y <= yMin && p1.Y <= yMin {
		return acc
	}
	if p0.Y >= yMax && p1.Y >= yMax {
		return acc
	}
	if p0.X <= xMin && p1.X <= xMin {
		return acc
	}
	if p0.X >= xMax && p1.X >= xMax {
		return rightOfShadow(acc, p0.Y, p1.Y, yMin, yMax)
	}
	if segment.IntersectsWithEnds(p0, p1, s1, s2) {
		return Intersects
	}

	// Orient the shadow segment upwards before classifying the sides.
	lo, hi := s1, s2
	if s1.Y > s2.Y {
		lo, hi = s2, s1
	}
	side1 := segment.Side(lo, hi, p0, 0)
	side2 := segment.Side(lo, hi, p1, 0)
	if side1 > 0 || side2 > 0 {
		n1 := crossingsPointSegment(s1, p0, p1)
		var n2 int
		if n1 != 0 {
			n2 = crossingsPointSegmentStrict(s2, p0, p1)
		} else {
			n2 = crossingsPointSegment(s2, p0, p1)
		}
		acc = acc.Add(n1 + n2)
	}
	return acc
}

// triangleShadow holds the precomputed extent of a triangle.  x4yMin and
// x4yMax are the largest x coordinates of the vertices on the bottom and
// top rows of the bounding box.
type triangleShadow struct {
	t1, t2, t3     vec.Vec2
	box            rect.Rect
	x4yMin, x4yMax float64
}

func newTriangleShadow(t1, t2, t3 vec.Vec2) *triangleShadow {
	s := &triangleShadow{
		t1: t1, t2: t2, t3: t3,
		box:    rect.Rect{LLx: t1.X, LLy: t1.Y, URx: t1.X, URy: t1.Y},
		x4yMin: t1.X,
		x4yMax: t1.X,
	}
	for _, t := range [2]vec.Vec2{t2, t3} {
		s.box.LLx = min(s.box.LLx, t.X)
		s.box.URx = max(s.box.URx, t.X)
		if t.Y == s.box.LLy {
			s.x4yMin = max(s.x4yMin, t.X)
		} else if t.Y < s.box.LLy {
			s.box.LLy = t.Y
			s.x4yMin = t.X
		}
		if t.Y == s.box.URy {
			s.x4yMax = max(s.x4yMax, t.X)
		} else if t.Y > s.box.URy {
			s.box.URy = t.Y
			s.x4yMax = t.X
		}
	}
	return s
}

// crossings accumulates the crossings of the segment p0-p1 with the
// shadow of the triangle.
func (s *triangleShadow) crossings(acc Result, p0, p1 vec.Vec2) Result {
	b := s.box
	if p0.Y <= b.LLy && p1.Y <= b.LLy {
		return acc
	}
	if p0.Y >= b.URy && p1.Y >= b.URy {
		return acc
	}
	if p0.X <= b.LLx && p1.X <= b.LLx {
		return acc
	}
	if p0.X >= b.URx && p1.X >= b.URx {
		return rightOfShadow(acc, p0.Y, p1.Y, b.LLy, b.URy)
	}
	if segment.TriangleIntersects(s.t1, s.t2, s.t3, p0, p1) {
		return Intersects
	}
	n := crossingsPointSegment(vec.Vec2{X: s.x4yMin, Y: b.LLy}, p0, p1)
	n += crossingsPointSegment(vec.Vec2{X: s.x4yMax, Y: b.URy}, p0, p1)
	return acc.Add(n)
}

// crossingsRoundRectSegment accumulates the crossings of the segment p0-p1
// with the shadow of a round rectangle.  The arc sizes must already be
// clamped to half the rectangle size.
func crossingsRoundRectSegment(acc Result, r rect.Rect, arcWidth, arcHeight float64, p0, p1 vec.Vec2) Result {
	if p0.Y >= r.URy && p1.Y >= r.URy {
		return acc
	}
	if p0.Y <= r.LLy && p1.Y <= r.LLy {
		return acc
	}
	if p0.X <= r.LLx && p1.X <= r.LLx {
		return acc
	}
	if p0.X >= r.URx && p1.X >= r.URx {
		return rightOfShadow(acc, p0.Y, p1.Y, r.LLy, r.URy)
	}
	if segment.RoundRectIntersects(r, arcWidth, arcHeight, p0, p1) {
		return Intersects
	}
	x := r.URx - arcWidth
	n := crossingsPointSegment(vec.Vec2{X: x, Y: r.LLy}, p0, p1)
	n += crossingsPointSegment(vec.Vec2{X: x, Y: r.URy}, p0, p1)
	return acc.Add(n)
}

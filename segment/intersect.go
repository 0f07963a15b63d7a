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

package segment

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// uncertain is the outcome of a one-sided segment intersection test.
type uncertain int

const (
	no uncertain = iota
	perhaps
	yes
)

func fromBool(b bool) uncertain {
	if b {
		return yes
	}
	return no
}

// withEnds tests the end points of segment c-d against the line through
// a-b.  Touching end points count as an intersection.
func withEnds(a, b, c, d vec.Vec2) uncertain {
	v1 := b.Sub(a)
	va := c.Sub(a)
	vb := d.Sub(a)
	f1 := va.X*v1.Y - va.Y*v1.X
	f2 := vb.X*v1.Y - vb.Y*v1.X

	s := f1 * f2
	if s < 0 {
		return perhaps
	}
	if s > 0 {
		return no
	}

	// One or both of c and d are on the line: use the projections.
	l2 := v1.X*v1.X + v1.Y*v1.Y
	switch {
	case f1 == 0 && f2 == 0:
		p1 := (va.X*v1.X + va.Y*v1.Y) / l2
		p2 := (vb.X*v1.X + vb.Y*v1.Y) / l2
		return fromBool((p1 >= 0 || p2 >= 0) && (p1 <= 1 || p2 <= 1))
	case f1 == 0:
		p1 := (va.X*v1.X + va.Y*v1.Y) / l2
		return fromBool(p1 >= 0 && p1 <= 1)
	case f2 == 0:
		p2 := (vb.X*v1.X + vb.Y*v1.Y) / l2
		return fromBool(p2 >= 0 && p2 <= 1)
	}
	return no
}

// withoutEnds is like withEnds, but touching end points do not count.
// Collinear segments intersect only if they overlap.
func withoutEnds(a, b, c, d vec.Vec2) uncertain {
	v1 := b.Sub(a)
	va := c.Sub(a)
	vb := d.Sub(a)
	f1 := va.X*v1.Y - va.Y*v1.X
	f2 := vb.X*v1.Y - vb.Y*v1.X

	s := f1 * f2
	if s < 0 {
		return perhaps
	}
	if s > 0 {
		return no
	}
	if f1 == 0 && f2 == 0 {
		l2 := v1.X*v1.X + v1.Y*v1.Y
		p1 := (va.X*v1.X + va.Y*v1.Y) / l2
		p2 := (vb.X*v1.X + vb.Y*v1.Y) / l2
		return fromBool((p1 > 0 || p2 > 0) && (p1 < 1 || p2 < 1))
	}
	return no
}

// IntersectsWithEnds reports whether the segments a0-a1 and b0-b1
// intersect, where touching at an end point counts.
func IntersectsWithEnds(a0, a1, b0, b1 vec.Vec2) bool {
	if withEnds(a0, a1, b0, b1) == no {
		return false
	}
	return withEnds(b0, b1, a0, a1) != no
}

// IntersectsWithoutEnds reports whether the segments a0-a1 and b0-b1
// cross, where touching at an end point does not count.
func IntersectsWithoutEnds(a0, a1, b0, b1 vec.Vec2) bool {
	if withoutEnds(a0, a1, b0, b1) == no {
		return false
	}
	return withoutEnds(b0, b1, a0, a1) != no
}

// CircleIntersects reports whether the segment a-b enters the open disk
// with the given center and radius.
func CircleIntersects(center vec.Vec2, radius float64, a, b vec.Vec2) bool {
	return DistanceSquaredSegmentPoint(a, b, center) < radius*radius
}

// EllipseIntersects reports whether the segment a-b intersects the ellipse
// inscribed in frame.  If touching is false, a segment tangent to the
// ellipse does not count.  Empty frames never intersect.
func EllipseIntersects(frame rect.Rect, a, b vec.Vec2, touching bool) bool {
	w := frame.URx - frame.LLx
	h := frame.URy - frame.LLy
	if w <= 0 || h <= 0 {
		return false
	}

	// Work in coordinates centred on the ellipse.
	ra := w / 2
	rb := h / 2
	c := vec.Vec2{X: frame.LLx + ra, Y: frame.LLy + rb}
	p1 := a.Sub(c)
	p2 := b.Sub(c)
	sqA := ra * ra
	sqB := rb * rb
	v := p2.Sub(p1)

	qa := v.X*v.X/sqA + v.Y*v.Y/sqB
	qb := 2*p1.X*v.X/sqA + 2*p1.Y*v.Y/sqB
	qc := p1.X*p1.X/sqA + p1.Y*p1.Y/sqB - 1
	if qa == 0 {
		// zero-length segment
		return qc < 0 || (touching && qc == 0)
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}
	if disc == 0 {
		if !touching {
			return false
		}
		t := -qb / 2 / qa
		return t >= 0 && t <= 1
	}
	sq := math.Sqrt(disc)
	t1 := (-qb + sq) / 2 / qa
	t2 := (-qb - sq) / 2 / qa
	return (t1 >= 0 || t2 >= 0) && (t1 <= 1 || t2 <= 1)
}

// TriangleIntersects reports whether the segment a-b intersects the
// interior of the triangle t1, t2, t3.  The test uses separating axes
// perpendicular to the three triangle edges and to the segment.
func TriangleIntersects(t1, t2, t3, a, b vec.Vec2) bool {
	axes := [4]vec.Vec2{
		t2.Sub(t1),
		t3.Sub(t2),
		t1.Sub(t3),
		b.Sub(a),
	}
	for _, v := range axes {
		if v.X == 0 && v.Y == 0 {
			continue
		}
		min1, max1 := projectRange(v, t1, t2, t3)
		min2, max2 := projectRange(v, a, b)
		if max1 <= min2 || max2 <= min1 {
			return false
		}
	}
	return true
}

// projectRange returns the range of the perpendicular products of v with
// the given points.
func projectRange(v vec.Vec2, pts ...vec.Vec2) (lo, hi float64) {
	for i, p := range pts {
		x := v.X*p.Y - v.Y*p.X
		if i == 0 || x < lo {
			lo = x
		}
		if i == 0 || x > hi {
			hi = x
		}
	}
	return lo, hi
}

// Cohen-Sutherland region codes.
const (
	csLeft = 1 << iota
	csRight
	csBottom
	csTop
)

func csCode(p vec.Vec2, r rect.Rect) int {
	code := 0
	if p.X < r.LLx {
		code |= csLeft
	} else if p.X > r.URx {
		code |= csRight
	}
	if p.Y < r.LLy {
		code |= csBottom
	} else if p.Y > r.URy {
		code |= csTop
	}
	return code
}

// RectIntersects reports whether the segment a-b intersects the closed
// rectangle r.  Zero-length segments never count.
func RectIntersects(r rect.Rect, a, b vec.Vec2) bool {
	code1 := csCode(a, r)
	code2 := csCode(b, r)
	// Every pass moves one end point onto a rectangle edge, so four
	// passes per point suffice; the bound guards against rounding.
	for range 16 {
		if code1|code2 == 0 {
			return a != b
		}
		if code1&code2 != 0 {
			return false
		}

		code := code1
		if code == 0 {
			code = code2
		}
		var p vec.Vec2
		switch {
		case code&csTop != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(r.URy-a.Y)/(b.Y-a.Y), Y: r.URy}
		case code&csBottom != 0:
			p = vec.Vec2{X: a.X + (b.X-a.X)*(r.LLy-a.Y)/(b.Y-a.Y), Y: r.LLy}
		case code&csRight != 0:
			p = vec.Vec2{X: r.URx, Y: a.Y + (b.Y-a.Y)*(r.URx-a.X)/(b.X-a.X)}
		default:
			p = vec.Vec2{X: r.LLx, Y: a.Y + (b.Y-a.Y)*(r.LLx-a.X)/(b.X-a.X)}
		}
		if code == code1 {
			a = p
			code1 = csCode(a, r)
		} else {
			b = p
			code2 = csCode(b, r)
		}
	}
	return false
}

// RoundRectIntersects reports whether the segment a-b intersects the
// rectangle r with rounded corners.  The corners are quarter ellipses with
// horizontal radius arcWidth and vertical radius arcHeight; the radii are
// clamped to half the rectangle size.
func RoundRectIntersects(r rect.Rect, arcWidth, arcHeight float64, a, b vec.Vec2) bool {
	w := r.URx - r.LLx
	h := r.URy - r.LLy
	if w <= 0 || h <= 0 {
		return false
	}
	aw := min(max(arcWidth, 0), w/2)
	ah := min(max(arcHeight, 0), h/2)

	if !RectIntersects(r, a, b) {
		return false
	}
	if aw == 0 || ah == 0 {
		return true
	}

	hBand := rect.Rect{LLx: r.LLx, LLy: r.LLy + ah, URx: r.URx, URy: r.URy - ah}
	if hBand.LLy < hBand.URy && RectIntersects(hBand, a, b) {
		return true
	}
	vBand := rect.Rect{LLx: r.LLx + aw, LLy: r.LLy, URx: r.URx - aw, URy: r.URy}
	if vBand.LLx < vBand.URx && RectIntersects(vBand, a, b) {
		return true
	}

	corners := [4]rect.Rect{
		{LLx: r.LLx, LLy: r.LLy, URx: r.LLx + 2*aw, URy: r.LLy + 2*ah},
		{LLx: r.URx - 2*aw, LLy: r.LLy, URx: r.URx, URy: r.LLy + 2*ah},
		{LLx: r.URx - 2*aw, LLy: r.URy - 2*ah, URx: r.URx, URy: r.URy},
		{LLx: r.LLx, LLy: r.URy - 2*ah, URx: r.LLx + 2*aw, URy: r.URy},
	}
	for _, c := range corners {
		if EllipseIntersects(c, a, b, false) {
			return true
		}
	}
	return false
}

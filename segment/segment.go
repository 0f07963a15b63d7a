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

// Package segment implements closed-form predicates on line segments.
//
// All functions are pure.  Points are given as vec.Vec2 values and boxes
// as rect.Rect values; no function allocates.
package segment

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Side returns the side of the line through a and b on which p lies: 1 or
// -1 for the two sides, 0 if p is on the line.  Values of the cross
// product which are at most eps in magnitude count as zero.
func Side(a, b, p vec.Vec2, eps float64) int {
	d := b.Sub(a)
	q := p.Sub(a)
	side := q.X*d.Y - q.Y*d.X
	if side != 0 && math.Abs(side) <= eps {
		side = 0
	}
	return sign(side)
}

// CCW is like Side, but classifies points on the line by their position
// relative to the segment: -1 before a, 0 between a and b, 1 beyond b.
func CCW(a, b, p vec.Vec2, eps float64) int {
	d := b.Sub(a)
	q := p.Sub(a)
	ccw := q.X*d.Y - q.Y*d.X
	if math.Abs(ccw) <= eps {
		ccw = q.X*d.X + q.Y*d.Y
		if ccw > 0 {
			// Project relative to b instead of a.
			q = q.Sub(d)
			ccw = q.X*d.X + q.Y*d.Y
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	return sign(ccw)
}

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// DistanceSquaredLinePoint returns the squared distance of p from the
// infinite line through a and b.  If a and b coincide, the squared distance
// between a and p is returned.
func DistanceSquaredLinePoint(a, b, p vec.Vec2) float64 {
	d := b.Sub(a)
	den := d.X*d.X + d.Y*d.Y
	if den == 0 {
		q := p.Sub(a)
		return q.X*q.X + q.Y*q.Y
	}
	s := ((a.Y-p.Y)*d.X - (a.X-p.X)*d.Y) / den
	return s * s * den
}

// DistanceSquaredSegmentPoint returns the squared distance of p from the
// segment a-b.
func DistanceSquaredSegmentPoint(a, b, p vec.Vec2) float64 {
	d := b.Sub(a)
	den := d.X*d.X + d.Y*d.Y
	q := p.Sub(a)
	if den == 0 {
		return q.X*q.X + q.Y*q.Y
	}
	ratio := (q.X*d.X + q.Y*d.Y) / den
	if ratio <= 0 {
		return q.X*q.X + q.Y*q.Y
	}
	if ratio >= 1 {
		r := p.Sub(b)
		return r.X*r.X + r.Y*r.Y
	}
	f := (q.X*d.Y - q.Y*d.X) / den
	return f * f * den
}

// ProjectedPointOnLine returns the parameter t such that a + t(b-a) is the
// orthogonal projection of p onto the line through a and b.  The result is
// 0 if a and b coincide.
func ProjectedPointOnLine(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	den := d.X*d.X + d.Y*d.Y
	if den == 0 {
		return 0
	}
	q := p.Sub(a)
	return (q.X*d.X + q.Y*d.Y) / den
}

// ClosestPoint returns the point of the segment a-b closest to p.
func ClosestPoint(a, b, p vec.Vec2) vec.Vec2 {
	t := min(max(ProjectedPointOnLine(p, a, b), 0), 1)
	return a.Add(b.Sub(a).Mul(t))
}

// FarthestPoint returns the point of the segment a-b farthest from p.
// This is always one of the two end points.
func FarthestPoint(a, b, p vec.Vec2) vec.Vec2 {
	da := a.Sub(p)
	db := b.Sub(p)
	if db.X*db.X+db.Y*db.Y > da.X*da.X+da.Y*da.Y {
		return b
	}
	return a
}

// CompareEpsilon compares v1 and v2, treating differences below one unit in
// the last place as equality.
func CompareEpsilon(v1, v2 float64) int {
	v := v1 - v2
	if math.Abs(v) < ulp(v) {
		return 0
	}
	if v <= 0 {
		return -1
	}
	return 1
}

// ulp returns the distance from |x| to the next larger float64.
func ulp(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}

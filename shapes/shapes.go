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

// Package shapes builds outlines of simple geometric shapes as paths.
//
// All shapes use the non-zero fill rule.  Rectangles and ellipses are
// traversed counter-clockwise in a coordinate system where y points up.
package shapes

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
)

// kappa is the distance of the control points from the end points when a
// quarter circle of radius 1 is approximated by a cubic Bézier curve.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Rect returns the outline of r.
func Rect(r rect.Rect) *crossings.Path {
	return crossings.NewPath(crossings.NonZero).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// RoundRect returns the outline of r with rounded corners.  The corners
// are quarter ellipses with horizontal radius arcWidth and vertical radius
// arcHeight.  The radii are clamped to half the size of r.
func RoundRect(r rect.Rect, arcWidth, arcHeight float64) *crossings.Path {
	aw := min(max(arcWidth, 0), (r.URx-r.LLx)/2)
	ah := min(max(arcHeight, 0), (r.URy-r.LLy)/2)
	if aw == 0 || ah == 0 {
		return Rect(r)
	}
	kx := kappa * aw
	ky := kappa * ah

	p := crossings.NewPath(crossings.NonZero)
	p.MoveTo(vec.Vec2{X: r.LLx + aw, Y: r.LLy})
	p.LineTo(vec.Vec2{X: r.URx - aw, Y: r.LLy})
	p.CubeTo(
		vec.Vec2{X: r.URx - aw + kx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.LLy + ah - ky},
		vec.Vec2{X: r.URx, Y: r.LLy + ah})
	p.LineTo(vec.Vec2{X: r.URx, Y: r.URy - ah})
	p.CubeTo(
		vec.Vec2{X: r.URx, Y: r.URy - ah + ky},
		vec.Vec2{X: r.URx - aw + kx, Y: r.URy},
		vec.Vec2{X: r.URx - aw, Y: r.URy})
	p.LineTo(vec.Vec2{X: r.LLx + aw, Y: r.URy})
	p.CubeTo(
		vec.Vec2{X: r.LLx + aw - kx, Y: r.URy},
		vec.Vec2{X: r.LLx, Y: r.URy - ah + ky},
		vec.Vec2{X: r.LLx, Y: r.URy - ah})
	p.LineTo(vec.Vec2{X: r.LLx, Y: r.LLy + ah})
	p.CubeTo(
		vec.Vec2{X: r.LLx, Y: r.LLy + ah - ky},
		vec.Vec2{X: r.LLx + aw - kx, Y: r.LLy},
		vec.Vec2{X: r.LLx + aw, Y: r.LLy})
	return p.Close()
}

// Ellipse returns the outline of the ellipse inscribed in frame, made of
// four cubic arcs.
func Ellipse(frame rect.Rect) *crossings.Path {
	rx := (frame.URx - frame.LLx) / 2
	ry := (frame.URy - frame.LLy) / 2
	c := vec.Vec2{X: frame.LLx + rx, Y: frame.LLy + ry}
	kx := kappa * rx
	ky := kappa * ry

	p := crossings.NewPath(crossings.NonZero)
	p.MoveTo(vec.Vec2{X: c.X + rx, Y: c.Y})
	p.CubeTo(
		vec.Vec2{X: c.X + rx, Y: c.Y + ky},
		vec.Vec2{X: c.X + kx, Y: c.Y + ry},
		vec.Vec2{X: c.X, Y: c.Y + ry})
	p.CubeTo(
		vec.Vec2{X: c.X - kx, Y: c.Y + ry},
		vec.Vec2{X: c.X - rx, Y: c.Y + ky},
		vec.Vec2{X: c.X - rx, Y: c.Y})
	p.CubeTo(
		vec.Vec2{X: c.X - rx, Y: c.Y - ky},
		vec.Vec2{X: c.X - kx, Y: c.Y - ry},
		vec.Vec2{X: c.X, Y: c.Y - ry})
	p.CubeTo(
		vec.Vec2{X: c.X + kx, Y: c.Y - ry},
		vec.Vec2{X: c.X + rx, Y: c.Y - ky},
		vec.Vec2{X: c.X + rx, Y: c.Y})
	return p.Close()
}

// Circle returns the outline of a circle.
func Circle(center vec.Vec2, radius float64) *crossings.Path {
	return Ellipse(rect.Rect{
		LLx: center.X - radius,
		LLy: center.Y - radius,
		URx: center.X + radius,
		URy: center.Y + radius,
	})
}

// Triangle returns the closed outline through a, b and c.
func Triangle(a, b, c vec.Vec2) *crossings.Path {
	return crossings.NewPath(crossings.NonZero).
		MoveTo(a).
		LineTo(b).
		LineTo(c).
		Close()
}

// Segment returns an open path from a to b.
func Segment(a, b vec.Vec2) *crossings.Path {
	return crossings.NewPath(crossings.NonZero).
		MoveTo(a).
		LineTo(b)
}

// OrientedRect returns a rectangle which is centred at center, with its
// first axis along axis1.  The half extents along the first axis and the
// perpendicular axis are e1 and e2.
func OrientedRect(center, axis1 vec.Vec2, e1, e2 float64) *crossings.Path {
	u := unit(axis1)
	v := vec.Vec2{X: -u.Y, Y: u.X}
	return Parallelogram(center, u, e1, v, e2)
}

// Parallelogram returns the parallelogram centred at center with sides
// parallel to axis1 and axis2.  The half extents along the two axes are
// e1 and e2.
func Parallelogram(center, axis1 vec.Vec2, e1 float64, axis2 vec.Vec2, e2 float64) *crossings.Path {
	u := unit(axis1).Mul(e1)
	v := unit(axis2).Mul(e2)
	return crossings.NewPath(crossings.NonZero).
		MoveTo(center.Sub(u).Sub(v)).
		LineTo(center.Add(u).Sub(v)).
		LineTo(center.Add(u).Add(v)).
		LineTo(center.Sub(u).Add(v)).
		Close()
}

// unit scales v to length 1.  The zero vector is returned unchanged.
func unit(v vec.Vec2) vec.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

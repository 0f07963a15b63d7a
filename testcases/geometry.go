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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498

// rectangle builds an axis-aligned rectangle.
func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// openTriangle is like triangle, but the path is not closed.
func openTriangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3))
}

// line builds an open path with a single segment.
func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2))
}

// fivePointStar builds a five-pointed star (self-intersecting).  The
// central pentagon has winding number 2.
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// addCircle appends a counter-clockwise circle made of four cubic arcs.
func addCircle(p *path.Data, cx, cy, r float64) *path.Data {
	kr := kappa * r
	return p.
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
		Close()
}

// circle builds a single circle.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r)
}

// ringShape builds two concentric circles with the same orientation.
// The area between them has winding number 1, the hole winding number 2.
func ringShape(cx, cy, outerR, innerR float64) *path.Data {
	return addCircle(addCircle(&path.Data{}, cx, cy, outerR), cx, cy, innerR)
}

// squareFrame builds a square with a square hole, both outlines having
// the same orientation.  The hole has winding number 2.
func squareFrame(x0, y0, x1, y1, inset float64) *path.Data {
	outer := rectangle(x0, y0, x1, y1)
	return outer.
		MoveTo(pt(x0+inset, y0+inset)).
		LineTo(pt(x1-inset, y0+inset)).
		LineTo(pt(x1-inset, y1-inset)).
		LineTo(pt(x0+inset, y1-inset)).
		Close()
}

// dome builds the region between a quadratic curve and its chord.
func dome(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// twoTriangles builds two separate triangles as subpaths of one path.
func twoTriangles(cx1, cy1, cx2, cy2, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1-size, cy1+size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1, cy1-size)).
		Close().
		MoveTo(pt(cx2-size, cy2+size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2, cy2-size)).
		Close()
}

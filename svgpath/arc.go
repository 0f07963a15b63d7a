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

package svgpath

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
)

// arcTo appends an SVG elliptical arc from p0 to p1 to the path, as a
// sequence of cubic Bézier curves spanning at most 90 degrees each.
// The rotation is given in degrees.
func arcTo(p *crossings.Path, p0 vec.Vec2, rx, ry, rot float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(p1)
		return
	}

	sinPhi, cosPhi := math.Sincos(rot * math.Pi / 180)

	// Transform to a coordinate system centred between the end points and
	// aligned with the ellipse axes.
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale up radii which are too small to reach the end point.
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(max(num, 0) / den)
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	theta := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	dTheta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dTheta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	delta := dTheta / float64(n)
	t := 4.0 / 3.0 * math.Tan(delta/4)

	point := func(a float64) (pos, deriv vec.Vec2) {
		sinA, cosA := math.Sincos(a)
		ex, ey := rx*cosA, ry*sinA
		dx, dy := -rx*sinA, ry*cosA
		pos = vec.Vec2{X: center.X + cosPhi*ex - sinPhi*ey, Y: center.Y + sinPhi*ex + cosPhi*ey}
		deriv = vec.Vec2{X: cosPhi*dx - sinPhi*dy, Y: sinPhi*dx + cosPhi*dy}
		return pos, deriv
	}

	_, d0 := point(theta)
	from := p0
	for i := range n {
		a := theta + float64(i+1)*delta
		to, d1 := point(a)
		if i == n-1 {
			to = p1
		}
		p.CubeTo(from.Add(d0.Mul(t)), to.Sub(d1.Mul(t)), to)
		from, d0 = to, d1
	}
}

// angle returns the signed angle from (ux, uy) to (vx, vy).
func angle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

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

import "seehuhn.de/go/geom/matrix"

var pointCases = []TestCase{
	{
		Name:   "square_inside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 32)},
		Want:   true,
	},
	{
		Name:   "square_outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(60, 32)},
		Want:   false,
	},
	{
		Name:   "square_vertex",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(10, 10)},
		Want:   true,
	},
	{
		Name:   "square_left_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(10, 32)},
		Want:   true,
	},
	{
		Name:   "square_right_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(54, 32)},
		Want:   false,
	},
	{
		Name:   "star_center_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 32)},
		Want:   true,
	},
	{
		Name:   "star_center_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 32)},
		Want:   false,
	},
	{
		Name:   "star_tip_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 11)},
		Want:   true,
	},
	{
		Name:   "two_triangles_first",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(16, 36)},
		Want:   true,
	},
	{
		Name:   "two_triangles_between",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 36)},
		Want:   false,
	},
	{
		Name:   "open_triangle",
		Path:   openTriangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 40)},
		Want:   false,
	},
	{
		Name:   "ctm_inside",
		Path:   rectangle(0, 0, 10, 10),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{2, 0, 0, 2, 10, 10},
		Query:  Point{P: pt(20, 20)},
		Want:   true,
	},
	{
		Name:   "ctm_outside",
		Path:   rectangle(0, 0, 10, 10),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{2, 0, 0, 2, 10, 10},
		Query:  Point{P: pt(35, 20)},
		Want:   false,
	},
}

var curveCases = []TestCase{
	{
		Name:   "dome_inside",
		Path:   dome(10, 50, 32, -10, 54, 50),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 30)},
		Want:   true,
	},
	{
		Name:   "dome_above_curve",
		Path:   dome(10, 50, 32, -10, 54, 50),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 15)},
		Want:   false,
	},
	{
		Name:   "circle_inside",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(45, 40)},
		Want:   true,
	},
	{
		Name:   "circle_corner_outside",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(48, 48)},
		Want:   false,
	},
	{
		Name:   "ring_hole_evenodd",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 33)},
		Want:   false,
	},
	{
		Name:   "ring_hole_nonzero",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(32, 33)},
		Want:   true,
	},
	{
		Name:   "ring_band_evenodd",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Point{P: pt(50, 33)},
		Want:   true,
	},
}

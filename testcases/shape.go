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

var rectCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(20, 20, 30, 30)},
		Want:   true,
	},
	{
		Name:   "contained_in_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  ContainsRect{R: box(20, 20, 30, 30)},
		Want:   true,
	},
	{
		Name:   "across_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(50, 20, 60, 30)},
		Want:   true,
	},
	{
		Name:   "across_edge_not_contained",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  ContainsRect{R: box(50, 20, 60, 30)},
		Want:   false,
	},
	{
		Name:   "outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(56, 56, 62, 62)},
		Want:   false,
	},
	{
		Name:   "around_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(2, 2, 62, 62)},
		Want:   true,
	},
	{
		Name:   "around_square_not_contained",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  ContainsRect{R: box(2, 2, 62, 62)},
		Want:   false,
	},
	{
		Name:   "empty",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(20, 20, 20, 30)},
		Want:   false,
	},
	{
		Name:   "ring_band_evenodd",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(46, 30, 49, 34)},
		Want:   true,
	},
	{
		Name:   "ring_hole_nonzero",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   NonZero,
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(30, 30, 34, 34)},
		Want:   true,
	},
}

var circleCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Circle{Center: pt(32, 32), Radius: 5},
		Want:   true,
	},
	{
		Name:   "across_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Circle{Center: pt(56, 32), Radius: 5},
		Want:   true,
	},
	{
		Name:   "outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Circle{Center: pt(60, 60), Radius: 3},
		Want:   false,
	},
	{
		Name:   "zero_radius",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Circle{Center: pt(32, 32), Radius: 0},
		Want:   false,
	},
	{
		Name:   "ring_hole_evenodd",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Circle{Center: pt(32, 32), Radius: 5},
		Want:   false,
	},
}

var ellipseCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Ellipse{Frame: box(20, 28, 44, 36)},
		Want:   true,
	},
	{
		Name:   "around_corner",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Ellipse{Frame: box(50, 50, 60, 60)},
		Want:   true,
	},
	{
		Name:   "outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Ellipse{Frame: box(56, 20, 62, 40)},
		Want:   false,
	},
	{
		Name:   "flat_frame",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Ellipse{Frame: box(20, 30, 44, 30)},
		Want:   false,
	},
}

var segmentCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Segment{A: pt(20, 20), B: pt(30, 40)},
		Want:   true,
	},
	{
		Name:   "across_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Segment{A: pt(50, 32), B: pt(60, 32)},
		Want:   true,
	},
	{
		Name:   "outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Segment{A: pt(60, 10), B: pt(60, 50)},
		Want:   false,
	},
	{
		Name:   "ring_band_evenodd",
		Path:   ringShape(32, 32, 25, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Segment{A: pt(46, 33), B: pt(49, 33)},
		Want:   true,
	},
}

var triangleCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Triangle{A: pt(20, 20), B: pt(30, 20), C: pt(25, 30)},
		Want:   true,
	},
	{
		Name:   "across_corner",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Triangle{A: pt(50, 50), B: pt(60, 50), C: pt(55, 60)},
		Want:   true,
	},
	{
		Name:   "outside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Triangle{A: pt(56, 56), B: pt(62, 56), C: pt(59, 62)},
		Want:   false,
	},
	{
		Name:   "star_center_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Triangle{A: pt(31, 31), B: pt(33, 31), C: pt(32, 33)},
		Want:   false,
	},
}

var roundRectCases = []TestCase{
	{
		Name:   "inside_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  RoundRect{R: box(20, 20, 40, 40), ArcWidth: 5, ArcHeight: 5},
		Want:   true,
	},
	{
		Name:   "triangle_in_corner_cutout",
		Path:   triangle(16, 16, 25, 16, 16, 25),
		Width:  64,
		Height: 64,
		Query:  RoundRect{R: box(20, 20, 40, 40), ArcWidth: 8, ArcHeight: 8},
		Want:   false,
	},
	{
		Name:   "triangle_in_corner_sharp",
		Path:   triangle(16, 16, 25, 16, 16, 25),
		Width:  64,
		Height: 64,
		Query:  Rect{R: box(20, 20, 40, 40)},
		Want:   true,
	},
}

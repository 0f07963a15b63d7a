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

var pathCases = []TestCase{
	{
		Name:   "overlapping_squares",
		Path:   rectangle(10, 10, 54, 54),
		Width:  80,
		Height: 80,
		Query:  Path{Other: rectangle(40, 40, 70, 70)},
		Want:   true,
	},
	{
		Name:   "disjoint_squares",
		Path:   rectangle(10, 10, 54, 54),
		Width:  80,
		Height: 80,
		Query:  Path{Other: rectangle(58, 10, 62, 20)},
		Want:   false,
	},
	{
		Name:   "small_square_inside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(20, 20, 30, 30)},
		Want:   true,
	},
	{
		Name:   "large_square_around",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(2, 2, 62, 62)},
		Want:   true,
	},
	{
		Name:   "open_line_through",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: line(0, 33, 64, 33)},
		Want:   true,
	},
	{
		Name:   "frame_hole_evenodd",
		Path:   squareFrame(10, 10, 54, 54, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(30, 30, 34, 34)},
		Want:   false,
	},
	{
		Name:   "frame_hole_nonzero",
		Path:   squareFrame(10, 10, 54, 54, 12),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(30, 30, 34, 34)},
		Want:   true,
	},
	{
		Name:   "frame_band_evenodd",
		Path:   squareFrame(10, 10, 54, 54, 12),
		Rule:   EvenOdd,
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(46, 30, 49, 34)},
		Want:   true,
	},
	{
		Name:   "open_line_on_top_edge",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: line(10, 54, 54, 54)},
		Want:   false,
	},
	{
		Name:   "circle_meets_triangle",
		Path:   circle(32, 32, 15),
		Width:  64,
		Height: 64,
		Query:  Path{Other: triangle(40, 40, 60, 40, 50, 60)},
		Want:   true,
	},
	{
		Name:   "edge_neighbours",
		Path:   rectangle(10, 10, 32, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(32, 10, 54, 54)},
		Want:   false,
	},
	{
		Name:   "corner_neighbours",
		Path:   rectangle(10, 10, 32, 32),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(32, 32, 54, 54)},
		Want:   false,
	},
	{
		Name:   "shared_edge_inside",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Query:  Path{Other: rectangle(10, 10, 32, 54)},
		Want:   true,
	},
}

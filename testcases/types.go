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

// Package testcases holds named containment scenes with known answers.
//
// The scenes are shared by the tests of the crossings packages and by the
// commands which export them as JSON or draw them into PDF files.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single containment or intersection query.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the outline being queried
	Rule   FillRule      // fill rule of the outline
	Width  int           // canvas width, used for drawing
	Height int           // canvas height, used for drawing
	CTM    matrix.Matrix // transformation of Path (zero value means identity)
	Query  Query         // the question asked about the outline
	Want   bool          // the expected answer
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Query is the question asked about a path.
type Query interface {
	isQuery()
}

// Point asks whether P lies inside the path.
type Point struct {
	P vec.Vec2
}

// ContainsRect asks whether R lies entirely inside the path.
type ContainsRect struct {
	R rect.Rect
}

// Rect asks whether the path interior overlaps R.
type Rect struct {
	R rect.Rect
}

// Circle asks whether the path interior overlaps a circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Ellipse asks whether the path interior overlaps the ellipse inscribed
// in Frame.
type Ellipse struct {
	Frame rect.Rect
}

// Segment asks whether the segment A-B meets the path interior.
type Segment struct {
	A, B vec.Vec2
}

// Triangle asks whether the path interior overlaps a triangle.
type Triangle struct {
	A, B, C vec.Vec2
}

// RoundRect asks whether the path interior overlaps a rectangle with
// rounded corners.  The corner radii are ArcWidth and ArcHeight.
type RoundRect struct {
	R                   rect.Rect
	ArcWidth, ArcHeight float64
}

// Path asks whether the interiors of the path and Other overlap.
type Path struct {
	Other *path.Data
}

func (Point) isQuery()        {}
func (ContainsRect) isQuery() {}
func (Rect) isQuery()         {}
func (Circle) isQuery()       {}
func (Ellipse) isQuery()      {}
func (Segment) isQuery()      {}
func (Triangle) isQuery()     {}
func (RoundRect) isQuery()    {}
func (Path) isQuery()         {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box is a helper to create a rect.Rect from its corners.
func box(llx, lly, urx, ury float64) rect.Rect {
	return rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}
}

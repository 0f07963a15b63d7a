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
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// Iterator is a restartable cursor over the elements of a path.
//
// Iterators hold no state other than their position, so several iterators
// over the same path may be used concurrently.
type Iterator interface {
	// HasNext reports whether another element is available.
	HasNext() bool

	// Next returns the next element.  After the last element, Next
	// returns an error wrapping ErrExhausted.
	Next() (Element, error)

	// Restart returns a fresh iterator over the same elements.  The
	// receiver is not modified.
	Restart() Iterator

	// Rule returns the fill rule of the underlying path.
	Rule() FillRule

	// IsPolyline reports whether the path is a single open subpath made
	// of straight lines.
	IsPolyline() bool

	// IsCurved reports whether the path contains quadratic or cubic
	// segments.
	IsCurved() bool

	// IsPolygon reports whether the path is a single closed subpath made
	// of straight lines.
	IsPolygon() bool

	// IsMultiParts reports whether the path has more than one subpath.
	IsMultiParts() bool
}

// pathIter iterates over the elements of a stored Path.
type pathIter struct {
	p   *Path
	m   *matrix.Matrix // optional transformation
	pos int
}

func (it *pathIter) HasNext() bool {
	return it.pos < len(it.p.Elements)
}

func (it *pathIter) Next() (Element, error) {
	if it.pos >= len(it.p.Elements) {
		return Element{}, fmt.Errorf("element %d: %w", it.pos, ErrExhausted)
	}
	e := it.p.Elements[it.pos]
	it.pos++
	if it.m != nil {
		e = e.transform(*it.m)
	}
	return e, nil
}

func (it *pathIter) Restart() Iterator {
	return &pathIter{p: it.p, m: it.m}
}

func (it *pathIter) Rule() FillRule {
	return it.p.Rule
}

func (it *pathIter) IsPolyline() bool {
	curved, multi, closed := it.p.shape()
	return !curved && !multi && !closed
}

func (it *pathIter) IsCurved() bool {
	curved, _, _ := it.p.shape()
	return curved
}

func (it *pathIter) IsPolygon() bool {
	curved, multi, closed := it.p.shape()
	return !curved && !multi && closed
}

func (it *pathIter) IsMultiParts() bool {
	_, multi, _ := it.p.shape()
	return multi
}

// Collect reads all remaining elements from it.
func Collect(it Iterator) ([]Element, error) {
	var res []Element
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return res, err
		}
		res = append(res, e)
	}
	return res, nil
}

// curveSource is a two-element iterator (MoveTo, curve) used to flatten a
// single curve element on the fly.
type curveSource struct {
	curve Element
	rule  FillRule
	pos   int
}

func (s *curveSource) HasNext() bool { return s.pos < 2 }

func (s *curveSource) Next() (Element, error) {
	switch s.pos {
	case 0:
		s.pos++
		return Element{Cmd: CmdMoveTo, From: s.curve.From, To: s.curve.From}, nil
	case 1:
		s.pos++
		return s.curve, nil
	}
	return Element{}, fmt.Errorf("curve source: %w", ErrExhausted)
}

func (s *curveSource) Restart() Iterator {
	return &curveSource{curve: s.curve, rule: s.rule}
}

func (s *curveSource) Rule() FillRule     { return s.rule }
func (s *curveSource) IsPolyline() bool   { return false }
func (s *curveSource) IsCurved() bool     { return true }
func (s *curveSource) IsPolygon() bool    { return false }
func (s *curveSource) IsMultiParts() bool { return false }

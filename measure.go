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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings/segment"
)

// Bounds returns the bounding box of the visible part of the path.
// Curves are flattened first, and only points which are connected by
// line segments contribute.  The second return value is false if the path
// draws nothing.
func (e *Engine) Bounds(it Iterator) (rect.Rect, bool, error) {
	fl := NewFlattener(it, e.Flatness, e.Limit)
	var box rect.Rect
	found := false
	for fl.HasNext() {
		el, err := fl.Next()
		if err != nil {
			return rect.Rect{}, false, err
		}
		if el.Cmd != CmdLineTo {
			continue
		}
		if !found {
			box = rect.Rect{LLx: el.From.X, LLy: el.From.Y, URx: el.From.X, URy: el.From.Y}
			found = true
		}
		box = extend(extend(box, el.From), el.To)
	}
	return box, found, nil
}

// ControlBounds returns the bounding box of all points of the path,
// including curve control points and isolated MoveTo points.  The second
// return value is false if the path is empty.
func (e *Engine) ControlBounds(it Iterator) (rect.Rect, bool, error) {
	var box rect.Rect
	found := false
	add := func(p vec.Vec2) {
		if !found {
			box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			found = true
			return
		}
		box = extend(box, p)
	}
	for it.HasNext() {
		el, err := it.Next()
		if err != nil {
			return rect.Rect{}, false, err
		}
		switch el.Cmd {
		case CmdMoveTo, CmdLineTo:
			add(el.To)
		case CmdQuadTo:
			add(el.Ctrl1)
			add(el.To)
		case CmdCubeTo:
			add(el.Ctrl1)
			add(el.Ctrl2)
			add(el.To)
		}
	}
	return box, found, nil
}

func extend(box rect.Rect, p vec.Vec2) rect.Rect {
	box.LLx = min(box.LLx, p.X)
	box.LLy = min(box.LLy, p.Y)
	box.URx = max(box.URx, p.X)
	box.URy = max(box.URy, p.Y)
	return box
}

// Length returns the length of the flattened path outline.  Closing
// segments are included.
func (e *Engine) Length(it Iterator) (float64, error) {
	fl := NewFlattener(it, e.Flatness, e.Limit)
	var length float64
	for fl.HasNext() {
		el, err := fl.Next()
		if err != nil {
			return 0, err
		}
		if el.Cmd == CmdLineTo || el.Cmd == CmdClose {
			length += el.To.Sub(el.From).Length()
		}
	}
	return length, nil
}

// ClosestPoint returns the point of the path which is closest to p.
// If p lies inside a closed subpath, p itself is returned.
// The second return value is false if the path is empty.
func (e *Engine) ClosestPoint(it Iterator, p vec.Vec2) (vec.Vec2, bool, error) {
	mask := it.Rule().PointMask()
	fl := NewFlattener(it, e.Flatness, e.Limit)
	if !fl.HasNext() {
		return vec.Vec2{}, false, nil
	}
	el, err := fl.Next()
	if err != nil {
		return vec.Vec2{}, false, err
	}
	if el.Cmd != CmdMoveTo {
		return vec.Vec2{}, false, fmt.Errorf("closest point: %w", ErrMissingMoveTo)
	}

	best := el.To
	bestDist := dist2(best, p)
	try := func(q vec.Vec2) {
		if d := dist2(q, p); d < bestDist {
			best, bestDist = q, d
		}
	}

	cur, mov := el.To, el.To
	n := 0
	for fl.HasNext() {
		el, err = fl.Next()
		if err != nil {
			return vec.Vec2{}, false, err
		}
		switch el.Cmd {
		case CmdMoveTo:
			cur, mov = el.To, el.To
			n = 0
			try(el.To)
		case CmdLineTo:
			n += crossingsPointSegment(p, cur, el.To)
			try(segment.ClosestPoint(cur, el.To, p))
			cur = el.To
		case CmdClose:
			n += crossingsPointSegment(p, cur, mov)
			try(segment.ClosestPoint(cur, mov, p))
			if n&mask != 0 {
				return p, true, nil
			}
			n = 0
			cur = mov
		}
	}
	return best, true, nil
}

// FarthestPoint returns the point of the path which is farthest from p.
// The second return value is false if the path is empty.
func (e *Engine) FarthestPoint(it Iterator, p vec.Vec2) (vec.Vec2, bool, error) {
	fl := NewFlattener(it, e.Flatness, e.Limit)
	if !fl.HasNext() {
		return vec.Vec2{}, false, nil
	}
	el, err := fl.Next()
	if err != nil {
		return vec.Vec2{}, false, err
	}
	if el.Cmd != CmdMoveTo {
		return vec.Vec2{}, false, fmt.Errorf("farthest point: %w", ErrMissingMoveTo)
	}

	best := el.To
	bestDist := dist2(best, p)
	try := func(q vec.Vec2) {
		if d := dist2(q, p); d > bestDist {
			best, bestDist = q, d
		}
	}

	cur, mov := el.To, el.To
	for fl.HasNext() {
		el, err = fl.Next()
		if err != nil {
			return vec.Vec2{}, false, err
		}
		switch el.Cmd {
		case CmdMoveTo:
			cur, mov = el.To, el.To
			try(el.To)
		case CmdLineTo:
			try(segment.FarthestPoint(cur, el.To, p))
			cur = el.To
		case CmdClose:
			try(segment.FarthestPoint(cur, mov, p))
			cur = mov
		}
	}
	return best, true, nil
}

func dist2(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Bounds calls [Engine.Bounds] with the default parameters.
func Bounds(it Iterator) (rect.Rect, bool, error) {
	return defaultEngine.Bounds(it)
}

// ControlBounds calls [Engine.ControlBounds].
func ControlBounds(it Iterator) (rect.Rect, bool, error) {
	return defaultEngine.ControlBounds(it)
}

// Length calls [Engine.Length] with the default parameters.
func Length(it Iterator) (float64, error) {
	return defaultEngine.Length(it)
}

// ClosestPoint calls [Engine.ClosestPoint] with the default parameters.
func ClosestPoint(it Iterator, p vec.Vec2) (vec.Vec2, bool, error) {
	return defaultEngine.ClosestPoint(it, p)
}

// FarthestPoint calls [Engine.FarthestPoint] with the default parameters.
func FarthestPoint(it Iterator, p vec.Vec2) (vec.Vec2, bool, error) {
	return defaultEngine.FarthestPoint(it, p)
}

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

import "strconv"

// FillRule determines how an accumulated crossing count is turned into an
// inside/outside decision.
type FillRule int

const (
	// NonZero treats every non-zero winding count as inside.
	NonZero FillRule = iota

	// EvenOdd treats odd crossing counts as inside.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(" + strconv.Itoa(int(r)) + ")"
	}
}

// PointMask returns the bit mask for counts obtained from a point ray.
func (r FillRule) PointMask() int {
	if r == EvenOdd {
		return 1
	}
	return -1
}

// ShapeMask returns the bit mask for counts obtained from a rectangle or
// another two-rail shadow.  These counts are doubled, since every boundary
// crossing is seen by both rails.
func (r FillRule) ShapeMask() int {
	if r == EvenOdd {
		return 2
	}
	return -1
}

// Result is the outcome of a crossing computation: either a signed count of
// boundary crossings, or the information that the path boundary touches the
// shadow.
//
// The zero value is a count of zero.
type Result struct {
	n          int
	intersects bool
}

// Intersects is the Result reporting that the path boundary touches the
// shadow.  Once produced it absorbs all further arithmetic.
var Intersects = Result{intersects: true}

// Count returns a Result holding the crossing count n.
func Count(n int) Result {
	return Result{n: n}
}

// Count returns the crossing count.  The second return value is false if
// r is [Intersects].
func (r Result) Count() (int, bool) {
	if r.intersects {
		return 0, false
	}
	return r.n, true
}

// IsIntersects reports whether r is [Intersects].
func (r Result) IsIntersects() bool {
	return r.intersects
}

// IsZero reports whether r is a count of zero.
func (r Result) IsZero() bool {
	return !r.intersects && r.n == 0
}

// Add returns r with delta added to the count.  [Intersects] is returned
// unchanged.
func (r Result) Add(delta int) Result {
	if r.intersects {
		return r
	}
	return Result{n: r.n + delta}
}

// Fills reports whether r denotes an inside/intersecting state under the
// given mask.  [Intersects] always fills.
func (r Result) Fills(mask int) bool {
	return r.intersects || r.n&mask != 0
}

func (r Result) String() string {
	if r.intersects {
		return "intersects"
	}
	return strconv.Itoa(r.n)
}

// Policy selects how a crossing computation treats a path which ends
// without closing its last subpath.
type Policy int

const (
	// Standard leaves the count of an open path untouched.
	Standard Policy = iota

	// AutoClose adds the implicit segment from the current point back to
	// the start of the last subpath.
	AutoClose

	// OpenIsEmpty discards the count of an open path.  An open path can
	// then only report [Intersects].
	OpenIsEmpty
)

func (p Policy) String() string {
	switch p {
	case Standard:
		return "standard"
	case AutoClose:
		return "autoclose"
	case OpenIsEmpty:
		return "openisempty"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

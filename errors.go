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

import "errors"

var (
	// ErrExhausted is returned by Iterator.Next after the last element.
	ErrExhausted = errors.New("path iterator exhausted")

	// ErrMissingMoveTo is returned when a path does not start with a
	// MoveTo element.
	ErrMissingMoveTo = errors.New("missing initial moveto in path definition")
)

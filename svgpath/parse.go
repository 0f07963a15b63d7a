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

// Package svgpath reads SVG path data into crossings paths.
//
// All SVG path commands are supported.  Elliptical arcs are converted into
// cubic Bézier curves.
package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
)

// argCount gives the number of arguments of each SVG path command.
var argCount = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == ',' || data[i] == '\n' || data[i] == '\r' || data[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// MustParse is like Parse but panics on error.
func MustParse(s string, rule crossings.FillRule) *crossings.Path {
	p, err := Parse(s, rule)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads an SVG path data string.  The empty string gives an empty
// path.
func Parse(s string, rule crossings.FillRule) (*crossings.Path, error) {
	p := crossings.NewPath(rule)
	data := []byte(s)
	i := skipCommaWhitespace(data)
	if i >= len(data) {
		return p, nil
	}
	if data[i] != 'M' && data[i] != 'm' {
		return nil, fmt.Errorf("bad path: path should start with a moveto command")
	}

	var args [7]float64
	var cur, start, lastCtrl vec.Vec2
	prev := byte('z')
	for {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		cmd := prev
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(data[i]) {
			cmd = data[i]
			repeat = false
			i++
			i += skipCommaWhitespace(data[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, known := argCount[upper]
		if !known {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := range n {
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(data) && (data[i] == '0' || data[i] == '1') {
					args[j] = float64(data[i] - '0')
					i++
				} else {
					return nil, fmt.Errorf("bad path: arc flags should be 0 or 1 in command '%c' at position %d", cmd, i+1)
				}
			} else {
				num, k := strconv.ParseFloat(data[i:])
				if k == 0 {
					if repeat && j == 0 {
						return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", data[i], i+1)
					}
					return nil, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, i+1)
				}
				args[j] = num
				i += k
			}
			i += skipCommaWhitespace(data[i:])
		}

		rel := cmd != upper
		pt := func(k int) vec.Vec2 {
			v := vec.Vec2{X: args[k], Y: args[k+1]}
			if rel {
				v = v.Add(cur)
			}
			return v
		}

		next := cur
		switch upper {
		case 'M':
			next = pt(0)
			p.MoveTo(next)
			start = next
			// Further coordinate pairs are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			next = start
			p.Close()
		case 'L':
			next = pt(0)
			p.LineTo(next)
		case 'H':
			next.X = args[0]
			if rel {
				next.X += cur.X
			}
			p.LineTo(next)
		case 'V':
			next.Y = args[0]
			if rel {
				next.Y += cur.Y
			}
			p.LineTo(next)
		case 'C':
			c1, c2 := pt(0), pt(2)
			next = pt(4)
			p.CubeTo(c1, c2, next)
			lastCtrl = c2
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			c2 := pt(0)
			next = pt(2)
			p.CubeTo(c1, c2, next)
			lastCtrl = c2
		case 'Q':
			c := pt(0)
			next = pt(2)
			p.QuadTo(c, next)
			lastCtrl = c
		case 'T':
			c := cur
			if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				c = cur.Mul(2).Sub(lastCtrl)
			}
			next = pt(0)
			p.QuadTo(c, next)
			lastCtrl = c
		case 'A':
			next = pt(5)
			arcTo(p, cur, args[0], args[1], args[2], args[3] == 1, args[4] == 1, next)
		}
		prev = cmd
		cur = next
	}
	return p, nil
}

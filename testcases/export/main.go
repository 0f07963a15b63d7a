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

// Command export writes all containment scenes to a JSON file, so that
// other implementations can be checked against the same answers.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings/testcases"
)

func main() {
	outName := flag.String("o", "testdata/testcases.json", "output file name")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Path     []jsonSegment `json:"path"`
	FillRule string        `json:"fill_rule"`
	CTM      []float64     `json:"ctm,omitempty"`
	Query    jsonQuery     `json:"query"`
	Want     bool          `json:"want"`
}

type jsonQuery struct {
	Kind   string        `json:"kind"`
	Points [][]float64   `json:"points,omitempty"`
	Rect   []float64     `json:"rect,omitempty"`
	Radius float64       `json:"radius,omitempty"`
	Arc    []float64     `json:"arc,omitempty"`
	Path   []jsonSegment `json:"path,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path.Iter()),
		FillRule: "nonzero",
		Query:    queryToJSON(tc.Query),
		Want:     tc.Want,
	}
	if tc.Rule == testcases.EvenOdd {
		jtc.FillRule = "evenodd"
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		jtc.CTM = tc.CTM[:]
	}
	return jtc
}

func queryToJSON(q testcases.Query) jsonQuery {
	switch q := q.(type) {
	case testcases.Point:
		return jsonQuery{Kind: "point", Points: points(q.P)}
	case testcases.ContainsRect:
		return jsonQuery{Kind: "contains_rect", Rect: rectToJSON(q.R)}
	case testcases.Rect:
		return jsonQuery{Kind: "rect", Rect: rectToJSON(q.R)}
	case testcases.Circle:
		return jsonQuery{Kind: "circle", Points: points(q.Center), Radius: q.Radius}
	case testcases.Ellipse:
		return jsonQuery{Kind: "ellipse", Rect: rectToJSON(q.Frame)}
	case testcases.Segment:
		return jsonQuery{Kind: "segment", Points: points(q.A, q.B)}
	case testcases.Triangle:
		return jsonQuery{Kind: "triangle", Points: points(q.A, q.B, q.C)}
	case testcases.RoundRect:
		return jsonQuery{
			Kind: "round_rect",
			Rect: rectToJSON(q.R),
			Arc:  []float64{q.ArcWidth, q.ArcHeight},
		}
	case testcases.Path:
		return jsonQuery{Kind: "path", Path: pathToJSON(q.Other.Iter())}
	default:
		panic("unknown query type")
	}
}

func points(pts ...vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}

func rectToJSON(r rect.Rect) []float64 {
	return []float64{r.LLx, r.LLy, r.URx, r.URy}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: points(pts...)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}

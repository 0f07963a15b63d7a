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

// Command genpdf draws every containment scene into a PDF file.  The
// outline is filled in grey and the query shape is stroked on top of it.
// With -png, the files are also rendered to PNG images using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/crossings/shapes"
	"seehuhn.de/go/crossings/testcases"
)

func main() {
	outDir := flag.String("d", "testdata/scenes", "output directory")
	png := flag.Bool("png", false, "also render PNG images using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("cannot create output directory", "dir", *outDir, "err", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				slog.Error("cannot write PDF", "scene", name, "err", err)
				os.Exit(1)
			}
			if *png {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					slog.Error("cannot render PNG", "scene", name, "err", err)
					os.Exit(1)
				}
			}
			slog.Debug("scene written", "scene", name, "want", tc.Want)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// A darker background marks scenes where the query should fail.
	if tc.Want {
		page.SetFillColor(color.DeviceGray(1))
	} else {
		page.SetFillColor(color.DeviceGray(0.85))
	}
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Scene coordinates have the origin at the top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	page.SetFillColor(color.DeviceGray(0.6))
	drawPath(page, tc.Path.Iter(), ctm)
	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	// Queries are given in device coordinates.
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)
	drawPath(page, queryOutline(tc.Query), matrix.Identity)
	page.Stroke()

	return page.Close()
}

// queryOutline returns the outline of the shape a query asks about.
func queryOutline(q testcases.Query) path.Path {
	switch q := q.(type) {
	case testcases.Point:
		r := rect.Rect{LLx: q.P.X - 0.5, LLy: q.P.Y - 0.5, URx: q.P.X + 0.5, URy: q.P.Y + 0.5}
		return shapes.Rect(r).Geom()
	case testcases.ContainsRect:
		return shapes.Rect(q.R).Geom()
	case testcases.Rect:
		return shapes.Rect(q.R).Geom()
	case testcases.Circle:
		return shapes.Circle(q.Center, q.Radius).Geom()
	case testcases.Ellipse:
		return shapes.Ellipse(q.Frame).Geom()
	case testcases.Segment:
		return shapes.Segment(q.A, q.B).Geom()
	case testcases.Triangle:
		return shapes.Triangle(q.A, q.B, q.C).Geom()
	case testcases.RoundRect:
		return shapes.RoundRect(q.R, q.ArcWidth, q.ArcHeight).Geom()
	case testcases.Path:
		return q.Other.Iter()
	default:
		panic(fmt.Sprintf("unknown query type %T", q))
	}
}

func drawPath(page *document.Page, p path.Path, m matrix.Matrix) {
	// PDF has no quadratic Bézier curves.
	var buf [3]vec.Vec2
	for cmd, src := range p.ToCubic() {
		pts := buf[:len(src)]
		for i, v := range src {
			pts[i] = vec.Vec2{
				X: m[0]*v.X + m[2]*v.Y + m[4],
				Y: m[1]*v.X + m[3]*v.Y + m[5],
			}
		}
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

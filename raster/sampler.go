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

// Package raster evaluates path containment on a pixel grid.
//
// A [Sampler] tests the centre of every pixel against a path, using the
// crossing-number engine.  The resulting masks are meant for debugging
// and for comparing the engine against anti-aliasing rasterizers; they
// contain no partial coverage.
package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/crossings"
)

// Sampler evaluates paths at the pixel centres of a clip rectangle.
// Create one instance and reuse it for multiple paths.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Engine holds the curve approximation parameters.
	Engine *crossings.Engine

	row []float32 // one scanline of output, reused
}

// NewSampler returns a Sampler with the given clip rectangle, the
// identity transformation and the default engine parameters.
func NewSampler(clip rect.Rect) *Sampler {
	return &Sampler{
		CTM:    matrix.Identity,
		Clip:   clip,
		Engine: crossings.NewEngine(),
	}
}

// Reset changes the clip rectangle, keeping internal buffers.
func (s *Sampler) Reset(clip rect.Rect) {
	s.Clip = clip
}

// Fill tests every pixel centre in the clip rectangle against p.  For
// every scanline which touches the bounding box of the path, emit is
// called with the y coordinate, the x coordinate of the first pixel, and
// one value per pixel: 1 inside and 0 outside.  The coverage slice is
// only valid during the call.
func (s *Sampler) Fill(p *crossings.Path, emit func(y, xMin int, coverage []float32)) error {
	box, ok, err := s.Engine.Bounds(p.IterTransform(s.CTM))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	xMin := max(int(math.Floor(box.LLx)), int(s.Clip.LLx))
	xMax := min(int(math.Ceil(box.URx)), int(s.Clip.URx))
	yMin := max(int(math.Floor(box.LLy)), int(s.Clip.LLy))
	yMax := min(int(math.Ceil(box.URy)), int(s.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return nil
	}

	width := xMax - xMin
	if cap(s.row) < width {
		s.row = make([]float32, width)
	}
	row := s.row[:width]

	for y := yMin; y < yMax; y++ {
		for i := range row {
			pt := vec.Vec2{X: float64(xMin+i) + 0.5, Y: float64(y) + 0.5}
			inside, err := s.Engine.ContainsPoint(p.IterTransform(s.CTM), pt)
			if err != nil {
				return err
			}
			if inside {
				row[i] = 1
			} else {
				row[i] = 0
			}
		}
		emit(y, xMin, row)
	}
	return nil
}

// Mask returns the containment mask of p over the clip rectangle.
// Pixels inside the path are 255, all others 0.
func (s *Sampler) Mask(p *crossings.Path) (*image.Alpha, error) {
	bounds := image.Rect(int(s.Clip.LLx), int(s.Clip.LLy), int(s.Clip.URx), int(s.Clip.URy))
	img := image.NewAlpha(bounds)
	err := s.Fill(p, func(y, xMin int, coverage []float32) {
		offs := img.PixOffset(xMin, y)
		for i, c := range coverage {
			img.Pix[offs+i] = uint8(c * 255)
		}
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Coverage returns the fraction of pixels in the clip rectangle whose
// centre lies inside p.
func (s *Sampler) Coverage(p *crossings.Path) (float64, error) {
	total := (s.Clip.URx - s.Clip.LLx) * (s.Clip.URy - s.Clip.LLy)
	if total <= 0 {
		return 0, nil
	}
	var inside float64
	err := s.Fill(p, func(_, _ int, coverage []float32) {
		for _, c := range coverage {
			inside += float64(c)
		}
	})
	if err != nil {
		return 0, err
	}
	return inside / total, nil
}

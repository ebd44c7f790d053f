// seehuhn.de/go/scratch - coverage tracking for scratch cards
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

package scratch

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Measure returns the fraction of the surface bounds which is covered by
// the shapes recorded in t.  The trace is rasterized at the given
// resolution, in pixels per card unit, and the pixel coverage is averaged.
// The surface is rounded up to whole pixels.
//
// Unlike the cell grid, this measures the erased area itself, so it can be
// used to judge how well a grid approximates the true coverage.
func Measure(t *Trace, bounds rect.Rect, resolution float64) (float64, error) {
	r, w, h, err := surfaceRasterizer(bounds, resolution)
	if err != nil {
		return 0, err
	}

	var sum float64
	r.Fill(t.Path(), func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			sum += float64(c)
		}
	})
	return sum / float64(w*h), nil
}

// Mask renders the shapes recorded in t into an alpha image, at the given
// resolution in pixels per card unit.  The top row of the image
// corresponds to the upper edge of bounds.
func Mask(t *Trace, bounds rect.Rect, resolution float64) (*image.Alpha, error) {
	r, w, h, err := surfaceRasterizer(bounds, resolution)
	if err != nil {
		return nil, err
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Fill(t.Path(), func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(max(0, min(255, int(c*256))))
		}
	})
	return img, nil
}

// surfaceRasterizer sets up a rasterizer whose device space covers bounds
// at the given resolution, with the y axis pointing down.
func surfaceRasterizer(bounds rect.Rect, resolution float64) (*Rasterizer, int, int, error) {
	if !isPositive(resolution) {
		return nil, 0, 0, fmt.Errorf("measure: resolution %g: %w", resolution, ErrResolution)
	}
	width := bounds.URx - bounds.LLx
	height := bounds.URy - bounds.LLy
	if !isPositive(width) || !isPositive(height) {
		return nil, 0, 0, fmt.Errorf("measure: surface %gx%g: %w", width, height, ErrInvalidSurface)
	}

	w := int(math.Ceil(width * resolution))
	h := int(math.Ceil(height * resolution))
	r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Matrix{
		resolution, 0,
		0, -resolution,
		-bounds.LLx * resolution, bounds.URy * resolution,
	}
	return r, w, h, nil
}

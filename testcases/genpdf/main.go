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

// Command genpdf draws every scenario into a PDF file: the exact erased
// area in white, the grid in dark grey, hit cells outlined in light grey
// and the gesture polylines on top.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/scratch"
	"seehuhn.de/go/scratch/testcases"
)

// margin around the card, in PDF points
const margin = 10

func main() {
	outDir := flag.String("d", "debug", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("cannot create output directory", slog.Any("error", err))
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				logger.Error("scenario failed", slog.String("name", name), slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("wrote", slog.String("file", pdfPath))
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	c, err := scratch.Replay(tc)
	if err != nil {
		return err
	}
	grid := c.Grid()

	paper := &pdf.Rectangle{
		URx: tc.Width + 2*margin,
		URy: tc.Height + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: everything which is still covered
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// card coordinates have the origin at the lower-left corner, like PDF
	page.Transform(matrix.Matrix{1, 0, 0, 1, margin, margin})

	// exact erased area
	page.SetFillColor(color.DeviceGray(1))
	drawPath(page, c.Trace.Path())
	page.Fill()

	// all cells, then the hit cells on top
	page.SetLineWidth(0.25)
	page.SetStrokeColor(color.DeviceGray(0.3))
	for _, cell := range grid.All() {
		r := cell.Rect
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
	}
	page.Stroke()

	hits := grid.HitRects(nil)
	if len(hits) > 0 {
		page.SetLineWidth(1)
		page.SetStrokeColor(color.DeviceGray(0.6))
		for _, r := range hits {
			inset := 0.5
			page.Rectangle(r.LLx+inset, r.LLy+inset, r.URx-r.LLx-2*inset, r.URy-r.LLy-2*inset)
		}
		page.Stroke()
	}

	// gesture polylines
	page.SetLineWidth(0.5)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetStrokeColor(color.DeviceGray(0.8))
	for _, g := range tc.Gestures {
		if len(g) < 2 {
			continue
		}
		page.MoveTo(g[0].X, g[0].Y)
		for _, p := range g[1:] {
			page.LineTo(p.X, p.Y)
		}
	}
	page.Stroke()

	if err := page.Close(); err != nil {
		return fmt.Errorf("%s: %w", pdfPath, err)
	}
	return nil
}

// drawPath appends the outline p to the current path of the page.
// Quadratic segments are converted to cubic ones.
func drawPath(page *document.Page, p *path.Data) {
	var current vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			page.MoveTo(current.X, current.Y)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			page.LineTo(current.X, current.Y)
			k++
		case path.CmdQuadTo:
			ctrl, end := p.Coords[k], p.Coords[k+1]
			c1 := current.Add(ctrl.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			k += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

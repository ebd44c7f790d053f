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
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Cell is one rectangular unit of coverage measurement.
// The rectangle never changes once the grid is built, and Hit only ever
// changes from false to true.
type Cell struct {
	Rect rect.Rect
	Hit  bool
}

// Grid partitions a card surface into square cells and keeps track of
// which cells have been revealed.
//
// Cells are stored column by column, starting at the lower-left corner of
// the surface.  Cells in the last column and row may extend beyond the
// surface when its size is not a multiple of the cell size; they are not
// clipped.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	bounds   rect.Rect
	cellSize float64
	cols     int
	rows     int
	cells    []Cell
	hits     int
}

// NewGrid builds the cell partition of the surface described by bounds.
// An error is returned if cellSize or the surface dimensions are not
// positive and finite.
func NewGrid(bounds rect.Rect, cellSize float64) (*Grid, error) {
	if !isPositive(cellSize) {
		return nil, fmt.Errorf("grid: cell size %g: %w", cellSize, ErrInvalidCellSize)
	}
	width := bounds.URx - bounds.LLx
	height := bounds.URy - bounds.LLy
	if !isPositive(width) || !isPositive(height) {
		return nil, fmt.Errorf("grid: surface %gx%g: %w", width, height, ErrInvalidSurface)
	}

	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	cells := make([]Cell, 0, cols*rows)
	for i := range cols {
		x := bounds.LLx + float64(i)*cellSize
		for j := range rows {
			y := bounds.LLy + float64(j)*cellSize
			cells = append(cells, Cell{
				Rect: rect.Rect{LLx: x, LLy: y, URx: x + cellSize, URy: y + cellSize},
			})
		}
	}

	return &Grid{
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}, nil
}

// isPositive reports whether x is a finite number greater than zero.
func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// MarkIf applies test to every cell which is not yet hit, and marks the
// cell as hit if the test succeeds.  Cells which are already hit are not
// tested again.  If emit is not nil, it is called for every newly revealed
// cell.  The return value is the number of newly revealed cells.
func (g *Grid) MarkIf(test func(r rect.Rect) bool, emit func(i int, c Cell)) int {
	if g == nil {
		return 0
	}
	n := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Hit || !test(c.Rect) {
			continue
		}
		c.Hit = true
		n++
		if emit != nil {
			emit(i, *c)
		}
	}
	g.hits += n
	return n
}

// RevealedFraction returns the fraction of cells which have been hit,
// in the range [0, 1].  A grid without cells reports 0.
func (g *Grid) RevealedFraction() float64 {
	if g == nil || len(g.cells) == 0 {
		return 0
	}
	return float64(g.hits) / float64(len(g.cells))
}

// Percent returns the revealed fraction as a percentage, rounded up to the
// next integer.  This is the value shown on the progress label.
func (g *Grid) Percent() int {
	if g == nil || len(g.cells) == 0 {
		return 0
	}
	n := len(g.cells)
	return (100*g.hits + n - 1) / n
}

// HitRects appends the rectangles of all hit cells to dst and returns the
// extended slice.
func (g *Grid) HitRects(dst []rect.Rect) []rect.Rect {
	if g == nil {
		return dst
	}
	for _, c := range g.cells {
		if c.Hit {
			dst = append(dst, c.Rect)
		}
	}
	return dst
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Hits returns the number of cells which have been hit.
func (g *Grid) Hits() int {
	if g == nil {
		return 0
	}
	return g.hits
}

// Cell returns the cell with index i.
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// Bounds returns the surface rectangle the grid was built for.
func (g *Grid) Bounds() rect.Rect {
	return g.bounds
}

// CellSize returns the edge length of the cells.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// All iterates over the cells in storage order.
func (g *Grid) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		if g == nil {
			return
		}
		for i, c := range g.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

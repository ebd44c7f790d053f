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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Carver turns a stream of pointer positions into coverage updates on a
// Grid.
//
// The positions of the current gesture form a polyline.  The first
// position of a gesture reveals the cells which contain it strictly inside
// their bounds; this ignores the extent of the erased disc, so cells near
// the start of a gesture may be missed.  Every further position reveals
// the cells touched by the segment from the previous position.
//
// A Carver is not safe for concurrent use.
type Carver struct {
	// Reveal, if not nil, is called for every cell as it becomes hit.
	Reveal func(i int, c Cell)

	// Trace, if not nil, records the exact shapes erased by the gesture
	// positions.
	Trace *Trace

	cfg    Config
	grid   *Grid
	points []vec.Vec2
}

// NewCarver returns a Carver for a surface with the given bounds.
// The configuration is validated first.
func NewCarver(cfg Config, bounds rect.Rect) (*Carver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(bounds, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	return &Carver{cfg: cfg, grid: grid}, nil
}

// Add appends p to the current gesture and marks the cells it reveals.
// The return value is the number of newly revealed cells.
func (c *Carver) Add(p vec.Vec2) int {
	n := len(c.points)
	c.points = append(c.points, p)

	if n == 0 {
		if c.Trace != nil {
			c.Trace.Dot(p)
		}
		return c.grid.MarkIf(func(r rect.Rect) bool {
			return ContainsOpen(r, p)
		}, c.Reveal)
	}

	prev := c.points[n-1]
	if c.Trace != nil {
		c.Trace.Segment(prev, p)
	}
	return c.grid.MarkIf(func(r rect.Rect) bool {
		return SegmentIntersectsRect(prev, p, r)
	}, c.Reveal)
}

// End finishes the current gesture.  The polyline is discarded, the grid
// keeps its state.  Pointer-up and pointer-cancel both end a gesture.
func (c *Carver) End() {
	c.points = c.points[:0]
}

// Reset discards the current gesture and rebuilds the grid for the given
// bounds.  The trace, if any, is cleared.  If the bounds are invalid, an
// error is returned and the carver is left unchanged.
func (c *Carver) Reset(bounds rect.Rect) error {
	grid, err := NewGrid(bounds, c.cfg.CellSize)
	if err != nil {
		return err
	}
	c.grid = grid
	c.points = c.points[:0]
	if c.Trace != nil {
		c.Trace.Reset()
	}
	return nil
}

// Points returns the positions of the current gesture.  The slice is owned
// by the carver and must not be modified.
func (c *Carver) Points() []vec.Vec2 {
	return c.points
}

// Grid returns the coverage grid.  The grid is replaced by Reset.
func (c *Carver) Grid() *Grid {
	return c.grid
}

// Config returns the configuration the carver was created with.
func (c *Carver) Config() Config {
	return c.cfg
}

// RevealedFraction returns the fraction of grid cells revealed so far.
func (c *Carver) RevealedFraction() float64 {
	return c.grid.RevealedFraction()
}

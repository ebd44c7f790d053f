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

// Package scratch tracks how much of a scratch card has been revealed.
//
// A [Grid] divides the card surface into square cells.  A [Carver] turns
// the pointer positions of drag gestures into a polyline and marks every
// cell the polyline touches, using [SegmentIntersectsRect].  The revealed
// fraction is the share of marked cells.  [Card] connects a carver to a
// pointer event source and a renderer.
//
// For diagnostics, a [Trace] records the exact erased shape, and [Measure]
// computes its area with a scanline [Rasterizer].
package scratch

//go:generate go run ./testcases/export

import "seehuhn.de/go/scratch/testcases"

// Replay performs the gestures of a scenario on a fresh carver, with
// tracing enabled.
func Replay(tc testcases.TestCase) (*Carver, error) {
	cfg := Config{
		CellSize:      tc.CellSize,
		EraseDiameter: tc.Diameter,
		Cap:           tc.Cap,
	}
	c, err := NewCarver(cfg, tc.Bounds())
	if err != nil {
		return nil, err
	}
	c.Trace = NewTrace(cfg.EraseDiameter, cfg.Cap)

	for _, g := range tc.Gestures {
		for _, p := range g {
			c.Add(p)
		}
		c.End()
	}
	return c, nil
}

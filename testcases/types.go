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

// Package testcases contains recorded gesture scenarios for scratch cards.
// They are used by the tests and by the export and genpdf tools.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a card together with the gestures performed on it.
type TestCase struct {
	Name     string  // lowercase a-z, 0-9 and _ only
	Width    float64 // card width
	Height   float64 // card height
	CellSize float64 // edge length of the coverage cells
	Diameter float64 // erase diameter
	Cap      graphics.LineCapStyle
	Gestures [][]vec.Vec2 // pointer positions, one slice per gesture
}

// Bounds returns the card surface, with the origin at the lower-left
// corner.
func (tc TestCase) Bounds() rect.Rect {
	return rect.Rect{URx: tc.Width, URy: tc.Height}
}

// Samples returns the total number of pointer positions.
func (tc TestCase) Samples() int {
	n := 0
	for _, g := range tc.Gestures {
		n += len(g)
	}
	return n
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// gestures collects its arguments into a gesture list.
func gestures(gs ...[]vec.Vec2) [][]vec.Vec2 {
	return gs
}

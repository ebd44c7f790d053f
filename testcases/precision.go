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

package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// precisionCases place positions exactly on cell borders.
var precisionCases = []TestCase{
	{
		Name:     "border_graze",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures([]vec.Vec2{pt(0, 10), pt(100, 10)}),
	},
	{
		Name:     "vertical_on_border",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures([]vec.Vec2{pt(30, 0), pt(30, 45)}),
	},
	{
		Name:     "tap_on_edges",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(taps(pt(10, 55), pt(55, 20), pt(0, 0), pt(100, 100))...),
	},
	{
		Name:     "stationary",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures([]vec.Vec2{pt(45, 45), pt(45, 45), pt(45, 45)}),
	},
}

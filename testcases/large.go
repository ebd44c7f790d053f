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
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// largeCases use cards big enough for the exact measure to take the
// scanline path of the rasterizer.
var largeCases = []TestCase{
	{
		Name:     "wide_card",
		Width:    600,
		Height:   300,
		CellSize: 15,
		Diameter: 30,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			zigzag(pt(20, 20), 560, 40, 7),
		),
	},
	{
		Name:     "wavy",
		Width:    480,
		Height:   320,
		CellSize: 20,
		Diameter: 24,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			arc(pt(240, 160), 120, 0, 3*math.Pi, 90),
			line(pt(10, 300), pt(470, 20), 30),
		),
	},
}

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

import "seehuhn.de/go/pdf/graphics"

var tapCases = []TestCase{
	{
		Name:     "single",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			taps(pt(55, 55))...,
		),
	},
	{
		Name:     "on_corner",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			taps(pt(50, 50))...,
		),
	},
	{
		Name:     "scattered",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			taps(pt(5, 5), pt(25, 75), pt(95, 95), pt(55, 15), pt(5, 5))...,
		),
	},
}

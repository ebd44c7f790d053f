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

var swipeCases = []TestCase{
	{
		Name:     "horizontal",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(line(pt(0, 5), pt(100, 5), 10)),
	},
	{
		Name:     "diagonal_half",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures([]vec.Vec2{pt(0, 0), pt(50, 50)}),
	},
	{
		Name:     "diagonal_full",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(line(pt(0, 0), pt(100, 100), 7)),
	},
	{
		Name:     "butt_cap",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapButt,
		Gestures: gestures(line(pt(10, 50), pt(90, 50), 4)),
	},
	{
		Name:     "square_cap",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapSquare,
		Gestures: gestures(line(pt(10, 50), pt(90, 50), 4)),
	},
	{
		Name:     "overflow_cells",
		Width:    100,
		Height:   100,
		CellSize: 15,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(line(pt(2, 98), pt(98, 2), 12)),
	},
}

// line samples the segment from a to b at n+1 equally spaced positions.
func line(a, b vec.Vec2, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		pts = append(pts, a.Mul(1-t).Add(b.Mul(t)))
	}
	return pts
}

// taps turns every position into a gesture of its own.
func taps(pts ...vec.Vec2) [][]vec.Vec2 {
	gs := make([][]vec.Vec2, len(pts))
	for i, p := range pts {
		gs[i] = []vec.Vec2{p}
	}
	return gs
}

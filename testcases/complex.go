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

var complexCases = []TestCase{
	{
		Name:     "multi_gesture",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			line(pt(5, 15), pt(95, 15), 6),
			line(pt(5, 85), pt(95, 85), 6),
			line(pt(50, 5), pt(50, 95), 6),
		),
	},
	{
		Name:     "retrace",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(
			line(pt(12, 12), pt(88, 64), 5),
			line(pt(12, 12), pt(88, 64), 5),
		),
	},
	{
		Name:     "full_sweep",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(zigzag(pt(0, 5), 100, 10, 10)),
	},
}

// zigzag sweeps a rectangle row by row, starting at start and moving
// alternately right and left by width, then up by step.
func zigzag(start vec.Vec2, width, step float64, rows int) []vec.Vec2 {
	pts := []vec.Vec2{start}
	p := start
	dir := 1.0
	for i := range rows {
		p = p.Add(vec.Vec2{X: dir * width})
		pts = append(pts, p)
		if i < rows-1 {
			p = p.Add(vec.Vec2{Y: step})
			pts = append(pts, p)
		}
		dir = -dir
	}
	return pts
}

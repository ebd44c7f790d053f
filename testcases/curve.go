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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:     "circle",
		Width:    100,
		Height:   100,
		CellSize: 10,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(arc(pt(50, 50), 30, 0, 2*math.Pi, 36)),
	},
	{
		Name:     "s_curve",
		Width:    120,
		Height:   80,
		CellSize: 15,
		Diameter: 15,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(cubic(pt(5, 5), pt(100, 0), pt(20, 80), pt(115, 75), 24)),
	},
	{
		Name:     "spiral",
		Width:    200,
		Height:   200,
		CellSize: 15,
		Diameter: 20,
		Cap:      graphics.LineCapRound,
		Gestures: gestures(spiral(pt(100, 100), 5, 90, 4, 160)),
	},
}

// arc samples the circle around c with radius r from angle phi0 to phi1
// at n+1 positions.
func arc(c vec.Vec2, r, phi0, phi1 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		phi := phi0 + (phi1-phi0)*float64(i)/float64(n)
		pts = append(pts, c.Add(vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}))
	}
	return pts
}

// cubic samples the cubic Bézier curve p0, p1, p2, p3 at n+1 positions.
func cubic(p0, p1, p2, p3 vec.Vec2, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		s := 1 - t
		pts = append(pts, p0.Mul(s*s*s).
			Add(p1.Mul(3*s*s*t)).
			Add(p2.Mul(3*s*t*t)).
			Add(p3.Mul(t*t*t)))
	}
	return pts
}

// spiral samples an Archimedean spiral around c, growing from radius r0 to
// r1 over the given number of turns.
func spiral(c vec.Vec2, r0, r1, turns float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		r := r0 + (r1-r0)*t
		phi := 2 * math.Pi * turns * t
		pts = append(pts, c.Add(vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}))
	}
	return pts
}

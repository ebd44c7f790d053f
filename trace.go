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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// kappa is the control point distance for a cubic Bézier approximation
// of a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Trace records the exact shape erased by a sequence of touches, as a
// compound outline.  Every sub-outline is counter-clockwise, so that the
// nonzero winding rule fills their union.
//
// A Trace is not safe for concurrent use.
type Trace struct {
	// Diameter is the diameter of erased discs and the width of erased
	// segments.
	Diameter float64

	// Cap is the cap style used for segments.  Isolated points are always
	// erased as discs.
	Cap graphics.LineCapStyle

	data  path.Data
	count int
}

// NewTrace returns an empty trace with the given erasure diameter and cap
// style.
func NewTrace(diameter float64, style graphics.LineCapStyle) *Trace {
	return &Trace{Diameter: diameter, Cap: style}
}

// Dot records a disc of the trace's diameter centred at p.
func (t *Trace) Dot(p vec.Vec2) {
	r := t.Diameter / 2
	t.data.MoveTo(p.Add(vec.Vec2{X: r}))
	u := vec.Vec2{X: 1}
	for range 4 {
		t.quarterArc(p, r, u)
		u = rot90(u)
	}
	t.data.Close()
	t.count++
}

// Segment records a stroke of the trace's diameter from a to b.
// Zero-length segments produce a disc for round caps, and nothing
// otherwise.
func (t *Trace) Segment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		if t.Cap == graphics.LineCapRound {
			t.Dot(a)
		}
		return
	}

	r := t.Diameter / 2
	T := d.Mul(1 / length) // unit tangent
	N := rot90(T)          // unit normal, 90° counter-clockwise

	switch t.Cap {
	case graphics.LineCapRound:
		t.data.MoveTo(a.Sub(N.Mul(r)))
		t.data.LineTo(b.Sub(N.Mul(r)))
		t.quarterArc(b, r, N.Mul(-1))
		t.quarterArc(b, r, T)
		t.data.LineTo(a.Add(N.Mul(r)))
		t.quarterArc(a, r, N)
		t.quarterArc(a, r, T.Mul(-1))
		t.data.Close()

	default:
		if t.Cap == graphics.LineCapSquare {
			a = a.Sub(T.Mul(r))
			b = b.Add(T.Mul(r))
		}
		t.data.MoveTo(a.Sub(N.Mul(r)))
		t.data.LineTo(b.Sub(N.Mul(r)))
		t.data.LineTo(b.Add(N.Mul(r)))
		t.data.LineTo(a.Add(N.Mul(r)))
		t.data.Close()
	}
	t.count++
}

// quarterArc appends a counter-clockwise quarter circle around c, starting
// at c+r·u.  The current point must already be at c+r·u.
func (t *Trace) quarterArc(c vec.Vec2, r float64, u vec.Vec2) {
	v := rot90(u)
	p0 := c.Add(u.Mul(r))
	p3 := c.Add(v.Mul(r))
	p1 := p0.Add(v.Mul(kappa * r))
	p2 := p3.Add(u.Mul(kappa * r))
	t.data.CubeTo(p1, p2, p3)
}

// Path returns the recorded outline.  The result is owned by the trace and
// is only valid until the next modification.
func (t *Trace) Path() *path.Data {
	return &t.data
}

// Len returns the number of recorded shapes.
func (t *Trace) Len() int {
	return t.count
}

// Reset removes all recorded shapes, keeping allocated memory.
func (t *Trace) Reset() {
	t.data.Cmds = t.data.Cmds[:0]
	t.data.Coords = t.data.Coords[:0]
	t.count = 0
}

// rot90 rotates v by 90° counter-clockwise.
func rot90(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

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

// SegmentIntersectsRect reports whether the closed segment from p1 to p2
// touches the closed rectangle r, either its interior or its boundary.
//
// The test is the union of endpoint containment and segment/segment tests
// against the four edges of r.  Collinear overlap with an edge counts as an
// intersection.  A degenerate segment (p1 == p2) is treated as a point.
func SegmentIntersectsRect(p1, p2 vec.Vec2, r rect.Rect) bool {
	r = canonical(r)

	if max(p1.X, p2.X) < r.LLx || min(p1.X, p2.X) > r.URx ||
		max(p1.Y, p2.Y) < r.LLy || min(p1.Y, p2.Y) > r.URy {
		return false
	}
	if containsClosed(r, p1) || containsClosed(r, p2) {
		return true
	}

	// Both endpoints are outside.  Any remaining contact has to cross or
	// touch the boundary.
	ll := vec.Vec2{X: r.LLx, Y: r.LLy}
	lr := vec.Vec2{X: r.URx, Y: r.LLy}
	ur := vec.Vec2{X: r.URx, Y: r.URy}
	ul := vec.Vec2{X: r.LLx, Y: r.URy}
	return segmentsIntersect(p1, p2, ll, lr) ||
		segmentsIntersect(p1, p2, lr, ur) ||
		segmentsIntersect(p1, p2, ur, ul) ||
		segmentsIntersect(p1, p2, ul, ll)
}

// ContainsOpen reports whether p lies strictly inside r.  Points on the
// boundary of r are not contained.
func ContainsOpen(r rect.Rect, p vec.Vec2) bool {
	r = canonical(r)
	return p.X > r.LLx && p.X < r.URx && p.Y > r.LLy && p.Y < r.URy
}

// containsClosed reports whether p lies inside r or on its boundary.
// The rectangle must be canonical.
func containsClosed(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// canonical returns r with LLx <= URx and LLy <= URy.
func canonical(r rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(r.LLx, r.URx),
		LLy: min(r.LLy, r.URy),
		URx: max(r.LLx, r.URx),
		URy: max(r.LLy, r.URy),
	}
}

// segmentsIntersect reports whether the closed segments ab and cd share at
// least one point.
func segmentsIntersect(a, b, c, d vec.Vec2) bool {
	o1 := orientation(c, d, a)
	o2 := orientation(c, d, b)
	o3 := orientation(a, b, c)
	o4 := orientation(a, b, d)

	// proper crossing
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	// touching and collinear cases
	switch {
	case o1 == 0 && inBox(c, d, a):
		return true
	case o2 == 0 && inBox(c, d, b):
		return true
	case o3 == 0 && inBox(a, b, c):
		return true
	case o4 == 0 && inBox(a, b, d):
		return true
	}
	return false
}

// orientation returns the sign of the cross product (b-a)×(c-a):
// +1 if a, b, c turn counter-clockwise, -1 if clockwise and 0 if the
// three points are collinear.
func orientation(a, b, c vec.Vec2) float64 {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// inBox reports whether p lies in the bounding box of the segment ab.
// For a point known to be collinear with ab this is the on-segment test.
func inBox(a, b, p vec.Vec2) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

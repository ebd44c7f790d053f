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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasterizer computes, for every pixel, the fraction of the pixel area
// covered by a filled outline.  Outlines are filled using the nonzero
// winding rule; open subpaths are closed implicitly.
//
// Create one instance and reuse it; internal buffers grow as needed but
// never shrink.  A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps outline coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device rectangle.  Coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be positive.
	Flatness float64

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which the whole box is accumulated in 2D buffers.  Larger outlines
	// are processed scanline by scanline with an active edge list.
	smallPathThreshold int

	cover  []float32 // signed vertical extent per pixel; reused as output
	area   []float32 // area right of the edges within each pixel
	rowHit []bool    // per-scanline flag for the 2D buffer method
	edges  []edge
	active []int // indices into edges

	// device space bounding box of edges
	bbEmpty        bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, an
// identity CTM and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the default CTM and flatness and sets a new clip
// rectangle.  Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill fills the outline p.  The emit callback receives the coverage of
// one scanline at a time, starting at pixel column xMin; leading and
// trailing zeros are omitted.  The slice is only valid during the call.
func (r *Rasterizer) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillBuffered(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges flattens p into device space edges and returns their
// integer bounding box, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bbEmpty = true

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the segment p0→p1 to device space and records it.
// Horizontal edges do not contribute coverage and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bbEmpty {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = min(y0, y1), max(y0, y1)
		r.bbEmpty = false
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, y0, y1)
	r.bbYMax = max(r.bbYMax, y0, y1)
}

// deviceLength returns the length of v after applying the linear part of
// the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenQuadratic approximates the quadratic Bézier p0, p1, p2 by line
// segments passed to emit.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier p0, p1, p2, p3 by line
// segments passed to emit.  The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		if f := math.Sqrt(3 * dev / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage is accumulated in two per-pixel buffers.  An edge piece with
// vertical extent dy inside a pixel adds ±dy to cover, and ±dy times the
// fraction of the pixel to the right of the piece to area.  Integrating a
// scanline from left to right, the coverage of pixel i is the sum of cover
// over all pixels left of i plus area[i].  Contributions left of the
// bounding box are folded into pixel 0.

// accumulate adds the part of e inside scanline y to the buffers, which
// cover the pixel columns xMin to xMax-1.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop, xBot := e.xAt(yTop), e.xAt(yBot)
	colLo := int(math.Floor(min(xTop, xBot)))
	colHi := int(math.Floor(max(xTop, xBot)))

	switch {
	case colHi < xMin:
		dy := sign * float32(yBot-yTop)
		cover[0] += dy
		area[0] += dy
		return
	case colLo >= xMax:
		return
	case colLo == colHi:
		deposit(cover, area, colLo, xMin, xMax, sign*float32(yBot-yTop), e.xAt((yTop+yBot)/2))
		return
	}

	// The edge crosses several pixel columns; split it at column borders.
	dydx := 1 / e.dxdy
	for col := colLo; col <= colHi && col < xMax; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(cover, area, col, xMin, xMax, sign*float32(hi-lo), e.xAt((lo+hi)/2))
	}
}

// deposit records an edge piece of signed height dy at horizontal position
// x inside pixel column col.
func deposit(cover, area []float32, col, xMin, xMax int, dy float32, x float64) {
	switch {
	case col < xMin:
		cover[0] += dy
		area[0] += dy
	case col < xMax:
		i := col - xMin
		cover[i] += dy
		area[i] += dy * float32(1-(x-float64(col)))
	}
}

// integrate turns the accumulated buffers of one scanline into coverage
// values in [0, 1], using the nonzero rule.  The result overwrites cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  An all-zero row gives nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillBuffered accumulates all edges into 2D buffers spanning the bounding
// box, then integrates row by row.
func (r *Rasterizer) fillBuffered(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowHit = slices.Grow(r.rowHit[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowHit)

	for i := range r.edges {
		e := &r.edges[i]
		from := max(int(math.Floor(e.yMin())), yMin)
		to := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := from; y < to; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHit[row] = true
		}
	}

	for row := range height {
		if !r.rowHit[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillScanlines processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasterizer) fillScanlines(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default bounding box area, in pixels, below
	// which the 2D buffer method is used.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which a segment is treated
	// as a single point.
	zeroLengthThreshold = 1e-10
)

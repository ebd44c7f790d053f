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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func newTestCarver(t *testing.T, w, h, cellSize float64) *Carver {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CellSize = cellSize
	c, err := NewCarver(cfg, rect.Rect{URx: w, URy: h})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// TestCarverScenario replays a tap at a cell corner followed by a drag
// along the diagonal.
func TestCarverScenario(t *testing.T) {
	c := newTestCarver(t, 100, 100, 10)

	// (0, 0) is a corner of the first cell, so no cell contains it
	if n := c.Add(vec.Vec2{X: 0, Y: 0}); n != 0 {
		t.Errorf("first point revealed %d cells, want 0", n)
	}

	var revealed []rect.Rect
	c.Reveal = func(i int, cell Cell) {
		revealed = append(revealed, cell.Rect)
	}

	// The diagonal passes through the cell corners (10, 10), ..., (50, 50).
	// It touches the six diagonal cells and, at each inner corner, the two
	// neighbours off the diagonal.
	if n := c.Add(vec.Vec2{X: 50, Y: 50}); n != 16 {
		t.Errorf("segment revealed %d cells, want 16", n)
	}
	for _, r := range revealed {
		i, j := int(r.LLx/10), int(r.LLy/10)
		if i-j > 1 || j-i > 1 || i > 5 || j > 5 {
			t.Errorf("unexpected cell %v", r)
		}
	}

	c.End()
	if len(c.Points()) != 0 {
		t.Errorf("polyline has %d points after End", len(c.Points()))
	}
	if f := c.RevealedFraction(); f != 0.16 {
		t.Errorf("RevealedFraction() = %g, want 0.16", f)
	}
	if c.Grid().Hits() != 16 {
		t.Errorf("grid lost marks after End: %d hits", c.Grid().Hits())
	}
}

func TestCarverFirstPoint(t *testing.T) {
	cases := []struct {
		p    vec.Vec2
		want int
	}{
		{vec.Vec2{X: 55, Y: 55}, 1},
		{vec.Vec2{X: 50, Y: 55}, 0}, // on a vertical cell border
		{vec.Vec2{X: 55, Y: 50}, 0}, // on a horizontal cell border
		{vec.Vec2{X: 150, Y: 55}, 0},
	}
	for _, tc := range cases {
		c := newTestCarver(t, 100, 100, 10)
		if n := c.Add(tc.p); n != tc.want {
			t.Errorf("Add(%v) revealed %d cells, want %d", tc.p, n, tc.want)
		}
	}
}

// TestCarverSecondPointIsSegment checks that the second position of a
// gesture is joined to the first.
func TestCarverSecondPointIsSegment(t *testing.T) {
	c := newTestCarver(t, 100, 100, 10)
	c.Add(vec.Vec2{X: 5, Y: 5})
	if n := c.Add(vec.Vec2{X: 95, Y: 5}); n != 9 {
		t.Errorf("segment revealed %d cells, want 9", n)
	}
}

func TestCarverGestures(t *testing.T) {
	c := newTestCarver(t, 100, 100, 10)

	// two separate taps are not joined
	c.Add(vec.Vec2{X: 5, Y: 5})
	c.End()
	c.Add(vec.Vec2{X: 95, Y: 95})
	c.End()
	if h := c.Grid().Hits(); h != 2 {
		t.Errorf("got %d hits after two taps, want 2", h)
	}

	c.Add(vec.Vec2{X: 5, Y: 5})
	c.Add(vec.Vec2{X: 5, Y: 95})
	want := []vec.Vec2{{X: 5, Y: 5}, {X: 5, Y: 95}}
	if d := cmp.Diff(want, c.Points()); d != "" {
		t.Errorf("polyline (-want +got):\n%s", d)
	}
	if h := c.Grid().Hits(); h != 11 {
		t.Errorf("got %d hits, want 11", h)
	}
}

func TestCarverMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := newTestCarver(t, 120, 80, 7)

	prev := 0.0
	for range 400 {
		p := vec.Vec2{X: rng.Float64()*140 - 10, Y: rng.Float64()*100 - 10}
		c.Add(p)
		if rng.IntN(6) == 0 {
			c.End()
		}

		f := c.RevealedFraction()
		if f < prev {
			t.Fatalf("revealed fraction decreased from %g to %g", prev, f)
		}
		if f < 0 || f > 1 {
			t.Fatalf("revealed fraction %g out of range", f)
		}
		prev = f
	}

	// the count of hit cells matches the stored state
	hits := 0
	for _, cell := range c.Grid().All() {
		if cell.Hit {
			hits++
		}
	}
	if hits != c.Grid().Hits() {
		t.Errorf("Hits() = %d, counted %d", c.Grid().Hits(), hits)
	}
	if f := c.RevealedFraction(); f == 1 && hits != c.Grid().Len() {
		t.Error("fraction 1 with unhit cells")
	}
}

func TestCarverReset(t *testing.T) {
	c := newTestCarver(t, 100, 100, 10)
	c.Trace = NewTrace(15, DefaultConfig().Cap)
	c.Add(vec.Vec2{X: 5, Y: 5})
	c.Add(vec.Vec2{X: 95, Y: 95})

	if err := c.Reset(rect.Rect{URx: 50, URy: 50}); err != nil {
		t.Fatal(err)
	}
	if c.Grid().Len() != 25 || c.Grid().Hits() != 0 {
		t.Errorf("after reset: %d cells, %d hits", c.Grid().Len(), c.Grid().Hits())
	}
	if len(c.Points()) != 0 {
		t.Error("polyline not cleared")
	}
	if c.Trace.Len() != 0 {
		t.Error("trace not cleared")
	}

	// the next position starts a new gesture
	if n := c.Add(vec.Vec2{X: 25, Y: 25}); n != 0 {
		t.Errorf("first point after reset revealed %d cells, want 0", n)
	}

	old := c.Grid()
	err := c.Reset(rect.Rect{URx: -1, URy: 10})
	if !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("got error %v, want %v", err, ErrInvalidSurface)
	}
	if c.Grid() != old {
		t.Error("failed reset replaced the grid")
	}
}

func TestNewCarverInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EraseDiameter = 0
	if _, err := NewCarver(cfg, rect.Rect{URx: 10, URy: 10}); !errors.Is(err, ErrInvalidDiameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidDiameter)
	}

	cfg = DefaultConfig()
	cfg.CellSize = -3
	if _, err := NewCarver(cfg, rect.Rect{URx: 10, URy: 10}); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCellSize)
	}
}

func BenchmarkCarver(b *testing.B) {
	cfg := DefaultConfig()
	c, err := NewCarver(cfg, rect.Rect{URx: 600, URy: 400})
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(3, 4))
	pts := make([]vec.Vec2, 256)
	for i := range pts {
		pts[i] = vec.Vec2{X: rng.Float64() * 600, Y: rng.Float64() * 400}
	}

	b.ReportAllocs()
	for b.Loop() {
		if err := c.Reset(rect.Rect{URx: 600, URy: 400}); err != nil {
			b.Fatal(err)
		}
		for _, p := range pts {
			c.Add(p)
		}
		c.End()
	}
}

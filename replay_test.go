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
	"math"
	"testing"

	"seehuhn.de/go/scratch/testcases"
)

// allScenarios returns every scenario, keyed by "category_name".
func allScenarios() map[string]testcases.TestCase {
	res := make(map[string]testcases.TestCase)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			res[category+"_"+tc.Name] = tc
		}
	}
	return res
}

func TestReplayHits(t *testing.T) {
	want := map[string]int{
		"tap_single":                   1,
		"tap_on_corner":                0,
		"swipe_horizontal":             10,
		"swipe_diagonal_half":          16,
		"precision_border_graze":       20,
		"precision_vertical_on_border": 10,
		"precision_tap_on_edges":       0,
		"precision_stationary":         1,
		"complex_multi_gesture":        36,
		"complex_full_sweep":           100,
	}
	all := allScenarios()
	for name, n := range want {
		t.Run(name, func(t *testing.T) {
			tc, ok := all[name]
			if !ok {
				t.Fatalf("scenario %q not found", name)
			}
			c, err := Replay(tc)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Grid().Hits(); got != n {
				t.Errorf("%d cells hit, want %d", got, n)
			}
			if len(c.Points()) != 0 {
				t.Error("gesture not ended after replay")
			}
		})
	}
}

// TestRetrace checks that repeating a gesture reveals nothing new.
func TestRetrace(t *testing.T) {
	tc := allScenarios()["complex_retrace"]
	once := tc
	once.Gestures = tc.Gestures[:1]

	c1, err := Replay(once)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Replay(tc)
	if err != nil {
		t.Fatal(err)
	}
	if c1.Grid().Hits() == 0 {
		t.Fatal("first pass revealed nothing")
	}
	if c1.Grid().Hits() != c2.Grid().Hits() {
		t.Errorf("retrace changed the hit count from %d to %d",
			c1.Grid().Hits(), c2.Grid().Hits())
	}
}

// TestReplayMeasure compares the grid estimate with the exact erased area
// for every scenario.
func TestReplayMeasure(t *testing.T) {
	for name, tc := range allScenarios() {
		t.Run(name, func(t *testing.T) {
			c, err := Replay(tc)
			if err != nil {
				t.Fatal(err)
			}
			if c.Trace.Len() == 0 && tc.Samples() > 0 {
				t.Error("trace is empty")
			}

			grid := c.RevealedFraction()
			exact, err := Measure(c.Trace, tc.Bounds(), 2)
			if err != nil {
				t.Fatal(err)
			}
			if grid < 0 || grid > 1 {
				t.Errorf("grid fraction %g out of range", grid)
			}
			if exact < 0 || exact > 1+1e-9 {
				t.Errorf("exact fraction %g out of range", exact)
			}
			if exact == 0 && tc.Samples() > 0 {
				t.Error("nothing erased")
			}
		})
	}

	tc := allScenarios()["complex_full_sweep"]
	c, err := Replay(tc)
	if err != nil {
		t.Fatal(err)
	}
	exact, err := Measure(c.Trace, tc.Bounds(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(exact-1) > 1e-3 {
		t.Errorf("full sweep erased %g of the card", exact)
	}
}

func TestReplayInvalid(t *testing.T) {
	tc := allScenarios()["tap_single"]
	tc.CellSize = 0
	if _, err := Replay(tc); err == nil {
		t.Error("Replay accepted a zero cell size")
	}
}

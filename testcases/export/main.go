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

// Command export replays all scenarios and writes their gestures, the grid
// estimate and the exact erased fraction to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/scratch"
	"seehuhn.de/go/scratch/testcases"
)

func main() {
	out := flag.String("o", "testdata/scenarios.json", "output file")
	config := flag.String("config", "", "YAML file overriding the scenario configuration")
	resolution := flag.Float64("resolution", 4, "pixels per card unit for the exact measure")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*out, *config, *resolution, logger); err != nil {
		logger.Error("export failed", slog.Any("error", err))
		os.Exit(1)
	}
}

type jsonFile struct {
	Resolution float64        `json:"resolution"`
	Scenarios  []jsonScenario `json:"scenarios"`
}

type jsonScenario struct {
	Name     string        `json:"name"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	CellSize float64       `json:"cell_size"`
	Diameter float64       `json:"erase_diameter"`
	Cap      string        `json:"cap"`
	Gestures [][][]float64 `json:"gestures"`
	Cells    int           `json:"cells"`
	Hits     int           `json:"hits"`
	Grid     float64       `json:"grid_fraction"`
	Exact    float64       `json:"exact_fraction"`
	Error    float64       `json:"error"`
}

func run(out, config string, resolution float64, logger *slog.Logger) error {
	var override *scratch.Config
	if config != "" {
		cfg, err := scratch.LoadConfig(config)
		if err != nil {
			return err
		}
		override = &cfg
	}

	res := jsonFile{Resolution: resolution}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if override != nil {
				tc.CellSize = override.CellSize
				tc.Diameter = override.EraseDiameter
				tc.Cap = override.Cap
			}
			name := category + "_" + tc.Name

			s, err := export(tc, resolution)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			s.Name = name
			res.Scenarios = append(res.Scenarios, s)
			logger.Info("scenario",
				slog.String("name", name),
				slog.Float64("grid", s.Grid),
				slog.Float64("exact", s.Exact))
		}
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(res)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func export(tc testcases.TestCase, resolution float64) (jsonScenario, error) {
	c, err := scratch.Replay(tc)
	if err != nil {
		return jsonScenario{}, err
	}
	exact, err := scratch.Measure(c.Trace, tc.Bounds(), resolution)
	if err != nil {
		return jsonScenario{}, err
	}

	grid := c.Grid()
	s := jsonScenario{
		Width:    tc.Width,
		Height:   tc.Height,
		CellSize: tc.CellSize,
		Diameter: tc.Diameter,
		Cap:      scratch.CapName(tc.Cap),
		Cells:    grid.Len(),
		Hits:     grid.Hits(),
		Grid:     grid.RevealedFraction(),
		Exact:    exact,
		Error:    grid.RevealedFraction() - exact,
	}
	for _, g := range tc.Gestures {
		pts := make([][]float64, len(g))
		for i, p := range g {
			pts[i] = []float64{p.X, p.Y}
		}
		s.Gestures = append(s.Gestures, pts)
	}
	return s, nil
}

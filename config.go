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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"
)

// Default values for the configuration.
const (
	DefaultCellSize      = 15
	DefaultEraseDiameter = 15
)

// Config holds the recognised options of a scratch card.
type Config struct {
	// CellSize is the edge length of the coverage grid cells, in card
	// units.  Smaller cells give a more precise estimate at a higher cost.
	CellSize float64

	// EraseDiameter is the diameter of the disc erased by a single touch,
	// and the width of the erasure stroke along a drag.
	EraseDiameter float64

	// DebugOverlay makes the card hand the rectangles of all hit cells to
	// the renderer whenever progress is computed.
	DebugOverlay bool

	// Cap is the cap style of erasure strokes.  Only round, butt and
	// square caps are supported.
	Cap graphics.LineCapStyle
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:      DefaultCellSize,
		EraseDiameter: DefaultEraseDiameter,
		Cap:           graphics.LineCapRound,
	}
}

// Validate checks that all values are in range.
func (c Config) Validate() error {
	if !isPositive(c.CellSize) {
		return fmt.Errorf("config: cell size %g: %w", c.CellSize, ErrInvalidCellSize)
	}
	if !isPositive(c.EraseDiameter) {
		return fmt.Errorf("config: erase diameter %g: %w", c.EraseDiameter, ErrInvalidDiameter)
	}
	if _, ok := capNames[c.Cap]; !ok {
		return fmt.Errorf("config: cap %d: %w", c.Cap, ErrInvalidCap)
	}
	return nil
}

var capNames = map[graphics.LineCapStyle]string{
	graphics.LineCapRound:  "round",
	graphics.LineCapButt:   "butt",
	graphics.LineCapSquare: "square",
}

// ParseCap converts a cap name ("round", "butt" or "square") into a
// line cap style.
func ParseCap(name string) (graphics.LineCapStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for style, n := range capNames {
		if n == name {
			return style, nil
		}
	}
	return 0, fmt.Errorf("cap %q: %w", name, ErrInvalidCap)
}

// CapName returns the name used for style in configuration files.
func CapName(style graphics.LineCapStyle) string {
	if n, ok := capNames[style]; ok {
		return n
	}
	return fmt.Sprintf("cap(%d)", style)
}

// configFile is the YAML representation of Config.  Pointer fields
// distinguish absent keys from zero values.
type configFile struct {
	CellSize      *float64 `yaml:"cell_size"`
	EraseDiameter *float64 `yaml:"erase_diameter"`
	DebugOverlay  *bool    `yaml:"debug_overlay"`
	Cap           *string  `yaml:"cap"`
}

// LoadConfig reads a YAML configuration file.  Keys which are absent keep
// their default values; a missing file yields the default configuration.
// Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a YAML configuration from r, starting from the
// default configuration.  The result is validated.
func DecodeConfig(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f configFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if f.CellSize != nil {
		cfg.CellSize = *f.CellSize
	}
	if f.EraseDiameter != nil {
		cfg.EraseDiameter = *f.EraseDiameter
	}
	if f.DebugOverlay != nil {
		cfg.DebugOverlay = *f.DebugOverlay
	}
	if f.Cap != nil {
		style, err := ParseCap(*f.Cap)
		if err != nil {
			return Config{}, err
		}
		cfg.Cap = style
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (any, error) {
	name := CapName(c.Cap)
	return configFile{
		CellSize:      &c.CellSize,
		EraseDiameter: &c.EraseDiameter,
		DebugOverlay:  &c.DebugOverlay,
		Cap:           &name,
	}, nil
}

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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.CellSize != 15 || cfg.EraseDiameter != 15 || cfg.DebugOverlay {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Cap != graphics.LineCapRound {
		t.Errorf("default cap is %s, want round", CapName(cfg.Cap))
	}
}

func TestDecodeConfig(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Config
	}{
		{
			name: "empty",
			in:   "",
			want: DefaultConfig(),
		},
		{
			name: "partial",
			in:   "cell_size: 8\n",
			want: Config{CellSize: 8, EraseDiameter: 15, Cap: graphics.LineCapRound},
		},
		{
			name: "full",
			in:   "cell_size: 20\nerase_diameter: 30.5\ndebug_overlay: true\ncap: Square\n",
			want: Config{CellSize: 20, EraseDiameter: 30.5, DebugOverlay: true, Cap: graphics.LineCapSquare},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeConfig(strings.NewReader(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("config (-want +got):\n%s", d)
			}
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"zero_cell", "cell_size: 0\n", ErrInvalidCellSize},
		{"negative_diameter", "erase_diameter: -2\n", ErrInvalidDiameter},
		{"bad_cap", "cap: pointy\n", ErrInvalidCap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := DecodeConfig(strings.NewReader("cell_sise: 3\n")); err == nil {
		t.Error("unknown key was accepted")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	in := Config{CellSize: 12, EraseDiameter: 9, DebugOverlay: true, Cap: graphics.LineCapButt}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeConfig(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("%v\n%s", err, data)
	}
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(DefaultConfig(), cfg); d != "" {
		t.Errorf("missing file (-want +got):\n%s", d)
	}

	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte("erase_diameter: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EraseDiameter != 40 || cfg.CellSize != DefaultCellSize {
		t.Errorf("got %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("cell_size: [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed file was accepted")
	}
}

func TestParseCap(t *testing.T) {
	for _, style := range []graphics.LineCapStyle{
		graphics.LineCapRound, graphics.LineCapButt, graphics.LineCapSquare,
	} {
		got, err := ParseCap(CapName(style))
		if err != nil {
			t.Fatal(err)
		}
		if got != style {
			t.Errorf("ParseCap(%q) = %v, want %v", CapName(style), got, style)
		}
	}
}

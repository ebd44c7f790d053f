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

import "errors"

// Errors returned for invalid configuration.  These indicate programming
// errors in the caller; the values are never clamped into range.
var (
	ErrInvalidCellSize = errors.New("cell size must be positive and finite")
	ErrInvalidSurface  = errors.New("surface dimensions must be positive and finite")
	ErrInvalidDiameter = errors.New("erase diameter must be positive and finite")
	ErrInvalidCap      = errors.New("unsupported line cap style")
	ErrResolution      = errors.New("resolution must be positive and finite")
)

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
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// ClearDelay is how long after a reset the renderer should wait before
// clearing the erased layer.
const ClearDelay = 200 * time.Millisecond

// EventKind identifies the type of a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a pointer event delivered to a card.
type Event struct {
	Kind EventKind
	Pos  vec.Vec2 // position in the coordinates of the event source
}

// Listener receives pointer events.
type Listener interface {
	HandlePointer(ev Event)
}

// Source delivers pointer events to subscribed listeners, one event at a
// time.
type Source interface {
	Subscribe(l Listener)
	Unsubscribe(l Listener)
}

// Renderer draws the visible state of a card.  The card calls the renderer
// after updating its own state; none of the methods affect coverage.
type Renderer interface {
	// EraseDot erases a disc from the covering layer.
	EraseDot(center vec.Vec2, diameter float64)

	// EraseSegment erases a stroke from the covering layer.
	EraseSegment(a, b vec.Vec2, width float64, style graphics.LineCapStyle)

	// ScheduleClear restores the covering layer after the given delay.
	ScheduleClear(delay time.Duration)

	// FillCells draws the given cells as a diagnostic overlay.
	FillCells(cells []rect.Rect)

	// SetLabel updates the progress label.
	SetLabel(text string)
}

// Card is a scratch card session.  It connects a pointer event source and
// a renderer to a Carver.
//
// Events must be delivered one at a time; a Card is not safe for
// concurrent use.
type Card struct {
	// ToLocal maps event positions to card coordinates.
	ToLocal matrix.Matrix

	cfg      Config
	carver   *Carver
	renderer Renderer
	log      *slog.Logger

	label   string
	overlay []rect.Rect
}

// NewCard creates a card for the surface given by bounds and resets it.
// A nil renderer draws nothing, and a nil logger discards all messages.
func NewCard(cfg Config, bounds rect.Rect, renderer Renderer, logger *slog.Logger) (*Card, error) {
	carver, err := NewCarver(cfg, bounds)
	if err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Card{
		ToLocal:  matrix.Identity,
		cfg:      cfg,
		carver:   carver,
		renderer: renderer,
		log:      logger,
	}
	c.renderer.ScheduleClear(ClearDelay)
	c.setLabel()
	return c, nil
}

// CenteredBounds returns the bounds of a surface of the given size whose
// origin is at its centre.
func CenteredBounds(width, height float64) rect.Rect {
	return rect.Rect{
		LLx: -width / 2,
		LLy: -height / 2,
		URx: width / 2,
		URy: height / 2,
	}
}

// Attach subscribes the card to the events of src.
func (c *Card) Attach(src Source) {
	src.Subscribe(c)
}

// Detach unsubscribes the card from the events of src.
func (c *Card) Detach(src Source) {
	src.Unsubscribe(c)
}

// HandlePointer implements [Listener].
func (c *Card) HandlePointer(ev Event) {
	switch ev.Kind {
	case PointerDown, PointerMove:
		c.scratch(c.toLocal(ev.Pos))
	case PointerUp, PointerCancel:
		c.carver.End()
		c.setLabel()
		if c.cfg.DebugOverlay {
			c.overlay = c.carver.Grid().HitRects(c.overlay[:0])
			c.renderer.FillCells(c.overlay)
		}
		c.log.Debug("gesture ended",
			slog.String("kind", ev.Kind.String()),
			slog.Float64("revealed", c.carver.RevealedFraction()),
			slog.Int("hits", c.carver.Grid().Hits()))
	default:
		c.log.Warn("ignoring pointer event", slog.String("kind", ev.Kind.String()))
	}
}

func (c *Card) toLocal(p vec.Vec2) vec.Vec2 {
	m := c.ToLocal
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// scratch erases at p and updates coverage.
func (c *Card) scratch(p vec.Vec2) {
	if pts := c.carver.Points(); len(pts) == 0 {
		c.renderer.EraseDot(p, c.cfg.EraseDiameter)
	} else {
		c.renderer.EraseSegment(pts[len(pts)-1], p, c.cfg.EraseDiameter, c.cfg.Cap)
	}
	c.carver.Add(p)
}

// Reset starts a new session on the surface given by bounds.  Coverage is
// reset immediately; the renderer is asked to clear the covering layer
// after ClearDelay.
func (c *Card) Reset(bounds rect.Rect) error {
	if err := c.carver.Reset(bounds); err != nil {
		c.log.Warn("reset failed", slog.Any("error", err))
		return err
	}
	c.renderer.ScheduleClear(ClearDelay)
	c.overlay = c.overlay[:0]
	c.setLabel()
	c.log.Debug("card reset", slog.Int("cells", c.carver.Grid().Len()))
	return nil
}

func (c *Card) setLabel() {
	c.label = fmt.Sprintf("%d%%", c.carver.Grid().Percent())
	c.renderer.SetLabel(c.label)
}

// Progress returns the revealed fraction of the card.
func (c *Card) Progress() float64 {
	return c.carver.RevealedFraction()
}

// Label returns the current progress label text.
func (c *Card) Label() string {
	return c.label
}

// Carver returns the carver which tracks the card's coverage.
func (c *Card) Carver() *Carver {
	return c.carver
}

type nopRenderer struct{}

func (nopRenderer) EraseDot(vec.Vec2, float64)                                      {}
func (nopRenderer) EraseSegment(vec.Vec2, vec.Vec2, float64, graphics.LineCapStyle) {}
func (nopRenderer) ScheduleClear(time.Duration)                                     {}
func (nopRenderer) FillCells([]rect.Rect)                                           {}
func (nopRenderer) SetLabel(string)                                                 {}

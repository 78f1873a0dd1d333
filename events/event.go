// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that an embedding widget
// delivers to a slider, along with the [Listeners] used to dispatch them.
package events

import (
	"image"

	"cogentcore.org/rangeslider/events/key"
)

// Event is the interface for all input events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// Pos returns the pixel position of the event, in the
	// coordinate system of the slider geometry.
	Pos() image.Point

	// Modifiers returns the modifier keys held during the event.
	Modifiers() key.Modifiers

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so that no further listeners see it.
	SetHandled()
}

// Base is the base type for events.
// It is designed to support most event types so no further subtypes
// are needed.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Where is the event location in pixel coordinates.
	Where image.Point

	// Mods are the modifier keys present at time of event.
	Mods key.Modifiers

	handled bool
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Pos() image.Point { return ev.Where }

func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }

func (ev *Base) IsHandled() bool { return ev.handled }

func (ev *Base) SetHandled() { ev.handled = true }

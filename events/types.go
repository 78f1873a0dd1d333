// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event delivered to a slider
// by its embedding widget. Each type is dispatched to the listeners
// registered for it in [Listeners].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is sent when the mouse is moving but no button is down.
	// Sliders use it to track the hovered control.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there
	// is a button down.
	MouseDrag

	// Scroll is for scroll wheel events, which carry a delta
	// and the current modifier keys.
	Scroll

	// KeyChord is a key press, which sliders map to step actions.
	KeyChord

	TypesN
)

var typeNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Scroll", "KeyChord"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return typeNames[0]
	}
	return typeNames[tp]
}

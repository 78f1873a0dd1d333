// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/rangeslider/events/key"
	"cogentcore.org/rangeslider/math32"
)

// WheelNotch is the scroll delta reported for one notch of a
// standard mouse wheel. Smaller deltas come from high-resolution
// wheels and touchpads.
const WheelNotch = 120

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Mouse is a basic mouse event for all mouse events except Scroll.
type Mouse struct {
	Base

	// Button is the mouse button being pressed, released or held.
	Button Buttons
}

// NewMouse returns a new [Mouse] event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Base: Base{Typ: typ, Where: where, Mods: mods}, Button: but}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString())
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in wheel units
	// where one notch is [WheelNotch]. Positive values scroll up / right.
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString())
}

// NewScroll returns a new [MouseScroll] event.
func NewScroll(where image.Point, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	return &MouseScroll{Mouse: Mouse{Base: Base{Typ: Scroll, Where: where, Mods: mods}}, Delta: delta}
}

// Key is a key press event.
type Key struct {
	Base

	// Code is the key that was pressed.
	Code key.Codes
}

// NewKey returns a new [Key] event for the given code.
func NewKey(code key.Codes, mods key.Modifiers) *Key {
	return &Key{Base: Base{Typ: KeyChord, Mods: mods}, Code: code}
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Type(), ev.Code, ev.Mods.ModifiersString())
}

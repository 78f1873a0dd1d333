// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Shift is the shift key, which scrolls sliders by a full page.
	Shift Modifiers = 1 << iota

	// Control is the control key, which scrolls sliders by a
	// fraction of their full range.
	Control

	// Alt is the alt / option key, which spreads or shrinks
	// the handles of a range slider when scrolling.
	Alt

	// Meta is the system meta key (command on macOS, windows key on Windows).
	Meta
)

var modifierNames = []string{"Shift", "Control", "Alt", "Meta"}

// HasFlag returns whether the given modifier is set.
func (m Modifiers) HasFlag(flag Modifiers) bool {
	return m&flag != 0
}

// SetFlag sets the given modifier flags to the given state.
func (m *Modifiers) SetFlag(on bool, flags ...Modifiers) {
	for _, f := range flags {
		if on {
			*m |= f
		} else {
			*m &^= f
		}
	}
}

// ModifiersString returns the modifiers joined by "+",
// as used in key chord names.
func (m Modifiers) ModifiersString() string {
	var names []string
	for i, nm := range modifierNames {
		if m.HasFlag(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "+")
}

func (m Modifiers) String() string {
	return m.ModifiersString()
}

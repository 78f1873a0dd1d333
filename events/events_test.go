// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/rangeslider/events/key"
	"cogentcore.org/rangeslider/math32"
	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(MouseDown, func(e Event) { calls = append(calls, "first") })
	ls.Add(MouseDown, func(e Event) {
		calls = append(calls, "second")
		e.SetHandled()
	})
	ls.Add(MouseUp, func(e Event) { calls = append(calls, "up") })

	ev := NewMouse(MouseDown, Left, image.Pt(3, 4), 0)
	ls.Call(ev)
	assert.Equal(t, []string{"second"}, calls)
	assert.True(t, ev.IsHandled())

	ls.Call(ev)
	assert.Equal(t, []string{"second"}, calls, "handled events are not re-dispatched")

	ls.Call(NewMouse(MouseMove, NoButton, image.Pt(0, 0), 0))
	assert.Equal(t, []string{"second"}, calls)
}

func TestEventStrings(t *testing.T) {
	ev := NewScroll(image.Pt(1, 2), math32.Vec2(0, WheelNotch), key.Shift)
	assert.Equal(t, Scroll, ev.Type())
	assert.Equal(t, image.Pt(1, 2), ev.Pos())
	assert.Equal(t, "Scroll{Delta: (0, 120), Pos: (1,2), Mods: Shift}", ev.String())

	k := NewKey(key.CodeHome, 0)
	assert.Equal(t, KeyChord, k.Type())
	assert.Equal(t, "KeyChord{Code: Home, Mods: }", k.String())
	assert.Equal(t, "UnknownType", Types(42).String())
}

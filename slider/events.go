// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"cogentcore.org/rangeslider/events"
	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
)

func (s *Slider[T]) init() {
	s.On(events.MouseDown, func(ev events.Event) {
		me, ok := ev.(*events.Mouse)
		if !ok {
			return
		}
		if s.e.press(math32.FromPoint(me.Pos()), me.Button) {
			s.logf("slider pressed", "control", s.PressedControl())
			ev.SetHandled()
		}
	})
	move := func(ev events.Event) {
		if s.e.move(math32.FromPoint(ev.Pos())) {
			ev.SetHandled()
		}
	}
	s.On(events.MouseMove, move)
	s.On(events.MouseDrag, move)
	s.On(events.MouseUp, func(ev events.Event) {
		if s.e.release() {
			s.logf("slider released", "values", s.e.handles.values)
			ev.SetHandled()
		}
	})
	s.On(events.Scroll, func(ev events.Event) {
		se, ok := ev.(*events.MouseScroll)
		if !ok {
			return
		}
		// a vertical wheel also scrolls a horizontal slider
		var del float32
		if s.e.orient == styles.Horizontal && se.Delta.X != 0 {
			del = se.Delta.X
		} else {
			del = se.Delta.Y
		}
		if s.e.wheel(float64(del), se.Modifiers()) {
			ev.SetHandled()
		}
	})
	s.On(events.KeyChord, func(ev events.Event) {
		ke, ok := ev.(*events.Key)
		if !ok {
			return
		}
		a := s.e.keyAction(ke.Code)
		if a == NoAction {
			return
		}
		s.logf("slider key action", "key", ke.Code, "action", a)
		s.e.triggerAction(a)
		ev.SetHandled()
	})
}

// On adds the given event handler for the given event type.
// Handlers added later are called first, and can prevent the
// built-in handling by marking the event as handled.
func (s *Slider[T]) On(typ events.Types, fun func(ev events.Event)) *Slider[T] {
	s.listeners.Add(typ, fun)
	return s
}

// HandleEvent handles the given pointer, wheel or key event.
// It marks the event as handled if the slider used it.
func (s *Slider[T]) HandleEvent(ev events.Event) {
	s.listeners.Call(ev)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"
	"slices"

	"cogentcore.org/rangeslider/events"
	"cogentcore.org/rangeslider/events/key"
	"cogentcore.org/rangeslider/math32"
)

// States are the states of the pointer interaction of a slider.
type States int32

const (
	// Idle is the state when nothing is pressed.
	Idle States = iota

	// PressedHandle is the state while a handle is dragged.
	PressedHandle

	// PressedBar is the state while a bar segment is dragged.
	PressedBar
)

func (s States) String() string {
	switch s {
	case PressedHandle:
		return "PressedHandle"
	case PressedBar:
		return "PressedBar"
	}
	return "Idle"
}

const (
	// WheelScrollLines is the number of single steps that one
	// wheel notch scrolls.
	WheelScrollLines = 3

	// ControlFraction is the fraction of the range that one wheel
	// notch scrolls while Control is held.
	ControlFraction = 0.04

	// SpreadGain is the factor by which one wheel notch with Alt
	// held widens the spread of the handles.
	SpreadGain = 1.1
)

// Controller is the pointer and wheel interaction state of a slider.
type Controller struct {
	state States

	// index is the pressed handle or bar segment.
	index int

	// clickValue is the value under the pointer when the bar was pressed.
	clickValue float64

	// ref are the handle positions when the bar was pressed.
	ref []float64

	// hover is the control under the pointer when idle.
	hover ControlHit

	// accum is the fractional number of wheel lines not yet scrolled.
	accum float64
}

func (c *Controller) reset() {
	c.state = Idle
	c.index = -1
	c.ref = nil
	c.hover = NoHit
}

// press handles a pointer press, returning whether it was used.
func (e *engine) press(pt math32.Vector2, button events.Buttons) bool {
	if button != events.Left || e.rng.IsDegenerate() || e.geom == nil || e.ctl.state != Idle {
		return false
	}
	hit := e.hitTest(pt)
	switch hit.Kind {
	case HitHandle:
		e.ctl.state, e.ctl.index = PressedHandle, hit.Index
		e.setDown(true)
		e.handles.SetPosition(hit.Index, e.pixelValue(pt))
		e.positionsMoved()
	case HitBar:
		e.ctl.state, e.ctl.index = PressedBar, hit.Index
		e.ctl.clickValue = e.pixelValue(pt)
		e.ctl.ref = e.handles.Positions()
		e.setDown(true)
	default:
		return false
	}
	e.ctl.hover = hit
	return true
}

// move handles a pointer move, returning whether it moved anything.
// While idle it only updates the hovered control.
func (e *engine) move(pt math32.Vector2) bool {
	switch e.ctl.state {
	case PressedHandle:
		e.handles.SetPosition(e.ctl.index, e.pixelValue(pt))
	case PressedBar:
		off := e.pixelValue(pt) - e.ctl.clickValue
		if e.barMovesAll {
			e.handles.OffsetAll(off, e.barIsRigid, e.ctl.ref)
		} else {
			e.handles.OffsetSegment(e.ctl.index, e.ctl.index+1, off, e.barIsRigid, e.ctl.ref)
		}
	default:
		e.ctl.hover = e.hitTest(pt)
		return false
	}
	e.positionsMoved()
	return true
}

// release handles a pointer release, committing any drag in progress.
func (e *engine) release() bool {
	if e.ctl.state == Idle {
		return false
	}
	e.ctl.reset()
	e.commit()
	e.setDown(false)
	return true
}

// wheel handles a wheel event with the given delta along the slider,
// in [events.WheelNotch] units, where positive deltas increase values.
// Shift scrolls a page, Control a fraction of the range, and otherwise
// whole lines are scrolled, keeping any fraction of a line for the
// next event in the same direction. Alt spreads or narrows the handles
// instead of moving them. The result is committed immediately. It
// returns whether the event was used.
func (e *engine) wheel(delta float64, mods key.Modifiers) bool {
	if delta == 0 || e.rng.IsDegenerate() {
		return false
	}
	rng := e.rng
	offset := delta / events.WheelNotch
	var steps float64
	switch {
	case mods.HasFlag(key.Shift):
		steps = math.Copysign(rng.pageStep, offset)
		e.ctl.accum = 0
	case mods.HasFlag(key.Control):
		span := rng.Span()
		steps = max(-span, min(span, offset*span*ControlFraction))
		e.ctl.accum = 0
	default:
		lines := WheelScrollLines * offset
		if e.ctl.accum != 0 && (lines > 0) != (e.ctl.accum > 0) {
			e.ctl.accum = 0
		}
		e.ctl.accum += lines
		whole := math.Trunc(e.ctl.accum)
		e.ctl.accum -= whole
		steps = whole * e.effectiveSingleStep()
		if rng.pageStep > 0 {
			steps = max(-rng.pageStep, min(rng.pageStep, steps))
		}
	}
	if e.invertedControls {
		steps = -steps
	}
	if steps == 0 {
		// less than a line: keep the fraction only if there is room for it
		acc := e.ctl.accum
		if e.invertedControls {
			acc = -acc
		}
		if e.handles.CanMove(acc) {
			return true
		}
		e.ctl.accum = 0
		return false
	}

	var changed bool
	if mods.HasFlag(key.Alt) && e.handles.Len() > 1 {
		prev := e.handles.Values()
		e.handles.SpreadAll(steps < 0, SpreadGain, nil)
		e.commit()
		changed = !slices.Equal(prev, e.handles.values)
	} else {
		changed = e.offset(steps)
	}
	if !changed {
		e.ctl.accum = 0
		return false
	}
	return true
}

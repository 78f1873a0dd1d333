// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import "cogentcore.org/rangeslider/events/key"

// Actions are the discrete moves that can be triggered on a slider,
// typically from the keyboard.
type Actions int32

const (
	NoAction Actions = iota
	SingleStepAdd
	SingleStepSub
	PageStepAdd
	PageStepSub
	ToMinimum
	ToMaximum
)

var actionNames = [...]string{"NoAction", "SingleStepAdd", "SingleStepSub", "PageStepAdd", "PageStepSub", "ToMinimum", "ToMaximum"}

func (a Actions) String() string {
	if a < NoAction || a > ToMaximum {
		return actionNames[NoAction]
	}
	return actionNames[a]
}

// triggerAction applies the given action to all handles and commits
// the result immediately. It returns whether any value changed.
func (e *engine) triggerAction(a Actions) bool {
	var off float64
	n := e.handles.Len()
	switch a {
	case SingleStepAdd:
		off = e.effectiveSingleStep()
	case SingleStepSub:
		off = -e.effectiveSingleStep()
	case PageStepAdd:
		off = e.rng.pageStep
	case PageStepSub:
		off = -e.rng.pageStep
	case ToMinimum:
		off = e.rng.minimum - e.handles.Position(0)
	case ToMaximum:
		off = e.rng.maximum - e.handles.Position(n-1)
	default:
		return false
	}
	if off == 0 {
		return false
	}
	return e.offset(off)
}

// keyAction returns the action for the given key. The arrow keys
// step toward larger values to the right and upward, which
// inverted controls reverse.
func (e *engine) keyAction(code key.Codes) Actions {
	var a Actions
	switch code {
	case key.CodeRightArrow, key.CodeUpArrow:
		a = SingleStepAdd
	case key.CodeLeftArrow, key.CodeDownArrow:
		a = SingleStepSub
	case key.CodePageUp:
		a = PageStepAdd
	case key.CodePageDown:
		a = PageStepSub
	case key.CodeHome:
		return ToMinimum
	case key.CodeEnd:
		return ToMaximum
	default:
		return NoAction
	}
	if e.invertedControls {
		switch a {
		case SingleStepAdd:
			a = SingleStepSub
		case SingleStepSub:
			a = SingleStepAdd
		case PageStepAdd:
			a = PageStepSub
		case PageStepSub:
			a = PageStepAdd
		}
	}
	return a
}

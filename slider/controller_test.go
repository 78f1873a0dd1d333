// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"
	"testing"

	"cogentcore.org/rangeslider/events"
	"cogentcore.org/rangeslider/events/key"
	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records the notifications of an engine in order.
type recorder struct {
	events []string
	values [][]float64
	moved  [][]float64
}

func (r *recorder) attach(e *engine) {
	e.sig.rangeChanged = append(e.sig.rangeChanged, func(min, max float64) { r.events = append(r.events, "range") })
	e.sig.valueChanged = append(e.sig.valueChanged, func(v []float64) {
		r.events = append(r.events, "value")
		r.values = append(r.values, v)
	})
	e.sig.sliderMoved = append(e.sig.sliderMoved, func(p []float64) {
		r.events = append(r.events, "moved")
		r.moved = append(r.moved, p)
	})
	e.sig.sliderPressed = append(e.sig.sliderPressed, func() { r.events = append(r.events, "pressed") })
	e.sig.sliderReleased = append(e.sig.sliderReleased, func() { r.events = append(r.events, "released") })
}

// horizontalGeometry is a groove from x=0 to x=110 with 10 pixel wide
// handles, so that with a range of [0, 100] the value at x is x-5.
func horizontalGeometry() *StaticGeometry {
	return &StaticGeometry{
		BoundsBox: math32.B2(0, 0, 110, 30),
		GrooveBox: math32.B2(0, 10, 110, 20),
		Handle:    math32.Vec2(10, 20),
	}
}

func newTestEngine(t *testing.T, values ...float64) (*engine, *recorder) {
	t.Helper()
	e, err := newEngine(Identity, values...)
	require.NoError(t, err)
	e.rng.SetRange(0, 100)
	_, err = e.handles.SetValues(values)
	require.NoError(t, err)
	e.geom = horizontalGeometry()
	r := &recorder{}
	r.attach(e)
	return e, r
}

func at(x, y float32) math32.Vector2 { return math32.Vec2(x, y) }

func TestHitTest(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	assert.Equal(t, ControlHit{HitHandle, 0}, e.hitTest(at(25, 15)))
	assert.Equal(t, ControlHit{HitHandle, 1}, e.hitTest(at(81, 6)))
	assert.Equal(t, ControlHit{HitBar, 0}, e.hitTest(at(55, 15)))
	assert.Equal(t, ControlHit{HitGroove, -1}, e.hitTest(at(10, 15)))
	assert.Equal(t, NoHit, e.hitTest(at(50, 28)))
	e.ticks = styles.TicksBelow
	assert.Equal(t, ControlHit{HitTickmarks, -1}, e.hitTest(at(50, 28)))
	assert.Equal(t, NoHit, e.hitTest(at(200, 28)))
	e.geom = nil
	assert.Equal(t, NoHit, e.hitTest(at(25, 15)))
}

func TestHitTestCoincident(t *testing.T) {
	e, _ := newTestEngine(t, 50, 50)
	assert.Equal(t, ControlHit{HitHandle, 1}, e.hitTest(at(57, 15)))
	assert.Equal(t, ControlHit{HitHandle, 0}, e.hitTest(at(53, 15)))
}

func TestHitTestFullFloatRange(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	e.rng.SetRange(-math.MaxFloat64, math.MaxFloat64)
	assert.Equal(t, math32.Vec2(55, 15), e.handleBox(0).Center())
	assert.Equal(t, ControlHit{HitHandle, 0}, e.hitTest(at(55, 15)))
	assert.Equal(t, 0.0, e.pixelValue(at(55, 15)))
	assert.Equal(t, ControlHit{HitGroove, -1}, e.hitTest(at(100, 15)))
}

func TestHitTestVertical(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	e.orient = styles.Vertical
	e.geom = &StaticGeometry{
		BoundsBox: math32.B2(0, 0, 30, 110),
		GrooveBox: math32.B2(10, 0, 20, 110),
		Handle:    math32.Vec2(20, 10),
	}
	assert.Equal(t, math32.Vec2(15, 85), e.handleBox(0).Center())
	assert.Equal(t, math32.Vec2(15, 25), e.handleBox(1).Center())
	assert.Equal(t, ControlHit{HitHandle, 0}, e.hitTest(at(15, 85)))
	assert.Equal(t, ControlHit{HitBar, 0}, e.hitTest(at(15, 55)))
	assert.Equal(t, 60.0, e.pixelValue(at(15, 45)))
}

func TestDragHandle(t *testing.T) {
	e, r := newTestEngine(t, 20, 80)
	assert.True(t, e.press(at(25, 15), events.Left))
	assert.Equal(t, PressedHandle, e.ctl.state)
	assert.Equal(t, 0, e.ctl.index)
	assert.True(t, e.down)

	assert.True(t, e.move(at(45, 15)))
	assert.Equal(t, []float64{40, 80}, e.handles.Values())

	// cannot cross the other handle
	e.move(at(100, 15))
	assert.Equal(t, []float64{79, 80}, e.handles.Values())

	assert.True(t, e.release())
	assert.Equal(t, Idle, e.ctl.state)
	assert.False(t, e.down)
	assert.False(t, e.release())
	assert.Equal(t, []string{"pressed", "value", "value", "released"}, r.events)
	assert.Empty(t, r.moved)
}

func TestDragHandleNoTracking(t *testing.T) {
	e, r := newTestEngine(t, 20, 80)
	e.tracking = false
	require.True(t, e.press(at(85, 15), events.Left))
	e.move(at(95, 15))
	assert.Equal(t, []float64{20, 90}, e.handles.Positions())
	assert.Equal(t, []float64{20, 80}, e.handles.Values())
	e.release()
	assert.Equal(t, []float64{20, 90}, e.handles.Values())
	assert.Equal(t, []string{"pressed", "moved", "moved", "value", "released"}, r.events)
	assert.Equal(t, []float64{20, 90}, r.moved[1])
}

func TestDragBar(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	require.True(t, e.press(at(55, 15), events.Left))
	assert.Equal(t, PressedBar, e.ctl.state)
	e.move(at(65, 15))
	assert.Equal(t, []float64{30, 90}, e.handles.Values())
	e.move(at(105, 15))
	assert.Equal(t, []float64{40, 100}, e.handles.Values())
	e.move(at(-50, 15))
	assert.Equal(t, []float64{0, 60}, e.handles.Values())
	e.release()
}

func TestDragBarLoose(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	e.barIsRigid = false
	require.True(t, e.press(at(55, 15), events.Left))
	e.move(at(105, 15))
	assert.Equal(t, []float64{70, 100}, e.handles.Values())
	e.release()
}

func TestDragBarSegment(t *testing.T) {
	e, _ := newTestEngine(t, 10, 50, 90)
	e.barMovesAll = false
	require.True(t, e.press(at(35, 15), events.Left))
	assert.Equal(t, 0, e.ctl.index)
	e.move(at(45, 15))
	assert.Equal(t, []float64{20, 60, 90}, e.handles.Values())
	e.release()

	e.barMovesAll = true
	require.True(t, e.press(at(75, 15), events.Left))
	assert.Equal(t, 1, e.ctl.index)
	e.move(at(65, 15))
	assert.Equal(t, []float64{10, 50, 80}, e.handles.Values())
	e.release()
}

func TestPressIgnored(t *testing.T) {
	e, r := newTestEngine(t, 20, 80)
	assert.False(t, e.press(at(25, 15), events.Right))
	assert.False(t, e.press(at(10, 15), events.Left))
	assert.Equal(t, Idle, e.ctl.state)

	e.rng.SetRange(5, 5)
	assert.False(t, e.press(at(25, 15), events.Left))
	assert.Equal(t, Idle, e.ctl.state)
	assert.Empty(t, r.events)
}

func TestHover(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	assert.False(t, e.move(at(85, 15)))
	assert.Equal(t, ControlHit{HitHandle, 1}, e.ctl.hover)
	e.move(at(50, 15))
	assert.Equal(t, ControlHit{HitBar, 0}, e.ctl.hover)
}

func TestWheelLines(t *testing.T) {
	e, _ := newTestEngine(t, 50)
	assert.True(t, e.wheel(events.WheelNotch, 0))
	assert.Equal(t, 53.0, e.handles.Value(0))
	assert.True(t, e.wheel(-2*events.WheelNotch, 0))
	assert.Equal(t, 47.0, e.handles.Value(0))

	// at most one page per event
	assert.True(t, e.wheel(10*events.WheelNotch, 0))
	assert.Equal(t, 57.0, e.handles.Value(0))
}

func TestWheelModifiers(t *testing.T) {
	e, _ := newTestEngine(t, 50)
	assert.True(t, e.wheel(events.WheelNotch/4, key.Shift))
	assert.Equal(t, 60.0, e.handles.Value(0))
	assert.True(t, e.wheel(-events.WheelNotch, key.Control))
	assert.InDelta(t, 56.0, e.handles.Value(0), 1e-9)

	e.invertedControls = true
	assert.True(t, e.wheel(events.WheelNotch, 0))
	assert.InDelta(t, 53.0, e.handles.Value(0), 1e-9)
}

func TestWheelAccumulation(t *testing.T) {
	e, r := newTestEngine(t, 50)
	small := float64(events.WheelNotch) / 10 // 0.3 lines
	for i := 0; i < 3; i++ {
		assert.True(t, e.wheel(small, 0))
		assert.Equal(t, 50.0, e.handles.Value(0))
	}
	assert.Empty(t, r.values)
	assert.True(t, e.wheel(small, 0))
	assert.Equal(t, 51.0, e.handles.Value(0))
	assert.Len(t, r.values, 1)
	assert.InDelta(t, 0.2, e.ctl.accum, 1e-9)

	// reversing drops the remainder
	assert.True(t, e.wheel(-small, 0))
	assert.InDelta(t, -0.3, e.ctl.accum, 1e-9)
	assert.Equal(t, 51.0, e.handles.Value(0))
	for i := 0; i < 3; i++ {
		e.wheel(-small, 0)
	}
	assert.Equal(t, 50.0, e.handles.Value(0))
}

func TestWheelAtBound(t *testing.T) {
	e, _ := newTestEngine(t, 100)
	assert.False(t, e.wheel(float64(events.WheelNotch)/10, 0))
	assert.Equal(t, 0.0, e.ctl.accum)
	assert.False(t, e.wheel(events.WheelNotch, 0))
	assert.Equal(t, 100.0, e.handles.Value(0))

	e.rng.SetRange(3, 3)
	assert.False(t, e.wheel(events.WheelNotch, 0))
}

func TestWheelSpread(t *testing.T) {
	e, _ := newTestEngine(t, 40, 60)
	assert.True(t, e.wheel(events.WheelNotch, key.Alt))
	vs := e.handles.Values()
	assert.InDelta(t, 39, vs[0], 1e-9)
	assert.InDelta(t, 61, vs[1], 1e-9)
	assert.True(t, e.wheel(-events.WheelNotch, key.Alt))
	vs = e.handles.Values()
	assert.InDelta(t, 40, vs[0], 1e-9)
	assert.InDelta(t, 60, vs[1], 1e-9)
}

func TestWheelCommitsWithoutTracking(t *testing.T) {
	e, r := newTestEngine(t, 20, 80)
	e.tracking = false
	assert.True(t, e.wheel(events.WheelNotch, 0))
	assert.Equal(t, []float64{23, 83}, e.handles.Values())
	assert.Equal(t, []string{"value"}, r.events)
}

func TestTriggerAction(t *testing.T) {
	e, _ := newTestEngine(t, 20, 80)
	assert.True(t, e.triggerAction(SingleStepAdd))
	assert.Equal(t, []float64{21, 81}, e.handles.Values())
	assert.True(t, e.triggerAction(PageStepSub))
	assert.Equal(t, []float64{11, 71}, e.handles.Values())
	assert.True(t, e.triggerAction(ToMinimum))
	assert.Equal(t, []float64{0, 60}, e.handles.Values())
	assert.False(t, e.triggerAction(ToMinimum))
	assert.False(t, e.triggerAction(SingleStepSub))
	assert.True(t, e.triggerAction(ToMaximum))
	assert.Equal(t, []float64{40, 100}, e.handles.Values())
	assert.False(t, e.triggerAction(NoAction))
}

func TestKeyAction(t *testing.T) {
	e, _ := newTestEngine(t, 50)
	assert.Equal(t, SingleStepAdd, e.keyAction(key.CodeRightArrow))
	assert.Equal(t, SingleStepAdd, e.keyAction(key.CodeUpArrow))
	assert.Equal(t, SingleStepSub, e.keyAction(key.CodeLeftArrow))
	assert.Equal(t, PageStepAdd, e.keyAction(key.CodePageUp))
	assert.Equal(t, ToMinimum, e.keyAction(key.CodeHome))
	assert.Equal(t, NoAction, e.keyAction(key.CodeUnknown))
	e.invertedControls = true
	assert.Equal(t, SingleStepSub, e.keyAction(key.CodeRightArrow))
	assert.Equal(t, PageStepAdd, e.keyAction(key.CodePageDown))
	assert.Equal(t, ToMaximum, e.keyAction(key.CodeEnd))
}

func TestRangeChangeOrdering(t *testing.T) {
	e, r := newTestEngine(t, 20, 80)
	r.events = nil
	e.setRange(0, 50)
	assert.Equal(t, []string{"range", "value"}, r.events)
	assert.Equal(t, []float64{20, 50}, e.handles.Values())

	r.events = nil
	e.setRange(0, 50)
	assert.Empty(t, r.events)
	e.setRange(-10, 50)
	assert.Equal(t, []string{"range"}, r.events)
}

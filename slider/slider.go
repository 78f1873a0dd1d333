// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slider provides continuous sliders with any number of
// ordered handles on one track, for any integer or floating point type.
package slider

import (
	"fmt"
	"log/slog"

	"cogentcore.org/rangeslider/events"
	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
)

// Slider is a slider with one or more ordered handles holding values
// of type T. It does not draw itself: the embedding widget provides its
// [Geometry], passes it pointer, wheel and key events with
// [Slider.HandleEvent], and draws it from [Slider.Params],
// [Slider.HandleBox] and [Slider.BarBox].
//
// The live positions of the handles follow a drag, while the values
// are only updated when the drag is released, unless tracking is on,
// which it is by default.
type Slider[T Number] struct {
	e *engine

	// Name is an optional name used in logging.
	Name string

	listeners events.Listeners

	sheet     string
	parent    styles.Node
	resolver  *styles.Resolver
	overrides styles.Overrides
	palette   styles.PaletteStates
}

// NewSlider returns a new slider with one handle at the minimum
// of the default range of [0, 99].
func NewSlider[T Number]() *Slider[T] {
	s, _ := NewMultiSlider[T](0)
	return s
}

// NewRangeSlider returns a new slider with two handles at 20 and 80
// in the default range of [0, 99].
func NewRangeSlider[T Number]() *Slider[T] {
	s, _ := NewMultiSlider[T](20, 80)
	return s
}

// NewMultiSlider returns a new slider with one handle for each of the
// given values, which are sorted. It is an error to give no values.
func NewMultiSlider[T Number](values ...T) (*Slider[T], error) {
	e, err := newEngine(RoundingFor[T](), toFloats(values)...)
	if err != nil {
		return nil, err
	}
	s := &Slider[T]{e: e}
	s.init()
	return s, nil
}

func toFloats[T Number](vs []T) []float64 {
	res := make([]float64, len(vs))
	for i, v := range vs {
		res[i] = float64(v)
	}
	return res
}

func fromFloats[T Number](vs []float64) []T {
	res := make([]T, len(vs))
	for i, v := range vs {
		res[i] = T(v)
	}
	return res
}

func (s *Slider[T]) String() string {
	return fmt.Sprintf("Slider(%s)%v", s.Name, s.Values())
}

// Len returns the number of handles.
func (s *Slider[T]) Len() int { return s.e.handles.Len() }

// Value returns the value of the first handle.
func (s *Slider[T]) Value() T { return T(s.e.handles.Value(0)) }

// Values returns the values of all handles, in increasing order.
func (s *Slider[T]) Values() []T { return fromFloats[T](s.e.handles.values) }

// SliderPosition returns the live positions of all handles,
// which differ from the values while a drag is in progress
// with tracking off.
func (s *Slider[T]) SliderPosition() []T { return fromFloats[T](s.e.handles.positions) }

// SetValue sets the value of the first handle. It notifies
// [Slider.OnValueChanged] handlers only if the value changed.
func (s *Slider[T]) SetValue(v T) *Slider[T] {
	s.SetValueAt(0, v)
	return s
}

// SetValueAt sets the value of handle i. The values are sorted
// again afterward, so the handle may change index. It is an error
// for i to be out of range, in which case nothing changes.
func (s *Slider[T]) SetValueAt(i int, v T) error {
	vals := s.e.handles.Values()
	if i < 0 || i >= len(vals) {
		return fmt.Errorf("slider.SetValueAt: handle %d out of range for %d handles", i, len(vals))
	}
	vals[i] = float64(v)
	return s.e.setValues(vals)
}

// SetValues sets the values of all handles, bound to the range and
// sorted. It is an error for the number of values to differ from
// [Slider.Len], in which case nothing changes.
func (s *Slider[T]) SetValues(vs ...T) error {
	return s.e.setValues(toFloats(vs))
}

// SetSliderPosition moves the live positions of all handles as a
// drag would, keeping them in order. With tracking on, the values
// follow. It is an error for the number of positions to differ from
// [Slider.Len].
func (s *Slider[T]) SetSliderPosition(ps ...T) error {
	return s.e.setPositions(toFloats(ps))
}

func (s *Slider[T]) Minimum() T      { return T(s.e.rng.minimum) }
func (s *Slider[T]) Maximum() T      { return T(s.e.rng.maximum) }
func (s *Slider[T]) SingleStep() T   { return T(s.e.rng.singleStep) }
func (s *Slider[T]) PageStep() T     { return T(s.e.rng.pageStep) }
func (s *Slider[T]) TickInterval() T { return T(s.e.rng.tickInterval) }

// SetRange sets the minimum and maximum, raising max to min if it is
// lower. If the range changes, [Slider.OnRangeChanged] handlers are
// notified, and then the values are bound to the new range, notifying
// [Slider.OnValueChanged] handlers if that changes them.
func (s *Slider[T]) SetRange(min, max T) *Slider[T] {
	s.e.setRange(float64(min), float64(max))
	return s
}

// SetMinimum sets the minimum, raising the maximum if needed.
func (s *Slider[T]) SetMinimum(m T) *Slider[T] {
	return s.SetRange(m, max(m, s.Maximum()))
}

// SetMaximum sets the maximum, lowering the minimum if needed.
func (s *Slider[T]) SetMaximum(m T) *Slider[T] {
	return s.SetRange(min(m, s.Minimum()), m)
}

// SetSingleStep sets the single step, which is the minimum distance
// kept between handles and the amount moved by arrow keys and wheel
// lines. Negative steps become 0.
func (s *Slider[T]) SetSingleStep(step T) *Slider[T] {
	s.e.rng.SetSingleStep(float64(step))
	return s
}

// SetPageStep sets the page step. Negative steps become 0.
func (s *Slider[T]) SetPageStep(step T) *Slider[T] {
	s.e.rng.SetPageStep(float64(step))
	return s
}

// SetTickInterval sets the interval between tick marks.
func (s *Slider[T]) SetTickInterval(ti T) *Slider[T] {
	s.e.rng.SetTickInterval(float64(ti))
	return s
}

// HasTracking returns whether values follow positions during a drag.
func (s *Slider[T]) HasTracking() bool { return s.e.tracking }

// SetTracking sets whether values follow positions during a drag.
// Without tracking, [Slider.OnSliderMoved] handlers are notified
// during the drag and the values change on release.
func (s *Slider[T]) SetTracking(on bool) *Slider[T] {
	s.e.tracking = on
	return s
}

func (s *Slider[T]) Orientation() styles.Orientations { return s.e.orient }

func (s *Slider[T]) SetOrientation(o styles.Orientations) *Slider[T] {
	s.e.orient = o
	return s
}

func (s *Slider[T]) TickPosition() styles.TickPositions { return s.e.ticks }

func (s *Slider[T]) SetTickPosition(tp styles.TickPositions) *Slider[T] {
	s.e.ticks = tp
	return s
}

// SetInvertedAppearance sets whether values increase to the left
// (or downward for vertical sliders).
func (s *Slider[T]) SetInvertedAppearance(on bool) *Slider[T] {
	s.e.invertedAppearance = on
	return s
}

// SetInvertedControls sets whether the wheel and keyboard
// move values in the opposite direction.
func (s *Slider[T]) SetInvertedControls(on bool) *Slider[T] {
	s.e.invertedControls = on
	return s
}

// SetBarIsRigid sets whether dragging the bar and scrolling keep the
// distance between the handles, stopping at the range bounds. It is on
// by default; when off, handles are clamped individually at the bounds.
func (s *Slider[T]) SetBarIsRigid(on bool) *Slider[T] {
	s.e.barIsRigid = on
	return s
}

// SetBarMovesAllHandles sets whether dragging any bar segment moves
// all handles (the default), or only the two bounding the segment.
func (s *Slider[T]) SetBarMovesAllHandles(on bool) *Slider[T] {
	s.e.barMovesAll = on
	return s
}

// SetGeometry sets the pixel layout used for hit testing and pixel mapping.
// A slider without geometry ignores pointer presses.
func (s *Slider[T]) SetGeometry(g Geometry) *Slider[T] {
	s.e.geom = g
	return s
}

// IsSliderDown returns whether a handle or the bar is being dragged.
func (s *Slider[T]) IsSliderDown() bool { return s.e.down }

// State returns the state of the pointer interaction.
func (s *Slider[T]) State() States { return s.e.ctl.state }

// PressedControl returns the control being dragged, or [NoHit].
func (s *Slider[T]) PressedControl() ControlHit {
	switch s.e.ctl.state {
	case PressedHandle:
		return ControlHit{Kind: HitHandle, Index: s.e.ctl.index}
	case PressedBar:
		return ControlHit{Kind: HitBar, Index: s.e.ctl.index}
	}
	return NoHit
}

// HoverControl returns the control under the pointer,
// as of the last pointer event.
func (s *Slider[T]) HoverControl() ControlHit { return s.e.ctl.hover }

// ControlAt returns the control at the given point.
func (s *Slider[T]) ControlAt(pt math32.Vector2) ControlHit { return s.e.hitTest(pt) }

// TriggerAction applies the given action, committing immediately.
// It returns whether any value changed.
func (s *Slider[T]) TriggerAction(a Actions) bool { return s.e.triggerAction(a) }

// OnValueChanged adds a handler called with the new values
// whenever the committed values change.
func (s *Slider[T]) OnValueChanged(fun func(values []T)) *Slider[T] {
	s.e.sig.valueChanged = append(s.e.sig.valueChanged, func(v []float64) { fun(fromFloats[T](v)) })
	return s
}

// OnRangeChanged adds a handler called with the new bounds
// whenever the range changes.
func (s *Slider[T]) OnRangeChanged(fun func(min, max T)) *Slider[T] {
	s.e.sig.rangeChanged = append(s.e.sig.rangeChanged, func(mn, mx float64) { fun(T(mn), T(mx)) })
	return s
}

// OnSliderMoved adds a handler called with the live positions while
// a drag moves them with tracking off.
func (s *Slider[T]) OnSliderMoved(fun func(positions []T)) *Slider[T] {
	s.e.sig.sliderMoved = append(s.e.sig.sliderMoved, func(p []float64) { fun(fromFloats[T](p)) })
	return s
}

// OnSliderPressed adds a handler called when a drag starts.
func (s *Slider[T]) OnSliderPressed(fun func()) *Slider[T] {
	s.e.sig.sliderPressed = append(s.e.sig.sliderPressed, fun)
	return s
}

// OnSliderReleased adds a handler called when a drag ends.
func (s *Slider[T]) OnSliderReleased(fun func()) *Slider[T] {
	s.e.sig.sliderReleased = append(s.e.sig.sliderReleased, fun)
	return s
}

// SetPaletteState sets the palette state the slider is drawn in.
func (s *Slider[T]) SetPaletteState(ps styles.PaletteStates) *Slider[T] {
	s.palette = ps
	return s
}

func (s *Slider[T]) logf(msg string, args ...any) {
	slog.Debug(msg, append([]any{"slider", s.Name}, args...)...)
}

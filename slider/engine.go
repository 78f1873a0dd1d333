// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"slices"

	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
)

// engine is the scalar-type independent core of a [Slider]: it owns
// the range, the handles and the interaction state, and emits all
// notifications. Values are float64 throughout, rounded by the
// rounding strategy of the range.
type engine struct {
	rng     *RangeModel
	handles *HandleSet
	mapper  PixelMapper
	ctl     Controller
	sig     signals

	geom   Geometry
	orient styles.Orientations
	ticks  styles.TickPositions

	// tracking is whether positions are committed to values
	// while dragging, rather than only on release.
	tracking bool

	invertedAppearance bool
	invertedControls   bool

	// barIsRigid is whether dragging the bar or scrolling keeps the
	// distance between the handles, stopping the whole group at the
	// range bounds.
	barIsRigid bool

	// barMovesAll is whether dragging any bar segment moves all of the
	// handles, rather than only the two that bound the segment.
	barMovesAll bool

	// down is whether a handle or the bar is being dragged.
	down bool
}

func newEngine(round Rounding, values ...float64) (*engine, error) {
	rng := NewRangeModel(round)
	hs, err := NewHandleSet(rng, values...)
	if err != nil {
		return nil, err
	}
	e := &engine{
		rng:         rng,
		handles:     hs,
		mapper:      PixelMapper{Range: rng},
		tracking:    true,
		barIsRigid:  true,
		barMovesAll: true,
	}
	e.ctl.reset()
	return e, nil
}

// track returns the current pixel track, which has no span
// if there is no geometry.
func (e *engine) track() Track {
	if e.geom == nil {
		return Track{Dim: e.orient.Dim()}
	}
	return NewTrack(e.geom, e.orient, e.invertedAppearance)
}

// pixelValue returns the unrounded value under the given point.
func (e *engine) pixelValue(pt math32.Vector2) float64 {
	tr := e.track()
	return e.mapper.PixelToValue(tr.Pick(pt), tr.Origin, tr.Span, tr.Inverted)
}

// setRange sets the range, and if it changed, notifies about
// the new range and then re-binds the values to it.
func (e *engine) setRange(min, max float64) {
	if !e.rng.SetRange(min, max) {
		return
	}
	e.sig.emitRangeChanged(e.rng.minimum, e.rng.maximum)
	e.setValues(e.handles.Values())
}

// setValues sets the committed values, notifying if they changed.
func (e *engine) setValues(vals []float64) error {
	changed, err := e.handles.SetValues(vals)
	if err != nil || !changed {
		return err
	}
	e.sig.emitValueChanged(e.handles.values)
	return nil
}

// setPositions sets the live positions as a drag would.
func (e *engine) setPositions(ps []float64) error {
	if err := e.handles.SetPositions(ps); err != nil {
		return err
	}
	e.positionsMoved()
	return nil
}

// positionsMoved is called after every position write of an interaction.
func (e *engine) positionsMoved() {
	if e.down && !e.tracking {
		e.sig.emitSliderMoved(e.handles.positions)
	}
	if e.tracking {
		e.commit()
	}
}

// commit copies positions to values, notifying if they changed.
func (e *engine) commit() {
	if e.handles.Commit() {
		e.sig.emitValueChanged(e.handles.values)
	}
}

func (e *engine) setDown(down bool) {
	if e.down == down {
		return
	}
	e.down = down
	if down {
		e.sig.emitSliderPressed()
	} else {
		e.sig.emitSliderReleased()
	}
}

// effectiveSingleStep returns the single step, or one percent
// of the range if the single step is 0.
func (e *engine) effectiveSingleStep() float64 {
	if e.rng.singleStep > 0 {
		return e.rng.singleStep
	}
	return e.rng.Span() / 100
}

// offset moves all handles by the given amount and commits immediately,
// as for wheel and keyboard input. It returns whether any value changed.
func (e *engine) offset(off float64) bool {
	prev := e.handles.Values()
	e.handles.OffsetAll(off, e.barIsRigid, nil)
	e.commit()
	return !slices.Equal(prev, e.handles.values)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import "math"

// RangeModel holds the bounds and step sizes of a slider.
// All inputs are clamped rather than rejected, and
// minimum <= maximum always holds.
type RangeModel struct {
	minimum      float64
	maximum      float64
	singleStep   float64
	pageStep     float64
	tickInterval float64
	round        Rounding
}

// NewRangeModel returns a new range model with the conventional
// slider defaults: a range of [0, 99], a single step of 1 and a
// page step of 10. A nil rounding means [Identity].
func NewRangeModel(round Rounding) *RangeModel {
	if round == nil {
		round = Identity
	}
	return &RangeModel{maximum: 99, singleStep: 1, pageStep: 10, round: round}
}

func (rm *RangeModel) Minimum() float64      { return rm.minimum }
func (rm *RangeModel) Maximum() float64      { return rm.maximum }
func (rm *RangeModel) SingleStep() float64   { return rm.singleStep }
func (rm *RangeModel) PageStep() float64     { return rm.pageStep }
func (rm *RangeModel) TickInterval() float64 { return rm.tickInterval }

// Span returns maximum - minimum.
func (rm *RangeModel) Span() float64 { return rm.maximum - rm.minimum }

// IsDegenerate returns whether the range is empty (minimum == maximum),
// in which case the slider ignores pointer input.
func (rm *RangeModel) IsDegenerate() bool { return rm.minimum == rm.maximum }

// SetRange sets the bounds, raising max to min if it is lower.
// It returns whether either bound changed.
func (rm *RangeModel) SetRange(min, max float64) bool {
	if math.IsNaN(min) || math.IsNaN(max) {
		return false
	}
	nmin := rm.round(min)
	nmax := rm.round(math.Max(min, max))
	if nmin == rm.minimum && nmax == rm.maximum {
		return false
	}
	rm.minimum, rm.maximum = nmin, nmax
	return true
}

// SetMinimum sets the minimum, pushing the maximum up if needed.
func (rm *RangeModel) SetMinimum(m float64) bool {
	return rm.SetRange(m, math.Max(m, rm.maximum))
}

// SetMaximum sets the maximum, pushing the minimum down if needed.
func (rm *RangeModel) SetMaximum(m float64) bool {
	return rm.SetRange(math.Min(m, rm.minimum), m)
}

// SetSingleStep sets the single step; negative values become 0,
// which means no snapping.
func (rm *RangeModel) SetSingleStep(s float64) {
	rm.singleStep = nonNegative(rm.round(s))
}

// SetPageStep sets the page step; negative values become 0.
func (rm *RangeModel) SetPageStep(s float64) {
	rm.pageStep = nonNegative(rm.round(s))
}

// SetTickInterval sets the interval between tick marks; negative values become 0.
func (rm *RangeModel) SetTickInterval(s float64) {
	rm.tickInterval = nonNegative(rm.round(s))
}

// Bound returns x clamped to [minimum, maximum] and rounded.
// NaN is bound to the minimum.
func (rm *RangeModel) Bound(x float64) float64 {
	if math.IsNaN(x) {
		return rm.minimum
	}
	return rm.round(max(rm.minimum, min(rm.maximum, x)))
}

// Round applies the rounding strategy of the model.
func (rm *RangeModel) Round(x float64) float64 {
	return rm.round(x)
}

func nonNegative(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

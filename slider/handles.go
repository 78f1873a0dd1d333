// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"slices"
)

// HandleSet is the ordered set of handles of a slider. Each handle
// has a live position, which moves during a drag, and a committed
// value. Every position write keeps the positions in non-decreasing
// order, separated by at least the single step where there is room.
// The number of handles is fixed at construction.
type HandleSet struct {
	rng       *RangeModel
	positions []float64
	values    []float64
}

// NewHandleSet returns a new handle set with the given initial values,
// which are bound to the range and sorted. There must be at least one value.
func NewHandleSet(rng *RangeModel, values ...float64) (*HandleSet, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("slider.NewHandleSet: a slider needs at least one handle")
	}
	hs := &HandleSet{rng: rng}
	hs.values = hs.normalize(values)
	hs.positions = slices.Clone(hs.values)
	return hs, nil
}

// Len returns the number of handles.
func (hs *HandleSet) Len() int { return len(hs.positions) }

func (hs *HandleSet) Position(i int) float64 { return hs.positions[i] }
func (hs *HandleSet) Value(i int) float64    { return hs.values[i] }

// Positions returns a copy of the live handle positions.
func (hs *HandleSet) Positions() []float64 { return slices.Clone(hs.positions) }

// Values returns a copy of the committed handle values.
func (hs *HandleSet) Values() []float64 { return slices.Clone(hs.values) }

// normalize returns the values bound to the range and sorted.
func (hs *HandleSet) normalize(vals []float64) []float64 {
	res := make([]float64, len(vals))
	for i, v := range vals {
		res[i] = hs.rng.Bound(v)
	}
	slices.Sort(res)
	return res
}

// neighborBound returns p constrained to lie at least one single step
// above the previous handle and below the next one. Where the neighbors
// are too close together for that, p is kept between them.
func (hs *HandleSet) neighborBound(p float64, i int) float64 {
	step := hs.rng.singleStep
	lo, hi := hs.rng.minimum, hs.rng.maximum
	plo, phi := lo, hi
	if i > 0 {
		plo = hs.positions[i-1]
		lo = max(lo, plo+step)
	}
	if i < len(hs.positions)-1 {
		phi = hs.positions[i+1]
		hi = min(hi, phi-step)
	}
	if lo <= hi {
		return min(hi, max(lo, p))
	}
	return min(phi, max(plo, p))
}

// SetPosition moves handle i toward raw, as far as the range
// and its neighbors allow.
func (hs *HandleSet) SetPosition(i int, raw float64) {
	hs.positions[i] = hs.rng.Round(hs.neighborBound(hs.rng.Bound(raw), i))
}

// SetPositions moves every handle toward the corresponding raw
// position. When the handles move up overall, the highest handle
// moves first, and otherwise the lowest, so that no handle is
// pinned by a neighbor that is about to move out of its way.
// It is an error for the number of positions to differ from [HandleSet.Len].
func (hs *HandleSet) SetPositions(raw []float64) error {
	if len(raw) != len(hs.positions) {
		return fmt.Errorf("slider.SetPositions: got %d positions for %d handles", len(raw), len(hs.positions))
	}
	var delta float64
	for i, p := range raw {
		delta += p - hs.positions[i]
	}
	if delta > 0 {
		for i := len(raw) - 1; i >= 0; i-- {
			hs.SetPosition(i, raw[i])
		}
		return nil
	}
	for i, p := range raw {
		hs.SetPosition(i, p)
	}
	return nil
}

// SetValues sets both the values and the positions to the given values,
// bound and sorted. It returns whether any value changed, and an error
// if the number of values differs from [HandleSet.Len].
func (hs *HandleSet) SetValues(vals []float64) (bool, error) {
	if len(vals) != len(hs.values) {
		return false, fmt.Errorf("slider.SetValues: got %d values for %d handles", len(vals), len(hs.values))
	}
	nv := hs.normalize(vals)
	changed := !slices.Equal(nv, hs.values)
	hs.values = nv
	hs.positions = slices.Clone(nv)
	return changed, nil
}

// Commit copies the positions to the values, returning whether any value changed.
func (hs *HandleSet) Commit() bool {
	if slices.Equal(hs.values, hs.positions) {
		return false
	}
	copy(hs.values, hs.positions)
	return true
}

// OffsetAll moves every handle by offset from the reference positions
// ref, or from the current positions if ref is nil. If rigid is set,
// the offset is first limited so that the lowest and highest handles
// stay in range, which preserves the distance between them; otherwise
// each handle is clamped on its own.
func (hs *HandleSet) OffsetAll(offset float64, rigid bool, ref []float64) {
	hs.OffsetSegment(0, len(hs.positions)-1, offset, rigid, ref)
}

// OffsetSegment moves handles first through last by offset from the
// reference positions, in the same way as [HandleSet.OffsetAll]. When
// rigid, the moving handles also stay a single step away from the
// handles outside the segment.
func (hs *HandleSet) OffsetSegment(first, last int, offset float64, rigid bool, ref []float64) {
	if ref == nil {
		ref = hs.positions
	}
	offset = hs.rng.Round(offset)
	if rigid {
		step := hs.rng.singleStep
		lo, hi := hs.rng.minimum, hs.rng.maximum
		if first > 0 {
			lo = max(lo, ref[first-1]+step)
		}
		if last < len(ref)-1 {
			hi = min(hi, ref[last+1]-step)
		}
		switch {
		case offset > 0 && ref[last]+offset > hi:
			offset = max(0, hi-ref[last])
		case offset < 0 && ref[first]+offset < lo:
			offset = min(0, lo-ref[first])
		}
	}
	np := slices.Clone(hs.positions)
	for i := first; i <= last; i++ {
		np[i] = GuardedAdd(ref[i], offset, hs.rng.minimum, hs.rng.maximum)
	}
	hs.SetPositions(np)
}

// SpreadAll scales the distances of all handles from the midpoint of
// the lowest and highest handle by gain, or by 1/gain if shrink is set.
func (hs *HandleSet) SpreadAll(shrink bool, gain float64, ref []float64) {
	if ref == nil {
		ref = hs.positions
	}
	if shrink {
		gain = 1 / gain
	}
	center := (ref[0] + ref[len(ref)-1]) / 2
	np := make([]float64, len(ref))
	for i, p := range ref {
		np[i] = (p-center)*gain + center
	}
	hs.SetPositions(np)
}

// CanMove returns whether any handle has room to move in the direction
// of the sign of delta.
func (hs *HandleSet) CanMove(delta float64) bool {
	switch {
	case delta > 0:
		return hs.positions[len(hs.positions)-1] < hs.rng.maximum
	case delta < 0:
		return hs.positions[0] > hs.rng.minimum
	}
	return false
}

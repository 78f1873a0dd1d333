// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"

	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
)

// MaxDisplay is the size of the integer display space that values
// are quantized into before being mapped to pixels, which keeps
// the pixel arithmetic well inside the range of an int32 for any
// slider range.
const MaxDisplay = 5000

// PixelMapper converts between domain values, the integer display
// space and pixel offsets along a track.
type PixelMapper struct {
	Range *RangeModel
}

// ToDisplaySpace returns the given value in display space, in [0, MaxDisplay].
// For a degenerate range it returns the minimum.
func (pm PixelMapper) ToDisplaySpace(v float64) int {
	rm := pm.Range
	span := rm.Span()
	if span == 0 {
		return int(rm.minimum)
	}
	d := math.Floor(math.Min(math.MaxInt32, pm.fraction(v, MaxDisplay)))
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return int(d)
}

// FromDisplaySpace returns the domain value for the given display coordinate.
func (pm PixelMapper) FromDisplaySpace(d int) float64 {
	return pm.interpolate(float64(d), MaxDisplay)
}

// fraction returns (v - minimum) * num / (maximum - minimum). The
// operands are halved first so that ranges wider than the largest
// float64 do not overflow; halving is exact, so the result is the same
// for all other ranges.
func (pm PixelMapper) fraction(v, num float64) float64 {
	rm := pm.Range
	return mulDiv(v/2-rm.minimum/2, num, rm.maximum/2-rm.minimum/2)
}

// interpolate returns the value num/den of the way from the minimum
// to the maximum.
func (pm PixelMapper) interpolate(num, den float64) float64 {
	rm := pm.Range
	if span := rm.Span(); !math.IsInf(span, 0) {
		return rm.minimum + mulDiv(num, span, den)
	}
	half := mulDiv(num, rm.maximum/2-rm.minimum/2, den)
	return rm.minimum + half + half
}

// PixelToValue returns the value at the given pixel coordinate along a
// track that starts at origin and is span pixels long. Positions outside
// the track, and tracks of no length, saturate to a bound of the range.
// The result is not rounded.
func (pm PixelMapper) PixelToValue(pixel, origin, span float64, inverted bool) float64 {
	rm := pm.Range
	lo, hi := rm.minimum, rm.maximum
	if inverted {
		lo, hi = hi, lo
	}
	pos := pixel - origin
	if span <= 0 || pos <= 0 || math.IsNaN(pos) {
		return lo
	}
	if pos >= span {
		return hi
	}
	if inverted {
		return pm.interpolate(span-pos, span)
	}
	return pm.interpolate(pos, span)
}

// ValueToPixel returns the pixel offset from the start of a track of the
// given span at which the given value is drawn. The value is quantized
// through display space first.
func (pm PixelMapper) ValueToPixel(v, span float64, inverted bool) float64 {
	if span <= 0 || pm.Range.Span() == 0 {
		return 0
	}
	p := float64(pm.ToDisplaySpace(pm.Range.Bound(v))) * span / MaxDisplay
	if inverted {
		return span - p
	}
	return p
}

// mulDiv returns x * num / den, dividing first if the
// product would overflow.
func mulDiv(x, num, den float64) float64 {
	if p := x * num; !math.IsInf(p, 0) {
		return p / den
	}
	return x / den * num
}

// GuardedAdd returns value + delta, saturating to min or max if the
// addition overflows in the direction of delta.
func GuardedAdd(value, delta, min, max float64) float64 {
	nv := value + delta
	switch {
	case delta > 0 && (nv < value || math.IsInf(nv, 1)):
		return max
	case delta < 0 && (nv > value || math.IsInf(nv, -1)):
		return min
	}
	return nv
}

// Track is the pixel geometry along which handles slide.
type Track struct {

	// Dim is the axis along which the track runs.
	Dim math32.Dims

	// Origin is the pixel coordinate of the minimum handle center.
	Origin float64

	// Span is the length of the track in pixels, which is the
	// groove length minus the handle length.
	Span float64

	// Inverted is whether values increase against the pixel axis.
	Inverted bool
}

// NewTrack returns the track for the given geometry and orientation.
// Vertical sliders increase upward unless invertedAppearance is set,
// and horizontal sliders increase to the right unless it is set.
func NewTrack(g Geometry, orient styles.Orientations, invertedAppearance bool) Track {
	d := orient.Dim()
	gr := g.Groove()
	hl := g.HandleSize().Dim(d)
	return Track{
		Dim:      d,
		Origin:   float64(gr.Min.Dim(d) + hl/2),
		Span:     float64(gr.Size().Dim(d) - hl),
		Inverted: invertedAppearance != (orient == styles.Vertical),
	}
}

// Pick returns the coordinate of the given point along the track.
func (t Track) Pick(pt math32.Vector2) float64 {
	return float64(pt.Dim(t.Dim))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"
	"testing"

	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
	"github.com/stretchr/testify/assert"
)

func TestDisplaySpace(t *testing.T) {
	rm := NewRangeModel(nil)
	rm.SetRange(-1e305, 1e305)
	pm := PixelMapper{Range: rm}
	assert.Equal(t, 0, pm.ToDisplaySpace(-1e305))
	assert.Equal(t, MaxDisplay, pm.ToDisplaySpace(1e305))
	assert.Equal(t, MaxDisplay/2, pm.ToDisplaySpace(0))

	rm.SetRange(0, 100)
	assert.Equal(t, 1500, pm.ToDisplaySpace(30))
	assert.Equal(t, 30.0, pm.FromDisplaySpace(1500))

	rm.SetRange(7, 7)
	assert.Equal(t, 7, pm.ToDisplaySpace(7))
}

func TestPixelToValue(t *testing.T) {
	rm := NewRangeModel(nil)
	rm.SetRange(10, 20)
	pm := PixelMapper{Range: rm}

	assert.Equal(t, 10.0, pm.PixelToValue(-5, 0, 100, false))
	assert.Equal(t, 20.0, pm.PixelToValue(-5, 0, 100, true))
	assert.Equal(t, 20.0, pm.PixelToValue(150, 0, 100, false))
	assert.Equal(t, 10.0, pm.PixelToValue(150, 0, 100, true))
	assert.Equal(t, 10.0, pm.PixelToValue(50, 0, 0, false))
	assert.Equal(t, 10.0, pm.PixelToValue(50, 0, -3, false))
	assert.Equal(t, 15.0, pm.PixelToValue(60, 10, 100, false))
	assert.Equal(t, 12.5, pm.PixelToValue(35, 10, 100, false))
	assert.Equal(t, 17.5, pm.PixelToValue(35, 10, 100, true))
}

func TestPixelRoundTrip(t *testing.T) {
	rm := NewRangeModel(nil)
	pm := PixelMapper{Range: rm}
	const origin, span = 7.0, 200.0
	quantum := rm.Span()/MaxDisplay + 1e-9
	for _, inverted := range []bool{false, true} {
		for v := 0.0; v <= 99; v += 0.37 {
			px := pm.ValueToPixel(v, span, inverted)
			back := pm.PixelToValue(origin+px, origin, span, inverted)
			assert.InDelta(t, v, back, quantum, "v=%g inverted=%v", v, inverted)
		}
	}
	assert.Equal(t, 0.0, pm.ValueToPixel(50, 0, false))
}

func TestFullFloatRange(t *testing.T) {
	rm := NewRangeModel(nil)
	rm.SetRange(-math.MaxFloat64, math.MaxFloat64)
	pm := PixelMapper{Range: rm}
	assert.Equal(t, 0, pm.ToDisplaySpace(-math.MaxFloat64))
	assert.Equal(t, 2500, pm.ToDisplaySpace(0))
	assert.Equal(t, 5000, pm.ToDisplaySpace(math.MaxFloat64))
	assert.Equal(t, 0.0, pm.FromDisplaySpace(2500))
	assert.Equal(t, math.MaxFloat64, pm.FromDisplaySpace(MaxDisplay))
	assert.Equal(t, 0.0, pm.PixelToValue(50, 0, 100, false))
	assert.Equal(t, 0.0, pm.PixelToValue(50, 0, 100, true))
	assert.InEpsilon(t, math.MaxFloat64/2, pm.PixelToValue(75, 0, 100, false), 1e-12)
	assert.InEpsilon(t, math.MaxFloat64/2, pm.PixelToValue(25, 0, 100, true), 1e-12)

	quantum := math.MaxFloat64 / 2500
	for _, inverted := range []bool{false, true} {
		for _, v := range []float64{-math.MaxFloat64, -math.MaxFloat64 / 3, 0, math.MaxFloat64 / 4, math.MaxFloat64} {
			px := pm.ValueToPixel(v, MaxDisplay, inverted)
			back := pm.PixelToValue(px, 0, MaxDisplay, inverted)
			assert.False(t, math.IsInf(back, 0) || math.IsNaN(back), "v=%g inverted=%v", v, inverted)
			assert.InDelta(t, v, back, quantum, "v=%g inverted=%v", v, inverted)
		}
	}
}

func TestGuardedAdd(t *testing.T) {
	assert.Equal(t, 5.0, GuardedAdd(2, 3, 0, 10))
	assert.Equal(t, -1.0, GuardedAdd(2, -3, 0, 10))
	assert.Equal(t, 42.0, GuardedAdd(math.MaxFloat64, math.MaxFloat64, -42, 42))
	assert.Equal(t, -42.0, GuardedAdd(-math.MaxFloat64, -math.MaxFloat64, -42, 42))
}

func TestNewTrack(t *testing.T) {
	g := &StaticGeometry{GrooveBox: math32.B2(10, 0, 120, 20), Handle: math32.Vec2(10, 20)}
	tr := NewTrack(g, styles.Horizontal, false)
	assert.Equal(t, math32.X, tr.Dim)
	assert.Equal(t, 15.0, tr.Origin)
	assert.Equal(t, 100.0, tr.Span)
	assert.False(t, tr.Inverted)
	assert.True(t, NewTrack(g, styles.Horizontal, true).Inverted)

	g = &StaticGeometry{GrooveBox: math32.B2(0, 0, 20, 110), Handle: math32.Vec2(20, 10)}
	tr = NewTrack(g, styles.Vertical, false)
	assert.Equal(t, math32.Y, tr.Dim)
	assert.Equal(t, 5.0, tr.Origin)
	assert.Equal(t, 100.0, tr.Span)
	assert.True(t, tr.Inverted)
	assert.False(t, NewTrack(g, styles.Vertical, true).Inverted)
	assert.Equal(t, 33.0, tr.Pick(math32.Vec2(4, 33)))
}

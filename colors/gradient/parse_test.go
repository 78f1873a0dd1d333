// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/rangeslider/colors"
	"cogentcore.org/rangeslider/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStringLinear(t *testing.T) {
	img, err := FromString("qlineargradient(x1:0,y1:0,x2:1,y2:1,stop:0 #000,stop:1 #fff)")
	require.NoError(t, err)
	l, ok := img.(*Linear)
	require.True(t, ok, "expected *Linear, got %T", img)
	assert.Equal(t, math32.Vec2(0, 0), l.Start)
	assert.Equal(t, math32.Vec2(1, 1), l.End)
	assert.Equal(t, Pad, l.Spread)
	require.Len(t, l.Stops, 2)
	assert.Equal(t, float32(0), l.Stops[0].Pos)
	assert.Equal(t, colors.Black, l.Stops[0].Color)
	assert.Equal(t, float32(1), l.Stops[1].Pos)
	assert.Equal(t, colors.White, l.Stops[1].Color)
}

func TestFromStringLinearSpacedMultiStop(t *testing.T) {
	str := "qlineargradient(spread:reflect, x1: 0, y1: 0.5, x2: 1, y2: 0.5, stop: 0 rgba(255, 0, 0, 255), stop: 0.4 green, stop: 1 #0000ff);"
	img, err := FromString(str)
	require.NoError(t, err)
	l := img.(*Linear)
	assert.Equal(t, Reflect, l.Spread)
	require.Len(t, l.Stops, 3)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, l.Stops[0].Color)
	assert.Equal(t, float32(0.4), l.Stops[1].Pos)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, l.Stops[2].Color)
}

func TestFromStringRadial(t *testing.T) {
	img, err := FromString("QRadialGradient(cx:0.5, cy:0.5, radius:0.8, fx:0.4, fy:0.4, stop:0 white, stop:1 black)")
	require.NoError(t, err)
	r, ok := img.(*Radial)
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(0.5, 0.5), r.Center)
	assert.Equal(t, math32.Vec2(0.4, 0.4), r.Focal)
	assert.Equal(t, float32(0.8), r.Radius)
	require.Len(t, r.Stops, 2)
}

func TestFromStringSolid(t *testing.T) {
	img, err := FromString("#3B73C5")
	require.NoError(t, err)
	u, ok := img.(*image.Uniform)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x3b, 0x73, 0xc5, 255}, u.C)
}

func TestFromStringErrors(t *testing.T) {
	for _, str := range []string{
		"not-a-color",
		"qlineargradient(x1:0, y1:0, stop:0 red, stop:1 blue)",
		"qlineargradient(x1:0, y1:0, x2:1, y2:0, stop:0 red)",
		"qlineargradient(x1:0, y1:0, x2:1, y2:0, stop:1 red, stop:0 blue)",
		"qlineargradient(x1:0, y1:0, x2:1, y2:0, stop:0 nocolor, stop:1 blue)",
		"qradialgradient(cx:0.5, cy:0.5, stop:0 red, stop:1 blue)",
	} {
		_, err := FromString(str)
		assert.Error(t, err, str)
	}
}

func TestLinearAt(t *testing.T) {
	l := NewLinear()
	l.AddStop(colors.Black, 0)
	l.AddStop(colors.White, 1)
	l.Update(math32.B2(0, 0, 100, 10))
	assert.Equal(t, colors.AsRGBA(colors.Black), colors.AsRGBA(l.At(-50, 5)))
	assert.Equal(t, colors.AsRGBA(colors.White), colors.AsRGBA(l.At(150, 5)))
	mid := colors.AsRGBA(l.At(49, 5))
	assert.InDelta(t, 127, int(mid.R), 2)
}

func TestSpreads(t *testing.T) {
	b := NewBase()
	b.AddStop(colors.Black, 0)
	b.AddStop(colors.White, 1)
	assert.Equal(t, colors.AsRGBA(colors.White), colors.AsRGBA(b.GetColor(1.5)))
	b.Spread = Repeat
	assert.Equal(t, colors.AsRGBA(colors.Blend(50, colors.Black, colors.White)), colors.AsRGBA(b.GetColor(1.5)))
	b.Spread = Reflect
	assert.Equal(t, colors.AsRGBA(colors.Blend(75, colors.Black, colors.White)), colors.AsRGBA(b.GetColor(1.25)))
}

func TestRadialAt(t *testing.T) {
	r := NewRadial()
	r.AddStop(colors.White, 0)
	r.AddStop(colors.Black, 1)
	r.Update(math32.B2(0, 0, 100, 100))
	assert.Equal(t, colors.AsRGBA(colors.Black), colors.AsRGBA(r.At(0, 0)))
	center := colors.AsRGBA(r.At(50, 50))
	assert.Greater(t, int(center.R), 245)
}

func TestCopyOf(t *testing.T) {
	img, err := FromString("qlineargradient(x1:0,y1:0,x2:1,y2:0,stop:0 #000,stop:1 #fff)")
	require.NoError(t, err)
	g := img.(*Linear)
	box := g.Box
	cp := CopyImage(g).(*Linear)
	assert.NotSame(t, g, cp)
	cp.Update(math32.B2(3, 4, 10, 10))
	cp.Stops[0].Pos = 0.5
	assert.Equal(t, box, g.Box)
	assert.Equal(t, float32(0), g.Stops[0].Pos)
	assert.Equal(t, g.End, cp.End)

	r := NewRadial()
	r.AddStop(colors.Black, 0)
	rc := CopyOf(r).(*Radial)
	rc.Stops[0].Pos = 1
	assert.Equal(t, float32(0), r.Stops[0].Pos)

	u := image.NewUniform(colors.Black)
	assert.Same(t, u, CopyImage(u))
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

// Package gradient provides the linear and radial color gradients
// used as slider bar and handle brushes.
package gradient

import (
	"image"
	"image/color"

	"cogentcore.org/rangeslider/colors"
	"cogentcore.org/rangeslider/math32"
)

// Gradient is the interface that all gradient types satisfy.
type Gradient interface {
	image.Image

	// AsBase returns the [Base] of the gradient
	AsBase() *Base

	// Update sets the bounding box of the object being filled.
	// Gradient coordinates are relative to this box, in the
	// normalized range of 0 to 1. It must be called before
	// the gradient is sampled with At.
	Update(box math32.Box2)
}

// Base contains the data and logic common to all gradient types.
type Base struct {

	// the stops for the gradient; use AddStop to add stops
	Stops []Stop

	// the spread method used for the gradient if it stops before the end
	Spread Spreads

	// the bounding box of the object with the gradient
	Box math32.Box2
}

// Stop represents a single stop in a gradient
type Stop struct {

	// the color of the stop
	Color color.Color

	// the position of the stop between 0 and 1
	Pos float32
}

// Spreads are the spread methods used when a gradient reaches
// its end but the object isn't yet fully filled.
type Spreads int32

const (
	// Pad indicates to have the final color of the gradient fill
	// the object beyond the end of the gradient.
	Pad Spreads = iota
	// Reflect indicates to have a gradient repeat in reverse order
	// (offset 1 to 0) to fully fill an object beyond the end of the gradient.
	Reflect
	// Repeat indicates to have a gradient continue in its original order
	// (offset 0 to 1) by jumping back to the start.
	Repeat
)

func (s Spreads) String() string {
	switch s {
	case Reflect:
		return "reflect"
	case Repeat:
		return "repeat"
	}
	return "pad"
}

// NewBase returns a new [Base] with default values. It should
// only be used in the New functions of gradient types.
func NewBase() Base {
	return Base{
		Box: math32.B2(0, 0, 100, 100),
	}
}

// AddStop adds a new stop with the given color and position to the gradient.
func (b *Base) AddStop(c color.Color, pos float32) {
	b.Stops = append(b.Stops, Stop{c, pos})
}

// AsBase returns the [Base] of the gradient
func (b *Base) AsBase() *Base {
	return b
}

// ColorModel returns the color model used by the gradient image, which is [color.RGBAModel]
func (b *Base) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the bounds of the gradient image, which are infinite.
func (b *Base) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// normalize returns the given point in box-relative 0-1 coordinates.
func (b *Base) normalize(x, y int) math32.Vector2 {
	sz := b.Box.Size()
	pt := math32.Vec2(float32(x)+0.5, float32(y)+0.5).Sub(b.Box.Min)
	if sz.X > 0 {
		pt.X /= sz.X
	}
	if sz.Y > 0 {
		pt.Y /= sz.Y
	}
	return pt
}

// GetColor returns the color at the given normalized position along the
// gradient's stops using its spread method. Adjacent stops are blended in RGB.
func (b *Base) GetColor(pos float32) color.Color {
	d := len(b.Stops)
	if d == 0 {
		return colors.Transparent
	}
	switch b.Spread {
	case Repeat:
		pos -= math32.Floor(pos)
	case Reflect:
		pos -= 2 * math32.Floor(pos/2)
		if pos > 1 {
			pos = 2 - pos
		}
	}
	if pos <= b.Stops[0].Pos {
		return b.Stops[0].Color
	}
	for i := 1; i < d; i++ {
		s1, s2 := b.Stops[i-1], b.Stops[i]
		if pos > s2.Pos {
			continue
		}
		if s2.Pos == s1.Pos {
			return s2.Color
		}
		tp := (pos - s1.Pos) / (s2.Pos - s1.Pos)
		return colors.Blend(100*tp, s1.Color, s2.Color)
	}
	return b.Stops[d-1].Color
}

// CopyFrom copies from the given gradient (cp) onto this gradient (g),
// making new copies of the stops instead of re-using pointers.
// It assumes the gradients are of the same type.
func CopyFrom(g Gradient, cp Gradient) {
	switch g := g.(type) {
	case *Linear:
		*g = *cp.(*Linear)
	case *Radial:
		*g = *cp.(*Radial)
	}
	g.AsBase().CopyStopsFrom(cp.AsBase())
}

// CopyOf returns a copy of the given gradient, making copies of the stops
// instead of re-using pointers.
func CopyOf(g Gradient) Gradient {
	var res Gradient
	switch g := g.(type) {
	case *Linear:
		res = &Linear{}
		CopyFrom(res, g)
	case *Radial:
		res = &Radial{}
		CopyFrom(res, g)
	}
	return res
}

// CopyImage returns a copy of the given image if it is a [Gradient],
// and otherwise the image itself, which is treated as immutable.
func CopyImage(img image.Image) image.Image {
	if g, ok := img.(Gradient); ok {
		return CopyOf(g)
	}
	return img
}

// CopyStopsFrom copies the base gradient stops from the given base gradient
func (b *Base) CopyStopsFrom(cp *Base) {
	b.Stops = make([]Stop, len(cp.Stops))
	copy(b.Stops, cp.Stops)
}

// Linear represents a linear gradient. It implements the [image.Image] interface.
type Linear struct {
	Base

	// the starting point of the gradient (x1 and y1 in SVG)
	Start math32.Vector2

	// the ending point of the gradient (x2 and y2 in SVG)
	End math32.Vector2
}

var _ Gradient = &Linear{}

// NewLinear returns a new left-to-right [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		End:  math32.Vec2(1, 0),
	}
}

// Update sets the bounding box of the object being filled.
func (l *Linear) Update(box math32.Box2) {
	l.Box = box
}

// At returns the color of the linear gradient at the given point
func (l *Linear) At(x, y int) color.Color {
	pt := l.normalize(x, y)
	dir := l.End.Sub(l.Start)
	den := dir.X*dir.X + dir.Y*dir.Y
	if den == 0 {
		return l.GetColor(0)
	}
	rel := pt.Sub(l.Start)
	return l.GetColor((rel.X*dir.X + rel.Y*dir.Y) / den)
}

// Radial represents a radial gradient. It implements the [image.Image] interface.
type Radial struct {
	Base

	// the center point of the gradient (cx and cy in SVG)
	Center math32.Vector2

	// the focal point of the gradient (fx and fy in SVG)
	Focal math32.Vector2

	// the radius of the gradient
	Radius float32
}

var _ Gradient = &Radial{}

// NewRadial returns a new centered [Radial] gradient.
func NewRadial() *Radial {
	return &Radial{
		Base:   NewBase(),
		Center: math32.Vec2(0.5, 0.5),
		Focal:  math32.Vec2(0.5, 0.5),
		Radius: 0.5,
	}
}

// Update sets the bounding box of the object being filled.
func (r *Radial) Update(box math32.Box2) {
	r.Box = box
}

// At returns the color of the radial gradient at the given point.
// The focal point is recorded but the gradient is sampled as if it
// were at the center.
func (r *Radial) At(x, y int) color.Color {
	if r.Radius <= 0 {
		return r.GetColor(1)
	}
	pt := r.normalize(x, y)
	return r.GetColor(pt.DistanceTo(r.Center) / r.Radius)
}

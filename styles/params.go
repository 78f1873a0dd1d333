// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image"

	"cogentcore.org/rangeslider/colors"
	"cogentcore.org/rangeslider/colors/gradient"
	"cogentcore.org/rangeslider/math32"
)

// Params are the resolved rendering parameters of one slider,
// consumed by its renderer.
type Params struct {

	// HorizontalThickness is the groove thickness for horizontal orientation.
	HorizontalThickness float32

	// VerticalThickness is the groove thickness for vertical orientation.
	VerticalThickness float32

	// Thickness is the groove thickness for the resolved orientation.
	Thickness float32

	// TickOffset is the resolved tick offset.
	TickOffset float32

	// Offset is the cross-axis offset of the bar, combining the platform
	// offset (without a stylesheet) and the tick offset for the tick position.
	Offset float32

	// TickBarAlpha is the opacity of the bar when ticks are shown.
	TickBarAlpha float32

	// BarBrush is the bar fill for each palette state: an [image.Uniform]
	// for solid colors or a gradient from the gradient package.
	BarBrush [PaletteStatesN]image.Image

	// BarPen is the outline of the bar, or nil for none.
	BarPen image.Image

	// HandleBrush is the fill of the handles, or nil to
	// leave it to the renderer.
	HandleBrush image.Image

	// HasSheet is whether any stylesheet rule applied to the slider.
	HasSheet bool
}

// Brush returns the bar brush for the given palette state,
// falling back on the active brush.
func (p *Params) Brush(state PaletteStates) image.Image {
	if state >= 0 && state < PaletteStatesN && p.BarBrush[state] != nil {
		return p.BarBrush[state]
	}
	if p.BarBrush[Active] != nil {
		return p.BarBrush[Active]
	}
	return image.NewUniform(colors.Transparent)
}

// Copy returns a copy of the parameters with copies of any gradients,
// so that updating the box of a gradient in the copy does not
// affect the original.
func (p *Params) Copy() Params {
	res := *p
	for i, b := range p.BarBrush {
		res.BarBrush[i] = gradient.CopyImage(b)
	}
	res.BarPen = gradient.CopyImage(p.BarPen)
	res.HandleBrush = gradient.CopyImage(p.HandleBrush)
	return res
}

// Brush is a fill with an overall opacity.
type Brush struct {
	Image   image.Image
	Opacity float32
}

// Update sets the box that a gradient fill is relative to.
func (b *Brush) Update(box math32.Box2) {
	if g, ok := b.Image.(gradient.Gradient); ok {
		g.Update(box)
	}
}

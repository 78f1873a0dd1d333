// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"cogentcore.org/rangeslider/math32"
	"cogentcore.org/rangeslider/styles"
)

// StyleSheet returns the stylesheet set on this slider.
func (s *Slider[T]) StyleSheet() string { return s.sheet }

// StyleParent returns the style parent of this slider.
func (s *Slider[T]) StyleParent() styles.Node { return s.parent }

// StyleTypes returns the type names that stylesheet selectors can use
// for this slider: RangeSlider for sliders with more than one handle,
// and Slider for all.
func (s *Slider[T]) StyleTypes() []string {
	if s.Len() > 1 {
		return []string{"RangeSlider", "Slider"}
	}
	return []string{"Slider"}
}

// SetStyleSheet sets the stylesheet of this slider, which takes
// precedence over those of its style ancestors.
func (s *Slider[T]) SetStyleSheet(sheet string) *Slider[T] {
	s.sheet = sheet
	return s
}

// SetStyleParent sets the node whose stylesheets this slider inherits.
func (s *Slider[T]) SetStyleParent(parent styles.Node) *Slider[T] {
	s.parent = parent
	return s
}

// SetResolver sets the style resolver, which holds the application
// stylesheet and the platform defaults. Sliders may share one.
func (s *Slider[T]) SetResolver(r *styles.Resolver) *Slider[T] {
	s.resolver = r
	return s
}

// Resolver returns the style resolver, creating one with the
// [styles.Linux] defaults if none has been set.
func (s *Slider[T]) Resolver() *styles.Resolver {
	if s.resolver == nil {
		s.resolver = styles.NewResolver(styles.DefaultsFor(styles.Linux))
	}
	return s.resolver
}

// SetOverrides sets the explicit rendering parameters of this slider,
// which take precedence over every stylesheet.
func (s *Slider[T]) SetOverrides(ov styles.Overrides) *Slider[T] {
	s.overrides = ov
	return s
}

// Overrides returns the explicit rendering parameters of this slider.
func (s *Slider[T]) Overrides() styles.Overrides {
	return s.overrides
}

// Params returns the resolved rendering parameters of the slider.
// They are recomputed whenever its overrides, or the stylesheet of the
// slider or of any of its style ancestors, have changed.
func (s *Slider[T]) Params() styles.Params {
	return s.Resolver().Resolve(s, &s.overrides, s.e.orient, s.e.ticks)
}

// HandleBox returns the box of handle i, or an empty box
// if there is no geometry.
func (s *Slider[T]) HandleBox(i int) math32.Box2 {
	if s.e.geom == nil {
		return math32.Box2{}
	}
	return s.e.handleBox(i)
}

// BarBox returns the box of the bar: between the centers of the first and
// last handle, or from the minimum to the handle for a single handle slider.
// Across the track it is the resolved thickness, centered on the groove
// and shifted by the resolved offset.
func (s *Slider[T]) BarBox() math32.Box2 {
	e := s.e
	if e.geom == nil {
		return math32.Box2{}
	}
	p := s.Params()
	tr := e.track()
	d, od := tr.Dim, tr.Dim.Other()
	last := e.handleBox(e.handles.Len() - 1).Center().Dim(d)
	var first float32
	if e.handles.Len() > 1 {
		first = e.handleBox(0).Center().Dim(d)
	} else {
		first = float32(tr.Origin + e.mapper.ValueToPixel(e.rng.minimum, tr.Span, tr.Inverted))
	}
	c := e.geom.Groove().Center().Dim(od) + p.Offset
	var b math32.Box2
	b.Min.SetDim(d, min(first, last))
	b.Max.SetDim(d, max(first, last))
	b.Min.SetDim(od, c-p.Thickness/2)
	b.Max.SetDim(od, c+p.Thickness/2)
	return b
}

// BarBrush returns the bar fill for the current palette state, updated to
// the bar box, with the tick bar opacity applied when ticks are shown.
func (s *Slider[T]) BarBrush() styles.Brush {
	p := s.Params()
	br := styles.Brush{Image: p.Brush(s.palette)}
	if s.e.ticks != styles.NoTicks {
		br.Opacity = p.TickBarAlpha
	} else {
		br.Opacity = 1
	}
	br.Update(s.BarBox())
	return br
}

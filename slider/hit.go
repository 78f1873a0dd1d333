// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"

	"cogentcore.org/rangeslider/math32"
)

// Geometry is the pixel layout of a slider, supplied by whatever
// renders it. All boxes are in the coordinate system of the
// pointer events passed to the slider.
type Geometry interface {

	// Bounds returns the full box of the slider, including tick marks.
	Bounds() math32.Box2

	// Groove returns the box of the groove the handles slide along.
	Groove() math32.Box2

	// HandleSize returns the size of one handle.
	HandleSize() math32.Vector2
}

// StaticGeometry is a [Geometry] with fixed boxes.
type StaticGeometry struct {
	BoundsBox math32.Box2
	GrooveBox math32.Box2
	Handle    math32.Vector2
}

func (g *StaticGeometry) Bounds() math32.Box2        { return g.BoundsBox }
func (g *StaticGeometry) Groove() math32.Box2        { return g.GrooveBox }
func (g *StaticGeometry) HandleSize() math32.Vector2 { return g.Handle }

// HitKinds are the kinds of slider controls a point can be over.
type HitKinds int32

const (
	HitNone HitKinds = iota
	HitHandle
	HitBar
	HitGroove
	HitTickmarks
)

var hitKindNames = [...]string{"None", "Handle", "Bar", "Groove", "Tickmarks"}

func (k HitKinds) String() string {
	if k < HitNone || k > HitTickmarks {
		return fmt.Sprintf("HitKinds(%d)", int32(k))
	}
	return hitKindNames[k]
}

// ControlHit identifies the control under a point. Index is the handle
// index for [HitHandle], the bar segment (between handle Index and
// Index+1) for [HitBar], and -1 otherwise.
type ControlHit struct {
	Kind  HitKinds
	Index int
}

// NoHit is the [ControlHit] for a point over nothing.
var NoHit = ControlHit{Kind: HitNone, Index: -1}

func (h ControlHit) String() string {
	switch h.Kind {
	case HitHandle, HitBar:
		return fmt.Sprintf("%v(%d)", h.Kind, h.Index)
	}
	return h.Kind.String()
}

// handleBox returns the box of handle i.
func (e *engine) handleBox(i int) math32.Box2 {
	tr := e.track()
	hs := e.geom.HandleSize()
	ctr := e.geom.Groove().Center()
	px := tr.Origin + e.mapper.ValueToPixel(e.handles.Position(i), tr.Span, tr.Inverted)
	ctr.SetDim(tr.Dim, float32(px))
	return math32.B2Center(ctr, hs)
}

// hitTest returns the control under the given point. Handles take
// precedence, then the bar between handles, then the groove and
// finally the tick mark area.
func (e *engine) hitTest(pt math32.Vector2) ControlHit {
	if e.geom == nil {
		return NoHit
	}
	tr := e.track()
	val := e.mapper.PixelToValue(tr.Pick(pt), tr.Origin, tr.Span, tr.Inverted)

	best, bestDist := -1, float32(0)
	for i := 0; i < e.handles.Len(); i++ {
		hb := e.handleBox(i)
		if !hb.ContainsPoint(pt) {
			continue
		}
		d := math32.Abs(pt.Dim(tr.Dim) - hb.Center().Dim(tr.Dim))
		// of coincident handles, take the one that can move toward the point
		if best < 0 || d < bestDist || (d == bestDist && val >= e.handles.Position(i)) {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return ControlHit{Kind: HitHandle, Index: best}
	}

	groove := e.grooveHitBox()
	if groove.ContainsPoint(pt) {
		for seg := 0; seg < e.handles.Len()-1; seg++ {
			if val >= e.handles.Position(seg) && val <= e.handles.Position(seg+1) {
				return ControlHit{Kind: HitBar, Index: seg}
			}
		}
		return ControlHit{Kind: HitGroove, Index: -1}
	}
	if e.ticks != 0 && e.geom.Bounds().ContainsPoint(pt) {
		return ControlHit{Kind: HitTickmarks, Index: -1}
	}
	return NoHit
}

// grooveHitBox returns the groove box, widened across the track
// to the thickness of the handles.
func (e *engine) grooveHitBox() math32.Box2 {
	gr := e.geom.Groove()
	od := e.orient.Dim().Other()
	ht := e.geom.HandleSize().Dim(od)
	if gr.Size().Dim(od) >= ht {
		return gr
	}
	c := gr.Center().Dim(od)
	gr.Min.SetDim(od, c-ht/2)
	gr.Max.SetDim(od, c+ht/2)
	return gr
}

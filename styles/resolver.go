// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/rangeslider/colors"
	"cogentcore.org/rangeslider/colors/gradient"
	"cogentcore.org/rangeslider/logx"
)

// Node is an element of the style cascade: a widget with its
// own stylesheet text and a parent to inherit from.
type Node interface {

	// StyleSheet returns the stylesheet text set directly on this node.
	StyleSheet() string

	// StyleParent returns the parent node, or nil at the root.
	StyleParent() Node

	// StyleTypes returns the type names that selectors may use to
	// restrict rules to this node, most specific first.
	StyleTypes() []string
}

// Overrides are explicit per-instance parameters that take
// precedence over every stylesheet and the platform defaults.
// Nil and empty fields are unset.
type Overrides struct {
	HorizontalThickness *float32
	VerticalThickness   *float32

	// TickOffset has no stylesheet property, so it comes from
	// here or the platform defaults.
	TickOffset *float32

	// Bar is the bar color or gradient text for each palette state.
	Bar [PaletteStatesN]string

	// BarPen is the bar outline color text.
	BarPen string
}

// Resolver resolves [Params] for slider nodes from, in priority
// order, the given per-instance [Overrides], the stylesheet cascade (application sheet,
// then each ancestor from the root down, then the node itself, with
// later rules winning) and its [PlatformDefaults]. Text that cannot
// be parsed falls back to the platform default for the same role
// and is never reported to the caller.
type Resolver struct {

	// Platform holds the defaults used when nothing else applies.
	Platform PlatformDefaults

	appSheet string

	// cache of the last resolution
	cacheKey string
	cache    Params
	cached   bool
}

// NewResolver returns a new resolver using a copy of the given defaults.
func NewResolver(pd PlatformDefaults) *Resolver {
	return &Resolver{Platform: pd.Clone()}
}

// SetAppSheet sets the application-wide stylesheet, which is
// the lowest-priority sheet in the cascade.
func (r *Resolver) SetAppSheet(text string) {
	r.appSheet = text
}

// AppSheet returns the application-wide stylesheet.
func (r *Resolver) AppSheet() string {
	return r.appSheet
}

// Invalidate clears the cached resolution, forcing the next
// [Resolver.Resolve] to recompute. It must be called after
// changing [Resolver.Platform] in place.
func (r *Resolver) Invalidate() {
	r.cached = false
}

// Cascade returns the concatenated stylesheet text that applies to
// the given node: the application sheet, then each ancestor from
// the root down, then the node itself.
func (r *Resolver) Cascade(n Node) string {
	var sheets []string
	for p := n; p != nil; p = p.StyleParent() {
		if s := p.StyleSheet(); s != "" {
			sheets = append(sheets, s)
		}
	}
	if r.appSheet != "" {
		sheets = append(sheets, r.appSheet)
	}
	var sb strings.Builder
	for i := len(sheets) - 1; i >= 0; i-- {
		sb.WriteString(sheets[i])
		sb.WriteString("\n")
	}
	return sb.String()
}

// Resolve returns the parameters for the given node with the given
// overrides (nil for none), orientation and tick position. The result
// is cached until any of these or the cascade text change, or
// [Resolver.Invalidate] is called. Each call returns its own copies
// of any gradients, which the caller may update freely.
func (r *Resolver) Resolve(n Node, ov *Overrides, orient Orientations, ticks TickPositions) Params {
	text := r.Cascade(n)
	var types []string
	if n != nil {
		types = n.StyleTypes()
	}
	key := fmt.Sprintf("%s|%d|%s|%s|%s", orient, ticks, ov.key(), strings.Join(types, ","), text)
	if r.cached && key == r.cacheKey {
		return r.cache.Copy()
	}
	if ov == nil {
		ov = &Overrides{}
	}
	p := r.resolve(text, types, ov, orient, ticks)
	r.cacheKey, r.cache, r.cached = key, p, true
	return p.Copy()
}

// key returns a string that identifies the set overrides.
func (o *Overrides) key() string {
	if o == nil {
		return ""
	}
	f := func(v *float32) string {
		if v == nil {
			return "-"
		}
		return strconv.FormatFloat(float64(*v), 'g', -1, 32)
	}
	return fmt.Sprintf("%s,%s,%s,%q,%q", f(o.HorizontalThickness), f(o.VerticalThickness), f(o.TickOffset), o.Bar, o.BarPen)
}

// declared holds the raw values collected from the cascade.
type declared struct {
	hThick, vThick *float32
	bar            [PaletteStatesN]string
	pen            string
	handle         string
	matched        bool
}

func (r *Resolver) resolve(text string, types []string, ov *Overrides, orient Orientations, ticks TickPositions) Params {
	var dc declared
	if strings.TrimSpace(text) != "" {
		rules, err := ParseSheet(text)
		if err != nil {
			slog.Warn("styles: ignoring unparseable stylesheet", "err", err)
		}
		for i := range rules {
			applyRule(&rules[i], types, &dc)
		}
	}

	pd := &r.Platform
	p := Params{
		HorizontalThickness: pick(ov.HorizontalThickness, dc.hThick, pd.HorizontalThickness),
		VerticalThickness:   pick(ov.VerticalThickness, dc.vThick, pd.VerticalThickness),
		TickOffset:          pick(ov.TickOffset, nil, pd.TickOffset),
		TickBarAlpha:        pd.TickBarAlpha,
		HasSheet:            dc.matched,
	}
	if orient == Vertical {
		p.Thickness = p.VerticalThickness
	} else {
		p.Thickness = p.HorizontalThickness
	}
	if !p.HasSheet {
		if orient == Vertical {
			p.Offset += pd.VOffset
		} else {
			p.Offset += pd.HOffset
		}
	}
	switch {
	case ticks&TicksAbove != 0:
		p.Offset += p.TickOffset
	case ticks&TicksBelow != 0:
		p.Offset -= p.TickOffset
	}

	for st := Active; st < PaletteStatesN; st++ {
		txt := dc.bar[st]
		if ov.Bar[st] != "" {
			txt = ov.Bar[st]
		}
		p.BarBrush[st] = r.barBrush(txt, st)
	}
	pen := dc.pen
	if ov.BarPen != "" {
		pen = ov.BarPen
	}
	p.BarPen = r.brushOr(pen, pd.BarPen, "bar pen")
	if dc.handle != "" {
		p.HandleBrush = r.brushOr(dc.handle, "", "handle")
	}
	return p
}

func pick(override, declared *float32, def float32) float32 {
	if override != nil {
		return *override
	}
	if declared != nil {
		return *declared
	}
	return def
}

// applyRule records the declarations of the given rule
// that this package interprets; all others are ignored.
func applyRule(rl *Rule, types []string, dc *declared) {
	sel := &rl.Selector
	if sel.Control == UnknownControl || !sel.MatchesType(types...) {
		return
	}
	dc.matched = true
	switch sel.Control {
	case Groove:
		horiz, vert := sel.Has("horizontal"), sel.Has("vertical")
		if !vert {
			if v, ok := lengthValue(rl, "height"); ok {
				dc.hThick = &v
			}
		}
		if !horiz {
			if v, ok := lengthValue(rl, "width"); ok {
				dc.vThick = &v
			}
		}
	case Bar:
		if bg, ok := backgroundValue(rl); ok {
			states := barStates(sel)
			for _, st := range states {
				dc.bar[st] = bg
			}
		}
		if bc, ok := rl.Value("border-color"); ok {
			dc.pen = bc
		} else if b, ok := rl.Value("border"); ok {
			// border: 1px solid <color>
			if f := strings.Fields(b); len(f) > 0 {
				dc.pen = f[len(f)-1]
			}
		}
	case Handle:
		if bg, ok := backgroundValue(rl); ok {
			dc.handle = bg
		}
	}
}

func lengthValue(rl *Rule, property string) (float32, bool) {
	val, ok := rl.Value(property)
	if !ok {
		return 0, false
	}
	v, err := ParseLength(val)
	if err != nil {
		logx.PrintfDebug("styles: ignoring %s: %v", property, err)
		return 0, false
	}
	return v, true
}

func backgroundValue(rl *Rule) (string, bool) {
	if v, ok := rl.Value("background-color"); ok {
		return v, true
	}
	return rl.Value("background")
}

// barStates returns the palette states that a bar selector applies to.
func barStates(sel *Selector) []PaletteStates {
	var states []PaletteStates
	for st := Active; st < PaletteStatesN; st++ {
		if sel.Has(st.String()) {
			states = append(states, st)
		}
	}
	if len(states) == 0 {
		return []PaletteStates{Active, Inactive, Disabled}
	}
	return states
}

// barBrush parses the given bar text for the given state,
// falling back on the platform default for that state.
func (r *Resolver) barBrush(txt string, st PaletteStates) image.Image {
	if txt != "" {
		img, err := gradient.FromString(txt)
		if err == nil {
			return img
		}
		logx.PrintfDebug("styles: using platform %s bar color: %v", st, err)
	}
	pd := &r.Platform
	if img, err := gradient.FromString(pd.Bar(st)); err == nil {
		return img
	}
	// no usable platform color for this state: derive it from active
	active, err := gradient.FromString(pd.BarActive)
	if err != nil {
		return image.NewUniform(colors.Transparent)
	}
	u, ok := active.(*image.Uniform)
	if !ok || st != Disabled {
		return active
	}
	return image.NewUniform(colors.Desaturate(u.C, 0.8))
}

// brushOr parses txt, falling back on def, and returns nil if
// neither is usable.
func (r *Resolver) brushOr(txt, def, role string) image.Image {
	for _, s := range []string{txt, def} {
		if s == "" {
			continue
		}
		img, err := gradient.FromString(s)
		if err == nil {
			return img
		}
		logx.PrintfDebug("styles: ignoring %s %q: %v", role, s, err)
	}
	return nil
}

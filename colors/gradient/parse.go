// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/rangeslider/colors"
	"cogentcore.org/rangeslider/math32"
)

const num = `([-+]?\d*\.?\d+)`

var (
	// spread:pad, ... is optional and may precede the coordinates
	spreadGrammar = `(?:spread\s*:\s*(pad|reflect|repeat)\s*,\s*)?`

	linearGrammar = regexp.MustCompile(`(?is)^qlineargradient\(\s*` + spreadGrammar +
		`x1\s*:\s*` + num + `\s*,\s*y1\s*:\s*` + num + `\s*,\s*` +
		`x2\s*:\s*` + num + `\s*,\s*y2\s*:\s*` + num + `\s*,\s*` +
		`(stop\s*:.*)\)\s*;?$`)

	radialGrammar = regexp.MustCompile(`(?is)^qradialgradient\(\s*` + spreadGrammar +
		`cx\s*:\s*` + num + `\s*,\s*cy\s*:\s*` + num + `\s*,\s*` +
		`radius\s*:\s*` + num + `\s*,\s*` +
		`fx\s*:\s*` + num + `\s*,\s*fy\s*:\s*` + num + `\s*,\s*` +
		`(stop\s*:.*)\)\s*;?$`)

	stopGrammar = regexp.MustCompile(`(?i)stop\s*:\s*` + num + `\s+(rgba?\([^)]*\)|[^,\s)]+)\s*(?:,|$)`)
)

// FromString parses the given color or gradient string and returns the
// resulting image. Solid colors (see [colors.FromString]) are returned as
// [image.Uniform]. Gradients use the qlineargradient and qradialgradient
// grammars:
//
//	qlineargradient(x1:0, y1:0, x2:1, y2:0, stop:0 #000, stop:1 #fff)
//	qradialgradient(cx:0.5, cy:0.5, radius:0.5, fx:0.5, fy:0.5, stop:0 red, stop:1 blue)
//
// both of which may start with an optional spread:pad|reflect|repeat.
// There must be at least two stops.
func FromString(str string) (image.Image, error) {
	str = strings.TrimSpace(str)
	lstr := strings.ToLower(str)
	switch {
	case strings.HasPrefix(lstr, "qlineargradient"):
		return parseLinear(str)
	case strings.HasPrefix(lstr, "qradialgradient"):
		return parseRadial(str)
	}
	c, err := colors.FromString(str)
	if err != nil {
		return nil, err
	}
	return image.NewUniform(c), nil
}

func parseLinear(str string) (*Linear, error) {
	m := linearGrammar.FindStringSubmatch(str)
	if m == nil {
		return nil, fmt.Errorf("gradient: invalid linear gradient %q", str)
	}
	l := NewLinear()
	l.Spread = parseSpread(m[1])
	coords, err := parseNums(m[2:6])
	if err != nil {
		return nil, err
	}
	l.Start = math32.Vec2(coords[0], coords[1])
	l.End = math32.Vec2(coords[2], coords[3])
	if err := l.parseStops(m[6]); err != nil {
		return nil, fmt.Errorf("gradient: %q: %w", str, err)
	}
	return l, nil
}

func parseRadial(str string) (*Radial, error) {
	m := radialGrammar.FindStringSubmatch(str)
	if m == nil {
		return nil, fmt.Errorf("gradient: invalid radial gradient %q", str)
	}
	r := NewRadial()
	r.Spread = parseSpread(m[1])
	coords, err := parseNums(m[2:7])
	if err != nil {
		return nil, err
	}
	r.Center = math32.Vec2(coords[0], coords[1])
	r.Radius = coords[2]
	r.Focal = math32.Vec2(coords[3], coords[4])
	if err := r.parseStops(m[7]); err != nil {
		return nil, fmt.Errorf("gradient: %q: %w", str, err)
	}
	return r, nil
}

func parseSpread(s string) Spreads {
	switch strings.ToLower(s) {
	case "reflect":
		return Reflect
	case "repeat":
		return Repeat
	}
	return Pad
}

func parseNums(strs []string) ([]float32, error) {
	res := make([]float32, len(strs))
	for i, s := range strs {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("gradient: invalid coordinate %q: %w", s, err)
		}
		res[i] = float32(f)
	}
	return res, nil
}

// parseStops parses the comma-separated stop list into b.Stops.
// Stops must be given in non-decreasing order of position.
func (b *Base) parseStops(list string) error {
	ms := stopGrammar.FindAllStringSubmatch(list, -1)
	if len(ms) < 2 {
		return fmt.Errorf("need at least two color stops, got %d", len(ms))
	}
	b.Stops = nil
	prev := float32(0)
	for _, m := range ms {
		pos, err := strconv.ParseFloat(m[1], 32)
		if err != nil {
			return fmt.Errorf("invalid stop position %q: %w", m[1], err)
		}
		p := math32.Clamp(float32(pos), 0, 1)
		if p < prev {
			return fmt.Errorf("stop position %v is before previous stop %v", p, prev)
		}
		prev = p
		c, err := colors.FromString(m[2])
		if err != nil {
			return err
		}
		b.AddStop(c, p)
	}
	return nil
}

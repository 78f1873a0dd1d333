// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing and manipulation of the solid colors
// used for slider bars, pens and handles.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/rangeslider/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// Transparent is fully transparent black.
	Transparent = color.RGBA{}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		if strings.EqualFold(name, "transparent") {
			return Transparent, nil
		}
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts hex values (#rgb, #rrggbb and #rrggbbaa),
// standard color names, and the rgb(r, g, b) and rgba(r, g, b, a)
// functions. Components of rgb() and rgba() are 0-255 integers or
// percentages; the alpha of rgba() may also be a 0-1 fraction.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return color.RGBA{}, errors.New("colors.FromString: empty string")
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		return parseRGBFunc(lstr[len("rgba("):], true)
	case strings.HasPrefix(lstr, "rgb("):
		return parseRGBFunc(lstr[len("rgb("):], false)
	}
	return FromName(lstr)
}

// LogFromString returns a color value from the given string,
// logging any error and returning the fallback color in that case.
func LogFromString(str string, fallback color.Color) color.RGBA {
	c, err := FromString(str)
	if errors.Log(err) != nil {
		return AsRGBA(fallback)
	}
	return c
}

func parseRGBFunc(args string, alpha bool) (color.RGBA, error) {
	args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromString: missing closing parenthesis in %q", args)
	}
	parts := strings.Split(args, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected %d components, got %d in %q", want, len(parts), args)
	}
	var comps [4]uint8
	comps[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := parseComponent(p, i == 3)
		if err != nil {
			return color.RGBA{}, err
		}
		comps[i] = v
	}
	// components are non-premultiplied in the string
	return AsRGBA(color.NRGBA{comps[0], comps[1], comps[2], comps[3]}), nil
}

func parseComponent(p string, isAlpha bool) (uint8, error) {
	if pct, ok := strings.CutSuffix(p, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("colors.FromString: invalid percentage %q: %w", p, err)
		}
		return clampByte(f * 255 / 100), nil
	}
	f, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, fmt.Errorf("colors.FromString: invalid component %q: %w", p, err)
	}
	if isAlpha && f <= 1 && strings.Contains(p, ".") {
		f *= 255
	}
	return clampByte(f), nil
}

func clampByte(f float64) uint8 {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f + 0.5)
}

// FromHex parses the given hex color string
// and returns the resulting color. It accepts #rgb,
// #rrggbb and #rrggbbaa forms, with or without the #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
		}
		// components are non-premultiplied in the string
		n := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
		return AsRGBA(n), nil
	}
	return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// Blend returns a color that is the given percent (0-100) of y
// blended into x, interpolating in RGB space. Alpha is blended linearly.
func Blend(pct float32, x, y color.Color) color.RGBA {
	t := float64(max(0, min(100, pct)) / 100)
	cx, _ := colorful.MakeColor(opaque(x))
	cy, _ := colorful.MakeColor(opaque(y))
	r, g, b := cx.BlendRgb(cy, t).Clamped().RGB255()
	ax := float64(color.NRGBAModel.Convert(x).(color.NRGBA).A)
	ay := float64(color.NRGBAModel.Convert(y).(color.NRGBA).A)
	a := ax + (ay-ax)*t
	return AsRGBA(color.NRGBA{r, g, b, uint8(a + 0.5)})
}

// Desaturate returns the given color with its HSL saturation
// reduced by the given fraction (0-1). It is used to derive
// disabled-state colors from active ones.
func Desaturate(c color.Color, amount float64) color.RGBA {
	cf, _ := colorful.MakeColor(opaque(c))
	h, s, l := cf.Hsl()
	s *= 1 - max(0, min(1, amount))
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	a := color.NRGBAModel.Convert(c).(color.NRGBA).A
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// opaque returns the color components without alpha, since
// colorful works on opaque colors only.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}

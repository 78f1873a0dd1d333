// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"strings"

	"cogentcore.org/rangeslider/math32"
)

// Orientations are the directions along which a slider slides.
type Orientations int32

const (
	// Horizontal sliders slide along the X axis, with
	// values increasing to the right.
	Horizontal Orientations = iota

	// Vertical sliders slide along the Y axis, with
	// values increasing upward.
	Vertical
)

// Dim returns the dimension along which the orientation slides.
func (o Orientations) Dim() math32.Dims {
	if o == Vertical {
		return math32.Y
	}
	return math32.X
}

func (o Orientations) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// TickPositions are bit flags for where tick marks are drawn
// relative to the groove.
type TickPositions int32

const (
	NoTicks TickPositions = 0

	// TicksAbove draws ticks above a horizontal groove
	// (or to the left of a vertical one).
	TicksAbove TickPositions = 1

	// TicksBelow draws ticks below a horizontal groove
	// (or to the right of a vertical one).
	TicksBelow TickPositions = 2

	TicksBothSides = TicksAbove | TicksBelow
	TicksLeft      = TicksAbove
	TicksRight     = TicksBelow
)

// PaletteStates are the palette color groups that a slider
// can be drawn in, each with their own bar brush.
type PaletteStates int32

const (
	// Active is the color group of a widget in the focused window.
	Active PaletteStates = iota

	// Inactive is the color group of a widget in an unfocused window.
	Inactive

	// Disabled is the color group of a disabled widget.
	Disabled

	PaletteStatesN
)

var paletteStateNames = [...]string{"active", "inactive", "disabled"}

func (p PaletteStates) String() string {
	if p < 0 || p >= PaletteStatesN {
		return "active"
	}
	return paletteStateNames[p]
}

// Platforms are the operating system families that have their
// own default slider appearance.
type Platforms int32

const (
	MacOS Platforms = iota
	Windows
	Linux
)

var platformNames = [...]string{"macos", "windows", "linux"}

func (p Platforms) String() string {
	if p < MacOS || p > Linux {
		return platformNames[Linux]
	}
	return platformNames[p]
}

// PlatformFor returns the platform family for the given GOOS value.
// It is meant to be called once by the embedding application, usually
// with [runtime.GOOS]; all non-darwin, non-windows systems are treated as [Linux].
func PlatformFor(goos string) Platforms {
	switch strings.ToLower(goos) {
	case "darwin", "ios", "macos":
		return MacOS
	case "windows":
		return Windows
	}
	return Linux
}

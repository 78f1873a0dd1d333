// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Center returns a new [Box2] of the given size centered on ctr.
func B2Center(ctr, size Vector2) Box2 {
	half := size.MulScalar(0.5)
	return Box2{ctr.Sub(half), ctr.Add(half)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Size returns the size of this bounding box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns if this bounding box contains the specified point.
// Points on the boundary are contained.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y {
		return false
	}
	return true
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import "math"

// Number is the set of scalar types that a [Slider] can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rounding converts a raw value into the nearest value that is
// representable by the scalar type of a slider. It is applied to
// every bound, step, position and value the slider stores.
type Rounding func(v float64) float64

// Identity is the [Rounding] for floating point sliders.
func Identity(v float64) float64 { return v }

// RoundNearest is the [Rounding] for integer sliders.
func RoundNearest(v float64) float64 { return math.Round(v) }

// RoundingFor returns the rounding strategy for the given scalar type:
// [RoundNearest] for integer types and [Identity] otherwise.
func RoundingFor[T Number]() Rounding {
	half := 0.5
	if T(half) == 0 {
		return RoundNearest
	}
	return Identity
}

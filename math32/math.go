// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 pixel geometry used for
// slider hit-testing and layout queries, on top of
// [github.com/chewxy/math32] for the scalar functions.
package math32

import (
	"github.com/chewxy/math32"
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

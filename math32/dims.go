// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names.
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Codes are the key codes that sliders respond to.
// All other keys are reported as [CodeUnknown].
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodePageUp
	CodePageDown
	CodeHome
	CodeEnd
)

var codeNames = [...]string{"Unknown", "LeftArrow", "RightArrow", "UpArrow", "DownArrow", "PageUp", "PageDown", "Home", "End"}

func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[0]
	}
	return codeNames[c]
}

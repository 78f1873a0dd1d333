// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import "slices"

// signals is the typed emitter of slider notifications. Handlers are
// called in the order they were added, synchronously, with copies
// of the slider state. Whenever a single operation changes both the
// range and the values, every range handler is called before any
// value handler.
type signals struct {
	rangeChanged   []func(min, max float64)
	valueChanged   []func(values []float64)
	sliderMoved    []func(positions []float64)
	sliderPressed  []func()
	sliderReleased []func()
}

func (sg *signals) emitRangeChanged(min, max float64) {
	for _, fun := range sg.rangeChanged {
		fun(min, max)
	}
}

func (sg *signals) emitValueChanged(values []float64) {
	for _, fun := range sg.valueChanged {
		fun(slices.Clone(values))
	}
}

func (sg *signals) emitSliderMoved(positions []float64) {
	for _, fun := range sg.sliderMoved {
		fun(slices.Clone(positions))
	}
}

func (sg *signals) emitSliderPressed() {
	for _, fun := range sg.sliderPressed {
		fun()
	}
}

func (sg *signals) emitSliderReleased() {
	for _, fun := range sg.sliderReleased {
		fun()
	}
}

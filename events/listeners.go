// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the handler functions of one slider,
// keyed by the event type they respond to.
type Listeners map[Types][]func(ev Event)

// Add appends a handler for the given event type,
// creating the map if needed.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	if *ls == nil {
		*ls = Listeners{}
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call passes the event to the handlers for its type, newest first,
// until one of them marks it as handled. Handlers added later can
// therefore replace the behavior of earlier ones.
func (ls Listeners) Call(ev Event) {
	fns := ls[ev.Type()]
	for i := len(fns) - 1; i >= 0 && !ev.IsHandled(); i-- {
		fns[i](ev)
	}
}

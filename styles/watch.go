// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/rangeslider/logx"
	"github.com/fsnotify/fsnotify"
)

// SheetWatcher watches a stylesheet file and delivers its new
// text whenever it is written, so that an application can apply
// it with [Resolver.SetAppSheet] or a widget's style sheet setter.
// Delivery happens on the channel returned by [SheetWatcher.Changes];
// the receiver is responsible for applying the text on the goroutine
// that owns the sliders.
type SheetWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan string
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// WatchSheet starts watching the stylesheet file at the given path.
// The directory of the file is watched, so that editors which
// replace the file on save are handled.
func WatchSheet(path string) (*SheetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("styles.WatchSheet: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("styles.WatchSheet: %w", err)
	}
	sw := &SheetWatcher{
		path:    abs,
		watcher: w,
		changes: make(chan string, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go sw.monitor()
	return sw, nil
}

// Changes returns the channel on which new stylesheet text is sent.
// It is closed when the watcher is closed.
func (sw *SheetWatcher) Changes() <-chan string {
	return sw.changes
}

// Errors returns the channel on which watch and read errors are sent.
// Errors are dropped if nobody is receiving.
func (sw *SheetWatcher) Errors() <-chan error {
	return sw.errs
}

// Close stops watching. It is safe to call more than once.
func (sw *SheetWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.done)
		err = sw.watcher.Close()
	})
	return err
}

func (sw *SheetWatcher) monitor() {
	defer close(sw.changes)
	for {
		select {
		case <-sw.done:
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			b, err := os.ReadFile(sw.path)
			if err != nil {
				sw.sendErr(err)
				continue
			}
			select {
			case sw.changes <- string(b):
			case <-sw.done:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.sendErr(err)
		}
	}
}

func (sw *SheetWatcher) sendErr(err error) {
	select {
	case sw.errs <- err:
	default:
		logx.PrintlnWarn("styles: stylesheet watcher ", sw.path, ": ", err)
	}
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-level logging threshold used by the
// slider and style packages, on top of [log/slog].
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown.
var UserLevel = slog.LevelInfo

// PrintfDebug logs the formatted message at [slog.LevelDebug]
// if [UserLevel] is at or below it.
func PrintfDebug(format string, args ...any) {
	if UserLevel > slog.LevelDebug {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}

// PrintlnWarn logs the given message at [slog.LevelWarn]
// if [UserLevel] is at or below it.
func PrintlnWarn(args ...any) {
	if UserLevel > slog.LevelWarn {
		return
	}
	slog.Warn(fmt.Sprint(args...))
}

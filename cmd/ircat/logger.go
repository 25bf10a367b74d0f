// Copyright 2026 The Ircat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates the structured logger for diagnostics. When stderr
// is a terminal, slog.TextHandler keeps output human-readable. When
// stderr is piped or redirected, slog.JSONHandler produces
// machine-parseable lines instead. Relayed peer data never goes through
// the logger; it is written raw to stdout by the relay.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

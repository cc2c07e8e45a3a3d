// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"context"
	"log/slog"
)

// discard drops every record; Enabled is false so attributes are never
// evaluated.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// logOrSilent returns l, or a disabled logger when l is nil. Each Sink and
// Pipeline keeps its own logger, so rounded.WithLogger on one image never
// redirects another image's GPU logging.
func logOrSilent(l *slog.Logger) *slog.Logger {
	if l == nil {
		return silent
	}
	return l
}

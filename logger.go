// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/viewport/swapchain"
	"github.com/gogpu/viewport/window"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for viewport and all its sub-packages.
// By default, viewport produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by viewport:
//   - [slog.LevelDebug]: per-frame lifecycle events (window resized,
//     surface created, camera skipped, ignorable driver timeouts)
//   - [slog.LevelWarn]: non-fatal acquisition failures (a window drops
//     one frame)
//
// Unrecoverable GPU failures do not log at [slog.LevelError]; they panic
// with a diagnostic naming the underlying error.
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	viewport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Sub-packages keep their own atomic logger to avoid import cycles.
	window.SetLogger(l)
	swapchain.SetLogger(l)
}

// Logger returns the current logger used by viewport.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// slogger returns the current package logger.
func slogger() *slog.Logger { return loggerPtr.Load() }

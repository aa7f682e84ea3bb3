// Package ommxlog is the thin structured-logging facade shared by every
// ommxcore package that needs to announce a process-wide state change
// (the default ATol being overridden, an invalid environment value being
// ignored). It wraps the standard library's log/slog the way
// github.com/katalvlaran/lvlath/core separates its locking/state contract
// (doc.go) from its public facade (api.go): callers never touch slog
// directly, only the three functions below.
package ommxlog

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// SetLogger replaces the package-wide logger. Host applications embedding
// ommxcore may call this once at startup to route logs into their own
// handler; it is never required for correctness.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Warn logs a warning-level event with structured key/value fields.
func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

// Info logs an info-level event with structured key/value fields.
func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

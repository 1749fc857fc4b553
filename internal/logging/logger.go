// Package logging wraps log/slog for the cgraph command: a package-level
// logger with a compact console handler by default and JSON on request.
// The library packages never log; only cmd/ does.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below Debug for per-edge chatter.
const LevelTrace = slog.LevelDebug - 4

var logger = slog.New(NewCompactHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Setup replaces the package logger. json selects slog's JSON handler,
// otherwise the compact console handler is used.
func Setup(w io.Writer, level slog.Level, json bool) {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	logger = slog.New(NewCompactHandler(w, opts))
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return logger
}

// ParseLevel resolves a textual verbosity ("trace", "debug", "info", "warn",
// "error") combined with a -v count. An empty verbosity defaults to info and
// each -v lowers the threshold by one step.
func ParseLevel(verbosity string, verboseCnt int) (slog.Level, error) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(verbosity)) {
	case "", "info":
		level = slog.LevelInfo
	case "trace":
		level = LevelTrace
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return 0, fmt.Errorf("unknown verbosity %q", verbosity)
	}

	level -= slog.Level(4 * verboseCnt)
	if level < LevelTrace {
		level = LevelTrace
	}

	return level, nil
}

// Trace logs at TRACE level (very verbose, debug-time only)
func Trace(msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs at DEBUG level (internal component behavior)
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs at INFO level (user-facing operations)
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs at WARN level (should be monitored)
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at ERROR level
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

package workspace

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with workspace-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogAllocate logs a successful workspace allocation.
func (l *Logger) LogAllocate(req Requirements) {
	l.Debug("workspace allocated",
		"host_bytes", req.Host.Size,
		"pinned_bytes", req.Pinned.Size,
		"device_bytes", req.Device.Size,
	)
}

// LogAllocateError logs a failed allocation after rollback has run.
func (l *Logger) LogAllocateError(space Space, size uint64, err error) {
	l.Error("workspace allocation failed",
		"space", space.String(),
		"bytes", size,
		"error", err,
	)
}

// LogRelease logs the release of a single block.
func (l *Logger) LogRelease(space Space, size uint64) {
	l.Debug("workspace block released",
		"space", space.String(),
		"bytes", size,
	)
}

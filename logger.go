package segkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with segkit-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContainer tags every record with a container name.
func (l *Logger) WithContainer(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// WithBlockCapacity adds a block_capacity field to the logger.
func (l *Logger) WithBlockCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("block_capacity", capacity),
	}
}

// LogBlockAllocated logs the allocation of a new block.
func (l *Logger) LogBlockAllocated(ctx context.Context, blockIndex, capacity int, bytes int64) {
	l.DebugContext(ctx, "block allocated",
		"block", blockIndex,
		"capacity", capacity,
		"bytes", bytes,
	)
}

// LogRelease logs the teardown of a container's blocks.
func (l *Logger) LogRelease(ctx context.Context, blocks int, bytes int64) {
	l.DebugContext(ctx, "blocks released",
		"blocks", blocks,
		"bytes", bytes,
	)
}

// LogInsert logs a keyed insert-or-get.
func (l *Logger) LogInsert(ctx context.Context, created bool, size int) {
	if !created {
		return
	}
	l.DebugContext(ctx, "entry created",
		"size", size,
	)
}

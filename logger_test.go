package segkit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	t.Run("block allocated", func(t *testing.T) {
		buf.Reset()
		l.WithContainer("test").WithBlockCapacity(8).LogBlockAllocated(ctx, 3, 8, 64)
		out := buf.String()
		assert.Contains(t, out, "block allocated")
		assert.Contains(t, out, "container=test")
		assert.Contains(t, out, "block_capacity=8")
		assert.Contains(t, out, "block=3")
		assert.Contains(t, out, "bytes=64")
	})

	t.Run("release", func(t *testing.T) {
		buf.Reset()
		l.LogRelease(ctx, 2, 128)
		assert.Contains(t, buf.String(), "blocks released")
		assert.Contains(t, buf.String(), "blocks=2")
	})

	t.Run("insert only logs creation", func(t *testing.T) {
		buf.Reset()
		l.LogInsert(ctx, false, 1)
		assert.Empty(t, buf.String())

		l.LogInsert(ctx, true, 2)
		assert.Contains(t, buf.String(), "entry created")
		assert.Contains(t, buf.String(), "size=2")
	})
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Container events are debug records.
	l.LogBlockAllocated(context.Background(), 0, 4, 32)
	assert.Empty(t, buf.String())
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))

	noop := NoopLogger()
	assert.False(t, noop.Enabled(context.Background(), slog.LevelError))
}

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := FromZap(zap.New(core))

	scoped := base.With(zap.String("request_id", "abc"))
	scoped.Info("request", zap.Int("status", 200))
	base.Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]any{"request_id": "abc", "status": int64(200)}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}

func TestError_AppendsCause(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))

	l.Error("record visit", errors.New("disk full"), zap.String("path", "/"))
	l.Error("no cause", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	assert.Equal(t, "/", entries[0].ContextMap()["path"])
	assert.NotContains(t, entries[1].ContextMap(), "error")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With(zap.String("k", "v"))
	l.Info("x")
	l.Warn("y")
	l.Error("z", errors.New("e"))
}

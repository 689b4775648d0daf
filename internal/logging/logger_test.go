// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"", FormatJSON, FormatConsole, "JSON"} {
		l, err := NewLogger(LogConfig{Level: LevelDebug, Format: format, OutputPaths: []string{"stderr"}})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(LogConfig{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("flowmat").With(String("cmd", "stats"))

	l.Info("computed",
		Int("units", 3),
		Float64("sum", 11),
		Bool("weak", true),
		Duration("took", time.Millisecond),
		Err(errors.New("boom")),
		Any("ids", []string{"A"}),
	)
	l.Debug("detail")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "computed", entry.Message)
	assert.Equal(t, "flowmat", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, "stats", ctx["cmd"])
	assert.Equal(t, int64(3), ctx["units"])
	assert.Equal(t, 11.0, ctx["sum"])
	assert.Equal(t, true, ctx["weak"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, zapcore.DebugLevel, logs.All()[1].Level)
}

func TestErr_Nil(t *testing.T) {
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("msg")
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	assert.NotNil(t, l.With(String("k", "v")))
	assert.NotNil(t, l.Named("x"))
	assert.NoError(t, l.Sync())
}

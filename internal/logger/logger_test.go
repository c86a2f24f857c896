package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"panic": zapcore.PanicLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestWithLevel ensures the option overrides the underlying core's level in both directions.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	quiet := New(zap.NewAtomicLevelAt(zapcore.InfoLevel), WithLevel(zapcore.ErrorLevel))
	require.False(t, quiet.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, quiet.Desugar().Core().Enabled(zapcore.ErrorLevel))

	verbose := New(zap.NewAtomicLevelAt(zapcore.InfoLevel), WithLevel(zapcore.DebugLevel))
	require.True(t, verbose.Desugar().Core().Enabled(zapcore.DebugLevel))
}

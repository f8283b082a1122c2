package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewDisabledWithoutPath(t *testing.T) {
	logger, closer, err := New(parameter.LogConfig{Level: "debug"})
	require.NoError(t, err)
	defer closer()

	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel), "nop logger drops everything")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bounce.log")

	logger, closer, err := New(parameter.LogConfig{Level: "info", Path: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("scene started", zap.String("mode", "circles"), zap.Int("bodies", 3))
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"scene started"`)
	assert.Contains(t, string(data), `"mode":"circles"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bounce.log")
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0644))

	_, closer, err := New(parameter.LogConfig{Path: path})
	require.NoError(t, err)
	defer closer()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "fresh log plus rotated one")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		" INFO ":  zap.InfoLevel,
		"warn":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"":        zap.InfoLevel,
		"chatty":  zap.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestDebugPath(t *testing.T) {
	assert.Equal(t, filepath.Join("logs", "vi-bounce.log"), DebugPath())
}

func TestNop(t *testing.T) {
	logger := Nop()
	require.NotNil(t, logger)
	logger.Error("dropped")
	assert.NoError(t, logger.Sync())
}

// Package logging builds the zap logger used by the host.
// The terminal UI owns stdout, so records only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/vi-bounce/parameter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxLogSize triggers rotation of an existing log file at startup
const maxLogSize = 10 * 1024 * 1024

// DebugPath is the default log location used by -debug
func DebugPath() string {
	return filepath.Join(parameter.LogDir, parameter.LogFileName)
}

// New returns a logger writing JSON records to cfg.Path and a closer that syncs and closes it
// Empty path yields a no-op logger
func New(cfg parameter.LogConfig) (*zap.Logger, func() error, error) {
	if cfg.Path == "" {
		return Nop(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := rotate(cfg.Path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
	)
	logger := zap.New(core)

	closer := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closer, nil
}

// Nop discards every record
func Nop() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel maps debug|info|warn|error to zap levels, defaulting to info
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}

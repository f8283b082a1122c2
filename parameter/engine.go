package parameter

import "time"

// Frame loop
const (
	// FramePeriod approximates one display refresh (~60 FPS)
	FramePeriod = 16 * time.Millisecond
	// EventQueueSize buffers terminal events between polls
	EventQueueSize = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-bounce.log"
)

// LogConfig controls the structured log sink
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
	Path  string `yaml:"path"`  // empty disables file logging
}

func defaultLog() LogConfig {
	return LogConfig{
		Level: "info",
	}
}

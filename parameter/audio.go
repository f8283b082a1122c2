package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Hit cue
const (
	// AudioHitFrequency is the base tone of a paddle or circle hit
	AudioHitFrequency = 880.0
	AudioHitDuration  = 50 * time.Millisecond
	AudioHitAttack    = 2 * time.Millisecond
	AudioHitRelease   = 30 * time.Millisecond

	// AudioMinHitGap drops cues arriving faster than this
	AudioMinHitGap = 40 * time.Millisecond
)

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0-1.0
}

func defaultAudio() AudioConfig {
	return AudioConfig{
		Enabled: true,
		Volume:  0.5,
	}
}

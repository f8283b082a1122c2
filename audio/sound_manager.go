// Package audio plays collision cues through the system speaker.
// Every entry point is a no-op until Initialize succeeds, so the host runs
// unchanged on machines without an audio device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/physics"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes hit cues into a single speaker stream
type SoundManager struct {
	mu      sync.Mutex
	cfg     parameter.AudioConfig
	mixer   *beep.Mixer
	logger  *zap.Logger
	now     func() time.Time
	lastHit time.Time

	initialized bool
	// speakerBound is false when the mixer is drained by a caller instead of the device
	speakerBound bool
	muted        bool
}

// NewSoundManager creates a silent manager; call Initialize to open the device
func NewSoundManager(cfg parameter.AudioConfig, logger *zap.Logger) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
		now:    time.Now,
	}
}

// Initialize opens the speaker and starts the mixer; disabled configs stay silent without error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		sm.logger.Info("audio disabled by config")
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.speakerBound = true
	sm.logger.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.speakerBound {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	} else {
		sm.mixer.Clear()
	}
	sm.initialized = false
	sm.speakerBound = false
}

// SetMuted toggles output without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayHit queues one hit cue scaled by intensity in [0, 1]
// Cues closer than AudioMinHitGap to the previous one are dropped; reports whether it queued
func (sm *SoundManager) PlayHit(intensity float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	now := sm.now()
	if !sm.lastHit.IsZero() && now.Sub(sm.lastHit) < parameter.AudioMinHitGap {
		return false
	}
	sm.lastHit = now

	cue := HitSound(sampleRate, sm.cfg.Volume, intensity)
	if sm.speakerBound {
		speaker.Lock()
		sm.mixer.Add(cue)
		speaker.Unlock()
	} else {
		sm.mixer.Add(cue)
	}
	return true
}

// Contact satisfies physics.ContactFunc, mapping penetration depth to hit intensity
func (sm *SoundManager) Contact(_, _ *physics.Body, depth float64) {
	sm.PlayHit(depth)
}

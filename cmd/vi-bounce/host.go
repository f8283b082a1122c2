package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-bounce/audio"
	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/render"
	"github.com/lixenwraith/vi-bounce/scene"
	"go.uber.org/zap"
)

var (
	errQuit         = errors.New("quit requested")
	errScreenClosed = errors.New("screen closed")
	errUnknownMode  = errors.New("unknown mode")
)

// host owns the frame loop: events and ticks are handled on one goroutine
type host struct {
	screen   tcell.Screen
	renderer *render.Renderer
	scene    scene.Scene
	sound    *audio.SoundManager
	logger   *zap.Logger
}

// newScene builds the scene for mode sized to the screen extent
func newScene(mode scene.Mode, cfg parameter.Config, width, height float64, rng *rand.Rand,
	onContact physics.ContactFunc, logger *zap.Logger) (scene.Scene, error) {
	switch mode {
	case scene.ModeTable:
		return scene.NewTable(cfg.Table, width, height, onContact), nil
	case scene.ModeAmbient:
		return newAmbient(cfg.Ambient, width, height, rng, onContact, logger)
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", errUnknownMode, mode, scene.ModeAmbient, scene.ModeTable)
	}
}

// newAmbient halves the circle count until placement fits the screen
func newAmbient(cfg parameter.AmbientConfig, width, height float64, rng *rand.Rand,
	onContact physics.ContactFunc, logger *zap.Logger) (*scene.Ambient, error) {
	for {
		a, err := scene.NewAmbient(cfg, width, height, rng, onContact)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, physics.ErrPlacementExhausted) || cfg.Count <= 1 {
			return nil, err
		}
		logger.Warn("placement exhausted, retrying with fewer circles",
			zap.Int("count", cfg.Count), zap.Error(err))
		cfg.Count /= 2
	}
}

// contactLogger records each resolved contact by body ID, then forwards it to next
func contactLogger(logger *zap.Logger, next physics.ContactFunc) physics.ContactFunc {
	return func(mover, other *physics.Body, depth float64) {
		if ce := logger.Check(zap.DebugLevel, "contact"); ce != nil {
			ce.Write(
				zap.Stringer("mover", mover.ID),
				zap.Stringer("other", other.ID),
				zap.Stringer("other_kind", other.Kind),
				zap.Float64("depth", depth),
			)
		}
		if next != nil {
			next(mover, other, depth)
		}
	}
}

// pollEvents forwards terminal events until the screen closes or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, logger *zap.Logger, events chan<- tcell.Event) error {
	defer recoverCrash(screen, logger, "EVENT POLLER")

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return errScreenClosed
		}
		if ctx.Err() != nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop steps and draws the scene once per FramePeriod
func (h *host) loop(ctx context.Context, events <-chan tcell.Event) error {
	defer recoverCrash(h.screen, h.logger, "FRAME LOOP")

	ticker := time.NewTicker(parameter.FramePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handleEvent(ev) {
				return errQuit
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

func (h *host) frame() {
	h.scene.Step()
	h.renderer.Draw(h.scene)
}

// handleEvent applies one terminal event; false means quit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			muted := !h.sound.Muted()
			h.sound.SetMuted(muted)
			h.logger.Debug("mute toggled", zap.Bool("muted", muted))
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		p := h.renderer.CellCenter(col, row)
		h.scene.SetPointer(p.X, p.Y)

	case *tcell.EventResize:
		h.screen.Sync()
		width, height := h.renderer.Extent()
		h.scene.Resize(width, height)
		h.logger.Debug("resized", zap.Float64("width", width), zap.Float64("height", height))
	}
	return true
}

// recoverCrash resets the terminal and exits when a host goroutine panics
func recoverCrash(screen tcell.Screen, logger *zap.Logger, where string) {
	if r := recover(); r != nil {
		screen.Fini()
		logger.Error("crashed", zap.String("where", where), zap.Any("panic", r))
		_ = logger.Sync()
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

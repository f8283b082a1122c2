package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-bounce/audio"
	"github.com/lixenwraith/vi-bounce/logging"
	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/render"
	"github.com/lixenwraith/vi-bounce/scene"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	modeFlag   = flag.String("mode", string(scene.ModeAmbient), "Scene: circles, hockey")
	configFlag = flag.String("config", "", "YAML config path (default $"+parameter.ConfigEnv+")")
	seedFlag   = flag.String("seed", "", "Seed name for reproducible placement (default: time based)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+logging.DebugPath())
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	countFlag  = flag.Int("count", 0, "Override ambient circle count")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-bounce: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := parameter.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer recoverCrash(screen, logger, "VI-BOUNCE")

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the scene runs without sound
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	seed := seedFrom(*seedFlag)
	renderer := render.NewRenderer(screen)
	width, height := renderer.Extent()

	s, err := newScene(scene.Mode(*modeFlag), cfg, width, height, rand.New(rand.NewSource(seed)), contactLogger(logger, sound.Contact), logger)
	if err != nil {
		return err
	}
	logger.Info("scene started",
		zap.String("mode", s.Name()),
		zap.Int("bodies", len(s.Bodies())),
		zap.Int64("seed", seed),
		zap.Float64("width", width),
		zap.Float64("height", height),
	)

	h := &host{
		screen:   screen,
		renderer: renderer,
		scene:    s,
		sound:    sound,
		logger:   logger,
	}

	g, ctx := errgroup.WithContext(context.Background())
	events := make(chan tcell.Event, parameter.EventQueueSize)

	g.Go(func() error { return pollEvents(ctx, screen, logger, events) })
	g.Go(func() error { return h.loop(ctx, events) })
	// Wake the poller once anything stops the group
	g.Go(func() error {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	logger.Info("scene stopped", zap.String("mode", s.Name()), zap.Uint64("frames", s.Tick()))
	return nil
}

// applyFlags layers command-line overrides onto the loaded config
func applyFlags(cfg *parameter.Config) {
	if *countFlag > 0 {
		cfg.Ambient.Count = *countFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
		if cfg.Log.Path == "" {
			cfg.Log.Path = logging.DebugPath()
		}
	}
}

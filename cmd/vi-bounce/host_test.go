package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-bounce/audio"
	"github.com/lixenwraith/vi-bounce/parameter"
	"github.com/lixenwraith/vi-bounce/physics"
	"github.com/lixenwraith/vi-bounce/render"
	"github.com/lixenwraith/vi-bounce/scene"
	"github.com/lixenwraith/vi-bounce/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHost(t *testing.T, cols, rows int) (*host, *scene.Table, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	renderer := render.NewRenderer(screen)
	w, h := renderer.Extent()
	table := scene.NewTable(parameter.Default().Table, w, h, nil)

	return &host{
		screen:   screen,
		renderer: renderer,
		scene:    table,
		sound:    audio.NewSoundManager(parameter.Default().Audio, zap.NewNop()),
		logger:   zap.NewNop(),
	}, table, screen
}

func TestHandleEventQuitKeys(t *testing.T) {
	h, _, _ := newTestHost(t, 40, 20)

	assert.False(t, h.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, h.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestHandleEventMuteToggle(t *testing.T) {
	h, _, _ := newTestHost(t, 40, 20)

	require.False(t, h.sound.Muted())
	assert.True(t, h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, h.sound.Muted())
	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	assert.False(t, h.sound.Muted())
}

func TestHandleEventMouseMovesPointer(t *testing.T) {
	h, table, _ := newTestHost(t, 40, 20)

	// Cell (15, 15) centers at host (124, 248); the table spans 133.12x256 from (93.44, 32)
	assert.True(t, h.handleEvent(tcell.NewEventMouse(15, 15, tcell.ButtonNone, tcell.ModNone)))

	p := table.Pointer()
	assert.InDelta(t, (124-93.44)/133.12, p.X, 1e-9)
	assert.InDelta(t, (248-32)/256.0, p.Y, 1e-9)
}

func TestHandleEventResizeRefitsTable(t *testing.T) {
	h, table, screen := newTestHost(t, 40, 20)

	screen.SetSize(60, 30)
	assert.True(t, h.handleEvent(tcell.NewEventResize(60, 30)))

	_, width, height := table.Bounds()
	assert.InDelta(t, 384*0.52, width, 1e-9)
	assert.InDelta(t, 384, height, 1e-9)
}

func TestLoopQuitsOnEscape(t *testing.T) {
	h, _, _ := newTestHost(t, 40, 20)

	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	assert.ErrorIs(t, h.loop(context.Background(), events), errQuit)
}

func TestLoopStopsOnCancel(t *testing.T) {
	h, table, _ := newTestHost(t, 40, 20)
	start := table.Puck().Position

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.loop(ctx, make(chan tcell.Event)) }()

	time.Sleep(5 * parameter.FramePeriod)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.NotEqual(t, start, table.Puck().Position, "frames advanced the puck")
	assert.Positive(t, table.Tick())
}

func TestPollEventsForwardsAndStops(t *testing.T) {
	_, _, screen := newTestHost(t, 40, 20)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan error, 1)
	go func() { done <- pollEvents(ctx, screen, zap.NewNop(), events) }()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))

	deadline := time.After(time.Second)
	for found := false; !found; {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok && key.Rune() == 'z' {
				found = true
			}
		case <-deadline:
			t.Fatal("key event not forwarded")
		}
	}

	cancel()
	require.NoError(t, screen.PostEvent(tcell.NewEventInterrupt(nil)))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestNewSceneModes(t *testing.T) {
	cfg := parameter.Default()
	cfg.Ambient.Count = 5
	rng := rand.New(rand.NewSource(1))

	s, err := newScene(scene.ModeTable, cfg, 320, 320, rng, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "hockey", s.Name())

	s, err = newScene(scene.ModeAmbient, cfg, 800, 600, rng, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "circles", s.Name())
	assert.Len(t, s.Bodies(), 5)

	_, err = newScene("pong", cfg, 320, 320, rng, nil, zap.NewNop())
	assert.ErrorIs(t, err, errUnknownMode)
}

func TestNewAmbientShrinksCount(t *testing.T) {
	cfg := parameter.Default().Ambient
	cfg.Count = 50
	cfg.Radius = 20

	a, err := newAmbient(cfg, 100, 100, rand.New(rand.NewSource(7)), nil, zap.NewNop())
	require.NoError(t, err)

	n := len(a.Bodies())
	assert.GreaterOrEqual(t, n, 1)
	assert.Less(t, n, 50)
	for i, b := range a.Bodies() {
		for _, o := range a.Bodies()[i+1:] {
			assert.False(t, b.Overlaps(o))
		}
	}
	assert.Equal(t, physics.KindMover, a.Bodies()[0].Kind)
}

func TestContactLoggerRecordsBodyIDs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	puck := physics.NewMover(vmath.V(0.5, 0.5), vmath.Vec2{}, 0.1)
	bat := physics.NewController(vmath.V(0.5, 0.55), 0.1)

	forwarded := 0.0
	hook := contactLogger(zap.New(core), func(_, _ *physics.Body, depth float64) { forwarded = depth })
	hook(puck, bat, 0.25)

	assert.Equal(t, 0.25, forwarded)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, puck.ID.String(), fields["mover"])
	assert.Equal(t, bat.ID.String(), fields["other"])
	assert.Equal(t, "controller", fields["other_kind"])
	assert.Equal(t, 0.25, fields["depth"])
}

func TestContactLoggerQuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	hook := contactLogger(zap.New(core), nil)

	assert.NotPanics(t, func() {
		hook(physics.NewMover(vmath.Vec2{}, vmath.Vec2{}, 1), physics.NewMover(vmath.Vec2{}, vmath.Vec2{}, 1), 0.5)
	})
	assert.Zero(t, logs.Len())
}

// Package window runs a game in a desktop window using ebiten.
//
// Unlike a terminal, a window reports real key-up events, so held keys are
// read directly every tick. The world is drawn at its native canvas size
// with an on-screen button strip below it for mouse and touch input.
package window

import (
	"fmt"
	"image"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/hotdog-arcade/internal/audio"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/games/hotdog"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
	"github.com/vovakirdan/hotdog-arcade/internal/storage"
)

// Game is a registered game that can describe its frame as shapes.
type Game interface {
	registry.Game
	Snapshot() hotdog.Snapshot
}

// Options configures a window run.
type Options struct {
	Store    *storage.Store
	Sound    *audio.Player
	Logger   *log.Logger
	Player   string
	Scale    float64 // Window size relative to the canvas
	TickRate int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	return o
}

// Window implements ebiten.Game for one game session.
type Window struct {
	game     Game
	opts     Options
	keys     keyboard
	pointers func() []image.Point
	pad      *pad
	recorder *storage.Recorder
	face     text.Face
	stopped  atomic.Bool
}

// New creates a window for the game and resets it.
func New(game Game, opts Options) *Window {
	opts = opts.withDefaults()
	w := &Window{
		game:     game,
		opts:     opts,
		keys:     ebitenKeyboard(),
		pointers: ebitenPointers,
		pad:      newPad(),
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Player),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = opts.TickRate
	game.Reset(cfg)
	if err := registry.ConfigErr(game); err != nil {
		opts.Logger.Warn("using default configuration", "game", game.ID(), "error", err)
	}
	return w
}

// Stop makes the next Update end the run loop.
func (w *Window) Stop() {
	w.stopped.Store(true)
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if w.stopped.Load() || w.keys.quit() {
		return ebiten.Termination
	}

	res := w.game.Step(w.frame())
	w.opts.Sound.PlayAll(res.Cues)
	w.record(res.State)
	return nil
}

// frame merges keyboard and pad input for one tick.
func (w *Window) frame() core.InputFrame {
	f := w.keys.frame()

	snap := w.game.Snapshot()
	for _, a := range w.pad.update(w.pointers(), snap.WorldW, snap.WorldH) {
		if a != core.ActionJump {
			f.Trigger(a)
		}
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if w.pad.held[a] {
			f.Hold(a)
		}
	}
	return f
}

func (w *Window) record(st core.GameState) {
	round, decided, err := w.recorder.Observe(st)
	if !decided {
		return
	}
	w.opts.Logger.Info("round decided",
		"game", round.GameID,
		"player", round.Player,
		"outcome", round.Outcome,
		"ticks", round.Ticks,
		"shots", round.ShotsFired,
	)
	if err != nil {
		w.opts.Logger.Warn("could not record round", "error", err)
	}
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	s := buildScene(w.game.Snapshot(), w.pad)

	screen.Fill(s.background)
	for _, b := range s.boxes {
		vector.DrawFilledRect(screen,
			float32(b.rect.X), float32(b.rect.Y),
			float32(b.rect.W), float32(b.rect.H),
			b.fill, false)
	}
	for _, l := range s.labels {
		op := &text.DrawOptions{}
		x := l.x
		if l.centered {
			tw, _ := text.Measure(l.text, w.face, 0)
			x -= tw / 2
		}
		op.GeoM.Translate(x, l.y)
		op.ColorScale.ScaleWithColor(l.clr)
		text.Draw(screen, l.text, w.face, op)
	}
}

// Layout returns the fixed canvas size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := w.game.Snapshot()
	return int(snap.WorldW), int(snap.WorldH + padHeight)
}

// Run opens a window and plays until it is closed or a quit key is hit.
func Run(game Game, opts Options) error {
	w := New(game, opts)
	width, height := w.Layout(0, 0)

	ebiten.SetWindowSize(int(float64(width)*w.opts.Scale), int(float64(height)*w.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(w.opts.TickRate)

	w.opts.Logger.Debug("window opened", "game", game.ID(), "width", width, "height", height)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: run %s: %w", game.ID(), err)
	}
	return nil
}

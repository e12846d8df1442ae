package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hotdog-arcade/internal/audio"
	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
	"github.com/vovakirdan/hotdog-arcade/internal/storage"
)

// Options carries the optional collaborators of a game session.
// Every field may be left zero.
type Options struct {
	Store  *storage.Store // Round ledger
	Sound  *audio.Player  // Cue playback; nil is silent
	Logger *log.Logger
	Player string // Name recorded in the ledger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	return o
}

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	loop       *FrameLoop
	keyMapper  *KeyMapper
	hold       *holdTracker
	touch      *touchPad
	pending    []core.Action // Triggers collected since the last tick
	gameState  core.GameState
	recorder   *storage.Recorder
	now        func() time.Time
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The bottom row is reserved for the
// touch buttons, the game draws into the rest.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	opts = opts.withDefaults()
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:      opts,
		config:    cfg,
		loop:      NewFrameLoop(cfg.TickRate),
		keyMapper: NewKeyMapper(),
		hold:      newHoldTracker(),
		touch:     newTouchPad(),
		recorder:  storage.NewRecorder(opts.Store, game.ID(), opts.Player),
		now:       time.Now,
	}
}

func playfieldHeight(h int) int {
	return core.Max(1, h-1)
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if err := registry.ConfigErr(m.game); err != nil {
		m.opts.Logger.Warn("using default configuration", "game", m.game.ID(), "error", err)
	}
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "player", m.opts.Player)
	return m.loop.Next()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.loop.Stop()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true

	case core.ActionLeft, core.ActionRight:
		// A new direction cancels the other one right away
		m.hold.release(opposite(action))
		m.hold.press(action, m.now())
		m.pending = append(m.pending, action)

	case core.ActionJump:
		m.hold.press(action, m.now())

	case core.ActionFire, core.ActionRestart:
		m.pending = append(m.pending, action)
	}

	return m, nil
}

// handleMouse drives the touch buttons in the bottom row.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != m.screen.Height() {
			return m, nil
		}
		action, ok := m.touch.hit(msg.X, m.screen.Width())
		if !ok {
			return m, nil
		}
		m.touch.press(action)
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionRestart:
			m.pending = append(m.pending, action)
		}

	case tea.MouseActionRelease:
		m.touch.releaseAll()
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last one.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.Owns(msg) {
		return m, nil
	}

	frame := m.buildFrame(msg.Time)
	m.pending = nil

	result := m.game.Step(frame)
	m.gameState = result.State
	m.opts.Sound.PlayAll(result.Cues)
	m.recordRound()

	return m, m.loop.Next()
}

// buildFrame snapshots held keys, touched buttons and pending triggers.
func (m GameModel) buildFrame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	m.hold.apply(&frame, now)
	m.touch.apply(&frame)
	frame.Triggers = append(frame.Triggers, m.pending...)
	return frame
}

// recordRound adds the current round to the ledger once it is decided.
func (m GameModel) recordRound() {
	round, decided, err := m.recorder.Observe(m.gameState)
	if !decided {
		return
	}
	m.opts.Logger.Info("round decided",
		"game", round.GameID,
		"player", round.Player,
		"outcome", round.Outcome,
		"ticks", round.Ticks,
		"shots", round.ShotsFired,
	)
	if err != nil {
		m.opts.Logger.Warn("could not record round", "error", err)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the game above the touch button row.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.touch.view(m.screen.Width())
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// opposite returns the other horizontal direction.
func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Touch buttons
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}

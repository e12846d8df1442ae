package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenRounds
	screenGame
)

// SessionModel is one player's whole visit: the menu, the rounds screen
// and the games started from the menu. Child models end their own programs
// when used alone; inside a session their exits switch screens instead.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	current  sessionScreen
	menu     MenuModel
	rounds   RoundsModel
	game     GameModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		opts:   opts.withDefaults(),
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.current {
	case screenGame:
		next, cmd := m.game.Update(msg)
		m.game = next.(GameModel)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.showMenu()
		}
		return m, cmd

	case screenRounds:
		next, cmd := m.rounds.Update(msg)
		m.rounds = next.(RoundsModel)
		switch {
		case m.rounds.IsQuitting():
			return m.quit()
		case m.rounds.IsGoingBack():
			return m.showMenu()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.config = m.menu.Config()
	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsRounds():
		return m.showRounds()
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) showRounds() (tea.Model, tea.Cmd) {
	m.current = screenRounds
	m.rounds = NewRoundsModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	return m, m.rounds.Init()
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", id, "error", err)
		return m.showMenu()
	}

	m.current = screenGame
	m.game = NewGameModel(game, m.config, m.opts)
	return m, m.game.Init()
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenRounds:
		return m.rounds.View()
	}
	return m.menu.View()
}

// RunSession runs a session in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run session: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
	"github.com/vovakirdan/hotdog-arcade/internal/registry"
	"github.com/vovakirdan/hotdog-arcade/internal/storage"
)

const maxRounds = 100 // Max rounds to load

var (
	roundsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	roundsTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	roundsActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).Padding(0, 1)
	roundsStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	roundsBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	roundsEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	roundsHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RoundsKeyMap defines the key bindings for the rounds screen.
type RoundsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel shows the rounds decided during this process, per game.
type RoundsModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rounds     []storage.Round
	stats      *storage.RoundStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       RoundsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewRoundsModel creates the rounds screen. A nil store shows an empty ledger.
func NewRoundsModel(store *storage.Store, width, height int) RoundsModel {
	h := help.New()
	h.Width = width

	m := RoundsModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultRoundsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the screen.
func (m *RoundsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Outcome", Width: 9},
		{Title: "Ticks", Width: 7},
		{Title: "Shots", Width: 6},
		{Title: "Time", Width: 9},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, m.height-10)), // Title, tabs, stats, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentGame returns the selected game ID, or "" when nothing is registered.
func (m RoundsModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// load refreshes rounds and stats for the selected game.
func (m *RoundsModel) load() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil

	if m.store != nil && len(m.games) > 0 {
		gameID := m.currentGame()
		m.rounds, m.loadErr = m.store.RecentRounds(gameID, maxRounds)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(gameID)
		}
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Player,
			string(r.Outcome),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.ShotsFired),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the rounds model.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rounds screen.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rounds screen.
func (m RoundsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(roundsTitleStyle.Render("ROUNDS THIS SESSION"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = roundsActiveTab.Render(g.Title)
		} else {
			tabs[i] = roundsTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(roundsStatsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	b.WriteString(roundsBoxStyle.Render(m.tableContent()))
	b.WriteString("\n")
	b.WriteString(roundsHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected game.
func (m RoundsModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return "no rounds yet"
	}
	line := fmt.Sprintf("%d rounds  |  %d won  |  %d lost", m.stats.Rounds, m.stats.Victories, m.stats.Defeats)
	if m.stats.FastestWin > 0 {
		line += fmt.Sprintf("  |  fastest win %d ticks", m.stats.FastestWin)
	}
	return line
}

// tableContent renders the table or an explanatory message.
func (m RoundsModel) tableContent() string {
	switch {
	case m.store == nil:
		return roundsEmptyStyle.Render("The round ledger is unavailable.")
	case m.loadErr != nil:
		return roundsEmptyStyle.Render("Could not load rounds:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return roundsEmptyStyle.Render("No rounds decided yet.\nShoot the enemy or get caught!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RoundsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RoundsModel) IsQuitting() bool {
	return m.quitting
}

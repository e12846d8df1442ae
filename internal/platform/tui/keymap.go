package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates key messages into game actions.
type KeyMapper struct {
	bindings []actionBinding
}

// NewKeyMapper creates a mapper with the default game bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(a core.Action, keys ...string) actionBinding {
		return actionBinding{binding: key.NewBinding(key.WithKeys(keys...)), action: a}
	}
	return &KeyMapper{bindings: []actionBinding{
		bind(core.ActionQuit, "ctrl+c", "q"),
		bind(core.ActionLeft, "a", "A", "left"),
		bind(core.ActionRight, "d", "D", "right"),
		bind(core.ActionJump, "w", "W", "up", " ", "space"),
		bind(core.ActionFire, "e", "E"),
		bind(core.ActionRestart, "r", "R"),
		bind(core.ActionBack, "b", "esc"),
	}}
}

// MapKey returns the action bound to msg (ActionNone if unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MenuKeyMap defines the key bindings of the variant menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Rounds key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Rounds, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Rounds, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Rounds: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "rounds"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc", "b"),
			key.WithHelp("q", "quit"),
		),
	}
}

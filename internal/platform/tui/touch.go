package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Touch button geometry in the bottom row
const (
	touchButtonWidth = 5 // "[ ◀ ]"
	touchButtonGap   = 2
)

var (
	touchButtonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	touchPressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).Reverse(true)
)

// touchButton is one on-screen control clickable with the mouse.
type touchButton struct {
	label  rune
	action core.Action
}

// touchPad emulates the on-screen touch controls: a press on a button holds
// its action until the mouse button is released.
type touchPad struct {
	buttons []touchButton
	pressed map[core.Action]bool
}

func newTouchPad() *touchPad {
	return &touchPad{
		buttons: []touchButton{
			{'◀', core.ActionLeft},
			{'▶', core.ActionRight},
			{'▲', core.ActionJump},
			{'✹', core.ActionFire},
			{'↻', core.ActionRestart},
		},
		pressed: make(map[core.Action]bool),
	}
}

// origin returns the column of the first button for a row of the given width.
func (t *touchPad) origin(width int) int {
	n := len(t.buttons)
	total := n*touchButtonWidth + (n-1)*touchButtonGap
	return core.Max(0, (width-total)/2)
}

// hit returns the action of the button under column x.
func (t *touchPad) hit(x, width int) (core.Action, bool) {
	x -= t.origin(width)
	if x < 0 {
		return core.ActionNone, false
	}
	slot := touchButtonWidth + touchButtonGap
	i := x / slot
	if i >= len(t.buttons) || x%slot >= touchButtonWidth {
		return core.ActionNone, false
	}
	return t.buttons[i].action, true
}

// press marks the button's action as touched.
func (t *touchPad) press(a core.Action) {
	t.pressed[a] = true
}

// releaseAll lifts every touched button. Terminals do not report which
// button a release belongs to.
func (t *touchPad) releaseAll() {
	for a := range t.pressed {
		delete(t.pressed, a)
	}
}

// apply marks touched movement and jump buttons as held.
func (t *touchPad) apply(frame *core.InputFrame) {
	for a := range t.pressed {
		switch a {
		case core.ActionLeft, core.ActionRight, core.ActionJump:
			frame.Hold(a)
		}
	}
}

// view renders the button row.
func (t *touchPad) view(width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", t.origin(width)))
	for i, btn := range t.buttons {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", touchButtonGap))
		}
		style := touchButtonStyle
		if t.pressed[btn.action] {
			style = touchPressedStyle
		}
		b.WriteString(style.Render("[ " + string(btn.label) + " ]"))
	}
	return b.String()
}

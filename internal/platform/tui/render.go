package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// bold colors are drawn in bold as well.
var bold = map[core.Color]bool{
	core.ColorBrightYellow: true,
}

// styleFor returns the style for c, or false for the terminal default.
func styleFor(c core.Color) (lipgloss.Style, bool) {
	code := c.ANSI()
	if code == "" {
		return lipgloss.Style{}, false
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Bold(bold[c]), true
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		if style, ok := styleFor(c); ok {
			sb.WriteString(style.Render(run.String()))
		} else {
			sb.WriteString(run.String())
		}
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		current := s.At(0, y).Color
		for x := range s.Width() {
			cell := s.At(x, y)
			if cell.Color != current {
				flush(current)
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(current)
	}
	return sb.String()
}

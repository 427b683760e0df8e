package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubepop/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(k cellStyle) lipgloss.Style {
	st := lipgloss.NewStyle()
	if code := k.fg.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	if code := k.bg.ANSI(); code != "" {
		st = st.Background(lipgloss.Color(code))
	}
	return st
}

// RenderScreen converts a Screen buffer into styled terminal output.
// Runs of cells sharing colors are rendered with one style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			k := cellStyle{first.Fg, first.Bg}

			var run strings.Builder
			for x < s.Width() {
				c := s.GetCell(x, y)
				if c.Fg != k.fg || c.Bg != k.bg {
					break
				}
				run.WriteRune(c.Rune)
				x++
			}

			if k == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			st, ok := styles[k]
			if !ok {
				st = styleFor(k)
				styles[k] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/speedtype/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string for display.
// Colors are emitted as truecolor; lipgloss degrades them to whatever the
// output supports.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewRenderer creates a renderer on top of a lipgloss renderer. A nil renderer
// uses the process default (stdout).
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[cellStyle]lipgloss.Style),
	}
}

func (r *Renderer) style(key cellStyle) lipgloss.Style {
	if s, ok := r.styles[key]; ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(key.fg.Hex())).
		Background(lipgloss.Color(key.bg.Hex()))
	r.styles[key] = s
	return s
}

// Render converts the screen to a string. Each run of cells sharing a fg/bg
// pair is rendered with one cached style.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// two bytes per cell plus newlines; escapes grow it further
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				// continuation cells of wide runes have no glyph
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

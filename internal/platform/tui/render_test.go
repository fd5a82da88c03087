package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/speedtype/internal/core"
)

// profileRenderer pins the color profile; a non-tty writer would otherwise
// be detected as Ascii.
func profileRenderer(p termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(p)
	return NewRenderer(lg)
}

func plainRenderer() *Renderer {
	return profileRenderer(termenv.Ascii)
}

func colorRenderer() *Renderer {
	return profileRenderer(termenv.TrueColor)
}

func TestRendererProfiles(t *testing.T) {
	if got := plainRenderer().lg.ColorProfile(); got != termenv.Ascii {
		t.Errorf("plain ColorProfile() = %v, expected Ascii", got)
	}
	if got := colorRenderer().lg.ColorProfile(); got != termenv.TrueColor {
		t.Errorf("color ColorProfile() = %v, expected TrueColor", got)
	}
}

func TestRenderPlainMatchesScreenText(t *testing.T) {
	screen := core.NewScreen(6, 2, core.ColorBackground)
	screen.DrawText(1, 0, "go", core.ColorWhite)
	screen.DrawText(0, 1, "fast", core.ColorHighlight)

	got := plainRenderer().Render(screen)
	want := " go   \nfast  "
	if got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}

func TestRenderWideRune(t *testing.T) {
	screen := core.NewScreen(4, 1, core.ColorBackground)
	screen.DrawText(0, 0, "日x", core.ColorWhite)

	got := plainRenderer().Render(screen)
	if got != "日x " {
		t.Errorf("Render() = %q, expected %q", got, "日x ")
	}
}

func TestRenderTrueColor(t *testing.T) {
	screen := core.NewScreen(3, 1, core.ColorBackground)
	screen.Set(0, 0, 'a', core.RGB(0xff145b))
	screen.SetBackground(2, 0, core.RGB(0x202020))

	got := colorRenderer().Render(screen)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("Render() = %q, expected escape sequences", got)
	}

	// 38;2 is a truecolor foreground, 48;2 a truecolor background
	for _, seq := range []string{"38;2;255;20;91", "48;2;17;17;17", "48;2;32;32;32"} {
		if !strings.Contains(got, seq) {
			t.Errorf("Render() = %q, expected it to contain %q", got, seq)
		}
	}
}

func TestRenderReusesStyles(t *testing.T) {
	r := plainRenderer()
	screen := core.NewScreen(4, 2, core.ColorBackground)
	screen.Set(0, 0, 'a', core.ColorWhite)
	screen.Set(0, 1, 'b', core.ColorWhite)

	r.Render(screen)
	r.Render(screen)

	// white on background and background on background
	if len(r.styles) != 2 {
		t.Errorf("cached styles = %d, expected 2", len(r.styles))
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	screen := core.NewScreen(0, 0, core.ColorBackground)
	if got := plainRenderer().Render(screen); got != "" {
		t.Errorf("Render() = %q, expected empty", got)
	}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/game"
	"github.com/vovakirdan/speedtype/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) (SessionModel, *int) {
	t.Helper()
	games := 0
	s := NewSessionModel(SessionOptions{
		Player:   "ann",
		Store:    store,
		Renderer: plainRenderer(),
		NewGame: func(width, height int) *game.Game {
			games++
			g := newTestGame(t)
			g.Resize(width, height)
			return g
		},
	}, 60, 20)
	return s, &games
}

func sendSession(s SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := s.Update(msg)
	return next.(SessionModel), cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("ann", 0, 60, 20)

	next, _ := m.Update(keyDown)
	m = next.(MenuModel)
	next, _ = m.Update(keyDown)
	m = next.(MenuModel)
	next, _ = m.Update(keyDown) // stays on the last entry
	m = next.(MenuModel)

	if m.Selected() != MenuNone {
		t.Fatalf("Selected() = %v before enter, expected none", m.Selected())
	}
	next, _ = m.Update(keyEnter)
	m = next.(MenuModel)
	if m.Selected() != MenuQuit {
		t.Errorf("Selected() = %v, expected quit", m.Selected())
	}
}

func TestMenuViewShowsBest(t *testing.T) {
	m := NewMenuModel("ann", 421, 60, 20)
	view := m.View()
	for _, want := range []string{"Hello, ann", "best: 421", "> Play", "High scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	s, games := newTestSession(t, nil)

	s, _ = sendSession(s, keyEnter)
	if s.screen != screenGame || *games != 1 {
		t.Fatalf("screen = %v, games = %d, expected game screen with one game", s.screen, *games)
	}

	_, cmd := sendSession(s, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick in game returned nil, expected the next tick")
	}
	if s.game.Game().Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", s.game.Game().Frames())
	}

	s, cmd = sendSession(s, keyEsc)
	if cmd != nil {
		t.Error("esc in game returned a command, expected back to menu")
	}
	if s.screen != screenMenu {
		t.Errorf("screen = %v after esc, expected menu", s.screen)
	}

	// ticks keep flowing in the menu without reaching the old game
	frames := s.game.Game().Frames()
	s, cmd = sendSession(s, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick in menu returned nil, expected the next tick")
	}
	if s.game.Game().Frames() != frames {
		t.Error("game stepped while the menu was on screen")
	}

	s, _ = sendSession(s, keyEnter)
	if *games != 2 {
		t.Errorf("games = %d, expected a fresh game", *games)
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveResult("ann", core.RoundResult{Score: 421}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	s, _ := newTestSession(t, store)
	if !strings.Contains(s.View(), "best: 421") {
		t.Errorf("menu does not show the personal best:\n%s", s.View())
	}

	s, _ = sendSession(s, keyDown)
	s, _ = sendSession(s, keyEnter)
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}
	if !strings.Contains(s.View(), "421") {
		t.Errorf("scoreboard does not list the result:\n%s", s.View())
	}

	s, cmd := sendSession(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil || s.screen != screenMenu {
		t.Errorf("q on scores: screen = %v, cmd = %v, expected back to menu", s.screen, cmd)
	}
}

func TestSessionQuit(t *testing.T) {
	s, _ := newTestSession(t, nil)

	s, cmd := sendSession(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !s.Quitting() {
		t.Fatal("q in menu did not quit")
	}
	if s.View() != "" {
		t.Errorf("View() after quit = %q, expected empty", s.View())
	}

	s, _ = newTestSession(t, nil)
	s, _ = sendSession(s, keyEnter)
	s, cmd = sendSession(s, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !s.Quitting() {
		t.Error("ctrl+c in game did not quit")
	}
}

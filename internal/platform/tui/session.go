package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedtype/internal/game"
	"github.com/vovakirdan/speedtype/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Player   string
	Store    *storage.Store
	TickRate int
	Renderer *Renderer
	Logger   *log.Logger

	// NewGame builds a fresh game for the given viewport.
	NewGame func(width, height int) *game.Game
}

// SessionModel manages a full SSH session: menu -> game or scores -> menu.
//
// The session owns the only tick chain. Ticks reach the game only while it is
// on screen, so leaving and re-entering never doubles the frame rate.
type SessionModel struct {
	opts   SessionOptions
	screen sessionScreen
	width  int
	height int

	menu   MenuModel
	game   Model
	scores ScoreboardModel

	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, width, height int) SessionModel {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	m := SessionModel{opts: opts, width: width, height: height}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.opts.Store != nil {
		if entry, ok, err := m.opts.Store.PersonalBest(m.opts.Player); err == nil && ok {
			best = entry.Score
		}
	}
	return NewMenuModel(m.opts.Player, best, m.width, m.height)
}

// Init starts the tick chain.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.width, m.menu.height = msg.Width, msg.Height
		if m.screen == screenGame {
			m.game.Game().Resize(msg.Width, msg.Height)
		}
		if m.screen == screenScores {
			return m.updateScores(msg)
		}
		return m, nil

	case TickMsg:
		if m.screen == screenGame {
			next, cmd := m.game.Update(msg)
			m.game = next.(Model)
			return m, cmd
		}
		return m, tickCmd(m.opts.TickRate)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Selected() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuPlay:
		g := m.opts.NewGame(m.width, m.height)
		m.game = NewModel(g, ModelOptions{
			TickRate: m.opts.TickRate,
			Renderer: m.opts.Renderer,
			Logger:   m.opts.Logger,
		})
		m.screen = screenGame
	case MenuScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Player, m.width, m.height)
		m.screen = screenScores
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return m.backToMenu(), nil
	}
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q":
			return m.backToMenu(), nil
		}
	}
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)
	return m, cmd
}

func (m SessionModel) backToMenu() SessionModel {
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Quitting reports whether the session is over.
func (m SessionModel) Quitting() bool {
	return m.quitting
}

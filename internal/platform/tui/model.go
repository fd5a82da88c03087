package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedtype/internal/game"
)

// ModelOptions configures a Model.
type ModelOptions struct {
	TickRate int
	Renderer *Renderer
	Logger   *log.Logger

	// ScreenshotDir is where ctrl+s writes text screenshots.
	// Empty means ~/.speedtype/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *game.Game
	renderer *Renderer
	keys     *KeyMapper
	feeder   *keyFeeder
	logger   *log.Logger

	tickRate      int
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, opts ModelOptions) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Renderer == nil {
		opts.Renderer = NewRenderer(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".speedtype", "screenshots")
	}

	return Model{
		game:          g,
		renderer:      opts.Renderer,
		keys:          NewKeyMapper(),
		feeder:        newKeyFeeder(),
		logger:        opts.Logger,
		tickRate:      opts.TickRate,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Game returns the driven game.
func (m Model) Game() *game.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, runes := m.keys.MapKey(msg)
	switch action {
	case KeyActionQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyActionScreenshot:
		if path, err := m.saveScreenshot(time.Now()); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case KeyActionType:
		m.feeder.Push(runes...)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.feeder.Feed(m.game.Input())
	m.game.Update()
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	screen := m.game.Render()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := "speedtype"
	if s := m.game.Scene(); s != nil {
		name += "_" + s.Name()
	}
	filename := fmt.Sprintf("%s_%s.txt", name, now.Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.game.Render())
}

// Run starts the Bubble Tea program for g and blocks until the player quits.
func Run(g *game.Game, opts ModelOptions) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// Package game drives the scene state machine: it owns the clock, keyboard,
// viewport and the single active scene, and steps them once per frame.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/scene"
	"github.com/vovakirdan/speedtype/internal/words"
)

// maxPendingSwaps bounds scene changes requested from Begin/End chains.
const maxPendingSwaps = 8

// ResultRecorder persists finished rounds. The game only logs its errors.
type ResultRecorder interface {
	RecordResult(result core.RoundResult) error
}

// Options configures a Game. Zero values get defaults.
type Options struct {
	Config   *config.Config
	Corpus   *words.Corpus
	Clock    core.Clock
	Rand     *rand.Rand
	Measure  core.MeasureFunc
	Recorder ResultRecorder
	Logger   *log.Logger
	Width    int
	Height   int
}

// Game is the frame driver and the Host every scene talks to.
// It is not safe for concurrent use; one goroutine steps it.
type Game struct {
	cfg      *config.Config
	corpus   *words.Corpus
	clock    core.Clock
	rng      *rand.Rand
	measure  core.MeasureFunc
	recorder ResultRecorder
	logger   *log.Logger
	input    *core.InputState

	width, height int
	screen        *core.Screen

	scene    scene.Scene
	updating bool
	pending  []scene.Scene

	results []core.RoundResult
	frames  int64
}

var _ scene.Host = (*Game)(nil)

// New creates a game and makes initial the active scene.
func New(initial scene.Scene, opts Options) *Game {
	if opts.Config == nil {
		cfg := config.DefaultConfig()
		opts.Config = &cfg
	}
	if opts.Clock == nil {
		opts.Clock = core.NewFrameClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Measure == nil {
		opts.Measure = core.TextWidth
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	def := core.DefaultConfig()
	if opts.Width <= 0 {
		opts.Width = def.ScreenW
	}
	if opts.Height <= 0 {
		opts.Height = def.ScreenH
	}

	g := &Game{
		cfg:      opts.Config,
		corpus:   opts.Corpus,
		clock:    opts.Clock,
		rng:      opts.Rand,
		measure:  opts.Measure,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		input:    core.NewInputState(),
		width:    opts.Width,
		height:   opts.Height,
		screen:   core.NewScreen(opts.Width, opts.Height, opts.Config.Game.Background),
	}
	if initial != nil {
		g.ChangeScene(initial)
	}
	return g
}

// Width returns the viewport width in cells.
func (g *Game) Width() float64 { return float64(g.width) }

// Height returns the viewport height in cells.
func (g *Game) Height() float64 { return float64(g.height) }

// Input returns the keyboard state the platform feeds.
func (g *Game) Input() *core.InputState { return g.input }

// Config returns the shared configuration.
func (g *Game) Config() *config.Config { return g.cfg }

// Corpus returns the word corpus.
func (g *Game) Corpus() *words.Corpus { return g.corpus }

// Rand returns the game's random source.
func (g *Game) Rand() words.Rand { return g.rng }

// Measure returns the text measuring function.
func (g *Game) Measure() core.MeasureFunc { return g.measure }

// Scene returns the active scene.
func (g *Game) Scene() scene.Scene { return g.scene }

// Frames returns the number of frames stepped so far.
func (g *Game) Frames() int64 { return g.frames }

// Results returns the rounds finished in this game.
func (g *Game) Results() []core.RoundResult {
	return append([]core.RoundResult(nil), g.results...)
}

// ChangeScene replaces the active scene. Outside a scene callback the swap is
// immediate; from inside Update, Begin or End it is applied once the callback
// returns, so a scene is never updated before Begin or after End.
func (g *Game) ChangeScene(next scene.Scene) {
	if g.updating {
		g.pending = append(g.pending, next)
		return
	}
	g.pending = append(g.pending, next)
	g.applyPending()
}

func (g *Game) applyPending() {
	for i := 0; len(g.pending) > 0; i++ {
		if i >= maxPendingSwaps {
			g.logger.Error("scene changes did not settle", "dropped", len(g.pending))
			g.pending = g.pending[:0]
			return
		}
		next := g.pending[0]
		g.pending = g.pending[1:]
		g.swap(next)
	}
}

func (g *Game) swap(next scene.Scene) {
	g.updating = true
	defer func() { g.updating = false }()

	from := "none"
	if g.scene != nil {
		from = g.scene.Name()
		g.scene.End()
	}
	g.scene = next
	if next == nil {
		g.logger.Debug("scene cleared", "from", from)
		return
	}
	next.Init(g)
	next.Begin()
	g.logger.Debug("scene changed", "from", from, "to", next.Name())
}

// Update pulls a delta from the clock and steps one frame.
func (g *Game) Update() {
	g.Step(g.clock.Tick())
}

// Step advances one frame by dt seconds: the keyboard snapshot is taken first,
// then the active scene runs with dt clamped to the configured maximum.
func (g *Game) Step(dt float64) {
	g.frames++
	g.input.Tick()

	if g.scene != nil {
		g.updating = true
		func() {
			defer func() { g.updating = false }()
			g.scene.Update(core.ClampF(dt, 0, g.cfg.Game.MaxDelta))
		}()
	}
	g.applyPending()
}

// Resize stores the new viewport and tells the active scene.
func (g *Game) Resize(width, height int) {
	width, height = core.Max(width, 0), core.Max(height, 0)
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.screen.Resize(width, height)
	if g.scene != nil {
		g.scene.OnViewResized()
	}
}

// Draw renders the active scene onto canvas.
func (g *Game) Draw(canvas *core.Canvas) {
	if g.scene != nil {
		g.scene.Draw(canvas)
	}
}

// Render draws the current frame into the game's screen buffer and returns it.
// The buffer is reused between calls.
func (g *Game) Render() *core.Screen {
	g.Draw(core.NewCanvas(g.screen))
	return g.screen
}

// RecordResult hands a finished round to the recorder.
func (g *Game) RecordResult(result core.RoundResult) {
	g.results = append(g.results, result)
	g.logger.Debug("round finished",
		"score", result.Score,
		"time_ms", result.TimeMs,
		"correct", result.Correct,
		"incorrect", result.Incorrect,
	)
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordResult(result); err != nil {
		g.logger.Warn("could not record result", "error", err)
	}
}

package scene

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/words"
)

// testHost is a Host that records scene changes instead of applying them.
type testHost struct {
	w, h    float64
	input   *core.InputState
	cfg     config.Config
	corpus  *words.Corpus
	rng     *rand.Rand
	changes []Scene
	results []core.RoundResult
}

func newTestHost(t *testing.T, corpus map[int][]string) *testHost {
	t.Helper()
	h := &testHost{
		w:     80,
		h:     24,
		input: core.NewInputState(),
		cfg:   config.DefaultConfig(),
		rng:   rand.New(rand.NewSource(1)),
	}
	if corpus != nil {
		c, err := words.New(corpus)
		if err != nil {
			t.Fatalf("words.New() failed: %v", err)
		}
		h.corpus = c
	}
	return h
}

func (h *testHost) Width() float64                   { return h.w }
func (h *testHost) Height() float64                  { return h.h }
func (h *testHost) Input() *core.InputState          { return h.input }
func (h *testHost) Config() *config.Config           { return &h.cfg }
func (h *testHost) Corpus() *words.Corpus            { return h.corpus }
func (h *testHost) Rand() words.Rand                 { return h.rng }
func (h *testHost) Measure() core.MeasureFunc        { return core.TextWidth }
func (h *testHost) ChangeScene(next Scene)           { h.changes = append(h.changes, next) }
func (h *testHost) RecordResult(r core.RoundResult) { h.results = append(h.results, r) }

func (h *testHost) start(s Scene) {
	s.Init(h)
	s.Begin()
}

// frame presses and releases keys and runs one scene update.
func (h *testHost) frame(s Scene, dt float64, keys ...string) {
	for _, k := range keys {
		h.input.Press(k)
		h.input.Release(k)
	}
	h.input.Tick()
	s.Update(dt)
}

// typeText types each character followed by an idle frame so repeated
// letters register as separate presses.
func (h *testHost) typeText(s Scene, dt float64, text string) {
	for _, r := range text {
		h.frame(s, dt, string(r))
		h.frame(s, dt)
	}
}

func TestComputeScore(t *testing.T) {
	cfg := config.DefaultConfig().Score

	tests := []struct {
		name     string
		stats    core.RoundStats
		expected int
	}{
		{"worked example", core.RoundStats{TimeMs: 30000, Correct: 50, Incorrect: 5}, 421},
		{"perfect instant", core.RoundStats{TimeMs: 0, Correct: 10, Incorrect: 0}, 1200},
		{"half time perfect", core.RoundStats{TimeMs: 30000, Correct: 10, Incorrect: 0}, 600},
		{"over time limit", core.RoundStats{TimeMs: 90000, Correct: 10, Incorrect: 0}, 0},
		{"no keystrokes", core.RoundStats{TimeMs: 1000}, 0},
		{"mistakes equal hits", core.RoundStats{TimeMs: 1000, Correct: 5, Incorrect: 5}, 0},
		{"mostly mistakes", core.RoundStats{TimeMs: 1000, Correct: 6, Incorrect: 4}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeScore(cfg, tc.stats); got != tc.expected {
				t.Errorf("ComputeScore(%+v) = %d, expected %d", tc.stats, got, tc.expected)
			}
		})
	}
}

func TestDisplayAccuracy(t *testing.T) {
	tests := []struct {
		correct, incorrect int
		expected           float64
	}{
		{50, 5, 90},
		{10, 0, 100},
		{0, 0, 0},
		{3, 5, 0},
	}
	for _, tc := range tests {
		if got := DisplayAccuracy(tc.correct, tc.incorrect); got != tc.expected {
			t.Errorf("DisplayAccuracy(%d, %d) = %v, expected %v", tc.correct, tc.incorrect, got, tc.expected)
		}
	}
}

func TestFormatStats(t *testing.T) {
	r := Result(config.DefaultConfig().Score, core.RoundStats{TimeMs: 30000, Correct: 50, Incorrect: 5})
	text := FormatStats(r)
	for _, part := range []string{"Score\n421", "Time: 30.00 sec", "Accuracy: 90.00 %"} {
		if !strings.Contains(text, part) {
			t.Errorf("FormatStats() = %q, missing %q", text, part)
		}
	}
}

func TestAlphaFade(t *testing.T) {
	a := 1.0
	alphaFade(&a, 0, 0.5)
	if a != 0.5 {
		t.Errorf("alphaFade step = %v, expected 0.5", a)
	}
	a = 0.005
	alphaFade(&a, 0, 0.5)
	if a != 0 {
		t.Errorf("alphaFade should snap within 0.01, got %v", a)
	}
}

func TestPositionY(t *testing.T) {
	h := newTestHost(t, nil)
	b := newBase()
	b.Init(h)

	tr := core.NewTransform()
	y := b.positionY(&tr, 0, -0.5, 0.016)
	if y != -0.5 || tr.Y != 11.5 || tr.X != 40 {
		t.Errorf("positionY should snap within 1, got y=%v at (%v, %v)", y, tr.X, tr.Y)
	}

	y = b.positionY(&tr, 0, -4, 0.1)
	if y >= 0 || y <= -4 {
		t.Errorf("positionY should ease partway, got %v", y)
	}
}

func TestBaseInitKeepsFirstHost(t *testing.T) {
	first := newTestHost(t, nil)
	second := newTestHost(t, nil)
	b := newBase()
	b.Init(first)
	b.Init(second)
	if b.Host() != Host(first) {
		t.Error("host should be immutable after the first Init")
	}
}

func TestResizeBeforeBegin(t *testing.T) {
	h := newTestHost(t, nil)
	for _, s := range []Scene{NewWelcome(), NewPlay(), NewGameOver(core.RoundStats{})} {
		s.OnViewResized()
		s.Init(h)
		s.OnViewResized()
		s.Draw(core.NewCanvas(core.NewScreen(10, 4, core.ColorBlack)))
	}
}

func TestWelcomeStartsPlayOnce(t *testing.T) {
	h := newTestHost(t, nil)
	s := NewWelcome()
	h.start(s)

	// Let the intro play out.
	for i := 0; i < 120; i++ {
		h.frame(s, 1.0/60)
	}

	h.typeText(s, 1.0/60, "start")
	if !s.Started() {
		t.Fatal("typing the start word should request the next scene")
	}
	if len(h.changes) != 0 {
		t.Fatal("scene change must wait for the fade out")
	}

	for i := 0; i < 120; i++ {
		h.frame(s, 1.0/60)
	}
	if len(h.changes) != 1 {
		t.Fatalf("ChangeScene called %d times, expected 1", len(h.changes))
	}
	if _, ok := h.changes[0].(*Play); !ok {
		t.Errorf("next scene = %T, expected *Play", h.changes[0])
	}
	if s.Alpha() != 0 {
		t.Errorf("scene alpha = %v, expected faded out", s.Alpha())
	}
}

func TestWelcomeRevealsWidgets(t *testing.T) {
	h := newTestHost(t, nil)
	s := NewWelcome()
	h.start(s)

	h.frame(s, 0.5)
	if s.word.Alpha != 0 || s.footer.Alpha != 0 {
		t.Error("word and footer should stay hidden before the reveal")
	}

	for i := 0; i < 5*60; i++ {
		h.frame(s, 1.0/60)
	}
	if s.word.Alpha != 1 || s.footer.Alpha != 1 || s.hint.Alpha != 0.5 {
		t.Errorf("alphas after reveal = %v, %v, %v", s.word.Alpha, s.footer.Alpha, s.hint.Alpha)
	}
	if s.titleY != h.cfg.Layout.TitleOffset {
		t.Errorf("title offset = %v, expected %v", s.titleY, h.cfg.Layout.TitleOffset)
	}

	screen := core.NewScreen(80, 24, h.cfg.Game.Background)
	s.Draw(core.NewCanvas(screen))
	if !strings.Contains(screen.String(), "s t a r t") {
		t.Errorf("start word not drawn:\n%s", screen.String())
	}
}

// runCountdown advances a play scene until the first word appears.
func runCountdown(t *testing.T, h *testHost, s *Play, dt float64) {
	t.Helper()
	for i := 0; i < 1000 && s.CurrentWord() == ""; i++ {
		h.frame(s, dt)
	}
	if s.CurrentWord() == "" {
		t.Fatal("countdown never finished")
	}
}

func TestPlayRoundTiming(t *testing.T) {
	h := newTestHost(t, map[int][]string{0: {"go"}})
	h.cfg.Round.MaxWords = 3
	s := NewPlay()
	h.start(s)

	countdownFrames := 0
	for s.CurrentWord() == "" {
		h.frame(s, 0.1)
		countdownFrames++
		if countdownFrames > 100 {
			t.Fatal("countdown never finished")
		}
	}
	if countdownFrames != 30 {
		t.Errorf("countdown took %d frames, expected 30", countdownFrames)
	}

	for i := 0; i < 3; i++ {
		h.typeText(s, 0.1, "go")
	}
	for i := 0; i < 10 && len(h.changes) == 0; i++ {
		h.frame(s, 0.1)
	}

	if len(h.changes) != 1 {
		t.Fatalf("ChangeScene called %d times, expected 1", len(h.changes))
	}
	over, ok := h.changes[0].(*GameOver)
	if !ok {
		t.Fatalf("next scene = %T, expected *GameOver", h.changes[0])
	}

	// Timing covers the frames after the countdown through the last keystroke:
	// eleven frames of 0.1s.
	want := core.RoundStats{TimeMs: 1100, Correct: 6, Incorrect: 0}
	if over.Stats() != want {
		t.Errorf("round stats = %+v, expected %+v", over.Stats(), want)
	}
	if s.WordCount() != 4 {
		t.Errorf("WordCount() = %d, expected max words + 1", s.WordCount())
	}
}

func TestPlayLevelProgression(t *testing.T) {
	h := newTestHost(t, map[int][]string{
		0: {"a"},
		1: {"b"},
		2: {"c"},
		3: {"d"},
	})
	s := NewPlay()
	h.start(s)
	runCountdown(t, h, s, 0.25)

	var seen []string
	for s.CurrentWord() != "" {
		w := s.CurrentWord()
		seen = append(seen, w)
		h.typeText(s, 1.0/60, w)
		if len(seen) > 20 {
			t.Fatal("round did not end")
		}
	}

	if got := strings.Join(seen, ""); got != "aabbbcccdd" {
		t.Errorf("word levels = %q, expected %q", got, "aabbbcccdd")
	}
}

func TestPlayCountsMistakes(t *testing.T) {
	h := newTestHost(t, map[int][]string{0: {"ab"}})
	h.cfg.Round.MaxWords = 1
	s := NewPlay()
	h.start(s)
	runCountdown(t, h, s, 0.25)

	h.typeText(s, 0.05, "axb")
	for i := 0; i < 20 && len(h.changes) == 0; i++ {
		h.frame(s, 0.05)
	}
	if len(h.changes) != 1 {
		t.Fatalf("ChangeScene called %d times, expected 1", len(h.changes))
	}
	stats := h.changes[0].(*GameOver).Stats()
	if stats.Correct != 2 || stats.Incorrect != 1 {
		t.Errorf("stats = %+v, expected 2 correct and 1 incorrect", stats)
	}
}

func TestPlayEmptyWordCompletes(t *testing.T) {
	h := newTestHost(t, nil) // nil corpus only yields empty words
	h.cfg.Round.MaxWords = 2
	s := NewPlay()
	h.start(s)

	for i := 0; i < 1000 && len(h.changes) == 0; i++ {
		h.frame(s, 0.1)
	}
	if len(h.changes) != 1 {
		t.Fatalf("empty words should still end the round, changes = %d", len(h.changes))
	}
	if stats := h.changes[0].(*GameOver).Stats(); stats.Correct != 0 || stats.Incorrect != 0 {
		t.Errorf("empty words should count as (0, 0), got %+v", stats)
	}
}

func TestPlayProgressBar(t *testing.T) {
	h := newTestHost(t, map[int][]string{0: {"a", "b", "c"}})
	s := NewPlay()
	h.start(s)
	runCountdown(t, h, s, 0.25)

	if s.Progress() != 0 {
		t.Errorf("progress during first word = %v, expected 0", s.Progress())
	}
	h.typeText(s, 1.0/60, s.CurrentWord())
	for i := 0; i < 120; i++ {
		h.frame(s, 1.0/60)
	}
	// One of ten words done across 80 cells.
	if p := s.Progress(); p != 8 {
		t.Errorf("progress = %v, expected 8", p)
	}

	screen := core.NewScreen(80, 24, h.cfg.Game.Background)
	s.Draw(core.NewCanvas(screen))
	if screen.GetCell(0, 0).BG == h.cfg.Game.Background {
		t.Error("progress bar should tint the background")
	}
	if screen.GetCell(79, 0).BG != h.cfg.Game.Background {
		t.Error("progress bar should not cover the whole row yet")
	}
}

func TestGameOverRecordsAndRestarts(t *testing.T) {
	h := newTestHost(t, nil)
	s := NewGameOver(core.RoundStats{TimeMs: 30000, Correct: 50, Incorrect: 5})
	h.start(s)

	if len(h.results) != 1 {
		t.Fatalf("RecordResult called %d times, expected 1", len(h.results))
	}
	if h.results[0].Score != 421 || h.results[0].Accuracy != 90 {
		t.Errorf("recorded %+v, expected score 421 accuracy 90", h.results[0])
	}

	for i := 0; i < 120; i++ {
		h.frame(s, 1.0/60)
	}
	if s.board.Alpha != 1 || s.boardY != h.cfg.Layout.StatsOffset {
		t.Errorf("stats should be revealed, alpha=%v y=%v", s.board.Alpha, s.boardY)
	}

	h.typeText(s, 1.0/60, "restart")
	for i := 0; i < 120; i++ {
		h.frame(s, 1.0/60)
	}
	if len(h.changes) != 1 {
		t.Fatalf("ChangeScene called %d times, expected 1", len(h.changes))
	}
	if _, ok := h.changes[0].(*Play); !ok {
		t.Errorf("next scene = %T, expected *Play", h.changes[0])
	}
	if len(h.results) != 1 {
		t.Errorf("result should be recorded once, got %d", len(h.results))
	}
}

func TestGameOverDrawsScore(t *testing.T) {
	h := newTestHost(t, nil)
	s := NewGameOver(core.RoundStats{TimeMs: 12340, Correct: 20, Incorrect: 0})
	h.start(s)
	for i := 0; i < 180; i++ {
		h.frame(s, 1.0/60)
	}

	screen := core.NewScreen(80, 24, h.cfg.Game.Background)
	s.Draw(core.NewCanvas(screen))
	out := screen.String()
	for _, part := range []string{"Time: 12.34 sec", "Accuracy: 100.00 %", "WELL DONE!"} {
		if !strings.Contains(out, part) {
			t.Errorf("screen missing %q:\n%s", part, out)
		}
	}
}

package game

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/scene"
	"github.com/vovakirdan/speedtype/internal/words"
)

// recordingScene logs every lifecycle call into a shared journal.
type recordingScene struct {
	name    string
	journal *[]string
	host    scene.Host
	began   bool
	ended   bool
	dts     []float64
	pressed []bool

	onBegin  func(h scene.Host)
	onUpdate func(h scene.Host)
}

func (s *recordingScene) log(event string) {
	*s.journal = append(*s.journal, s.name+":"+event)
}

func (s *recordingScene) Name() string { return s.name }

func (s *recordingScene) Init(h scene.Host) {
	s.host = h
	s.log("init")
}

func (s *recordingScene) Begin() {
	s.began = true
	s.log("begin")
	if s.onBegin != nil {
		s.onBegin(s.host)
	}
}

func (s *recordingScene) Update(dt float64) {
	if !s.began || s.ended {
		s.log("update-out-of-lifecycle")
	}
	s.dts = append(s.dts, dt)
	s.pressed = append(s.pressed, s.host.Input().WasPressed("a"))
	s.log("update")
	if s.onUpdate != nil {
		s.onUpdate(s.host)
	}
}

func (s *recordingScene) End() {
	s.ended = true
	s.log("end")
}

func (s *recordingScene) OnViewResized() { s.log("resize") }

func (s *recordingScene) Draw(canvas *core.Canvas) {
	canvas.Screen().DrawText(0, 0, s.name, core.RGB(0xffffff))
}

type fakeRecorder struct {
	results []core.RoundResult
	err     error
}

func (r *fakeRecorder) RecordResult(result core.RoundResult) error {
	r.results = append(r.results, result)
	return r.err
}

func testCorpus(t *testing.T) *words.Corpus {
	t.Helper()
	c, err := words.New(map[int][]string{0: {"go"}})
	if err != nil {
		t.Fatalf("words.New() failed: %v", err)
	}
	return c
}

func TestNewBeginsInitialScene(t *testing.T) {
	var journal []string
	first := &recordingScene{name: "first", journal: &journal}

	g := New(first, Options{})

	if g.Scene() != first {
		t.Fatalf("Scene() = %v, expected initial scene", g.Scene())
	}
	want := []string{"first:init", "first:begin"}
	if !reflect.DeepEqual(journal, want) {
		t.Errorf("journal = %v, expected %v", journal, want)
	}
	if first.host != scene.Host(g) {
		t.Error("scene was not initialized with the game as host")
	}
	if g.Width() != 80 || g.Height() != 24 {
		t.Errorf("default viewport = %vx%v, expected 80x24", g.Width(), g.Height())
	}
}

func TestChangeSceneDuringUpdateIsDeferred(t *testing.T) {
	var journal []string
	second := &recordingScene{name: "second", journal: &journal}
	first := &recordingScene{name: "first", journal: &journal}
	first.onUpdate = func(h scene.Host) {
		h.ChangeScene(second)
		// still the old scene until Update returns
		*first.journal = append(*first.journal, "first:after-change")
	}

	g := New(first, Options{})
	journal = journal[:0]

	g.Step(0.016)

	want := []string{
		"first:update",
		"first:after-change",
		"first:end",
		"second:init",
		"second:begin",
	}
	if !reflect.DeepEqual(journal, want) {
		t.Errorf("journal = %v, expected %v", journal, want)
	}
	if g.Scene() != second {
		t.Errorf("Scene() = %s, expected second", g.Scene().Name())
	}

	g.Step(0.016)
	if len(second.dts) != 1 {
		t.Errorf("second scene updated %d times, expected 1", len(second.dts))
	}
	if len(first.dts) != 1 {
		t.Errorf("first scene updated %d times after End, expected 1", len(first.dts))
	}
	for _, e := range journal {
		if strings.HasSuffix(e, "out-of-lifecycle") {
			t.Errorf("scene updated outside Begin/End: %s", e)
		}
	}
}

func TestChangeSceneFromBeginChains(t *testing.T) {
	var journal []string
	third := &recordingScene{name: "third", journal: &journal}
	second := &recordingScene{name: "second", journal: &journal}
	second.onBegin = func(h scene.Host) { h.ChangeScene(third) }
	first := &recordingScene{name: "first", journal: &journal}

	g := New(first, Options{})
	journal = journal[:0]
	g.ChangeScene(second)

	want := []string{
		"first:end",
		"second:init",
		"second:begin",
		"second:end",
		"third:init",
		"third:begin",
	}
	if !reflect.DeepEqual(journal, want) {
		t.Errorf("journal = %v, expected %v", journal, want)
	}
	if g.Scene() != third {
		t.Errorf("Scene() = %s, expected third", g.Scene().Name())
	}
}

func TestChangeSceneLoopIsBounded(t *testing.T) {
	var journal []string
	var loop *recordingScene
	loop = &recordingScene{name: "loop", journal: &journal}
	loop.onBegin = func(h scene.Host) {
		h.ChangeScene(&recordingScene{name: "loop", journal: &journal, onBegin: loop.onBegin})
	}

	g := New(loop, Options{})
	if g.Scene() == nil {
		t.Fatal("Scene() = nil after bounded loop")
	}
	if len(g.pending) != 0 {
		t.Errorf("pending = %d, expected drained", len(g.pending))
	}
}

func TestStepClampsDelta(t *testing.T) {
	var journal []string
	s := &recordingScene{name: "s", journal: &journal}
	cfg := config.DefaultConfig()
	cfg.Game.MaxDelta = 0.1

	g := New(s, Options{Config: &cfg})
	g.Step(0.05)
	g.Step(2)
	g.Step(-1)

	want := []float64{0.05, 0.1, 0}
	if !reflect.DeepEqual(s.dts, want) {
		t.Errorf("dts = %v, expected %v", s.dts, want)
	}
	if g.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", g.Frames())
	}
}

func TestUpdateUsesClock(t *testing.T) {
	var journal []string
	s := &recordingScene{name: "s", journal: &journal}

	g := New(s, Options{Clock: core.FixedClock{Delta: 0.02}})
	g.Update()
	g.Update()

	if !reflect.DeepEqual(s.dts, []float64{0.02, 0.02}) {
		t.Errorf("dts = %v, expected two 0.02 frames", s.dts)
	}
}

func TestStepTicksInputBeforeUpdate(t *testing.T) {
	var journal []string
	s := &recordingScene{name: "s", journal: &journal}
	g := New(s, Options{})

	g.Input().Press("a")
	g.Input().Release("a")
	g.Step(0.016)
	g.Step(0.016)

	if !reflect.DeepEqual(s.pressed, []bool{true, false}) {
		t.Errorf("WasPressed per frame = %v, expected [true false]", s.pressed)
	}
}

func TestResize(t *testing.T) {
	var journal []string
	s := &recordingScene{name: "s", journal: &journal}
	g := New(s, Options{Width: 40, Height: 10})
	journal = journal[:0]

	g.Resize(40, 10)
	if len(journal) != 0 {
		t.Errorf("same size resize notified scene: %v", journal)
	}

	g.Resize(100, 30)
	if g.Width() != 100 || g.Height() != 30 {
		t.Errorf("viewport = %vx%v, expected 100x30", g.Width(), g.Height())
	}
	if !reflect.DeepEqual(journal, []string{"s:resize"}) {
		t.Errorf("journal = %v, expected one resize", journal)
	}
	if screen := g.Render(); screen.Width() != 100 || screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", screen.Width(), screen.Height())
	}
}

func TestRenderDrawsActiveScene(t *testing.T) {
	var journal []string
	s := &recordingScene{name: "hello", journal: &journal}
	g := New(s, Options{Width: 20, Height: 3})

	screen := g.Render()
	if got := screen.Row(0); !strings.HasPrefix(got, "hello") {
		t.Errorf("Row(0) = %q, expected scene text", got)
	}
}

func TestRecordResult(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	g := New(nil, Options{Recorder: rec})

	r := core.RoundResult{RoundStats: core.RoundStats{TimeMs: 1000, Correct: 5}, Score: 42, Accuracy: 100}
	g.RecordResult(r)

	if len(rec.results) != 1 || rec.results[0] != r {
		t.Errorf("recorder got %v, expected %v", rec.results, r)
	}
	if got := g.Results(); len(got) != 1 || got[0] != r {
		t.Errorf("Results() = %v, expected the recorded round", got)
	}
}

// typeWord feeds a word one key per frame with an idle frame in between.
func typeWord(g *Game, dt float64, word string) {
	for _, r := range word {
		g.Input().Press(string(r))
		g.Input().Release(string(r))
		g.Step(dt)
		g.Step(dt)
	}
}

func TestFullRound(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Round.MaxWords = 2
	rec := &fakeRecorder{}

	g := New(scene.NewWelcome(), Options{
		Config:   &cfg,
		Corpus:   testCorpus(t),
		Rand:     rand.New(rand.NewSource(7)),
		Recorder: rec,
	})

	typeWord(g, 0.1, "start")
	for i := 0; i < 200 && g.Scene().Name() == "welcome"; i++ {
		g.Step(0.1)
	}
	play, ok := g.Scene().(*scene.Play)
	if !ok {
		t.Fatalf("scene = %s, expected play", g.Scene().Name())
	}

	for i := 0; i < 100 && play.CurrentWord() == ""; i++ {
		g.Step(0.1)
	}
	for i := 0; i < 2; i++ {
		typeWord(g, 0.1, play.CurrentWord())
	}
	for i := 0; i < 20 && g.Scene().Name() == "play"; i++ {
		g.Step(0.1)
	}

	over, ok := g.Scene().(*scene.GameOver)
	if !ok {
		t.Fatalf("scene = %s, expected game_over", g.Scene().Name())
	}
	if over.Stats().Correct != 4 || over.Stats().Incorrect != 0 {
		t.Errorf("stats = %+v, expected 4 correct keystrokes", over.Stats())
	}
	if len(rec.results) != 1 {
		t.Fatalf("recorded %d results, expected 1", len(rec.results))
	}
	if rec.results[0].Score <= 0 {
		t.Errorf("score = %d, expected a positive score", rec.results[0].Score)
	}
}

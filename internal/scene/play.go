package scene

import (
	"math"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/widgets"
)

// transitionEpsilon is the point at which the delay before game over counts as
// elapsed.
const transitionEpsilon = 0.0001

type wordTally struct {
	correct, incorrect int
}

// Play runs a round: a countdown, then a fixed number of words.
type Play struct {
	Base

	schedule config.LevelSchedule
	maxWords int

	countdown         *widgets.Countdown
	countdownFinished bool

	word     *widgets.Word
	wordAnim float64
	finished *wordTally

	progress float64 // current progress bar width

	level     int
	wordCount int

	timing    bool
	roundTime float64 // seconds
	correct   int
	incorrect int

	transitioning bool
	transition    float64
}

// NewPlay creates a play scene.
func NewPlay() *Play {
	return &Play{Base: newBase()}
}

// Name implements Scene.
func (s *Play) Name() string { return "play" }

// Begin starts the countdown.
func (s *Play) Begin() {
	cfg := s.host.Config()
	s.schedule = config.NewLevelSchedule(cfg.Round)
	s.maxWords = cfg.Round.MaxWords
	s.level = s.schedule.LevelAt(0)

	s.countdown = widgets.NewCountdown(cfg.Countdown, s.onCountdownFinished)
	cx, cy := s.center()
	s.countdown.SetPosition(cx, cy)
}

// OnViewResized re-centers the countdown and word.
func (s *Play) OnViewResized() {
	cx, cy := s.center()
	if s.countdown != nil {
		s.countdown.SetPosition(cx, cy)
	}
	if s.word != nil {
		s.word.SetPosition(cx, cy)
	}
}

// Update advances the round.
func (s *Play) Update(dt float64) {
	if s.timing {
		s.roundTime += dt
	}
	shown := s.word

	if s.countdown != nil {
		s.countdown.Update(dt)
		if s.countdownFinished {
			s.countdown = nil
			s.newWord()
			s.timing = true
		}
	}

	if s.word != nil {
		s.word.Update(dt)
		if s.finished == nil && s.word == shown && s.word.Len() == 0 {
			// An empty word cannot be typed; count it as done a frame after it appears.
			s.finished = &wordTally{}
		}
		if s.finished != nil {
			tally := *s.finished
			s.finished = nil
			s.completeWord(tally)
		}
	}

	if s.word != nil {
		s.word.Scale = 1 - 0.3*core.EaseOutElastic(1-s.wordAnim, 0.5) + 0.3
	}
	s.wordAnim = core.Decay(s.wordAnim, dt)

	s.updateProgress(dt)
	s.updateTransition(dt)
}

func (s *Play) onCountdownFinished() {
	s.countdownFinished = true
}

func (s *Play) onWordCompleted(correct, incorrect int) {
	s.finished = &wordTally{correct: correct, incorrect: incorrect}
}

func (s *Play) completeWord(t wordTally) {
	s.correct += t.correct
	s.incorrect += t.incorrect

	if s.wordCount >= s.maxWords {
		s.word = nil
		s.wordCount++
		s.timing = false
		s.transitioning = true
		s.transition = s.host.Config().Round.TransitionDelay
		return
	}
	s.newWord()
}

func (s *Play) newWord() {
	text := s.host.Corpus().PickRandom(s.host.Rand(), s.level)

	s.word = widgets.NewWord(text, s.host.Config().Word, s.host.Input(), s.host.Measure(), s.onWordCompleted)
	cx, cy := s.center()
	s.word.SetPosition(cx, cy)

	s.wordAnim = 1
	s.wordCount++
	s.level = s.schedule.LevelAt(s.wordCount)
}

func (s *Play) updateProgress(dt float64) {
	target := 0.0
	if s.maxWords > 0 {
		target = math.Max(0, float64(s.wordCount-1)/float64(s.maxWords)*s.host.Width())
	}
	dw := target - s.progress
	if dw > -0.01 && dw < 0.01 {
		s.progress = target
	} else {
		s.progress += dw * dt * 10
	}
}

func (s *Play) updateTransition(dt float64) {
	if !s.transitioning {
		return
	}
	s.transition -= dt
	if s.transition <= transitionEpsilon {
		s.transitioning = false
		s.host.ChangeScene(NewGameOver(s.Stats()))
	}
}

// Stats returns the tallies of the round so far.
func (s *Play) Stats() core.RoundStats {
	return core.RoundStats{
		TimeMs:    int64(math.Floor(s.roundTime*1000 + 0.5)),
		Correct:   s.correct,
		Incorrect: s.incorrect,
	}
}

// WordCount returns how many words have been drawn.
func (s *Play) WordCount() int {
	return s.wordCount
}

// Level returns the corpus level the next word is drawn from.
func (s *Play) Level() int {
	return s.level
}

// CurrentWord returns the text of the word on screen, or "" between words.
func (s *Play) CurrentWord() string {
	if s.word == nil {
		return ""
	}
	return s.word.Text()
}

// Progress returns the progress bar width.
func (s *Play) Progress() float64 {
	return s.progress
}

// Draw renders the progress bar, countdown and word.
func (s *Play) Draw(canvas *core.Canvas) {
	if s.host == nil {
		return
	}
	game := s.host.Config().Game

	canvas.Push(s.transform())
	canvas.FillRect(core.NewRect(0, 0, s.progress, s.host.Height()), game.Panel, game.PanelAlpha)
	if s.countdown != nil {
		s.countdown.Draw(canvas)
	}
	if s.word != nil {
		s.word.Draw(canvas)
	}
	canvas.Pop()
}

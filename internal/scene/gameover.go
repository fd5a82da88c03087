package scene

import (
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/widgets"
)

// GameOver shows the round result and waits for the restart word.
type GameOver struct {
	Base

	stats  core.RoundStats
	result core.RoundResult

	elapsed float64

	title        *widgets.Marquee
	titleY       float64
	titleTargetY float64

	word *widgets.Word

	board        *widgets.Label
	boardY       float64
	boardTargetY float64

	start bool
	ended bool
}

// NewGameOver creates the score screen for a finished round.
func NewGameOver(stats core.RoundStats) *GameOver {
	return &GameOver{Base: newBase(), stats: stats}
}

// Name implements Scene.
func (s *GameOver) Name() string { return "game_over" }

// Stats returns the round tallies the scene was created with.
func (s *GameOver) Stats() core.RoundStats {
	return s.stats
}

// Result returns the scored round. Valid after Begin.
func (s *GameOver) Result() core.RoundResult {
	return s.result
}

// Begin scores the round, reports it and builds the widgets.
func (s *GameOver) Begin() {
	cfg := s.host.Config()
	cx, cy := s.center()

	s.result = Result(cfg.Score, s.stats)
	s.host.RecordResult(s.result)

	s.title = widgets.NewMarquee(cfg.GameOver.Title, cfg.Marquee, s.host.Measure())
	s.title.SetPosition(cx, cy)

	s.word = widgets.NewWord(cfg.GameOver.Word, cfg.Word, s.host.Input(), s.host.Measure(), s.onRestartWordCompleted)
	s.word.Alpha = 0
	s.word.SetPosition(cx, cy)

	s.board = widgets.NewLabel(FormatStats(s.result), cfg.Game.Foreground)
	s.board.SetAnchorY(0)
	s.board.SetLineAlpha(0, 0.5)
	s.board.Alpha = 0
	s.board.SetPosition(cx, cy)
}

// OnViewResized re-centers the widgets.
func (s *GameOver) OnViewResized() {
	if s.title == nil {
		return
	}
	cx, cy := s.center()
	s.title.SetPosition(cx, cy+s.titleY)
	s.word.SetPosition(cx, cy)
	s.board.SetPosition(cx, cy+s.boardY)
}

// Update runs the intro and outro animations.
func (s *GameOver) Update(dt float64) {
	s.elapsed += dt

	if !s.ended && s.start && s.alpha < 0.01 {
		s.ended = true
		s.host.ChangeScene(NewPlay())
	}

	if s.start {
		alphaFade(&s.alpha, 0, dt*10)
	}

	s.title.Update(dt)
	s.titleY = s.positionY(&s.title.Transform, s.titleY, s.titleTargetY, dt)

	cfg := s.host.Config()
	if s.elapsed >= cfg.GameOver.Reveal {
		s.titleTargetY = cfg.Layout.TitleOffset
		s.boardTargetY = cfg.Layout.StatsOffset
		alphaFade(&s.word.Alpha, 1, dt*5)
		alphaFade(&s.board.Alpha, 1, dt*5)
		s.boardY = s.positionY(&s.board.Transform, s.boardY, s.boardTargetY, dt)
	}

	s.word.Update(dt)
}

func (s *GameOver) onRestartWordCompleted(_, _ int) {
	s.start = true
}

// Draw renders the scene over a translucent backdrop.
func (s *GameOver) Draw(canvas *core.Canvas) {
	if s.title == nil {
		return
	}
	game := s.host.Config().Game

	canvas.Push(s.transform())
	canvas.FillRect(core.NewRect(0, 0, s.host.Width(), s.host.Height()), game.Panel, game.PanelAlpha)
	s.title.Draw(canvas)
	s.word.Draw(canvas)
	s.board.Draw(canvas)
	canvas.Pop()
}

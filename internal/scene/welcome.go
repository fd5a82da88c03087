package scene

import (
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/widgets"
)

// Welcome shows the title and waits for the player to type the start word.
type Welcome struct {
	Base

	elapsed float64

	title        *widgets.Marquee
	titleY       float64
	titleTargetY float64

	word   *widgets.Word
	footer *widgets.Label
	hint   *widgets.Label

	start bool
	ended bool
}

// NewWelcome creates the welcome scene.
func NewWelcome() *Welcome {
	return &Welcome{Base: newBase()}
}

// Name implements Scene.
func (s *Welcome) Name() string { return "welcome" }

// Begin builds the scene widgets.
func (s *Welcome) Begin() {
	cfg := s.host.Config()
	cx, cy := s.center()

	s.title = widgets.NewMarquee(cfg.Welcome.Title, cfg.Marquee, s.host.Measure())
	s.title.SetPosition(cx, cy)

	s.word = widgets.NewWord(cfg.Welcome.Word, cfg.Word, s.host.Input(), s.host.Measure(), s.onStartWordCompleted)
	s.word.Alpha = 0
	s.word.SetPosition(cx, cy)

	s.footer = widgets.NewLabel(cfg.Welcome.Footer, cfg.Marquee.Highlight)
	s.footer.Alpha = 0

	s.hint = widgets.NewLabel(cfg.Welcome.Hint, cfg.Game.Foreground)
	s.hint.Alpha = 0

	s.placeStatic()
}

func (s *Welcome) placeStatic() {
	layout := s.host.Config().Layout
	cx, cy := s.center()
	s.word.SetPosition(cx, cy)
	s.footer.SetPosition(cx, cy+layout.FooterOffset)
	s.hint.SetPosition(cx, cy+layout.HintOffset)
}

// OnViewResized re-centers the widgets.
func (s *Welcome) OnViewResized() {
	if s.title == nil {
		return
	}
	cx, cy := s.center()
	s.title.SetPosition(cx, cy+s.titleY)
	s.placeStatic()
}

// Update runs the intro and outro animations.
func (s *Welcome) Update(dt float64) {
	s.elapsed += dt

	if !s.ended && s.start && s.alpha < 0.01 {
		s.ended = true
		s.host.ChangeScene(NewPlay())
	}

	s.animateIn(dt)
	if s.start {
		alphaFade(&s.alpha, 0, dt*10)
	}

	s.title.Update(dt)
	s.titleY = s.positionY(&s.title.Transform, s.titleY, s.titleTargetY, dt)

	s.word.Update(dt)
}

func (s *Welcome) animateIn(dt float64) {
	cfg := s.host.Config()
	reveal := cfg.Welcome.Reveal

	if s.elapsed >= reveal {
		s.titleTargetY = cfg.Layout.TitleOffset
		alphaFade(&s.word.Alpha, 1, dt*5)
	}
	if s.elapsed > reveal+1 {
		alphaFade(&s.footer.Alpha, 1, dt*5)
	}
	if s.elapsed > reveal+2 {
		alphaFade(&s.hint.Alpha, 0.5, dt*5)
	}
}

func (s *Welcome) onStartWordCompleted(_, _ int) {
	s.start = true
}

// Started reports whether the start word has been typed.
func (s *Welcome) Started() bool {
	return s.start
}

// Draw renders the scene.
func (s *Welcome) Draw(canvas *core.Canvas) {
	if s.title == nil {
		return
	}
	canvas.Push(s.transform())
	s.title.Draw(canvas)
	s.word.Draw(canvas)
	s.footer.Draw(canvas)
	s.hint.Draw(canvas)
	canvas.Pop()
}

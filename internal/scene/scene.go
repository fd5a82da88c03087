// Package scene implements the screens of a typing round: welcome, play and
// game over. Scenes are driven by the game loop through the Scene interface and
// reach the rest of the game only through Host.
package scene

import (
	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
	"github.com/vovakirdan/speedtype/internal/words"
)

// Scene is one screen of the game. The host calls Init and Begin before the
// first Update, and End after the last one.
type Scene interface {
	Name() string
	Init(host Host)
	Begin()
	Update(dt float64)
	End()
	OnViewResized()
	Draw(canvas *core.Canvas)
}

// Host is what a scene may use from the running game.
type Host interface {
	Width() float64
	Height() float64
	Input() *core.InputState
	Config() *config.Config
	Corpus() *words.Corpus
	Rand() words.Rand
	Measure() core.MeasureFunc

	// ChangeScene replaces the active scene. When called from inside Update the
	// swap happens after Update returns.
	ChangeScene(next Scene)

	// RecordResult reports a finished round.
	RecordResult(result core.RoundResult)
}

// Base carries the state every scene shares: the host and the scene opacity.
// Scenes embed it.
type Base struct {
	host  Host
	alpha float64
}

func newBase() Base {
	return Base{alpha: 1}
}

// Init stores the host. A scene is bound to the first host it is given.
func (b *Base) Init(host Host) {
	if b.host == nil {
		b.host = host
	}
}

// Host returns the host the scene was initialized with.
func (b *Base) Host() Host {
	return b.host
}

// Alpha returns the scene opacity.
func (b *Base) Alpha() float64 {
	return b.alpha
}

// End is a no-op by default.
func (b *Base) End() {}

// OnViewResized is a no-op by default.
func (b *Base) OnViewResized() {}

func (b *Base) center() (float64, float64) {
	if b.host == nil {
		return 0, 0
	}
	return b.host.Width() / 2, b.host.Height() / 2
}

// transform is the scene container: full opacity scaled by the scene alpha.
func (b *Base) transform() core.Transform {
	t := core.NewTransform()
	t.Alpha = b.alpha
	return t
}

// alphaFade moves alpha toward target by rate, snapping when close.
func alphaFade(alpha *float64, target, rate float64) {
	da := target - *alpha
	if da > -0.01 && da < 0.01 {
		*alpha = target
		return
	}
	*alpha += da * rate
}

// positionY eases an offset from the viewport center toward target and places t
// there. It returns the new offset.
func (b *Base) positionY(t *core.Transform, current, target, dt float64) float64 {
	dy := target - current
	if dy > -1 && dy < 1 {
		current = target
	} else {
		current += dy * (1 - 1/(1+dt)) * 10
	}
	cx, cy := b.center()
	t.SetPosition(cx, cy+current)
	return current
}

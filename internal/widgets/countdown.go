// Package widgets contains the animated text elements scenes are built from.
// Widgets are advanced with Update(dt) and drawn under their own transform.
package widgets

import (
	"strconv"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
)

// timerEpsilon absorbs float drift when per-frame deltas add up to a full second.
const timerEpsilon = 1e-9

// Countdown counts down once per second from From to To and then fires its
// callback exactly once.
type Countdown struct {
	core.Transform

	cfg        config.CountdownConfig
	value      int
	timer      float64
	anim       float64
	finished   bool
	onFinished func()

	sprite core.Sprite
}

// NewCountdown creates a countdown showing cfg.From.
func NewCountdown(cfg config.CountdownConfig, onFinished func()) *Countdown {
	c := &Countdown{
		Transform:  core.NewTransform(),
		cfg:        cfg,
		value:      cfg.From,
		timer:      1,
		onFinished: onFinished,
		sprite:     core.NewSprite("", cfg.Tint),
	}
	c.setValue(cfg.From)
	return c
}

func (c *Countdown) setValue(v int) {
	c.value = v
	c.anim = 1
	c.sprite.Text = strconv.Itoa(v)
}

// Value returns the number currently shown.
func (c *Countdown) Value() int {
	return c.value
}

// Finished reports whether the callback has fired.
func (c *Countdown) Finished() bool {
	return c.finished
}

// Sprite returns the number sprite.
func (c *Countdown) Sprite() core.Sprite {
	return c.sprite
}

// Update advances the countdown. It is a no-op once finished.
func (c *Countdown) Update(dt float64) {
	if c.finished {
		return
	}

	if c.value >= c.cfg.To {
		c.timer -= dt
		if c.timer <= timerEpsilon {
			c.timer = 1
			c.setValue(c.value - 1)
		}
	}

	if c.value < c.cfg.To {
		c.finished = true
		c.sprite.Visible = false
		if c.onFinished != nil {
			c.onFinished()
		}
		return
	}

	c.sprite.Scale = 1 - 0.3*core.EaseOutElastic(1-c.anim, 0.7) + 0.3
	c.sprite.Alpha = 0.5 + c.anim*0.5
	c.anim = core.Decay(c.anim, dt)
}

// Draw renders the current number.
func (c *Countdown) Draw(canvas *core.Canvas) {
	canvas.Push(c.Transform)
	canvas.DrawSprite(&c.sprite)
	canvas.Pop()
}

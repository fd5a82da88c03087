package widgets

import (
	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
)

type marqueeChar struct {
	sprite core.Sprite
	width  float64
	delay  float64
	bounce float64
	fill   float64
}

// Marquee reveals its text one character at a time, then keeps a highlight
// bouncing through the characters left to right.
type Marquee struct {
	core.Transform

	cfg         config.MarqueeConfig
	chars       []marqueeChar
	nextBounce  int
	bounceDelay float64
}

// NewMarquee lays out text with widths from measure.
func NewMarquee(text string, cfg config.MarqueeConfig, measure core.MeasureFunc) *Marquee {
	if measure == nil {
		measure = core.TextWidth
	}
	m := &Marquee{
		Transform:   core.NewTransform(),
		cfg:         cfg,
		bounceDelay: cfg.NextBounceDelay,
	}
	i := 0
	for _, r := range text {
		s := core.NewSprite(string(r), cfg.Fill)
		s.Visible = false
		m.chars = append(m.chars, marqueeChar{
			sprite: s,
			width:  measure(string(r)),
			delay:  cfg.NextCharacterDelay * float64(i+1),
			bounce: 1,
			fill:   1,
		})
		i++
	}
	return m
}

// Len returns the number of characters.
func (m *Marquee) Len() int {
	return len(m.chars)
}

// VisibleCount returns how many characters have been revealed.
func (m *Marquee) VisibleCount() int {
	n := 0
	for i := range m.chars {
		if m.chars[i].sprite.Visible {
			n++
		}
	}
	return n
}

// Char returns the sprite of character i.
func (m *Marquee) Char(i int) core.Sprite {
	return m.chars[i].sprite
}

// Update advances reveal, bounce and highlight animations.
func (m *Marquee) Update(dt float64) {
	if len(m.chars) == 0 {
		return
	}

	m.updateBounceDelay(dt)

	x := -m.visibleWidth()/2 + m.chars[0].width/2
	for i := range m.chars {
		c := &m.chars[i]
		if m.waitForReveal(c, dt) {
			continue
		}
		x = m.bounce(c, x, dt)
		m.updateFill(c, dt)
	}
}

func (m *Marquee) updateBounceDelay(dt float64) {
	m.bounceDelay -= dt
	if m.bounceDelay > 0 {
		return
	}
	c := &m.chars[m.nextBounce]
	c.fill = 1
	c.bounce = 1
	m.nextBounce++
	if m.nextBounce >= len(m.chars) {
		m.nextBounce = 0
		m.bounceDelay = m.cfg.NextBounceDelay
	} else {
		m.bounceDelay = m.cfg.NextCharacterDelay
	}
}

// waitForReveal reports whether c is still hidden after this frame.
func (m *Marquee) waitForReveal(c *marqueeChar, dt float64) bool {
	if c.sprite.Visible {
		return false
	}
	c.delay -= dt
	if c.delay <= 0 {
		c.sprite.Visible = true
		return false
	}
	return true
}

func (m *Marquee) bounce(c *marqueeChar, x, dt float64) float64 {
	h := m.cfg.BounceHeight
	c.sprite.X = x
	c.sprite.Y = -h + core.EaseOutElastic(1-c.bounce, 0.84)*h
	c.bounce = core.Decay(c.bounce, dt*m.cfg.BounceSpeed)
	return x + c.width
}

func (m *Marquee) updateFill(c *marqueeChar, dt float64) {
	c.sprite.Tint = core.LerpColor(m.cfg.Fill, m.cfg.Highlight, c.fill)
	c.fill = core.Decay(c.fill, dt*m.cfg.FillSpeed)
}

func (m *Marquee) visibleWidth() float64 {
	total := 0.0
	for i := range m.chars {
		if m.chars[i].sprite.Visible {
			total += m.chars[i].width
		}
	}
	return total
}

// Draw renders the revealed characters.
func (m *Marquee) Draw(canvas *core.Canvas) {
	if len(m.chars) == 0 {
		return
	}
	canvas.Push(m.Transform)
	for i := range m.chars {
		canvas.DrawSprite(&m.chars[i].sprite)
	}
	canvas.Pop()
}

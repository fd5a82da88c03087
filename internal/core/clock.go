package core

import "time"

// Clock supplies the elapsed time between frames.
type Clock interface {
	// Tick returns the seconds elapsed since the previous call.
	Tick() float64
}

// FrameClock is a wall-clock Clock. The first Tick returns 0.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock creates a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds since the previous Tick.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// FixedClock returns the same delta every tick. Used for headless runs and tests.
type FixedClock struct {
	Delta float64
}

// Tick returns the fixed delta.
func (c FixedClock) Tick() float64 {
	return c.Delta
}

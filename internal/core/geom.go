// Package core provides the fundamental types shared by the game logic and the
// platform: colors, the cell screen, the sprite canvas, the frame clock and the
// keyboard state. It has no Bubble Tea dependency so the simulation stays pure
// and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in viewport units (terminal cells).
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Decay moves a timer toward zero by amount without going negative.
func Decay(timer, amount float64) float64 {
	return math.Max(0, timer-amount)
}

// Round converts a viewport coordinate to a cell index.
// Halves round toward positive infinity so small negative offsets settle on 0.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

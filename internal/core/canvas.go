package core

import (
	"math"
	"strings"
)

// Sprite is one drawable text element, positioned relative to its parent
// transform. The horizontal anchor is always the center of the text.
type Sprite struct {
	Text     string
	X, Y     float64
	Scale    float64
	Alpha    float64
	Rotation float64 // radians; not representable in a terminal
	Tint     Color
	Visible  bool

	// AnchorY selects which line sits at Y: 0 puts the first line there,
	// 0.5 centers a multi-line block.
	AnchorY float64
}

// NewSprite creates a visible, opaque sprite.
func NewSprite(text string, tint Color) Sprite {
	return Sprite{
		Text:    text,
		Scale:   1,
		Alpha:   1,
		Tint:    tint,
		Visible: true,
		AnchorY: 0.5,
	}
}

// Transform is a container: children are offset by X/Y, their offsets are
// multiplied by Scale and their alpha by Alpha.
type Transform struct {
	X, Y  float64
	Scale float64
	Alpha float64
}

// NewTransform returns the identity transform at the origin.
func NewTransform() Transform {
	return Transform{Scale: 1, Alpha: 1}
}

// SetPosition moves the container origin.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// Canvas draws sprites onto a Screen through a stack of transforms.
// Alpha is resolved by blending the tint toward the screen background.
type Canvas struct {
	screen *Screen
	stack  []Transform
}

// NewCanvas clears the screen and returns a canvas with an identity transform.
func NewCanvas(screen *Screen) *Canvas {
	screen.Clear()
	return &Canvas{
		screen: screen,
		stack:  []Transform{NewTransform()},
	}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) top() Transform {
	return c.stack[len(c.stack)-1]
}

// Push enters a child transform.
func (c *Canvas) Push(t Transform) {
	parent := c.top()
	c.stack = append(c.stack, Transform{
		X:     parent.X + t.X*parent.Scale,
		Y:     parent.Y + t.Y*parent.Scale,
		Scale: parent.Scale * t.Scale,
		Alpha: parent.Alpha * t.Alpha,
	})
}

// Pop leaves the current transform. The root transform is never popped.
func (c *Canvas) Pop() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Alpha returns the accumulated alpha of the current transform.
func (c *Canvas) Alpha() float64 {
	return c.top().Alpha
}

// blend resolves a tint at the given opacity against the background.
func (c *Canvas) blend(tint Color, alpha float64) Color {
	return LerpColor(c.screen.Background(), tint, alpha)
}

// DrawSprite renders a sprite under the current transform.
func (c *Canvas) DrawSprite(s *Sprite) {
	if s == nil || !s.Visible || s.Text == "" {
		return
	}
	t := c.top()
	alpha := t.Alpha * s.Alpha
	if alpha <= 0.01 {
		return
	}
	fg := c.blend(s.Tint, alpha)

	lines := strings.Split(s.Text, "\n")
	cx := t.X + s.X*t.Scale
	top := t.Y + s.Y*t.Scale - s.AnchorY*float64(len(lines)-1)

	for i, line := range lines {
		w := TextWidth(line)
		x := Round(cx - w/2)
		y := Round(top + float64(i))
		c.screen.DrawText(x, y, line, fg)
	}
}

// FillRect paints cell backgrounds in a rectangle given in the current
// transform's coordinates.
func (c *Canvas) FillRect(r Rect, color Color, alpha float64) {
	if r.Empty() {
		return
	}
	t := c.top()
	bg := c.blend(color, t.Alpha*alpha)

	x0 := int(math.Floor(t.X + r.X*t.Scale))
	y0 := int(math.Floor(t.Y + r.Y*t.Scale))
	x1 := Round(t.X + r.Right()*t.Scale)
	y1 := Round(t.Y + r.Bottom()*t.Scale)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetBackground(x, y, bg)
		}
	}
}

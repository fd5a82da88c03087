package widgets

import (
	"strings"

	"github.com/vovakirdan/speedtype/internal/core"
)

// Label is static text, one sprite per line, stacked downward.
type Label struct {
	core.Transform

	lines   []core.Sprite
	anchorY float64
}

// NewLabel creates a label from newline-separated text. The block is centered
// vertically on the origin.
func NewLabel(text string, tint core.Color) *Label {
	l := &Label{Transform: core.NewTransform(), anchorY: 0.5}
	l.SetText(text, tint)
	return l
}

// SetText replaces the label contents.
func (l *Label) SetText(text string, tint core.Color) {
	l.lines = l.lines[:0]
	for _, line := range strings.Split(text, "\n") {
		l.lines = append(l.lines, core.NewSprite(line, tint))
	}
	l.layout()
}

// SetAnchorY selects which part of the block sits on the origin:
// 0 is the first line, 0.5 the middle.
func (l *Label) SetAnchorY(anchor float64) {
	l.anchorY = anchor
	l.layout()
}

// SetLineAlpha sets the opacity of one line.
func (l *Label) SetLineAlpha(i int, alpha float64) {
	if i >= 0 && i < len(l.lines) {
		l.lines[i].Alpha = alpha
	}
}

// SetLineTint sets the color of one line.
func (l *Label) SetLineTint(i int, tint core.Color) {
	if i >= 0 && i < len(l.lines) {
		l.lines[i].Tint = tint
	}
}

// Lines returns the number of lines.
func (l *Label) Lines() int {
	return len(l.lines)
}

// Line returns the sprite of line i.
func (l *Label) Line(i int) core.Sprite {
	return l.lines[i]
}

func (l *Label) layout() {
	top := -l.anchorY * float64(len(l.lines)-1)
	for i := range l.lines {
		l.lines[i].X = 0
		l.lines[i].Y = top + float64(i)
		l.lines[i].AnchorY = 0
	}
}

// Draw renders every line.
func (l *Label) Draw(canvas *core.Canvas) {
	canvas.Push(l.Transform)
	for i := range l.lines {
		canvas.DrawSprite(&l.lines[i])
	}
	canvas.Pop()
}

package widgets

import (
	"math"

	"github.com/vovakirdan/speedtype/internal/config"
	"github.com/vovakirdan/speedtype/internal/core"
)

// Character opacities by typing state.
const (
	alphaPending = 0.4
	alphaCurrent = 0.66
	alphaTyped   = 1
)

// KeySource is the keyboard view a Word reads.
// *core.InputState satisfies it.
type KeySource interface {
	AnyPressed() bool
	WasPressed(key string) bool
}

type wordChar struct {
	key       string
	sprite    core.Sprite
	width     float64
	bounce    float64
	incorrect float64
}

// Word validates keystrokes against its text one character at a time.
//
// Each frame at most one keystroke is judged: if any key went down and the
// expected character is among them the cursor advances, otherwise the current
// character counts as a miss. The completion callback fires once, on the frame
// the last character is typed.
type Word struct {
	core.Transform

	cfg   config.WordConfig
	input KeySource
	text  string
	chars []wordChar

	next      int
	correct   int
	incorrect int
	completed bool

	caret     core.Sprite
	caretTime float64

	onCompleted func(correct, incorrect int)
}

// NewWord lays out text centered around the word origin.
func NewWord(text string, cfg config.WordConfig, input KeySource, measure core.MeasureFunc, onCompleted func(correct, incorrect int)) *Word {
	if measure == nil {
		measure = core.TextWidth
	}
	w := &Word{
		Transform:   core.NewTransform(),
		cfg:         cfg,
		input:       input,
		text:        text,
		onCompleted: onCompleted,
	}

	total := 0.0
	for _, r := range text {
		key := string(r)
		s := core.NewSprite(key, cfg.Fill)
		s.Alpha = alphaPending
		c := wordChar{key: key, sprite: s, width: measure(key)}
		total += c.width
		w.chars = append(w.chars, c)
	}

	if len(w.chars) > 0 {
		total += cfg.CharacterSpacing * float64(len(w.chars)-1)
		x := -total/2 + w.chars[0].width/2
		for i := range w.chars {
			w.chars[i].sprite.X = x
			x += w.chars[i].width + cfg.CharacterSpacing
		}
	}

	w.caret = core.NewSprite(cfg.Caret, cfg.IncorrectFill)
	w.caret.Alpha = 0.75
	w.caret.Visible = len(w.chars) > 0
	return w
}

// Text returns the word being typed.
func (w *Word) Text() string {
	return w.text
}

// Len returns the number of characters.
func (w *Word) Len() int {
	return len(w.chars)
}

// Next returns the index of the character expected next.
func (w *Word) Next() int {
	return w.next
}

// Correct returns the number of correct keystrokes so far.
func (w *Word) Correct() int {
	return w.correct
}

// Incorrect returns the number of incorrect keystrokes so far.
func (w *Word) Incorrect() int {
	return w.incorrect
}

// Completed reports whether every character has been typed.
func (w *Word) Completed() bool {
	return w.completed
}

// Char returns the sprite of character i.
func (w *Word) Char(i int) core.Sprite {
	return w.chars[i].sprite
}

// Caret returns the caret sprite.
func (w *Word) Caret() core.Sprite {
	return w.caret
}

// Update judges this frame's input and advances the animations.
func (w *Word) Update(dt float64) {
	w.handleInput()
	w.updateCharacters(dt)
	w.updateCaret(dt)
}

func (w *Word) handleInput() {
	if w.next >= len(w.chars) || w.input == nil || !w.input.AnyPressed() {
		return
	}

	c := &w.chars[w.next]
	if w.input.WasPressed(c.key) {
		c.sprite.Alpha = alphaTyped
		c.bounce = 1
		c.incorrect = 0
		w.next++
		w.correct++
	} else {
		c.incorrect = 1
		w.incorrect++
	}

	if w.next >= len(w.chars) && !w.completed {
		w.completed = true
		if w.onCompleted != nil {
			w.onCompleted(w.correct, w.incorrect)
		}
	}
}

func (w *Word) updateCharacters(dt float64) {
	if w.next < len(w.chars) {
		c := &w.chars[w.next]
		c.sprite.Alpha = alphaCurrent
		w.animateIncorrect(c, dt)
	}

	for i := 0; i < w.next && i < len(w.chars); i++ {
		c := &w.chars[i]
		w.animateBounce(c, dt)
		w.animateIncorrect(c, dt)
	}
}

// animateBounce pops a typed character up and lets it settle BounceHeight above
// the baseline.
func (w *Word) animateBounce(c *wordChar, dt float64) {
	h := w.cfg.BounceHeight
	c.sprite.Y = -h*2 + core.EaseOutElastic(1-c.bounce, 0.7)*h
	c.bounce = core.Decay(c.bounce, dt*w.cfg.BounceSpeed)
}

// animateIncorrect shakes a mistyped character down and back while fading its
// tint from the incorrect color to the normal fill.
func (w *Word) animateIncorrect(c *wordChar, dt float64) {
	c.sprite.Rotation = -1 + core.EaseOutElastic(1-c.incorrect*1.025, 0.9)
	if c.incorrect > 0 {
		s := w.cfg.ShakeHeight
		c.sprite.Y = s - core.EaseOutElastic(1-c.incorrect, 0.8)*s
		c.sprite.Alpha = alphaCurrent + c.incorrect*(1-alphaCurrent)
	}
	c.sprite.Tint = core.LerpColor(w.cfg.Fill, w.cfg.IncorrectFill, c.incorrect)
	c.incorrect = core.Decay(c.incorrect, dt*w.cfg.IncorrectDecay)
}

func (w *Word) updateCaret(dt float64) {
	if w.next >= len(w.chars) {
		w.caret.Visible = false
		return
	}
	w.caretTime += dt
	w.caret.X = w.chars[w.next].sprite.X
	w.caret.Y = w.cfg.CaretOffset + math.Sin(w.caretTime*4)*w.cfg.CaretAmplitude
}

// Draw renders the characters and the caret.
func (w *Word) Draw(canvas *core.Canvas) {
	canvas.Push(w.Transform)
	for i := range w.chars {
		canvas.DrawSprite(&w.chars[i].sprite)
	}
	canvas.DrawSprite(&w.caret)
	canvas.Pop()
}

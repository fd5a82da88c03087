package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/speedtype/internal/core"
)

// KeyAction is what a key message means to the play screen.
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	KeyActionQuit
	KeyActionScreenshot
	KeyActionType
)

// GameKeyMap defines the bindings that are not typed into the game.
type GameKeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// MapKey translates a key message. For KeyActionType the typed runes are
// returned; everything else carries none.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (KeyAction, []rune) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return KeyActionQuit, nil
	case key.Matches(msg, km.keys.Screenshot):
		return KeyActionScreenshot, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		return KeyActionType, []rune{' '}
	case tea.KeyRunes:
		runes := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				runes = append(runes, r)
			}
		}
		if len(runes) == 0 {
			return KeyActionNone, nil
		}
		return KeyActionType, runes
	}
	return KeyActionNone, nil
}

// maxQueuedKeys bounds typing ahead of the frame rate.
const maxQueuedKeys = 64

// keyFeeder turns terminal key presses into frame-paced Press/Release pairs.
//
// Terminals report no key-up events, so every key is pressed and released in
// the same frame, which keeps it down for exactly one tick. At most one key is
// fed per tick. The same key on two consecutive ticks would show no press edge,
// so a repeated letter waits one idle tick.
type keyFeeder struct {
	queue   []rune
	last    rune
	fedLast bool // whether the previous tick fed a key
}

func newKeyFeeder() *keyFeeder {
	return &keyFeeder{}
}

// Push queues typed runes. Runes beyond the queue limit are dropped.
func (f *keyFeeder) Push(runes ...rune) {
	for _, r := range runes {
		if len(f.queue) >= maxQueuedKeys {
			return
		}
		f.queue = append(f.queue, r)
	}
}

// Pending returns the number of queued runes.
func (f *keyFeeder) Pending() int {
	return len(f.queue)
}

// Feed hands at most one key to input. It must be called once per frame,
// before the frame's InputState.Tick.
func (f *keyFeeder) Feed(input *core.InputState) {
	if len(f.queue) == 0 {
		f.fedLast = false
		return
	}
	next := f.queue[0]
	if f.fedLast && unicode.ToLower(next) == unicode.ToLower(f.last) {
		f.fedLast = false
		return
	}

	f.queue = f.queue[1:]
	k := string(next)
	input.Press(k)
	input.Release(k)
	f.last = next
	f.fedLast = true
}

// Reset drops queued keys.
func (f *keyFeeder) Reset() {
	f.queue = f.queue[:0]
	f.fedLast = false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

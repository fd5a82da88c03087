package core

import "strings"

// InputState is a double-buffered keyboard tracker.
//
// Key events arrive at any time through Press and Release and are buffered.
// They only become observable after the next Tick, so every consumer sees the
// same snapshot for the whole frame. Edge queries (WasPressed, WasReleased)
// compare the current snapshot with the previous one.
type InputState struct {
	current  map[string]struct{}
	previous map[string]struct{}
	toAdd    map[string]struct{}
	toRemove map[string]struct{}
}

// NewInputState creates an empty keyboard state.
func NewInputState() *InputState {
	return &InputState{
		current:  make(map[string]struct{}),
		previous: make(map[string]struct{}),
		toAdd:    make(map[string]struct{}),
		toRemove: make(map[string]struct{}),
	}
}

// normalizeKey makes key identifiers case-insensitive.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Press queues a key-down event for the next tick.
func (s *InputState) Press(key string) {
	s.toAdd[normalizeKey(key)] = struct{}{}
}

// Release queues a key-up event for the next tick.
func (s *InputState) Release(key string) {
	s.toRemove[normalizeKey(key)] = struct{}{}
}

// IsDown returns true if the key is held in the current snapshot.
func (s *InputState) IsDown(key string) bool {
	_, ok := s.current[normalizeKey(key)]
	return ok
}

// WasPressed returns true if the key went down this frame.
func (s *InputState) WasPressed(key string) bool {
	key = normalizeKey(key)
	_, now := s.current[key]
	_, before := s.previous[key]
	return now && !before
}

// WasReleased returns true if the key went up this frame.
func (s *InputState) WasReleased(key string) bool {
	key = normalizeKey(key)
	_, now := s.current[key]
	_, before := s.previous[key]
	return before && !now
}

// AnyPressed returns true if any key went down this frame.
func (s *InputState) AnyPressed() bool {
	for key := range s.current {
		if _, before := s.previous[key]; !before {
			return true
		}
	}
	return false
}

// Tick reconciles buffered events into a new snapshot.
// Must be called exactly once per frame, before any query for that frame.
func (s *InputState) Tick() {
	// Previous <- current
	clear(s.previous)
	for key := range s.current {
		s.previous[key] = struct{}{}
	}

	// A key pressed and released within the same frame stays down for one tick;
	// its release is kept pending until the press has been observed.
	for key := range s.toRemove {
		if _, pendingAdd := s.toAdd[key]; pendingAdd {
			continue
		}
		delete(s.current, key)
		delete(s.toRemove, key)
	}

	for key := range s.toAdd {
		s.current[key] = struct{}{}
	}
	clear(s.toAdd)
}

// Reset drops all keys, pending or current.
func (s *InputState) Reset() {
	clear(s.current)
	clear(s.previous)
	clear(s.toAdd)
	clear(s.toRemove)
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import (
	"strings"

	"github.com/toeirei/keymirror/internal/logging"
)

// KeyEvent is a single physical or on-screen key transition.
type KeyEvent struct {
	// Key is the raw key identifier as produced by the source, e.g. "A",
	// "backspace" or "!". It is normalized by the Tracker.
	Key string
	// CapsLock is the caps-lock modifier state reported alongside the event.
	// CapsUnknown means the source cannot query it.
	CapsLock Caps
}

// Tracker keeps the active key set, the caps-lock state and the input buffer.
type Tracker struct {
	active ActiveSet
	caps   Caps
	buffer []rune
}

func NewTracker() *Tracker {
	return &Tracker{active: ActiveSet{}}
}

// KeyDown registers a key press and applies its text effect.
func (t *Tracker) KeyDown(ev KeyEvent) {
	if ev.Key == "" {
		return
	}
	token := Normalize(ev.Key)
	if token == CapsLock {
		// caps lock follows its release and the reported modifier state
		return
	}

	if ev.CapsLock != CapsUnknown && ev.CapsLock != t.caps {
		logging.Debugf("caps lock detected as %s (was %s)", ev.CapsLock, t.caps)
		t.caps = ev.CapsLock
		if t.caps.On() {
			t.active.Add(CapsLock)
		} else {
			t.active.Remove(CapsLock)
		}
	}

	t.active.Add(token)
	t.HandleKeyPress(ev.Key)
}

// KeyUp registers a key release. Releasing caps lock toggles it; any other
// release drops the key and its shifted/base counterpart from the active set.
func (t *Tracker) KeyUp(ev KeyEvent) {
	if ev.Key == "" {
		return
	}
	token := Normalize(ev.Key)

	if token == CapsLock {
		t.caps = t.caps.Toggle()
		if t.caps.On() {
			t.active.Add(CapsLock)
		} else {
			t.active.Remove(CapsLock)
		}
		return
	}

	t.active.Remove(token)
	if other, ok := Counterpart(token); ok {
		t.active.Remove(other)
	}
}

// HandleKeyPress applies the text effect of a key. The raw key is appended
// as-is, so its case is whatever the source produced.
func (t *Tracker) HandleKeyPress(raw string) {
	token := Normalize(raw)
	if token == CapsLock {
		t.caps = t.caps.Toggle()
		return
	}
	if !IsAllowed(token) {
		return
	}

	switch token {
	case Enter:
	case Backspace:
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
	default:
		t.buffer = append(t.buffer, []rune(raw)...)
	}
}

// Repeating reports whether a held key should trigger auto-repeat.
func (t *Tracker) Repeating() bool {
	return t.active.Has(Backspace)
}

func (t *Tracker) Buffer() string {
	return string(t.buffer)
}

func (t *Tracker) SetBuffer(s string) {
	t.buffer = []rune(s)
}

func (t *Tracker) Caps() Caps {
	return t.caps
}

func (t *Tracker) IsActive(token Token) bool {
	return t.active.Has(token)
}

func (t *Tracker) Active() []Token {
	return t.active.Sorted()
}

// Release drops every key except the caps-lock indicator. Used when the
// view loses its input source.
func (t *Tracker) Release() {
	for token := range t.active {
		if token != CapsLock {
			delete(t.active, token)
		}
	}
}

func (t *Tracker) String() string {
	tokens := make([]string, 0, len(t.active))
	for _, token := range t.active.Sorted() {
		tokens = append(tokens, string(token))
	}
	return "caps=" + t.caps.String() + " active=[" + strings.Join(tokens, ",") + "] buffer=" + string(t.buffer)
}

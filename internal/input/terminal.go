// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/internal/keyboard"
)

// TerminalSourceName labels terminal input in the status line.
const TerminalSourceName = "terminal"

var namedKeys = map[tea.KeyType]string{
	tea.KeySpace:     " ",
	tea.KeyBackspace: "backspace",
	tea.KeyEnter:     "enter",
	tea.KeyTab:       "tab",
	tea.KeyEsc:       "escape",
	tea.KeyUp:        "arrowup",
	tea.KeyDown:      "arrowdown",
	tea.KeyLeft:      "arrowleft",
	tea.KeyRight:     "arrowright",
	tea.KeyF1:        "f1",
	tea.KeyF2:        "f2",
	tea.KeyF3:        "f3",
	tea.KeyF4:        "f4",
	tea.KeyF5:        "f5",
	tea.KeyF6:        "f6",
	tea.KeyF7:        "f7",
	tea.KeyF8:        "f8",
	tea.KeyF9:        "f9",
	tea.KeyF10:       "f10",
	tea.KeyF11:       "f11",
	tea.KeyF12:       "f12",
}

// FromKeyMsg maps a terminal key press to a raw key identifier. Control
// sequences and pastes are not keys and report false.
func FromKeyMsg(msg tea.KeyMsg) (string, bool) {
	if msg.Type == tea.KeyRunes {
		if msg.Paste || len(msg.Runes) != 1 {
			return "", false
		}
		return string(msg.Runes), true
	}
	raw, ok := namedKeys[msg.Type]
	return raw, ok
}

// releaseMsg fires when a terminal key has not repeated for the release delay.
type releaseMsg struct {
	token keyboard.Token
	raw   string
	gen   int
}

// Releaser synthesizes key releases for the terminal, which only reports
// presses. Every press (including OS auto-repeat) postpones the release.
type Releaser struct {
	delay time.Duration
	gens  map[keyboard.Token]int
}

func NewReleaser(delay time.Duration) *Releaser {
	return &Releaser{delay: delay, gens: map[keyboard.Token]int{}}
}

// Press schedules the release of raw's key.
func (r *Releaser) Press(raw string) tea.Cmd {
	token := keyboard.Normalize(raw)
	r.gens[token]++
	msg := releaseMsg{token: token, raw: raw, gen: r.gens[token]}
	return tea.Tick(r.delay, func(time.Time) tea.Msg { return msg })
}

// Handle turns a due release into a KeyUpMsg. Stale releases (the key was
// pressed again meanwhile) and foreign messages report false.
func (r *Releaser) Handle(msg tea.Msg) (KeyUpMsg, bool) {
	rm, ok := msg.(releaseMsg)
	if !ok || r.gens[rm.token] != rm.gen {
		return KeyUpMsg{}, false
	}
	delete(r.gens, rm.token)
	return KeyUpMsg{Event: keyboard.KeyEvent{Key: rm.raw}}, true
}

// Pending reports whether a release is scheduled for token.
func (r *Releaser) Pending(token keyboard.Token) bool {
	_, ok := r.gens[token]
	return ok
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package mirror

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// repeatMsg deletes one more character while backspace is held. Messages of
// an older generation belong to a finished repeat and are dropped.
type repeatMsg struct {
	gen int
}

func repeatTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return repeatMsg{gen: gen} })
}

type copiedMsg struct {
	chars int
	err   error
}

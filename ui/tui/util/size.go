// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

type Size struct {
	Width  int
	Height int
}

func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// Offset moves a mouse event into the coordinate space of a child drawn at (x, y).
func Offset(msg tea.MouseMsg, x, y int) tea.MouseMsg {
	msg.X -= x
	msg.Y -= y
	return msg
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package keys

import tea "github.com/charmbracelet/bubbletea"

// PressMsg is sent when an on-screen key is pressed with the mouse. Key is the
// layout token; caps lock only changes how the key is drawn.
type PressMsg struct {
	Key string
}

// ReleaseMsg follows every PressMsg once the mouse button goes up.
type ReleaseMsg struct {
	Key string
}

func press(key string) tea.Cmd {
	return func() tea.Msg { return PressMsg{Key: key} }
}

func release(key string) tea.Cmd {
	return func() tea.Msg { return ReleaseMsg{Key: key} }
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status shown next to the key help.
type StatusMsg string

func SetStatus(status string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(status) }
}

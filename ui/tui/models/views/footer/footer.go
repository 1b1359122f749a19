// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/ui/tui/models/components/keyhelp"
	"github.com/toeirei/keymirror/ui/tui/util"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#909090")).PaddingLeft(1)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject baseKeyMap
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = string(msg)
		return m.resizeHelp()
	}

	if m.size.Update(msg) {
		return m.resizeHelp()
	}
	return nil
}

// resizeHelp leaves room for the status on the right.
func (m *Model) resizeHelp() tea.Cmd {
	return m.help.Update(tea.WindowSizeMsg{
		Width:  max(m.size.Width-m.statusWidth(), 0),
		Height: m.size.Height,
	})
}

func (m Model) statusWidth() int {
	if m.status == "" {
		return 0
	}
	return lipgloss.Width(statusStyle.Render(m.status))
}

func (m Model) view() string {
	return m.help.View()
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	content := lipgloss.Place(
		max(m.size.Width-m.statusWidth(), 0), max(m.size.Height-1, 1),
		h_pos, lipgloss.Top,
		m.view(),
	)
	if m.status != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, statusStyle.Render(m.status))
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(content)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) Status() string {
	return m.status
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textfield shows the typed text. It is read only: the text comes
// from the key tracker, never from the field itself.
package textfield

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/ui/tui/util"
)

var (
	FieldColor = lipgloss.Color("#FFFFFF")
	TextColor  = lipgloss.Color("#000000")
)

var fieldStyle = lipgloss.NewStyle().
	Background(FieldColor).
	Foreground(TextColor).
	Align(lipgloss.Center)

var placeholderStyle = lipgloss.NewStyle().Background(FieldColor).Foreground(lipgloss.Color("#8a8a8a"))

type Model struct {
	size        util.Size
	input       textinput.Model
	placeholder string
}

func New(placeholder string) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.TextStyle = lipgloss.NewStyle().Background(FieldColor).Foreground(TextColor)
	input.Cursor.Style = input.TextStyle
	input.Cursor.TextStyle = input.TextStyle
	input.Blur()
	return &Model{input: input, placeholder: placeholder}
}

// SetValue replaces the shown text. Text wider than the field scrolls so the
// end stays visible.
func (m *Model) SetValue(s string) {
	// the input is only as wide as its text so the field can center it
	m.input.Width = min(utf8.RuneCountInString(s), max(m.size.Width-2, 1))
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m *Model) Value() string {
	return m.input.Value()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.SetValue(m.input.Value())
	}
	return nil
}

func (m Model) View() string {
	if m.size.Width <= 0 || m.size.Height <= 0 {
		return ""
	}
	return fieldStyle.
		Width(m.size.Width).
		MaxWidth(m.size.Width).
		Height(m.size.Height).
		Render(m.content())
}

func (m Model) content() string {
	if m.input.Value() == "" {
		return placeholderStyle.Render(m.placeholder)
	}
	return m.input.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

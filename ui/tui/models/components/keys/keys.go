// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keys draws the on-screen keyboard and turns mouse clicks on it into
// key presses.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/internal/keyboard"
	"github.com/toeirei/keymirror/ui/tui/util"
)

type Model struct {
	rows   [][]keyboard.Token
	size   util.Size
	layout Layout

	caps   bool
	active func(keyboard.Token) bool

	hovered  keyboard.Token
	pressed  keyboard.Token
	pressing bool
}

func New(rows [][]keyboard.Token) *Model {
	return &Model{
		rows:   rows,
		active: func(keyboard.Token) bool { return false },
	}
}

// SetState updates what the keyboard highlights and how letters are drawn.
func (m *Model) SetState(caps bool, active func(keyboard.Token) bool) {
	m.caps = caps
	m.active = active
}

func (m *Model) Layout() Layout {
	return m.layout
}

func (m *Model) Hovered() keyboard.Token {
	return m.hovered
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout = ComputeLayout(m.rows, m.size.Width, m.size.Height)
		return nil
	}

	if msg, ok := msg.(tea.MouseMsg); ok {
		return m.handleMouse(msg)
	}
	return nil
}

// handleMouse expects coordinates relative to the top left of the keyboard.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cell, onKey := m.layout.KeyAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hovered = ""
		if onKey {
			m.hovered = cell.Token
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onKey || m.pressing {
			return nil
		}
		m.hovered = cell.Token
		m.pressing = true
		m.pressed = cell.Token
		return press(string(m.pressed))
	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.pressing = false
		return release(string(m.pressed))
	}
	return nil
}

// Cancel releases a key still held by the mouse.
func (m *Model) Cancel() tea.Cmd {
	m.hovered = ""
	if !m.pressing {
		return nil
	}
	m.pressing = false
	return release(string(m.pressed))
}

func (m Model) View() string {
	l := m.layout
	if len(l.Rows) == 0 {
		return ""
	}
	met := l.Metrics
	innerWidth := l.Width - 2*met.InsetX

	var blocks []string
	if met.InsetY > 0 {
		blocks = append(blocks, blank(l.Width, met.InsetY))
	}
	for r, row := range l.Rows {
		if r > 0 && met.RowGap > 0 {
			blocks = append(blocks, blank(l.Width, met.RowGap))
		}
		blocks = append(blocks, m.renderRow(row, innerWidth))
	}
	if met.InsetY > 0 {
		blocks = append(blocks, blank(l.Width, met.InsetY))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) renderRow(row []Cell, innerWidth int) string {
	met := m.layout.Metrics
	height := met.keyHeight()
	border := 0
	if met.Bordered {
		border = 2
	}

	parts := []string{blank(met.InsetX, height)}
	used := 0
	for i, cell := range row {
		if i > 0 {
			parts = append(parts, blank(met.Gap, height))
			used += met.Gap
		}
		parts = append(parts, Resolve(cell.Token, m.stateOf(cell.Token), met).
			Width(cell.Width-border).
			MaxWidth(cell.Width).
			Render(Label(cell.Token, m.caps, met.LongLabels)))
		used += cell.Width
	}
	parts = append(parts, blank(innerWidth-used+met.InsetX, height))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) stateOf(token keyboard.Token) State {
	return State{
		Active:  m.active(token),
		Hovered: token == m.hovered,
		Pressed: m.pressing && token == m.pressed,
	}
}

// blank is a block of keyboard background.
func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := keyboardStyle.Render(strings.Repeat(" ", width))
	return strings.TrimSuffix(strings.Repeat(line+"\n", height), "\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {
	m.hovered = ""
	m.pressing = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

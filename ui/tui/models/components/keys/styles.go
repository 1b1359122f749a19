// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package keys

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/internal/keyboard"
)

var (
	KeyColor      = lipgloss.Color("#181818")
	FocusColor    = lipgloss.Color("#4A90E2")
	HoverColor    = lipgloss.Color("#65adfa")
	TextColor     = lipgloss.Color("#FFFFFF")
	KeyboardColor = lipgloss.Color("#191919")
	BorderColor   = lipgloss.Color("#3a3a3a")
)

var keyboardStyle = lipgloss.NewStyle().Background(KeyboardColor)

// State is the interaction state of a single key.
type State struct {
	Active  bool
	Hovered bool
	// Pressed is set while the mouse holds the key down.
	Pressed bool
}

var baseStyle = lipgloss.NewStyle().
	Foreground(TextColor).
	Background(KeyColor).
	Align(lipgloss.Center)

// labels of wide modifier keys sit where a physical keyboard prints them
var shapes = map[keyboard.Token]lipgloss.Position{
	keyboard.Tab:       lipgloss.Left,
	keyboard.CapsLock:  lipgloss.Left,
	keyboard.Shift:     lipgloss.Left,
	keyboard.Enter:     lipgloss.Right,
	keyboard.Backspace: lipgloss.Right,
}

// Resolve composes the style of a key: base, then per-key shape, then the
// breakpoint metrics, then the active, hover and pressed highlights. A
// pressed key shares the active colour and wins over hover.
func Resolve(token keyboard.Token, state State, m Metrics) lipgloss.Style {
	style := baseStyle

	if pos, ok := shapes[token]; ok {
		style = style.Align(pos)
	}

	style = style.Padding(0, m.PaddingX)
	if m.Bordered {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			BorderBackground(KeyboardColor)
	}

	if state.Active {
		style = style.Background(FocusColor).BorderForeground(FocusColor)
	}
	if state.Hovered {
		style = style.Background(HoverColor).BorderForeground(HoverColor)
	}
	if state.Pressed {
		style = style.Background(FocusColor).BorderForeground(FocusColor)
	}
	return style
}

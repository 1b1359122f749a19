// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/ui/tui/util"
)

type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func TestFooter_MergesBaseKeyMap(t *testing.T) {
	base := bindings{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))}
	view := bindings{key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy"))}

	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 2})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: view})

	out := m.View()
	if !strings.Contains(out, "copy") || !strings.Contains(out, "exit") {
		t.Fatalf("expected both keymaps in %q", out)
	}
}

func TestFooter_StatusOnTheRight(t *testing.T) {
	m := New(bindings{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 2})
	m.Update(util.AnnounceKeyMapMsg{})
	m.Update(StatusMsg("caps lock: on"))

	if m.Status() != "caps lock: on" {
		t.Fatalf("unexpected status %q", m.Status())
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected border and content line, got %q", lines)
	}
	if !strings.HasSuffix(lines[1], "caps lock: on") {
		t.Fatalf("expected status at the end of %q", lines[1])
	}
	if lipgloss.Width(lines[1]) != 60 {
		t.Fatalf("expected full width line, got %d", lipgloss.Width(lines[1]))
	}
}

func TestSetStatus(t *testing.T) {
	if msg := SetStatus("x")(); msg != StatusMsg("x") {
		t.Fatalf("unexpected msg %#v", msg)
	}
}

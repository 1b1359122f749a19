// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package keys

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/internal/keyboard"
)

func TestBreakpointFor(t *testing.T) {
	tests := map[int]Breakpoint{0: Mobile, 79: Mobile, 80: Tablet, 119: Tablet, 120: Desktop, 300: Desktop}
	for width, want := range tests {
		if got := BreakpointFor(width); got != want {
			t.Fatalf("BreakpointFor(%d) = %s, want %s", width, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		token keyboard.Token
		caps  bool
		long  bool
		want  string
	}{
		{"a", false, false, "a"},
		{"a", true, false, "A"},
		{"1", true, false, "1"},
		{"f11", false, false, "F11"},
		{keyboard.Space, false, false, "␣"},
		{keyboard.Space, true, true, "␣ space"},
		{keyboard.Backspace, false, false, "⌫"},
		{keyboard.Escape, false, true, "⎋ esc"},
		{keyboard.ArrowUp, false, true, "↑"},
		{keyboard.Alt, false, true, "alt"},
	}
	for _, tc := range tests {
		if got := Label(tc.token, tc.caps, tc.long); got != tc.want {
			t.Fatalf("Label(%q, %v, %v) = %q, want %q", tc.token, tc.caps, tc.long, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if Display("c", true) != "C" || Display("c", false) != "c" {
		t.Fatalf("unexpected letter display")
	}
	if Display(keyboard.Enter, true) != "enter" {
		t.Fatalf("named keys keep their token")
	}
}

func TestGrow_SharesAddUp(t *testing.T) {
	row := []keyboard.Token{keyboard.Control, keyboard.Alt, keyboard.Space, keyboard.ArrowLeft}
	widths := grow(row, []int{1, 1, 1, 1}, 23)
	total := 0
	for _, w := range widths {
		total += w
	}
	if total != 27 {
		t.Fatalf("expected 27 columns, got %d (%v)", total, widths)
	}
	if widths[2] <= widths[0] {
		t.Fatalf("space must grow the most: %v", widths)
	}
}

func TestComputeLayout_RowsFillWidth(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		l := ComputeLayout(keyboard.Rows, width, 100)
		if l.Metrics.Breakpoint != BreakpointFor(width) {
			t.Fatalf("width %d: unexpected breakpoint %s", width, l.Metrics.Breakpoint)
		}
		for r, row := range l.Rows {
			last := row[len(row)-1]
			if end := last.X + last.Width + l.Metrics.InsetX; end != l.Width {
				t.Fatalf("width %d row %d ends at %d, keyboard is %d wide", width, r, end, l.Width)
			}
		}
		if l.Width > width {
			t.Fatalf("width %d: keyboard overflows with %d", width, l.Width)
		}
	}
}

func TestComputeLayout_StepsDownWhenTooTall(t *testing.T) {
	l := ComputeLayout(keyboard.Rows, 160, 16)
	if l.Metrics.Breakpoint != Tablet {
		t.Fatalf("expected tablet metrics, got %s", l.Metrics.Breakpoint)
	}
	l = ComputeLayout(keyboard.Rows, 160, 8)
	if l.Metrics.Breakpoint != Mobile || l.Height != len(keyboard.Rows) {
		t.Fatalf("expected mobile layout with one line per row, got %s height %d", l.Metrics.Breakpoint, l.Height)
	}
}

func TestKeyAt(t *testing.T) {
	l := ComputeLayout(keyboard.Rows, 60, 10)
	for _, row := range l.Rows {
		for _, cell := range row {
			got, ok := l.KeyAt(cell.X, cell.Y)
			if !ok || got.Token != cell.Token {
				t.Fatalf("KeyAt(%d,%d) = %q, want %q", cell.X, cell.Y, got.Token, cell.Token)
			}
			if cell.X > 0 {
				if got, ok := l.KeyAt(cell.X-1, cell.Y); ok && got.Token == cell.Token {
					t.Fatalf("gap left of %q hit the key", cell.Token)
				}
			}
		}
	}
	if _, ok := l.KeyAt(-1, 0); ok {
		t.Fatalf("point outside the keyboard hit a key")
	}
}

func sized(width, height int) *Model {
	m := New(keyboard.Rows)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func cellOf(t *testing.T, m *Model, token keyboard.Token) Cell {
	t.Helper()
	for _, row := range m.Layout().Rows {
		for _, cell := range row {
			if cell.Token == token {
				return cell
			}
		}
	}
	t.Fatalf("no key %q", token)
	return Cell{}
}

func TestView_MatchesLayout(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		m := sized(width, 40)
		view := m.View()
		if got := lipgloss.Width(view); got != m.Layout().Width {
			t.Fatalf("width %d: view is %d wide, layout %d", width, got, m.Layout().Width)
		}
		if got := lipgloss.Height(view); got != m.Layout().Height {
			t.Fatalf("width %d: view is %d high, layout %d", width, got, m.Layout().Height)
		}
		for _, label := range []string{"⎋", "F12", "⌫", "⏎", "␣", "q"} {
			if !strings.Contains(view, label) {
				t.Fatalf("width %d: missing %q", width, label)
			}
		}
	}
}

func TestView_CapsUppercasesLetters(t *testing.T) {
	m := sized(60, 10)
	m.SetState(true, func(keyboard.Token) bool { return false })
	view := m.View()
	if !strings.Contains(view, "Q") || strings.Contains(view, "q") {
		t.Fatalf("expected uppercase letters with caps on")
	}
}

func TestMouse_PressAndRelease(t *testing.T) {
	m := sized(60, 10)
	m.SetState(true, func(keyboard.Token) bool { return false })
	c := cellOf(t, m, "c")

	cmd := m.Update(tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatalf("expected press command")
	}
	if msg := cmd(); msg != (PressMsg{Key: "c"}) {
		t.Fatalf("expected layout token, got %#v", msg)
	}
	if !strings.Contains(m.View(), "C") {
		t.Fatalf("caps lock should still draw the key as C")
	}

	// releasing somewhere else still releases the pressed key
	cmd = m.Update(tea.MouseMsg{X: -5, Y: -5, Action: tea.MouseActionRelease})
	if cmd == nil {
		t.Fatalf("expected release command")
	}
	if msg := cmd(); msg != (ReleaseMsg{Key: "c"}) {
		t.Fatalf("unexpected release %#v", msg)
	}
	if cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionRelease}); cmd != nil {
		t.Fatalf("second release must be ignored")
	}
}

func TestMouse_IgnoresMissesAndOtherButtons(t *testing.T) {
	m := sized(60, 10)
	c := cellOf(t, m, "a")
	if cmd := m.Update(tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}); cmd != nil {
		t.Fatalf("right button pressed a key")
	}
	if cmd := m.Update(tea.MouseMsg{X: 500, Y: 500, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}); cmd != nil {
		t.Fatalf("press outside keys pressed a key")
	}
}

func TestMouse_Hover(t *testing.T) {
	m := sized(60, 10)
	c := cellOf(t, m, keyboard.Enter)
	m.Update(tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionMotion})
	if m.Hovered() != keyboard.Enter {
		t.Fatalf("expected enter hovered, got %q", m.Hovered())
	}
	m.Update(tea.MouseMsg{X: 500, Y: 500, Action: tea.MouseActionMotion})
	if m.Hovered() != "" {
		t.Fatalf("expected no hover, got %q", m.Hovered())
	}
}

func TestCancel(t *testing.T) {
	m := sized(60, 10)
	if m.Cancel() != nil {
		t.Fatalf("nothing to cancel")
	}
	c := cellOf(t, m, keyboard.Backspace)
	m.Update(tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	cmd := m.Cancel()
	if cmd == nil || cmd() != (ReleaseMsg{Key: "backspace"}) {
		t.Fatalf("expected backspace release")
	}
}

func TestResolve_HighlightsOverrideBase(t *testing.T) {
	m := MetricsFor(Desktop)
	if bg := Resolve("a", State{}, m).GetBackground(); bg != KeyColor {
		t.Fatalf("expected key color, got %v", bg)
	}
	if bg := Resolve("a", State{Active: true}, m).GetBackground(); bg != FocusColor {
		t.Fatalf("expected focus color, got %v", bg)
	}
	if bg := Resolve("a", State{Active: true, Hovered: true}, m).GetBackground(); bg != HoverColor {
		t.Fatalf("expected hover color on top, got %v", bg)
	}
	if bg := Resolve("a", State{Active: true, Hovered: true, Pressed: true}, m).GetBackground(); bg != FocusColor {
		t.Fatalf("expected pressed key to win over hover, got %v", bg)
	}
	if Resolve(keyboard.Shift, State{}, m).GetAlign() != lipgloss.Left {
		t.Fatalf("shift label should sit on the left")
	}
	if !Resolve("a", State{}, m).GetBorderTop() || Resolve("a", State{}, MetricsFor(Mobile)).GetBorderTop() {
		t.Fatalf("only desktop keys are bordered")
	}
}

func TestMouse_HeldKeyUsesPressedHighlight(t *testing.T) {
	m := sized(60, 10)
	m.SetState(false, func(token keyboard.Token) bool { return token == "a" })
	met := m.Layout().Metrics

	a := cellOf(t, m, "a")
	m.Update(tea.MouseMsg{X: a.X, Y: a.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	state := m.stateOf("a")
	if !state.Pressed || !state.Hovered {
		t.Fatalf("expected a pressed and hovered, got %+v", state)
	}
	if bg := Resolve("a", state, met).GetBackground(); bg != FocusColor {
		t.Fatalf("expected pressed key in focus color, got %v", bg)
	}
	m.Update(tea.MouseMsg{X: a.X, Y: a.Y, Action: tea.MouseActionRelease})
	if m.stateOf("a").Pressed {
		t.Fatalf("released key still pressed")
	}

	// the tracker ignores caps lock presses, so only the mouse state lights it
	c := cellOf(t, m, keyboard.CapsLock)
	m.Update(tea.MouseMsg{X: c.X, Y: c.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if bg := Resolve(keyboard.CapsLock, m.stateOf(keyboard.CapsLock), met).GetBackground(); bg != FocusColor {
		t.Fatalf("held caps lock key not highlighted, got %v", bg)
	}
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mirror is the main view: a text field above the on-screen keyboard,
// both following what is typed on the physical keyboard or clicked on screen.
package mirror

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/internal/i18n"
	"github.com/toeirei/keymirror/internal/input"
	"github.com/toeirei/keymirror/internal/keyboard"
	"github.com/toeirei/keymirror/internal/logging"
	"github.com/toeirei/keymirror/ui/tui/models/components/keys"
	"github.com/toeirei/keymirror/ui/tui/models/components/textfield"
	windowtitle "github.com/toeirei/keymirror/ui/tui/models/helpers/title"
	"github.com/toeirei/keymirror/ui/tui/models/views/footer"
	"github.com/toeirei/keymirror/ui/tui/util"
)

var ContainerColor = lipgloss.Color("#1f1f1f")

var containerStyle = lipgloss.NewStyle().Background(ContainerColor)

type Options struct {
	// Source names the input shown in the status line.
	Source string
	// Physical is set when key presses and releases arrive as input.KeyDownMsg
	// and input.KeyUpMsg. Terminal key messages then only serve shortcuts.
	Physical       bool
	ReleaseDelay   time.Duration
	RepeatInterval time.Duration
	// Clipboard receives the text on copy. Defaults to the system clipboard.
	Clipboard func(string) error
}

type Model struct {
	opts     Options
	keyMap   KeyMap
	tracker  *keyboard.Tracker
	releaser *input.Releaser
	keys     *keys.Model
	field    *textfield.Model
	size     util.Size

	// where field and keyboard are drawn
	fieldX, fieldY int
	keysX, keysY   int

	repeating bool
	repeatGen int
	caps      keyboard.Caps
	notice    string
}

func New(opts Options) *Model {
	if opts.Source == "" {
		opts.Source = input.TerminalSourceName
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	m := &Model{
		opts:     opts,
		keyMap:   NewKeyMap(),
		tracker:  keyboard.NewTracker(),
		releaser: input.NewReleaser(opts.ReleaseDelay),
		keys:     keys.New(keyboard.Rows),
		field:    textfield.New(i18n.T("field.placeholder")),
	}
	m.keys.SetState(false, m.tracker.IsActive)
	return m
}

func (m *Model) Tracker() *keyboard.Tracker {
	return m.tracker
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		footer.SetStatus(m.status()),
		windowtitle.Set(m.capsStatus()),
	)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Copy) {
			return m.copy()
		}
		if m.opts.Physical {
			return nil
		}
		raw, ok := input.FromKeyMsg(msg)
		if !ok {
			return nil
		}
		m.tracker.KeyDown(keyboard.KeyEvent{Key: raw})
		return tea.Batch(m.releaser.Press(raw), m.sync())

	case input.KeyDownMsg:
		m.tracker.KeyDown(msg.Event)
		return m.sync()

	case input.KeyUpMsg:
		m.tracker.KeyUp(msg.Event)
		return m.sync()

	case keys.PressMsg:
		m.tracker.KeyDown(keyboard.KeyEvent{Key: msg.Key})
		return m.sync()

	case keys.ReleaseMsg:
		m.tracker.KeyUp(keyboard.KeyEvent{Key: msg.Key})
		return m.sync()

	case tea.MouseMsg:
		return m.keys.Update(util.Offset(msg, m.keysX, m.keysY))

	case repeatMsg:
		if msg.gen != m.repeatGen || !m.autoRepeat() {
			return nil
		}
		m.tracker.HandleKeyPress(string(keyboard.Backspace))
		m.field.SetValue(m.tracker.Buffer())
		return repeatTick(m.opts.RepeatInterval, m.repeatGen)

	case input.SourceClosedMsg:
		// without the device no release will come, so nothing stays pressed
		m.tracker.Release()
		m.opts.Physical = false
		m.opts.Source = input.TerminalSourceName
		if msg.Err != nil {
			m.notice = msg.Err.Error()
		}
		return tea.Batch(m.sync(), footer.SetStatus(m.status()))

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("copy to clipboard failed: %v", msg.err)
			m.notice = i18n.T("status.copy_failed", msg.err)
		} else {
			m.notice = i18n.T("status.copied", msg.chars)
		}
		return footer.SetStatus(m.status())
	}

	if up, ok := m.releaser.Handle(msg); ok {
		m.tracker.KeyUp(up.Event)
		return m.sync()
	}
	return nil
}

// sync pushes tracker state to the widgets and starts or stops the backspace
// repeat.
func (m *Model) sync() tea.Cmd {
	m.field.SetValue(m.tracker.Buffer())
	m.keys.SetState(m.tracker.Caps().On(), m.tracker.IsActive)

	var cmds []tea.Cmd
	if repeating := m.autoRepeat(); repeating != m.repeating {
		m.repeating = repeating
		// a new generation invalidates ticks still in flight
		m.repeatGen++
		if repeating {
			cmds = append(cmds, repeatTick(m.opts.RepeatInterval, m.repeatGen))
		}
	}
	if caps := m.tracker.Caps(); caps != m.caps {
		m.caps = caps
		cmds = append(cmds, footer.SetStatus(m.status()), windowtitle.Set(m.capsStatus()))
	}
	return tea.Batch(cmds...)
}

// autoRepeat reports whether held backspace needs the tick repeat. A
// backspace typed in the terminal is repeated by the terminal itself, which
// presses it again and postpones its release.
func (m *Model) autoRepeat() bool {
	return m.tracker.Repeating() && !m.releaser.Pending(keyboard.Backspace)
}

func (m *Model) copy() tea.Cmd {
	text, write := m.tracker.Buffer(), m.opts.Clipboard
	return func() tea.Msg {
		return copiedMsg{chars: utf8.RuneCountInString(text), err: write(text)}
	}
}

func (m Model) capsStatus() string {
	var state string
	switch m.tracker.Caps() {
	case keyboard.CapsOn:
		state = i18n.T("status.caps_on")
	case keyboard.CapsOff:
		state = i18n.T("status.caps_off")
	default:
		state = i18n.T("status.caps_unknown")
	}
	return i18n.T("status.caps", state)
}

func (m Model) status() string {
	parts := []string{m.capsStatus(), i18n.T("status.source", m.opts.Source)}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, " · ")
}

// resize lays out the field above the keyboard, centered as one block.
func (m *Model) resize() {
	fieldWidth := m.size.Width * 9 / 10
	m.field.Update(tea.WindowSizeMsg{Width: fieldWidth, Height: 1})
	m.keys.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: max(m.size.Height-2, 0)})

	layout := m.keys.Layout()
	top := max((m.size.Height-2-layout.Height)/2, 0)
	m.fieldX, m.fieldY = (m.size.Width-fieldWidth)/2, top
	m.keysX, m.keysY = max((m.size.Width-layout.Width)/2, 0), top+2
}

func (m Model) View() string {
	if m.size.Width <= 0 || m.size.Height <= 0 {
		return ""
	}

	var lines []string
	lines = append(lines, fill(m.size.Width, m.fieldY)...)
	lines = append(lines, place(m.field.View(), m.fieldX, m.size.Width)...)
	lines = append(lines, fill(m.size.Width, m.keysY-m.fieldY-1)...)
	lines = append(lines, place(m.keys.View(), m.keysX, m.size.Width)...)
	lines = append(lines, fill(m.size.Width, m.size.Height-len(lines))...)

	return lipgloss.NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Render(strings.Join(lines, "\n"))
}

// place indents every line of block by x and pads it to width.
func place(block string, x, width int) []string {
	if block == "" {
		return nil
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		right := max(width-x-lipgloss.Width(line), 0)
		lines[i] = containerStyle.Render(strings.Repeat(" ", x)) + line + containerStyle.Render(strings.Repeat(" ", right))
	}
	return lines
}

func fill(width, height int) []string {
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = containerStyle.Render(strings.Repeat(" ", width))
	}
	return lines
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keyMap
}

// Blur drops every held key and stops the backspace repeat. A key held by
// the mouse is released like a normal mouse release.
func (m *Model) Blur() {
	if cmd := m.keys.Cancel(); cmd != nil {
		if up, ok := cmd().(keys.ReleaseMsg); ok {
			m.tracker.KeyUp(keyboard.KeyEvent{Key: up.Key})
		}
	}
	m.tracker.Release()
	m.repeating = false
	m.repeatGen++
	m.field.SetValue(m.tracker.Buffer())
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

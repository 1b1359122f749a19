// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/buildvars"
	"github.com/toeirei/keymirror/internal/i18n"
	"github.com/toeirei/keymirror/ui/tui/models/components/header"
	"github.com/toeirei/keymirror/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/keymirror/ui/tui/models/helpers/title"
	"github.com/toeirei/keymirror/ui/tui/models/views/footer"
	"github.com/toeirei/keymirror/ui/tui/models/views/mirror"
	"github.com/toeirei/keymirror/ui/tui/util"
)

type Model struct {
	keyMap       KeyMap
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func New(opts mirror.Options) *Model {
	keyMap := NewKeyMap()
	_header := header.New()
	_mirror := mirror.New(opts)
	_footer := footer.New(&keyMap)

	// create model pointers for multiple references
	_footer_ptr := util.ModelPointer(_footer)

	version := "dev"
	if len(buildvars.Version) > 0 {
		version = buildvars.Version
	}

	return &Model{
		keyMap: keyMap,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(1),
			stack.WithItem(util.ModelPointer(_header), header.SizeConfig, stack.DropMouse),
			stack.WithItem(util.ModelPointer(_mirror), stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig, stack.DropMouse),
		),
		footer:       _footer_ptr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.title"), version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			// releases held keys and stops the backspace repeat
			m.stack.Blur()
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
		}

		return m, m.stack.Update(msg)
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

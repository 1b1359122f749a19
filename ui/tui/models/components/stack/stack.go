// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/ui/tui/util"
	"github.com/toeirei/keymirror/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	old_size   int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.MapI(s.items, func(i int, item Item) tea.Cmd {
			itemMsg := msg
			// mouse coordinates are relative to the item
			if mouse, ok := itemMsg.(tea.MouseMsg); ok {
				if item.size == 0 {
					return nil
				}
				itemMsg = s.translateMouse(i, mouse)
			}

			// apply message filtes
			itemMsg = applyMessageFilters(*item.Model, itemMsg, item.MsgFilters)
			itemMsg = applyMessageFilters(*item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}

			// update model
			return (*item.Model).Update(itemMsg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) translateMouse(i int, msg tea.MouseMsg) tea.MouseMsg {
	if s.Orientation == Vertical {
		return util.Offset(msg, 0, s.offset(i))
	}
	return util.Offset(msg, s.offset(i), 0)
}

func (s Model) View() string {
	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	margins := s.margins()
	var rendered []string
	for i, item := range s.items {
		// hidden items must not add an empty line
		if item.size == 0 {
			continue
		}
		rendered = append(rendered, styler(item.size, margins[i]).Render((*item.Model).View()))
	}
	return joiner(s.Align, rendered...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(m.items) == 0 {
		return nil, nil
	}
	if m.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(m.items))
		keyMaps := make([]help.KeyMap, len(m.items))

		for i, item := range m.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*m.items[m.focussedIndex].Model).Focus()
}

func (m *Model) Blur() {
	if len(m.items) == 0 {
		return
	}
	if m.focussedIndex == FocusAll() {
		for _, item := range m.items {
			(*item.Model).Blur()
		}
	} else {
		(*m.items[m.focussedIndex].Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (m *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	m.Blur()
	m.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(m.items)-1))
	return m.Focus()
}

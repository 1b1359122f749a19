// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help line of the footer. help.Model's own
// views count the separator of skipped bindings and cut the ellipsis off
// narrow terminals, so the layout is done here.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	for _, kb := range enabled(bindings) {
		item := m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
		if len(items) > 0 {
			item = m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator) + item
		}
		items = append(items, item)
	}
	return fit(m, items)
}

// FullHelpView renders one column per group. Groups without an enabled
// binding are left out.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	for _, group := range groups {
		bindings := enabled(group)
		if len(bindings) == 0 {
			continue
		}
		keys := make([]string, len(bindings))
		descs := make([]string, len(bindings))
		for i, kb := range bindings {
			keys[i], descs[i] = kb.Help().Key, kb.Help().Desc
		}

		var sep string
		if len(cols) > 0 {
			sep = m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		))
	}
	return fit(m, cols)
}

func enabled(bindings []key.Binding) []key.Binding {
	var out []key.Binding
	for _, kb := range bindings {
		if kb.Enabled() {
			out = append(out, kb)
		}
	}
	return out
}

// fit joins parts left to right while they fit m.Width. The first part that
// does not fit is replaced by the ellipsis, as long as that still fits.
func fit(m help.Model, parts []string) string {
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	var out []string
	used := 0
	for i, part := range parts {
		need := lipgloss.Width(part)
		if i < len(parts)-1 {
			// room for the ellipsis must remain after a non-last part
			need += lipgloss.Width(tail)
		}
		if used+need > m.Width {
			if used+lipgloss.Width(tail) <= m.Width {
				out = append(out, tail)
			}
			break
		}
		out = append(out, part)
		used += lipgloss.Width(part)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

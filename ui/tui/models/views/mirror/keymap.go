// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package mirror

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/keymirror/internal/i18n"
)

type KeyMap struct {
	Copy key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Copy}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewKeyMap() KeyMap {
	return KeyMap{
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("help.copy")),
		),
	}
}

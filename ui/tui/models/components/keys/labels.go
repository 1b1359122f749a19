// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package keys

import (
	"strings"

	"github.com/toeirei/keymirror/internal/keyboard"
)

var icons = map[keyboard.Token]string{
	keyboard.Escape:     "⎋",
	keyboard.Tab:        "⇥",
	keyboard.CapsLock:   "⇪",
	keyboard.Shift:      "⇧",
	keyboard.Control:    "⌘",
	keyboard.Enter:      "⏎",
	keyboard.Space:      "␣",
	keyboard.ArrowLeft:  "←",
	keyboard.ArrowUp:    "↑",
	keyboard.ArrowDown:  "↓",
	keyboard.ArrowRight: "→",
	keyboard.Backspace:  "⌫",
}

// names follow the icon when there is room for it
var names = map[keyboard.Token]string{
	keyboard.Escape:    "esc",
	keyboard.Tab:       "tab",
	keyboard.CapsLock:  "caps",
	keyboard.Shift:     "shift",
	keyboard.Control:   "ctrl",
	keyboard.Enter:     "enter",
	keyboard.Space:     "space",
	keyboard.Backspace: "bksp",
}

// Display returns the token as it should look with the given caps state:
// single characters are uppercased while caps lock is on.
func Display(token keyboard.Token, caps bool) string {
	if caps && token.IsChar() {
		return strings.ToUpper(string(token))
	}
	return string(token)
}

// Label returns the text drawn on a key.
func Label(token keyboard.Token, caps bool, long bool) string {
	if icon, ok := icons[token]; ok {
		if name, ok := names[token]; ok && long {
			return icon + " " + name
		}
		return icon
	}
	if isFunctionKey(token) {
		return strings.ToUpper(string(token))
	}
	return Display(token, caps)
}

func isFunctionKey(token keyboard.Token) bool {
	s := string(token)
	if len(s) < 2 || s[0] != 'f' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

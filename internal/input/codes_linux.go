// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build linux

package input

import (
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

// keymap is one US-layout key: what it types plain and with shift.
type keymap struct {
	plain   string
	shifted string
}

var charKeys = map[evdev.EvCode]keymap{
	evdev.KEY_GRAVE:      {"`", "~"},
	evdev.KEY_1:          {"1", "!"},
	evdev.KEY_2:          {"2", "@"},
	evdev.KEY_3:          {"3", "#"},
	evdev.KEY_4:          {"4", "$"},
	evdev.KEY_5:          {"5", "%"},
	evdev.KEY_6:          {"6", "^"},
	evdev.KEY_7:          {"7", "&"},
	evdev.KEY_8:          {"8", "*"},
	evdev.KEY_9:          {"9", "("},
	evdev.KEY_0:          {"0", ")"},
	evdev.KEY_MINUS:      {"-", "_"},
	evdev.KEY_EQUAL:      {"=", "+"},
	evdev.KEY_LEFTBRACE:  {"[", "{"},
	evdev.KEY_RIGHTBRACE: {"]", "}"},
	evdev.KEY_BACKSLASH:  {"\\", "|"},
	evdev.KEY_SEMICOLON:  {";", ":"},
	evdev.KEY_APOSTROPHE: {"'", "\""},
	evdev.KEY_COMMA:      {",", "<"},
	evdev.KEY_DOT:        {".", ">"},
	evdev.KEY_SLASH:      {"/", "?"},
	evdev.KEY_SPACE:      {" ", " "},
}

var letterKeys = map[evdev.EvCode]string{
	evdev.KEY_A: "a", evdev.KEY_B: "b", evdev.KEY_C: "c", evdev.KEY_D: "d",
	evdev.KEY_E: "e", evdev.KEY_F: "f", evdev.KEY_G: "g", evdev.KEY_H: "h",
	evdev.KEY_I: "i", evdev.KEY_J: "j", evdev.KEY_K: "k", evdev.KEY_L: "l",
	evdev.KEY_M: "m", evdev.KEY_N: "n", evdev.KEY_O: "o", evdev.KEY_P: "p",
	evdev.KEY_Q: "q", evdev.KEY_R: "r", evdev.KEY_S: "s", evdev.KEY_T: "t",
	evdev.KEY_U: "u", evdev.KEY_V: "v", evdev.KEY_W: "w", evdev.KEY_X: "x",
	evdev.KEY_Y: "y", evdev.KEY_Z: "z",
}

var specialKeys = map[evdev.EvCode]string{
	evdev.KEY_ESC:        "escape",
	evdev.KEY_BACKSPACE:  "backspace",
	evdev.KEY_TAB:        "tab",
	evdev.KEY_ENTER:      "enter",
	evdev.KEY_KPENTER:    "enter",
	evdev.KEY_CAPSLOCK:   "capslock",
	evdev.KEY_LEFTSHIFT:  "shift",
	evdev.KEY_RIGHTSHIFT: "shift",
	evdev.KEY_LEFTCTRL:   "control",
	evdev.KEY_RIGHTCTRL:  "control",
	evdev.KEY_LEFTALT:    "alt",
	evdev.KEY_RIGHTALT:   "alt",
	evdev.KEY_LEFT:       "arrowleft",
	evdev.KEY_UP:         "arrowup",
	evdev.KEY_DOWN:       "arrowdown",
	evdev.KEY_RIGHT:      "arrowright",
	evdev.KEY_F1:         "f1",
	evdev.KEY_F2:         "f2",
	evdev.KEY_F3:         "f3",
	evdev.KEY_F4:         "f4",
	evdev.KEY_F5:         "f5",
	evdev.KEY_F6:         "f6",
	evdev.KEY_F7:         "f7",
	evdev.KEY_F8:         "f8",
	evdev.KEY_F9:         "f9",
	evdev.KEY_F10:        "f10",
	evdev.KEY_F11:        "f11",
	evdev.KEY_F12:        "f12",
}

// translateKey returns the raw key a code produces given the modifier state.
// Caps lock only affects letters.
func translateKey(code evdev.EvCode, shift, caps bool) (string, bool) {
	if letter, ok := letterKeys[code]; ok {
		if shift != caps {
			return strings.ToUpper(letter), true
		}
		return letter, true
	}
	if km, ok := charKeys[code]; ok {
		if shift {
			return km.shifted, true
		}
		return km.plain, true
	}
	name, ok := specialKeys[code]
	return name, ok
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

// Rows is the on-screen keyboard, top to bottom.
var Rows = [][]Token{
	{Escape, "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12"},
	{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+", Backspace},
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="},
	{Tab, "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\"},
	{CapsLock, "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", Enter},
	{Shift, "z", "x", "c", "v", "b", "n", "m", ",", ".", ":"},
	{Control, Alt, Space, ArrowLeft, ArrowUp, ArrowDown, ArrowRight},
}

// growWeights approximates real keyboard proportions. Keys not listed grow
// with weight 1.
var growWeights = map[Token]int{
	Space:     20,
	Enter:     12,
	Backspace: 10,
	CapsLock:  7,
	Tab:       5,
	Shift:     5,
}

// GrowWeight returns the share of spare row width a key receives.
func GrowWeight(t Token) int {
	if w, ok := growWeights[t]; ok {
		return w
	}
	return 1
}

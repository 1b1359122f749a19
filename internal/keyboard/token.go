// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import "strings"

// Token is the lowercase name of a logical key. Printable keys use their
// character (space is " "), special keys use a fixed name such as "backspace".
type Token string

// Named special keys.
const (
	Escape     Token = "escape"
	Backspace  Token = "backspace"
	Enter      Token = "enter"
	Tab        Token = "tab"
	CapsLock   Token = "capslock"
	Shift      Token = "shift"
	Control    Token = "control"
	Alt        Token = "alt"
	Space      Token = " "
	ArrowLeft  Token = "arrowleft"
	ArrowUp    Token = "arrowup"
	ArrowDown  Token = "arrowdown"
	ArrowRight Token = "arrowright"
)

// Normalize turns a raw key identifier into its token.
func Normalize(raw string) Token {
	return Token(strings.ToLower(raw))
}

// IsChar reports whether the token is a single character (as opposed to a
// named key like "enter").
func (t Token) IsChar() bool {
	return len([]rune(string(t))) == 1
}

// allowed lists every token that may produce a text change.
var allowed = func() map[Token]struct{} {
	set := make(map[Token]struct{})
	for _, c := range "!@#$%^&*()_+`1234567890-=qwertyuiop[]\\asdfghjkl;zxcvbnm,.: " {
		set[Token(c)] = struct{}{}
	}
	set[Enter] = struct{}{}
	set[Backspace] = struct{}{}
	return set
}()

// IsAllowed reports whether the token is part of the set of keys that may edit
// the input buffer.
func IsAllowed(t Token) bool {
	_, ok := allowed[t]
	return ok
}

// shiftedToBase maps a US-layout shifted symbol to the key that produces it.
var shiftedToBase = map[Token]Token{
	"!": "1", "@": "2", "#": "3", "$": "4", "%": "5",
	"^": "6", "&": "7", "*": "8", "(": "9", ")": "0",
	"_": "-", "+": "=", "~": "`", "{": "[", "}": "]",
	"|": "\\", ":": ";", "\"": "'", "<": ",", ">": ".", "?": "/",
}

var baseToShifted = func() map[Token]Token {
	m := make(map[Token]Token, len(shiftedToBase))
	for shifted, base := range shiftedToBase {
		m[base] = shifted
	}
	return m
}()

// Base returns the unshifted key for a shifted symbol.
func Base(t Token) (Token, bool) {
	base, ok := shiftedToBase[t]
	return base, ok
}

// Shifted returns the shifted symbol produced by a base key.
func Shifted(t Token) (Token, bool) {
	shifted, ok := baseToShifted[t]
	return shifted, ok
}

// Counterpart returns the other half of a shifted/base pair, if any.
func Counterpart(t Token) (Token, bool) {
	if base, ok := Base(t); ok {
		return base, true
	}
	return Shifted(t)
}

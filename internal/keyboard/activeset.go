// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import (
	"maps"
	"slices"
)

// ActiveSet is the set of keys currently considered pressed.
type ActiveSet map[Token]struct{}

func (s ActiveSet) Add(tokens ...Token) {
	for _, t := range tokens {
		s[t] = struct{}{}
	}
}

func (s ActiveSet) Remove(tokens ...Token) {
	for _, t := range tokens {
		delete(s, t)
	}
}

func (s ActiveSet) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the members in a stable order, mostly for tests and debug output.
func (s ActiveSet) Sorted() []Token {
	return slices.Sorted(maps.Keys(s))
}

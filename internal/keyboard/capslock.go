// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

// Caps is the caps-lock state. It starts out unknown until the user toggles
// it or the operating system reports it.
type Caps int

const (
	CapsUnknown Caps = iota
	CapsOff
	CapsOn
)

// CapsFromBool converts an OS-reported modifier state.
func CapsFromBool(on bool) Caps {
	if on {
		return CapsOn
	}
	return CapsOff
}

// On reports whether uppercase rendering applies. Unknown counts as off.
func (c Caps) On() bool {
	return c == CapsOn
}

// Toggle flips off and on. Unknown is treated as off.
func (c Caps) Toggle() Caps {
	if c == CapsOn {
		return CapsOff
	}
	return CapsOn
}

func (c Caps) String() string {
	switch c {
	case CapsOn:
		return "on"
	case CapsOff:
		return "off"
	default:
		return "unknown"
	}
}

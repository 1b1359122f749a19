// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyboard holds the key model of Keymirror: key tokens, the on-screen
// layout, the caps-lock state and the Tracker that turns key down/up events
// into active-key and input-buffer updates.
//
// The package has no UI or I/O dependencies. Everything here is mutated by a
// single owner (the bubbletea event loop) and is not safe for concurrent use.
package keyboard

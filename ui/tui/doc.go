// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the on-screen keyboard. Views live under models/views,
// reusable widgets under models/components.
package tui

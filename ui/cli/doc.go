// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli is the command line entry point. Without a subcommand it
// starts the on-screen keyboard; subcommands inspect configuration and input
// devices.
package cli

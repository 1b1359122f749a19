// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keymirror.
//
// Usage:
//
//	go run . [flags]
//	./keymirror [flags]
//
// This launches the on-screen keyboard. See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/keymirror/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keymirror: %v\n", err)
		os.Exit(1)
	}
}

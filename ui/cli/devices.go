// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/keymirror/internal/i18n"
	"github.com/toeirei/keymirror/internal/input"
)

// listKeyboards is replaced in tests.
var listKeyboards = input.ListKeyboards

func newDevicesCmd() *cobra.Command {
	return translated(&cobra.Command{
		Use: "devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			devices, err := listKeyboards()
			if errors.Is(err, input.ErrUnsupported) {
				fmt.Fprintln(out, i18n.T("devices.unsupported"))
				return nil
			}
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Fprintln(out, i18n.T("devices.none"))
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("PATH", "NAME", "CAPS LOCK")
			for _, d := range devices {
				t.Row(d.Path, d.Name, d.CapsLock.String())
			}
			fmt.Fprintln(out, t.String())
			return nil
		},
	}, "cli.devices_short", "")
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/keymirror/internal/i18n"
)

func newDebugCmd() *cobra.Command {
	return translated(&cobra.Command{
		Use: "debug",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- KEYMIRROR DEBUG ---")
			used := configFileUsed
			if used == "" {
				used = "(none)"
			}
			fmt.Fprintf(out, "Config file used: %s\n", used)
			lang := i18n.GetLang()
			fmt.Fprintf(out, "UI language: %s (%s)\n", lang, i18n.GetAvailableLocales()[lang])

			b, err := yaml.Marshal(appConfig)
			if err != nil {
				return fmt.Errorf("could not marshal config: %w", err)
			}
			fmt.Fprintln(out, "-- resolved config --")
			fmt.Fprint(out, string(b))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (KEYMIRROR_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "KEYMIRROR_") {
					fmt.Fprintln(out, e)
				}
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}, "cli.debug_short", "")
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/keymirror/buildvars"
	"github.com/toeirei/keymirror/internal/config"
	"github.com/toeirei/keymirror/internal/i18n"
	"github.com/toeirei/keymirror/internal/logging"
	"github.com/toeirei/keymirror/ui/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config
var configFileUsed string
var logCloser io.Closer = io.NopCloser(nil)

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	c, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), optional_config_path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to the configured file only.
	closer, err := logging.Setup(c.Log.File, c.Log.Level)
	if err != nil {
		return err
	}
	_ = logCloser.Close()
	logCloser = closer
	if verbose {
		logging.SetDebug(true)
	}

	// First run: persist the defaults so users have a file to edit. Flags
	// only apply to this run and stay out of the file.
	if used == "" {
		writeDefaultConfig()
	}

	i18n.SetLang(c.Language)
	localize(cmd.Root())

	appConfig = c
	configFileUsed = used
	return nil
}

func writeDefaultConfig() {
	defaults, _, err := config.LoadConfig[config.Config](nil, config.Defaults(), nil)
	if err != nil {
		logging.Warnf("could not resolve default config: %v", err)
		return
	}
	if path, err := config.WriteConfigFile(&defaults, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
	} else {
		logging.Infof("wrote default config to %s", path)
	}
}

// Execute runs the CLI entrypoint. The main package should call this function
// and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = logCloser.Close() }()

	return NewRootCmd().ExecuteContext(ctx)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// Annotation keys naming the message IDs of a command's help text.
const (
	shortMessage = "i18n.short"
	longMessage  = "i18n.long"
)

// translated sets the help text of cmd from message IDs and remembers them so
// localize can redo it once the configured language is known.
func translated(cmd *cobra.Command, short, long string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[shortMessage] = short
	if long != "" {
		cmd.Annotations[longMessage] = long
	}
	localize(cmd)
	return cmd
}

// localize translates the help text of cmd and its subcommands into the
// active language.
func localize(cmd *cobra.Command) {
	if id, ok := cmd.Annotations[shortMessage]; ok {
		cmd.Short = i18n.T(id)
	}
	if id, ok := cmd.Annotations[longMessage]; ok {
		cmd.Long = i18n.T(id)
	}
	for _, sub := range cmd.Commands() {
		localize(sub)
	}
}

// helpLanguage switches to the configured language before help is printed.
// Help skips PersistentPreRunE, so the config is resolved here on a best
// effort basis.
func helpLanguage(cmd *cobra.Command) {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return
	}
	c, _, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil || !i18n.IsAvailable(c.Language) {
		return
	}
	i18n.SetLang(c.Language)
	localize(cmd.Root())
}

// applyConfigFlags mirrors the config keys as flags. Their defaults must
// match config.Defaults because viper prefers flag defaults over its own.
func applyConfigFlags(cmd *cobra.Command) {
	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	flags.String("input.source", defaults["input.source"].(string), "Key event source: auto, terminal or evdev")
	flags.String("input.device", defaults["input.device"].(string), "evdev device path (default: first keyboard found)")
	flags.Duration("input.release_delay", defaults["input.release_delay"].(time.Duration), "How long a terminal key stays pressed")
	flags.Duration("keyboard.repeat_interval", defaults["keyboard.repeat_interval"].(time.Duration), "Backspace repeat interval")
	flags.String("log.file", defaults["log.file"].(string), "Write logs to this file")
	flags.String("log.level", defaults["log.level"].(string), "Log level: debug, info, warn or error")
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cfgFile, verbose = "", false

	cmd := &cobra.Command{
		Use:               "keymirror",
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(i18n.T("cli.not_a_terminal"))
			}
			return tui.Run(cmd.Context(), appConfig)
		},
	}

	translated(cmd, "cli.short", "cli.long")
	cmd.Version = compositeVersion(resolveBuildVersion(nil))

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpLanguage(c)
		defaultHelp(c, args)
	})

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyConfigFlags(cmd)

	// Add a lightweight `version` subcommand so users and CI can run `keymirror version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// no config needed to print the version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newDebugCmd(),
		newDevicesCmd(),
		versionCmd,
	)

	return cmd
}

func compositeVersion(v, c, d string) string {
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

const modulePath = "github.com/toeirei/keymirror"

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/toeirei/keymirror/internal/config"
	"github.com/toeirei/keymirror/internal/i18n"
	"github.com/toeirei/keymirror/internal/input"
	"github.com/toeirei/keymirror/internal/keyboard"
)

// isolate points the user config dir at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"debug", "devices", "version"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Fatalf("missing subcommand %q", name)
		}
	}
	for _, flag := range []string{"config", "verbose", "language", "input.source", "input.device", "input.release_delay", "keyboard.repeat_interval", "log.file", "log.level"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("missing flag %q", flag)
		}
	}
}

func TestSetup_WritesDefaultConfigOnFirstRun(t *testing.T) {
	isolate(t)
	out, err := run(t, "debug")
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	path, _ := config.GetConfigPath(false)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(out, "Config file used: (none)") {
		t.Fatalf("first run should report no config file:\n%s", out)
	}
	if !strings.Contains(out, "repeat_interval") {
		t.Fatalf("expected resolved config in output:\n%s", out)
	}

	// the second run reads the file written by the first
	out, err = run(t, "debug")
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	if !strings.Contains(out, "Config file used: "+path) {
		t.Fatalf("expected %s to be used:\n%s", path, out)
	}
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	isolate(t)
	if _, err := run(t, "debug", "--input.source", "terminal", "--keyboard.repeat_interval", "75ms", "--language", "de"); err != nil {
		t.Fatalf("debug: %v", err)
	}
	if appConfig.Input.Source != config.SourceTerminal {
		t.Fatalf("expected terminal source, got %q", appConfig.Input.Source)
	}
	if appConfig.Keyboard.RepeatInterval != 75*time.Millisecond {
		t.Fatalf("expected 75ms, got %s", appConfig.Keyboard.RepeatInterval)
	}
	if appConfig.Language != "de" {
		t.Fatalf("expected language de, got %q", appConfig.Language)
	}
}

func TestSetup_RejectsInvalidConfig(t *testing.T) {
	isolate(t)
	if _, err := run(t, "debug", "--input.source", "joystick"); err == nil || !strings.Contains(err.Error(), "input.source") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetup_MissingConfigFlagFile(t *testing.T) {
	tmp := isolate(t)
	if _, err := run(t, "debug", "--config", filepath.Join(tmp, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestSetup_ExplicitConfigFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	logFile := filepath.Join(tmp, "logs", "keymirror.log")
	content := "input:\n  source: terminal\nlog:\n  file: " + logFile + "\n  level: debug\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "debug", "--config", file)
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	if !strings.Contains(out, "Config file used: "+file) {
		t.Fatalf("expected explicit file used:\n%s", out)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("expected log file created: %v", err)
	}
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func() bool { return false }

	_, err := run(t)
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDevicesCmd(t *testing.T) {
	isolate(t)
	orig := listKeyboards
	defer func() { listKeyboards = orig }()

	listKeyboards = func() ([]input.Device, error) {
		return []input.Device{{Path: "/dev/input/event3", Name: "Test Keyboard", CapsLock: keyboard.CapsOn}}, nil
	}
	out, err := run(t, "devices")
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	for _, want := range []string{"/dev/input/event3", "Test Keyboard", "on"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}

	listKeyboards = func() ([]input.Device, error) { return nil, nil }
	if out, _ = run(t, "devices"); !strings.Contains(out, "no keyboard devices found") {
		t.Fatalf("unexpected output %q", out)
	}

	listKeyboards = func() ([]input.Device, error) { return nil, input.ErrUnsupported }
	if out, _ = run(t, "devices"); !strings.Contains(out, "only available on Linux") {
		t.Fatalf("unexpected output %q", out)
	}

	listKeyboards = func() ([]input.Device, error) { return nil, errors.New("permission denied") }
	if _, err = run(t, "devices"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHelp_UsesConfiguredLanguage(t *testing.T) {
	isolate(t)
	defer i18n.SetLang("en")

	path, _ := config.GetConfigPath(false)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, want := range []string{"Bildschirmtastatur", "Die aufgelöste Konfiguration ausgeben"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in German help:\n%s", want, out)
		}
	}

	out, err = run(t, "--language", "en", "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out, "on-screen keyboard for the terminal") {
		t.Fatalf("flag should switch help back to English:\n%s", out)
	}
}

func TestSetup_RejectsUnknownLanguageAndLevel(t *testing.T) {
	isolate(t)
	if _, err := run(t, "debug", "--language", "fr"); err == nil || !strings.Contains(err.Error(), "language") {
		t.Fatalf("expected language error, got %v", err)
	}
	if _, err := run(t, "debug", "--log.level", "loud"); err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

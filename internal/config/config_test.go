// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/keymirror/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	return tmp
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	c, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != "" {
		t.Fatalf("expected no config file, got %s", used)
	}
	if c.Language != "en" || c.Input.Source != cfg.SourceAuto {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Keyboard.RepeatInterval != 200*time.Millisecond {
		t.Fatalf("expected 200ms repeat interval, got %s", c.Keyboard.RepeatInterval)
	}
	if c.Input.ReleaseDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms release delay, got %s", c.Input.ReleaseDelay)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "language: de\ninput:\n  source: terminal\n  release_delay: 400ms\nkeyboard:\n  repeat_interval: 50ms\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != file {
		t.Fatalf("expected %s used, got %s", file, used)
	}
	if c.Language != "de" || c.Input.Source != cfg.SourceTerminal {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Input.ReleaseDelay != 400*time.Millisecond || c.Keyboard.RepeatInterval != 50*time.Millisecond {
		t.Fatalf("durations not parsed: %+v", c)
	}
	if c.Log.Level != "info" {
		t.Fatalf("expected default log level, got %q", c.Log.Level)
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("KEYMIRROR_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("input.source", cfg.SourceAuto, "")
	if err := cmd.Flags().Set("input.source", cfg.SourceEvdev); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, _, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "de" {
		t.Fatalf("expected env override, got %q", c.Language)
	}
	if c.Input.Source != cfg.SourceEvdev {
		t.Fatalf("expected flag override, got %q", c.Input.Source)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("input: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de"}
	c.Input.Source = cfg.SourceTerminal
	c.Input.ReleaseDelay = 300 * time.Millisecond
	c.Keyboard.RepeatInterval = 100 * time.Millisecond
	c.Log.Level = "debug"

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	want, _ := cfg.GetConfigPath(false)
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	loaded, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != path {
		t.Fatalf("expected written file to be picked up, got %q", used)
	}
	if loaded.Language != "de" || loaded.Input.ReleaseDelay != 300*time.Millisecond || loaded.Keyboard.RepeatInterval != 100*time.Millisecond {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	c := cfg.Config{}
	c.Input.Source = "joystick"
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"input.source", "release_delay", "repeat_interval"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestValidate_LanguageAndLogLevel(t *testing.T) {
	tests := []struct {
		language, level string
		wantErr         string
	}{
		{"en", "info", ""},
		{"de", "debug", ""},
		{"de-AT", "warn", ""},
		{"fr", "info", "language"},
		{"", "info", "language"},
		{"en", "verbose", "log.level"},
		{"en", "", "log.level"},
	}
	for _, tc := range tests {
		c := cfg.Config{Language: tc.language}
		c.Input.Source = cfg.SourceAuto
		c.Input.ReleaseDelay = time.Millisecond
		c.Keyboard.RepeatInterval = time.Millisecond
		c.Log.Level = tc.level

		err := c.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("%s/%s: unexpected error %v", tc.language, tc.level, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s/%s: expected %q error, got %v", tc.language, tc.level, tc.wantErr, err)
		}
	}
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Keymirror's settings from defaults, config files,
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keymirror/internal/i18n"
)

const appName = "keymirror"

// Input source names accepted by `input.source`.
const (
	SourceAuto     = "auto"
	SourceTerminal = "terminal"
	SourceEvdev    = "evdev"
)

type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Keyboard KeyboardConfig `mapstructure:"keyboard" yaml:"keyboard"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type InputConfig struct {
	// Source selects where physical key events come from: auto, terminal or evdev.
	Source string `mapstructure:"source" yaml:"source"`
	// Device is an evdev device path. Empty means auto-detect.
	Device string `mapstructure:"device" yaml:"device"`
	// ReleaseDelay is how long a terminal key stays pressed without a repeat.
	ReleaseDelay time.Duration `mapstructure:"release_delay" yaml:"release_delay"`
}

type KeyboardConfig struct {
	RepeatInterval time.Duration `mapstructure:"repeat_interval" yaml:"repeat_interval"`
}

type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the flat viper defaults.
func Defaults() map[string]any {
	return map[string]any{
		"language":                 "en",
		"input.source":             SourceAuto,
		"input.device":             "",
		"input.release_delay":      250 * time.Millisecond,
		"keyboard.repeat_interval": 200 * time.Millisecond,
		"log.file":                 "",
		"log.level":                "info",
	}
}

// Validate rejects values the UI cannot work with.
func (c Config) Validate() error {
	var errs []error
	if !i18n.IsAvailable(c.Language) {
		errs = append(errs, fmt.Errorf("unsupported language %q", c.Language))
	}
	switch c.Input.Source {
	case SourceAuto, SourceTerminal, SourceEvdev:
	default:
		errs = append(errs, fmt.Errorf("unknown input.source %q (want auto, terminal or evdev)", c.Input.Source))
	}
	if c.Input.ReleaseDelay <= 0 {
		errs = append(errs, fmt.Errorf("input.release_delay must be positive, got %s", c.Input.ReleaseDelay))
	}
	if c.Keyboard.RepeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("keyboard.repeat_interval must be positive, got %s", c.Keyboard.RepeatInterval))
	}
	if _, err := clog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("unknown log.level %q (want debug, info, warn or error)", c.Log.Level))
	}
	return errors.Join(errs...)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keymirror")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves T from defaults, config files, the environment and the
// flags of cmd, in increasing precedence. It returns the config file that was
// read, or "" when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, string, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// 3. Explicit --config path has the highest precedence for files
	if additional_config_file_path != nil {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("could not read config: %w", err)
		}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. cli
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("could not parse config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile writes c to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/internal/config"
	"github.com/toeirei/keymirror/internal/input"
)

type fakeSource struct{}

func (fakeSource) Name() string                                  { return "evdev: fake" }
func (fakeSource) Run(ctx context.Context, _ func(tea.Msg)) error { <-ctx.Done(); return nil }

func TestOptions(t *testing.T) {
	var cfg config.Config
	cfg.Input.ReleaseDelay = 250 * time.Millisecond
	cfg.Keyboard.RepeatInterval = 200 * time.Millisecond

	opts := Options(cfg, nil)
	if opts.Physical || opts.Source != input.TerminalSourceName {
		t.Fatalf("expected terminal input, got %+v", opts)
	}
	if opts.ReleaseDelay != 250*time.Millisecond || opts.RepeatInterval != 200*time.Millisecond {
		t.Fatalf("durations not passed through: %+v", opts)
	}

	opts = Options(cfg, fakeSource{})
	if !opts.Physical || opts.Source != "evdev: fake" {
		t.Fatalf("expected physical input, got %+v", opts)
	}
}

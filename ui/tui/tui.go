// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/internal/config"
	"github.com/toeirei/keymirror/internal/input"
	"github.com/toeirei/keymirror/internal/logging"
	"github.com/toeirei/keymirror/ui/tui/models/views/mirror"
	"github.com/toeirei/keymirror/ui/tui/models/views/root"
)

// Options maps the configuration onto the mirror view. src is the background
// input source, nil when the terminal is the only input.
func Options(cfg config.Config, src input.Source) mirror.Options {
	opts := mirror.Options{
		Source:         input.TerminalSourceName,
		ReleaseDelay:   cfg.Input.ReleaseDelay,
		RepeatInterval: cfg.Keyboard.RepeatInterval,
	}
	if src != nil {
		opts.Source = src.Name()
		opts.Physical = true
	}
	return opts
}

func Run(ctx context.Context, cfg config.Config) error {
	src, err := input.Open(cfg.Input)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		root.New(Options(cfg, src)),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if src != nil {
		srcCtx, cancel := context.WithCancel(ctx)
		wait := input.Listen(srcCtx, src, p.Send)
		defer wait()
		defer cancel()
	}

	logging.Debugf("starting tui, input %s", Options(cfg, src).Source)
	_, err = p.Run()
	return err
}

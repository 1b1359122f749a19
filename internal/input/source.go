// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input turns physical keyboard activity into key down/up messages
// for the TUI. Two sources exist: the terminal itself (key presses only, the
// release is synthesized after a delay) and, on Linux, an evdev keyboard
// device which reports real releases and the caps-lock LED.
package input

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/internal/config"
	"github.com/toeirei/keymirror/internal/keyboard"
	"github.com/toeirei/keymirror/internal/logging"
)

// ErrUnsupported is returned by evdev functions on platforms without evdev.
var ErrUnsupported = errors.New("evdev input is not supported on this platform")

// KeyDownMsg reports a pressed (or auto-repeated) physical key.
type KeyDownMsg struct {
	Event keyboard.KeyEvent
}

// KeyUpMsg reports a released physical key.
type KeyUpMsg struct {
	Event keyboard.KeyEvent
}

// SourceClosedMsg is sent when a background source stops on its own.
type SourceClosedMsg struct {
	Err error
}

// Source delivers key messages from outside the bubbletea input loop.
type Source interface {
	Name() string
	// Run blocks, sending messages until ctx is done or the device fails.
	Run(ctx context.Context, send func(tea.Msg)) error
}

// Open resolves the configured input source. A nil Source means the terminal
// is the only input. In auto mode evdev failures fall back to the terminal.
func Open(cfg config.InputConfig) (Source, error) {
	switch cfg.Source {
	case config.SourceTerminal:
		return nil, nil
	case config.SourceEvdev:
		src, err := OpenEvdev(cfg.Device)
		if err != nil {
			return nil, fmt.Errorf("could not open evdev input: %w", err)
		}
		return src, nil
	default:
		src, err := OpenEvdev(cfg.Device)
		if err != nil {
			logging.Infof("evdev input unavailable, using terminal input: %v", err)
			return nil, nil
		}
		return src, nil
	}
}

// Listen runs src in the background for as long as ctx lives. The returned
// function blocks until the source has stopped; call it after cancelling ctx.
func Listen(ctx context.Context, src Source, send func(tea.Msg)) (wait func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := src.Run(ctx, send)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logging.Errorf("%s input stopped: %v", src.Name(), err)
		}
		send(SourceClosedMsg{Err: err})
	}()
	return wg.Wait
}

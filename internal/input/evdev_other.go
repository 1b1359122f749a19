// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build !linux

package input

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keymirror/internal/keyboard"
)

type Device struct {
	Path     string
	Name     string
	CapsLock keyboard.Caps
}

func ListKeyboards() ([]Device, error) {
	return nil, ErrUnsupported
}

type EvdevSource struct{}

func OpenEvdev(string) (*EvdevSource, error) {
	return nil, ErrUnsupported
}

func (s *EvdevSource) Name() string { return "evdev" }

func (s *EvdevSource) CapsLock() keyboard.Caps { return keyboard.CapsUnknown }

func (s *EvdevSource) Run(context.Context, func(tea.Msg)) error {
	return ErrUnsupported
}

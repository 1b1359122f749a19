// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	evdev "github.com/holoplot/go-evdev"
	"github.com/toeirei/keymirror/internal/keyboard"
	"github.com/toeirei/keymirror/internal/logging"
	"go.uber.org/atomic"
)

// key event values reported by the kernel
const (
	keyReleased int32 = 0
	keyPressed  int32 = 1
	keyRepeated int32 = 2
)

// requiredKeys identify a device as a full keyboard rather than a power
// button or a mouse with a few extra keys.
var requiredKeys = []evdev.EvCode{
	evdev.KEY_A, evdev.KEY_Z, evdev.KEY_SPACE, evdev.KEY_ENTER, evdev.KEY_LEFTSHIFT,
}

// Device describes a keyboard found under /dev/input.
type Device struct {
	Path     string
	Name     string
	CapsLock keyboard.Caps
}

// ListKeyboards returns every readable keyboard device.
func ListKeyboards() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("could not list input devices: %w", err)
	}

	var devices []Device
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			logging.Debugf("skipping %s: %v", p.Path, err)
			continue
		}
		if isKeyboard(dev) {
			devices = append(devices, Device{
				Path:     p.Path,
				Name:     p.Name,
				CapsLock: readCapsLED(dev),
			})
		}
		_ = dev.Close()
	}
	return devices, nil
}

func isKeyboard(dev *evdev.InputDevice) bool {
	codes := dev.CapableEvents(evdev.EV_KEY)
	for _, code := range requiredKeys {
		if !slices.Contains(codes, code) {
			return false
		}
	}
	return true
}

func readCapsLED(dev *evdev.InputDevice) keyboard.Caps {
	state, err := dev.State(evdev.EV_LED)
	if err != nil {
		return keyboard.CapsUnknown
	}
	return keyboard.CapsFromBool(state[evdev.LED_CAPSL])
}

// EvdevSource reads key events straight from a keyboard device.
type EvdevSource struct {
	dev  *evdev.InputDevice
	name string

	// written by the reader goroutine, read by CapsLock from the UI side
	shiftHeld atomic.Int32
	capsLED   atomic.Bool
	capsKnown atomic.Bool
}

// OpenEvdev opens the keyboard at path, or the first detected keyboard when
// path is empty. Reading /dev/input usually requires the input group.
func OpenEvdev(path string) (*EvdevSource, error) {
	if path == "" {
		devices, err := ListKeyboards()
		if err != nil {
			return nil, err
		}
		if len(devices) == 0 {
			return nil, errors.New("no readable keyboard device found")
		}
		path = devices[0].Path
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	if !isKeyboard(dev) {
		_ = dev.Close()
		return nil, fmt.Errorf("%s is not a keyboard", path)
	}

	name, err := dev.Name()
	if err != nil {
		name = path
	}
	s := &EvdevSource{dev: dev, name: name}
	s.refreshCaps()
	logging.Infof("reading keys from %s (%s), caps lock %s", path, name, s.CapsLock())
	return s, nil
}

func (s *EvdevSource) Name() string {
	return "evdev: " + s.name
}

// CapsLock returns the last known caps-lock LED state.
func (s *EvdevSource) CapsLock() keyboard.Caps {
	if !s.capsKnown.Load() {
		return keyboard.CapsUnknown
	}
	return keyboard.CapsFromBool(s.capsLED.Load())
}

func (s *EvdevSource) refreshCaps() {
	if s.dev == nil {
		return
	}
	if caps := readCapsLED(s.dev); caps != keyboard.CapsUnknown {
		s.capsLED.Store(caps.On())
		s.capsKnown.Store(true)
	}
}

// Run reads the device until ctx is cancelled. Cancelling closes the device,
// which unblocks the pending read.
func (s *EvdevSource) Run(ctx context.Context, send func(tea.Msg)) error {
	stop := context.AfterFunc(ctx, func() { _ = s.dev.Close() })
	defer stop()

	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read %s: %w", s.name, err)
		}
		if msg, ok := s.handle(ev); ok {
			send(msg)
		}
	}
}

func (s *EvdevSource) handle(ev *evdev.InputEvent) (tea.Msg, bool) {
	switch ev.Type {
	case evdev.EV_LED:
		if ev.Code == evdev.LED_CAPSL {
			s.capsLED.Store(ev.Value != 0)
			s.capsKnown.Store(true)
		}
		return nil, false
	case evdev.EV_KEY:
	default:
		return nil, false
	}

	if ev.Code == evdev.KEY_LEFTSHIFT || ev.Code == evdev.KEY_RIGHTSHIFT {
		switch ev.Value {
		case keyPressed:
			s.shiftHeld.Inc()
		case keyReleased:
			if s.shiftHeld.Dec() < 0 {
				s.shiftHeld.Store(0)
			}
		}
	}

	raw, ok := translateKey(ev.Code, s.shiftHeld.Load() > 0, s.CapsLock().On())
	if !ok {
		return nil, false
	}

	switch ev.Value {
	case keyPressed, keyRepeated:
		s.refreshCaps()
		return KeyDownMsg{Event: keyboard.KeyEvent{Key: raw, CapsLock: s.CapsLock()}}, true
	case keyReleased:
		return KeyUpMsg{Event: keyboard.KeyEvent{Key: raw}}, true
	}
	return nil, false
}

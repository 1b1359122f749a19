// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/keymirror/ui/tui/models/components/stack"
	"github.com/toeirei/keymirror/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// the header gives way once the keyboard runs out of rows
func (s *sizeConfig) Calculate(model util.Model, _ int, total_size int) int {
	if total_size >= 20 {
		return 2
	}
	return 0
}

// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/ui/tui/models/components/stack"
	"github.com/toeirei/keymirror/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, remaining_size int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return max(lipgloss.Height(footer.view()), 1) + 1
	}
	return 2
}

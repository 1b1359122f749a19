// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
package keys

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keymirror/internal/keyboard"
	"github.com/toeirei/keymirror/util/slicest"
)

type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

// breakpoint widths in terminal columns
const (
	TabletWidth  = 80
	DesktopWidth = 120
)

func BreakpointFor(width int) Breakpoint {
	switch {
	case width >= DesktopWidth:
		return Desktop
	case width >= TabletWidth:
		return Tablet
	default:
		return Mobile
	}
}

func (b Breakpoint) String() string {
	switch b {
	case Desktop:
		return "desktop"
	case Tablet:
		return "tablet"
	default:
		return "mobile"
	}
}

// Metrics are the size parameters of one breakpoint.
type Metrics struct {
	Breakpoint Breakpoint
	// PaddingX is the blank space left and right of a label.
	PaddingX int
	// Gap is the number of columns between two keys of a row.
	Gap int
	// RowGap is the number of blank lines between two rows.
	RowGap int
	// InsetX and InsetY frame the keys inside the keyboard background.
	InsetX, InsetY int
	Bordered       bool
	LongLabels     bool
}

func MetricsFor(b Breakpoint) Metrics {
	switch b {
	case Desktop:
		return Metrics{Breakpoint: Desktop, PaddingX: 1, Gap: 1, InsetX: 2, InsetY: 1, Bordered: true, LongLabels: true}
	case Tablet:
		return Metrics{Breakpoint: Tablet, PaddingX: 1, Gap: 1, RowGap: 1, InsetX: 1, InsetY: 1}
	default:
		return Metrics{Breakpoint: Mobile, Gap: 1}
	}
}

func (m Metrics) keyHeight() int {
	if m.Bordered {
		return 3
	}
	return 1
}

func (m Metrics) frameWidth() int {
	width := 2 * m.PaddingX
	if m.Bordered {
		width += 2
	}
	return width
}

// Cell is a key placed on the keyboard, relative to its top left corner.
type Cell struct {
	Token  keyboard.Token
	Row    int
	X, Y   int
	Width  int
	Height int
}

func (c Cell) contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

type Layout struct {
	Metrics Metrics
	Rows    [][]Cell
	Width   int
	Height  int
}

// ComputeLayout places rows into a width x height area. The breakpoint
// follows the width and steps down while the keyboard is too tall. Spare
// width of a row goes to its keys by grow weight.
func ComputeLayout(rows [][]keyboard.Token, width, height int) Layout {
	bp := BreakpointFor(width)
	for {
		layout := layoutFor(rows, width, MetricsFor(bp))
		if layout.Height <= height || bp == Mobile {
			return layout
		}
		bp--
	}
}

func layoutFor(rows [][]keyboard.Token, width int, m Metrics) Layout {
	naturals := slicest.Map(rows, func(row []keyboard.Token) []int {
		return slicest.Map(row, func(token keyboard.Token) int {
			return lipgloss.Width(Label(token, false, m.LongLabels)) + m.frameWidth()
		})
	})

	rowWidth := func(widths []int) int {
		return slicest.Reduce(widths, func(w int, total int) int { return total + w }) + m.Gap*max(len(widths)-1, 0)
	}
	widest := slicest.Reduce(naturals, func(widths []int, widest int) int { return max(widest, rowWidth(widths)) })

	// the keyboard takes most of the width but never less than its widest row
	inner := max(widest, width*9/10-2*m.InsetX)

	layout := Layout{Metrics: m, Rows: make([][]Cell, len(rows))}
	y := m.InsetY
	for r, row := range rows {
		widths := grow(row, naturals[r], inner-rowWidth(naturals[r]))
		x := m.InsetX
		cells := make([]Cell, len(row))
		for i, token := range row {
			cells[i] = Cell{Token: token, Row: r, X: x, Y: y, Width: widths[i], Height: m.keyHeight()}
			x += widths[i] + m.Gap
		}
		layout.Rows[r] = cells
		layout.Width = max(layout.Width, x-m.Gap+m.InsetX)
		y += m.keyHeight()
		if r < len(rows)-1 {
			y += m.RowGap
		}
	}
	layout.Width = max(layout.Width, inner+2*m.InsetX)
	layout.Height = y + m.InsetY
	return layout
}

// grow distributes extra columns by grow weight. Like the stack sizes, each
// key takes its share of what is left so the shares add up exactly.
func grow(row []keyboard.Token, widths []int, extra int) []int {
	out := make([]int, len(widths))
	copy(out, widths)
	if extra <= 0 {
		return out
	}
	total := slicest.Reduce(row, func(token keyboard.Token, total int) int { return total + keyboard.GrowWeight(token) })
	for i, token := range row {
		weight := keyboard.GrowWeight(token)
		share := (extra * weight) / total
		out[i] += share
		extra -= share
		total -= weight
	}
	return out
}

// KeyAt returns the key under the given point.
func (l Layout) KeyAt(x, y int) (Cell, bool) {
	for _, row := range l.Rows {
		for _, cell := range row {
			if cell.contains(x, y) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}

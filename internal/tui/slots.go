package tui

import (
	"fmt"
	"slices"

	"charm.land/lipgloss/v2"

	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/tui/theme"
	"github.com/shesviral/viralkit/internal/wizard"
)

// renderSlotStrip renders the five script slots side by side. The active
// slot is highlighted and slots no longer valid for the family are flagged.
func renderSlotStrip(v wizard.View, width int) string {
	s := theme.Current().S()
	cellWidth := width/engine.SlotCount - 2
	if cellWidth < 8 {
		cellWidth = 8
	}

	cells := make([]string, engine.SlotCount)
	for i, script := range v.Slots {
		label := fmt.Sprintf("%d ", i+1)
		style := s.SlotEmpty
		switch {
		case script != nil:
			label += script.Type.Label()
			style = s.SlotFilled
			if slices.Contains(v.StaleSlots, i) {
				style = s.SlotStale
			}
		case i == v.ActiveSlot:
			label += "…"
		default:
			label += "empty"
		}
		if i == v.ActiveSlot {
			style = s.SlotActive
		}
		cells[i] = style.Width(cellWidth).Render(truncate(label, cellWidth-2))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

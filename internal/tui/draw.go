package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// DrawText renders plain or pre-styled text into area.
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawRows stacks blocks top to bottom inside area and returns the rectangle
// left below them. Blocks that do not fit are clipped.
func DrawRows(scr uv.Screen, area uv.Rectangle, blocks ...string) uv.Rectangle {
	y := area.Min.Y
	for _, block := range blocks {
		if y >= area.Max.Y {
			break
		}
		h := lipgloss.Height(block)
		if block == "" {
			h = 1
		}
		end := min(y+h, area.Max.Y)
		DrawText(scr, uv.Rect(area.Min.X, y, area.Dx(), end-y), block)
		y = end
	}
	return uv.Rect(area.Min.X, y, area.Dx(), max(area.Max.Y-y, 0))
}

// PanelHeader renders "Title ────" filling width.
func PanelHeader(title string, width int, titleStyle, ruleStyle lipgloss.Style) string {
	styled := titleStyle.Render(title)
	ruleWidth := width - lipgloss.Width(styled) - 1
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	return styled + " " + ruleStyle.Render(strings.Repeat("─", ruleWidth))
}

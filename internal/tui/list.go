package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shesviral/viralkit/internal/tui/theme"
)

// listRow is one line of a selectable list.
type listRow struct {
	text     string
	selected bool
	disabled bool
	reason   string
}

// window returns the half-open range of rows to show so that cursor stays
// visible in a viewport of height rows.
func window(cursor, total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// clampCursor keeps cursor within [0, n).
func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// renderList renders rows with a cursor, truncating each row to width.
func renderList(rows []listRow, cursor, width, height int, empty string) string {
	s := theme.Current().S()
	if len(rows) == 0 {
		return s.Muted.Render(empty)
	}

	start, end := window(cursor, len(rows), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := rows[i]
		mark := "  "
		if row.selected {
			mark = "✓ "
		}
		text := mark + row.text
		if row.disabled && row.reason != "" {
			text += "  Unavailable: " + row.reason
		}
		text = truncate(text, width-3)

		switch {
		case i == cursor:
			lines = append(lines, s.ListCursor.Render(text))
		case row.disabled:
			lines = append(lines, s.ListDisabled.Render(text))
		case row.selected:
			lines = append(lines, s.ListSelected.Render(text))
		default:
			lines = append(lines, s.ListItem.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTabs renders a tab row with active highlighted.
func renderTabs(labels []string, active int) string {
	s := theme.Current().S()
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			parts[i] = s.TabActive.Render(label)
		} else {
			parts[i] = s.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

// truncate shortens s to width cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// firstLine returns the first line of s.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

package tui

import (
	"strings"

	"charm.land/glamour/v2"

	"github.com/shesviral/viralkit/internal/logger"
)

const maxMarkdownWidth = 120

// renderMarkdown renders content with the glamour standard style. It falls
// back to plain wrapped text if rendering fails.
func renderMarkdown(content string, width int, style string) string {
	if width > maxMarkdownWidth {
		width = maxMarkdownWidth
	}
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable: %v", err)
		return wrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		logger.Warn("markdown render failed: %v", err)
		return wrapText(content, width)
	}
	return strings.TrimSuffix(rendered, "\n")
}

// wrapText wraps text at word boundaries to fit within width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			if len(current)+1+len(w) > width {
				out = append(out, current)
				current = w
				continue
			}
			current += " " + w
		}
		out = append(out, current)
	}
	return strings.Join(out, "\n")
}

// Package summary renders the assembled content package as a document.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/wizard"
)

// Item is one copyable piece of the summary.
type Item struct {
	Label string
	Text  string
}

// Items returns the copyable pieces in display order: the hook, then both
// paragraphs of every filled slot.
func Items(v wizard.View) []Item {
	var items []Item
	if v.Hook != nil {
		items = append(items, Item{Label: "Hook", Text: v.Hook.Idea})
	}
	for i, s := range v.Slots {
		if s == nil {
			continue
		}
		items = append(items,
			Item{Label: fmt.Sprintf("Script %d P1", i+1), Text: s.Paragraph1},
			Item{Label: fmt.Sprintf("Script %d P2", i+1), Text: s.Paragraph2},
		)
	}
	return items
}

// Markdown renders the summary as a Markdown document.
func Markdown(v wizard.View) string {
	var b strings.Builder
	b.WriteString("# Content Summary\n\n")

	b.WriteString("## Visual Style\n\n")
	if v.Style != nil {
		fmt.Fprintf(&b, "**%s**\n\n", v.Style.DisplayTitle())
		for i, img := range v.Style.Images {
			fmt.Fprintf(&b, "- [Preview %d](%s)\n", i+1, img)
		}
		if len(v.Style.Images) > 0 {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("_No style selected_\n\n")
	}

	b.WriteString("## Hook\n\n")
	if v.Hook != nil {
		fmt.Fprintf(&b, "> %s\n\n", v.Hook.Idea)
		if v.Hook.Category != "" {
			fmt.Fprintf(&b, "Category: %s\n\n", catalog.CategoryLabel(v.Hook.Category))
		}
	} else {
		b.WriteString("_No hook selected_\n\n")
	}

	b.WriteString("## Scripts\n")
	for i, s := range v.Slots {
		fmt.Fprintf(&b, "\n### Script %d (Position %d)\n\n", i+1, i+1)
		if s == nil {
			b.WriteString("_Not selected_\n")
			continue
		}
		fmt.Fprintf(&b, "*%s*\n\n", s.Type.Label())
		fmt.Fprintf(&b, "**Paragraph 1:**\n\n%s\n\n", s.Paragraph1)
		fmt.Fprintf(&b, "**Paragraph 2:**\n\n%s\n", s.Paragraph2)
	}
	return b.String()
}

// PlainText renders the summary without markup, ready to paste.
func PlainText(v wizard.View) string {
	var b strings.Builder

	b.WriteString("VISUAL STYLE\n")
	if v.Style != nil {
		b.WriteString(v.Style.DisplayTitle() + "\n")
	} else {
		b.WriteString("No style selected\n")
	}

	b.WriteString("\nHOOK\n")
	if v.Hook != nil {
		b.WriteString(v.Hook.Idea + "\n")
	} else {
		b.WriteString("No hook selected\n")
	}

	b.WriteString("\nSCRIPTS\n")
	for i, s := range v.Slots {
		fmt.Fprintf(&b, "\nScript %d\n", i+1)
		if s == nil {
			b.WriteString("Not selected\n")
			continue
		}
		b.WriteString(s.Paragraph1 + "\n")
		b.WriteString(s.Paragraph2 + "\n")
	}
	return b.String()
}

// FileName returns the export file name for v, e.g.
// "apple-notes-app-style-2026-10-15.md".
func FileName(v wizard.View, now time.Time) string {
	base := "content"
	if v.Style != nil {
		if s := slug.Make(v.Style.DisplayTitle()); s != "" {
			base = s
		}
	}
	return fmt.Sprintf("%s-%s.md", base, now.Format("2006-01-02"))
}

// Write stores the Markdown summary in dir and returns the file path.
func Write(dir string, v wizard.View, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(v, now))
	if err := os.WriteFile(path, []byte(Markdown(v)), 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

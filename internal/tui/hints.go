package tui

import (
	"github.com/shesviral/viralkit/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDownJK = "↑↓/jk"
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyNext     = "n"
	KeyBack     = "b"
	KeySlots    = "1-5"
	KeyRemove   = "x 1-5"
	KeyCopy     = "c"
	KeyExport   = "s"
	KeyEdit     = "e"
	KeyReset    = "r"
	KeyQuit     = "q"
)

// RenderHint renders a single key-description pair.
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs
// separated by " . ". An odd number of arguments renders nothing.
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render(".") + " "
		}
		result += RenderHint(pairs[i], pairs[i+1])
	}
	return result
}

// HintStyle returns the hints of the style step.
func HintStyle() string {
	return RenderHintBar(KeyUpDownJK, "move", KeyEnter, "select", KeyNext, "next", KeyQuit, "quit")
}

// HintHook returns the hints of the hook step.
func HintHook() string {
	return RenderHintBar(KeyTab, "category", KeyUpDownJK, "move", KeyEnter, "select", KeyNext, "next", KeyEsc, "back")
}

// HintScripts returns the hints of the scripts step.
func HintScripts() string {
	return RenderHintBar(KeyTab, "type", KeyEnter, "add", KeySlots, "slot", KeyRemove, "remove", KeyNext, "review", KeyEsc, "back")
}

// HintSummary returns the hints of the summary step.
func HintSummary() string {
	return RenderHintBar(KeyCopy, "copy all", "h", "hook", KeySlots, "script", KeyExport, "save", KeyEdit, "edit", KeyBack, "back to edit", KeyReset, "restart")
}

package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shesviral/viralkit/internal/tui/theme"
)

const toastDuration = 3 * time.Second

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// Toast is a one-line notification shown in the bottom-right corner.
// Showing a new message restarts the dismiss timer.
type Toast struct {
	message   string
	visible   bool
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg and schedules its dismissal.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.dismissAt = time.Now().Add(toastDuration)
	return t.dismissCmd()
}

func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = time.Millisecond
	}
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

// Update handles messages for the toast component. A dismiss that arrives
// before the current message expired is rescheduled.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(ToastDismissMsg); ok && t.visible {
		if time.Now().Before(t.dismissAt) {
			return t.dismissCmd()
		}
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast right-aligned within width, or "" when hidden.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := theme.Current().S().Toast
	content := style.Render(t.message)
	if lipgloss.Width(content) > width-2 && width > 2 {
		content = style.Width(width - 2).Render(t.message)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the current toast message (empty if not visible).
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

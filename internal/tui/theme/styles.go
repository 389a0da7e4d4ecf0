package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Subtitle    lipgloss.Style
	Muted       lipgloss.Style
	Body        lipgloss.Style
	Error       lipgloss.Style

	// Stepper
	StepDone    lipgloss.Style
	StepCurrent lipgloss.Style
	StepTodo    lipgloss.Style
	StepArrow   lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListCursor   lipgloss.Style
	ListDisabled lipgloss.Style
	Reason       lipgloss.Style

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Slot strip
	SlotEmpty  lipgloss.Style
	SlotFilled lipgloss.Style
	SlotActive lipgloss.Style
	SlotStale  lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	Toast lipgloss.Style
	Panel lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	slot := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(c(t.Secondary)),
		Muted:       lipgloss.NewStyle().Foreground(c(t.BgOverlay)),
		Body:        lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Error:       lipgloss.NewStyle().Foreground(c(t.Error)),

		StepDone:    lipgloss.NewStyle().Foreground(c(t.Success)),
		StepCurrent: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true).Underline(true),
		StepTodo:    lipgloss.NewStyle().Foreground(c(t.BgOverlay)),
		StepArrow:   lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		ListItem:     lipgloss.NewStyle().Foreground(c(t.FgBase)).PaddingLeft(2),
		ListSelected: lipgloss.NewStyle().Foreground(c(t.Success)).PaddingLeft(2),
		ListCursor:   lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Tertiary)).Bold(true).PaddingLeft(1).PaddingRight(1),
		ListDisabled: lipgloss.NewStyle().Foreground(c(t.BgOverlay)).PaddingLeft(2),
		Reason:       lipgloss.NewStyle().Foreground(c(t.Warning)).Italic(true),

		TabActive:   lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Primary)).Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(c(t.FgMuted)).Background(c(t.BgSurface0)).Padding(0, 1),

		SlotEmpty:  slot.BorderForeground(c(t.BgSurface2)).Foreground(c(t.BgOverlay)),
		SlotFilled: slot.BorderForeground(c(t.Success)).Foreground(c(t.FgBase)),
		SlotActive: slot.BorderForeground(c(t.Primary)).Foreground(c(t.FgBright)).Bold(true),
		SlotStale:  slot.BorderForeground(c(t.Warning)).Foreground(c(t.Warning)),

		ButtonNormal:   button.Foreground(c(t.FgBase)).Background(c(t.BgSurface0)),
		ButtonDisabled: button.Foreground(c(t.BgOverlay)).Background(c(t.BgMantle)),
		ButtonFocused:  button.Foreground(c(t.BgBase)).Background(c(t.Tertiary)).Bold(true),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.BgOverlay)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		Toast: lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Warning)).Padding(0, 1).Bold(true),
		Panel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c(t.BgSurface1)).Padding(0, 1),
	}
}

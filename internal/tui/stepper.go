package tui

import (
	"fmt"
	"strings"

	"github.com/shesviral/viralkit/internal/tui/theme"
	"github.com/shesviral/viralkit/internal/wizard"
)

// renderStepper renders the step indicator, e.g. "✓ Visual Style › 2 Hook › 3 Scripts".
func renderStepper(current wizard.Step) string {
	s := theme.Current().S()
	parts := make([]string, 0, len(wizard.Steps))
	for i, step := range wizard.Steps {
		switch {
		case step < current:
			parts = append(parts, s.StepDone.Render("✓ "+step.Title()))
		case step == current:
			parts = append(parts, s.StepCurrent.Render(fmt.Sprintf("%d %s", i+1, step.Title())))
		default:
			parts = append(parts, s.StepTodo.Render(fmt.Sprintf("%d %s", i+1, step.Title())))
		}
	}
	return strings.Join(parts, s.StepArrow.Render(" › "))
}

// renderStepTitle renders the heading of the current step with its sublabel.
func renderStepTitle(step wizard.Step) string {
	s := theme.Current().S()
	return s.HeaderTitle.Render(step.Title()) + "  " + s.Muted.Render(step.Sublabel())
}

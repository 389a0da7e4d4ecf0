package wizard

import "fmt"

// Step is a position in the four-step wizard.
type Step int

const (
	StepStyle Step = iota
	StepHook
	StepScripts
	StepSummary
)

// Steps lists the wizard steps in order.
var Steps = []Step{StepStyle, StepHook, StepScripts, StepSummary}

// String returns the short step name used in logs and journal events.
func (s Step) String() string {
	switch s {
	case StepStyle:
		return "style"
	case StepHook:
		return "hook"
	case StepScripts:
		return "scripts"
	case StepSummary:
		return "summary"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepStyle:
		return "Visual Style"
	case StepHook:
		return "Hook"
	case StepScripts:
		return "Scripts"
	case StepSummary:
		return "Summary"
	default:
		return s.String()
	}
}

// Sublabel returns the short instruction under the step title.
func (s Step) Sublabel() string {
	switch s {
	case StepStyle:
		return "Choose your style"
	case StepHook:
		return "Select your hook"
	case StepScripts:
		return "Pick 5 scripts"
	case StepSummary:
		return "Review & copy"
	default:
		return ""
	}
}

// Valid reports whether s is one of the four steps.
func (s Step) Valid() bool {
	return s >= StepStyle && s <= StepSummary
}

// ParseStep converts a step name back into a Step.
func ParseStep(name string) (Step, error) {
	for _, s := range Steps {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}

package wizard

import (
	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/engine"
)

// View is an immutable snapshot of a session for rendering.
type View struct {
	Step       Step
	Style      *catalog.Style
	Hook       *catalog.Hook
	Slots      engine.Slots
	ActiveSlot int
	Family     engine.Family

	// Evaluation of the active slot.
	Eval            engine.Evaluation
	ImpliedCategory catalog.ScriptType
	ActiveCategory  catalog.ScriptType
	Tabs            []catalog.ScriptType
	Subtitle        string
	Eligible        []catalog.Script
	// Listed holds every script of the active category, eligible or not.
	Listed          []catalog.Script
	DisabledReasons map[string]string

	CanAdvance     bool
	Filled         int
	StaleSlots     []int
	StaleHook      bool
	HookCategories []string
}

// Snapshot evaluates the active slot and returns the current view.
func (s *Session) Snapshot() View {
	ev := s.evaluate()
	active := ev.ResolveTab(s.tab)
	scripts := s.catalog.Scripts()

	v := View{
		Step:            s.step,
		Slots:           s.slots,
		ActiveSlot:      s.active,
		Family:          s.Family(),
		Eval:            ev,
		ImpliedCategory: ev.ImpliedCategory(),
		ActiveCategory:  active,
		Tabs:            ev.Tabs(),
		Subtitle:        ev.Subtitle(),
		Eligible:        ev.EligibleScripts(scripts),
		Listed:          s.catalog.ScriptsOfType(active),
		DisabledReasons: ev.DisabledReasons(scripts),
		CanAdvance:      s.CanAdvance(),
		Filled:          s.slots.Filled(),
		StaleSlots:      engine.StaleSlots(s.slots, s.Family()),
		HookCategories:  catalog.HookCategories(s.Family() == engine.Mistake),
	}
	if s.style != nil {
		st := *s.style
		v.Style = &st
	}
	if s.hook != nil {
		h := *s.hook
		v.Hook = &h
		v.StaleHook = !HookFits(h, v.Family)
	}
	return v
}

// IsEligible reports whether the script with the given id may fill the
// active slot.
func (v View) IsEligible(id string) bool {
	for _, s := range v.Eligible {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Complete reports whether style, hook and all five scripts are chosen.
func (v View) Complete() bool {
	return v.Style != nil && v.Hook != nil && v.Slots.Full()
}

// SelectedScripts returns the filled slots in slot order.
func (v View) SelectedScripts() []catalog.Script {
	var out []catalog.Script
	for _, s := range v.Slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Package wizard drives the four-step content assembly flow: visual style,
// hook, five scripts and the summary.
//
// A Session owns one SelectionState. Intents are processed synchronously and
// report whether they were accepted; a rejected intent leaves the state
// exactly as it was. Session is not safe for concurrent use. Callers that
// share one across goroutines wrap it (see session.Recorder).
package wizard

import (
	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/logger"
)

// Intents is the set of user intents a presentation layer may dispatch.
type Intents interface {
	SelectStyle(style catalog.Style) bool
	SelectHook(hook catalog.Hook) bool
	SelectScript(script catalog.Script, slot int) bool
	RemoveScript(slot int) bool
	FocusSlot(slot int) bool
	SelectTab(tab catalog.ScriptType) bool
	AdvanceStep() bool
	RetreatStep() bool
	JumpToStep(step Step) bool
	Reset() bool
	Snapshot() View
}

// Session is one wizard run over a catalog.
type Session struct {
	catalog *catalog.Catalog

	style  *catalog.Style
	hook   *catalog.Hook
	slots  engine.Slots
	active int
	step   Step

	// tab is the explicit category picked for the active slot, if any.
	tab catalog.ScriptType
}

var _ Intents = (*Session)(nil)

// New starts a session at the style step. A nil catalog behaves as empty.
func New(cat *catalog.Catalog) *Session {
	if cat == nil {
		cat = catalog.New(nil, nil, nil)
	}
	return &Session{catalog: cat}
}

// Catalog returns the catalog the session selects from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// ActiveSlot returns the slot under edit.
func (s *Session) ActiveSlot() int { return s.active }

// Family returns the rule family of the selected style.
func (s *Session) Family() engine.Family {
	return engine.FamilyOf(s.style)
}

// SelectStyle sets the visual style. Script slots are left untouched even
// when the family changes; View.StaleSlots reports what no longer fits.
func (s *Session) SelectStyle(style catalog.Style) bool {
	if style.ID == "" {
		logger.Debug("Rejected style selection: empty id")
		return false
	}
	st := style
	s.style = &st
	logger.Debug("Selected style %s (%s family)", style.ID, s.Family())
	return true
}

// SelectHook sets the hook. A hook outside the family's categories is kept
// and reported through View.StaleHook, like stale script slots.
func (s *Session) SelectHook(hook catalog.Hook) bool {
	if hook.ID == "" {
		logger.Debug("Rejected hook selection: empty id")
		return false
	}
	h := hook
	s.hook = &h
	logger.Debug("Selected hook %s", hook.ID)
	return true
}

// SelectScript assigns script to slot when the engine deems it eligible, then
// moves the active slot to the next empty one.
func (s *Session) SelectScript(script catalog.Script, slot int) bool {
	if !engine.InRange(slot) {
		logger.Debug("Rejected script %s: slot %d out of range", script.ID, slot)
		return false
	}
	ev := engine.Evaluate(s.slots, slot, s.Family())
	if !ev.Eligible(script) {
		logger.Debug("Rejected script %s for slot %d: %q", script.ID, slot, ev.DisabledReason(script))
		return false
	}

	sc := script
	s.slots[slot] = &sc
	if next := s.slots.NextEmpty(slot); next >= 0 {
		s.setActive(next)
	}
	logger.Debug("Selected script %s into slot %d, active slot %d", script.ID, slot, s.active)
	return true
}

// RemoveScript clears slot and makes it the active slot. Removing an empty
// slot is a rejected no-op. Removing from the summary returns to the scripts
// step, since the summary needs all five slots filled.
func (s *Session) RemoveScript(slot int) bool {
	if !engine.InRange(slot) || s.slots[slot] == nil {
		return false
	}
	logger.Debug("Removed script %s from slot %d", s.slots[slot].ID, slot)
	s.slots[slot] = nil
	s.setActive(slot)
	if s.step == StepSummary {
		s.step = StepScripts
		logger.Debug("Returned to step %s", s.step)
	}
	return true
}

// FocusSlot makes an empty slot the active one.
func (s *Session) FocusSlot(slot int) bool {
	if !engine.InRange(slot) || s.slots[slot] != nil {
		return false
	}
	s.setActive(slot)
	return true
}

// SelectTab picks the category shown for the active slot. Only tabs the
// slot currently offers are accepted.
func (s *Session) SelectTab(tab catalog.ScriptType) bool {
	if !s.evaluate().Allows(tab) {
		return false
	}
	s.tab = tab
	return true
}

// HookFits reports whether hook belongs to the hook categories offered for f.
func HookFits(hook catalog.Hook, f engine.Family) bool {
	return catalog.IsMistakeCategory(hook.Category) == (f == engine.Mistake)
}

// CanAdvance reports whether the current step's completion condition holds.
func (s *Session) CanAdvance() bool {
	switch s.step {
	case StepStyle:
		return s.style != nil
	case StepHook:
		return s.hook != nil
	case StepScripts:
		return s.slots.Full()
	default:
		return false
	}
}

// AdvanceStep moves one step forward when CanAdvance holds.
func (s *Session) AdvanceStep() bool {
	if !s.CanAdvance() {
		logger.Debug("Rejected advance from step %s", s.step)
		return false
	}
	s.step++
	logger.Debug("Advanced to step %s", s.step)
	return true
}

// RetreatStep moves one step back.
func (s *Session) RetreatStep() bool {
	if s.step == StepStyle {
		return false
	}
	s.step--
	logger.Debug("Retreated to step %s", s.step)
	return true
}

// JumpToStep returns to the style step ("back to edit"). Selections are kept.
// No other jump target exists.
func (s *Session) JumpToStep(step Step) bool {
	if step != StepStyle {
		logger.Debug("Rejected jump to step %s", step)
		return false
	}
	s.step = StepStyle
	return true
}

// Reset discards every selection and returns to the style step.
func (s *Session) Reset() bool {
	*s = Session{catalog: s.catalog}
	logger.Debug("Session reset")
	return true
}

func (s *Session) setActive(slot int) {
	if slot != s.active {
		s.tab = ""
	}
	s.active = slot
}

func (s *Session) evaluate() engine.Evaluation {
	return engine.Evaluate(s.slots, s.active, s.Family())
}

// Package engine decides which catalog scripts may fill each selection slot.
//
// Everything here is a pure function of the slot contents, the slot under edit
// and the style family. Nothing is cached: callers evaluate again whenever any
// input changes, so derived values such as the implied category cannot go stale.
package engine

import (
	"fmt"

	"github.com/shesviral/viralkit/internal/catalog"
)

// ReasonAlreadySelected is reported for scripts assigned to any slot.
const ReasonAlreadySelected = "Already selected"

// AllowedTypes returns the script types a slot accepts for the given family
// and current slot contents. Out-of-range slots accept nothing.
func AllowedTypes(f Family, slot int, slots Slots) []catalog.ScriptType {
	r := rulesFor(f)
	switch {
	case isPairSlot(slot):
		if other := slots[partner(slot)]; other != nil {
			if c := r.complement(other.Type); c != "" {
				return []catalog.ScriptType{c}
			}
		}
		return []catalog.ScriptType{r.pair[0], r.pair[1]}
	case isFillerSlot(slot):
		return []catalog.ScriptType{r.filler}
	case slot == SlotViral:
		return []catalog.ScriptType{r.viral}
	default:
		return nil
	}
}

// Evaluation is the engine's verdict for one slot of one state.
type Evaluation struct {
	slots   Slots
	slot    int
	family  Family
	rules   rules
	allowed []catalog.ScriptType
}

// Evaluate computes eligibility for the slot under edit.
func Evaluate(slots Slots, slot int, f Family) Evaluation {
	return Evaluation{
		slots:   slots,
		slot:    slot,
		family:  f,
		rules:   rulesFor(f),
		allowed: AllowedTypes(f, slot, slots),
	}
}

// Slot returns the evaluated slot index.
func (e Evaluation) Slot() int { return e.slot }

// Family returns the family the evaluation was made for.
func (e Evaluation) Family() Family { return e.family }

// AllowedTypes returns the types the slot accepts.
func (e Evaluation) AllowedTypes() []catalog.ScriptType {
	return append([]catalog.ScriptType(nil), e.allowed...)
}

// Allows reports whether type t is accepted by the slot.
func (e Evaluation) Allows(t catalog.ScriptType) bool {
	for _, a := range e.allowed {
		if a == t {
			return true
		}
	}
	return false
}

// Eligible reports whether s may be assigned to the evaluated slot.
func (e Evaluation) Eligible(s catalog.Script) bool {
	if !InRange(e.slot) {
		return false
	}
	if e.slots.IndexOf(s.ID) >= 0 {
		return false
	}
	return e.Allows(s.Type)
}

// DisabledReason explains why s cannot be assigned to the evaluated slot.
// It is empty for eligible scripts and for plain type mismatches.
func (e Evaluation) DisabledReason(s catalog.Script) string {
	if e.slots.IndexOf(s.ID) >= 0 {
		return ReasonAlreadySelected
	}
	switch {
	case isPairSlot(e.slot):
		p := partner(e.slot)
		if other := e.slots[p]; other != nil && other.Type == s.Type && e.rules.complement(s.Type) != "" {
			return fmt.Sprintf("Script %d already selected %s", p+1, other.Type.Label())
		}
	case isFillerSlot(e.slot):
		if s.Type == e.rules.filler {
			return ""
		}
		if reason, ok := e.rules.fillerReasons[s.Type]; ok {
			return reason
		}
		return e.rules.fillerFallback
	}
	return ""
}

// ImpliedCategory returns the tab the slot shows when the user has not
// picked one explicitly.
func (e Evaluation) ImpliedCategory() catalog.ScriptType {
	r := e.rules
	switch {
	case e.slot == SlotPairFirst:
		if other := e.slots[SlotPairSecond]; other != nil && other.Type == r.pair[0] {
			return r.pair[1]
		}
		return r.pair[0]
	case e.slot == SlotPairSecond:
		if other := e.slots[SlotPairFirst]; other != nil {
			if c := r.complement(other.Type); c != "" {
				return c
			}
		}
		return r.pair[1]
	case isFillerSlot(e.slot):
		return r.filler
	case e.slot == SlotViral:
		return r.viral
	default:
		return ""
	}
}

// Tabs returns the categories a presentation may offer for the slot.
// Only an unconstrained pair slot offers a real choice.
func (e Evaluation) Tabs() []catalog.ScriptType {
	return e.AllowedTypes()
}

// ResolveTab returns the explicit tab when the slot offers it, the implied
// category otherwise.
func (e Evaluation) ResolveTab(explicit catalog.ScriptType) catalog.ScriptType {
	if explicit != "" && e.Allows(explicit) {
		return explicit
	}
	return e.ImpliedCategory()
}

// EligibleScripts filters scripts down to those assignable to the slot,
// preserving order. An empty catalog yields no eligible scripts.
func (e Evaluation) EligibleScripts(scripts []catalog.Script) []catalog.Script {
	var out []catalog.Script
	for _, s := range scripts {
		if e.Eligible(s) {
			out = append(out, s)
		}
	}
	return out
}

// DisabledReasons maps script ids to their non-empty disabled reasons.
func (e Evaluation) DisabledReasons(scripts []catalog.Script) map[string]string {
	out := make(map[string]string)
	for _, s := range scripts {
		if reason := e.DisabledReason(s); reason != "" {
			out[s.ID] = reason
		}
	}
	return out
}

// Subtitle describes what the slot expects, e.g. "Viral Plug Required".
func (e Evaluation) Subtitle() string {
	r := e.rules
	switch {
	case e.slot == SlotPairFirst:
		return fmt.Sprintf("Choose: %s OR %s", TabLabel(r.pair[0]), TabLabel(r.pair[1]))
	case e.slot == SlotPairSecond:
		return TabLabel(e.ImpliedCategory()) + " (auto-selected)"
	case isFillerSlot(e.slot):
		return TabLabel(r.filler)
	case e.slot == SlotViral:
		return r.viralTitle
	default:
		return ""
	}
}

// TabLabel is the plural tab caption of a script type.
func TabLabel(t catalog.ScriptType) string {
	switch t {
	case catalog.TypeOther:
		return "Other Scripts"
	case catalog.TypeEngagement:
		return "Engagement Triggers"
	case catalog.TypeViralPlug:
		return "Viral Plug Scripts"
	case catalog.TypeMistake:
		return "Mistake Scripts"
	case catalog.TypeMistakeEngagement:
		return "Mistake Engagement"
	case catalog.TypeMistakeViral:
		return "Mistake Viral Plug Scripts"
	default:
		return t.Label()
	}
}

// StaleSlots returns the filled slots whose scripts the family's rules would
// no longer accept at that position. They appear after a style change.
func StaleSlots(slots Slots, f Family) []int {
	var stale []int
	for i, s := range slots {
		if s == nil {
			continue
		}
		ok := false
		for _, t := range AllowedTypes(f, i, slots) {
			if t == s.Type {
				ok = true
				break
			}
		}
		if !ok {
			stale = append(stale, i)
		}
	}
	return stale
}

package tui

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/wizard"
)

// handleKeyPress routes a key to the global bindings first and then to the
// current step.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if a.awaitingRemove {
		a.awaitingRemove = false
		if slot, ok := slotKey(key); ok {
			return a.removeScript(slot)
		}
		return nil
	}

	switch key {
	case "ctrl+c", "q":
		a.quitting = true
		return tea.Quit
	case "esc":
		if a.view.Step == wizard.StepStyle {
			a.quitting = true
			return tea.Quit
		}
		a.ctrl.RetreatStep()
		a.refresh()
		return nil
	case "n":
		return a.advance()
	}

	switch a.view.Step {
	case wizard.StepStyle:
		return a.handleStyleKey(key)
	case wizard.StepHook:
		return a.handleHookKey(key)
	case wizard.StepScripts:
		return a.handleScriptsKey(key)
	case wizard.StepSummary:
		return a.handleSummaryKey(msg)
	}
	return nil
}

func (a *App) advance() tea.Cmd {
	if a.ctrl.AdvanceStep() {
		a.refresh()
		return nil
	}
	return a.toast.Show(advanceBlocker(a.view))
}

// advanceBlocker explains why the current step cannot be left forward.
func advanceBlocker(v wizard.View) string {
	switch v.Step {
	case wizard.StepStyle:
		return "Select a style first"
	case wizard.StepHook:
		return "Select a hook first"
	case wizard.StepScripts:
		return fmt.Sprintf("Fill all %d script slots first (%d filled)", len(v.Slots), v.Filled)
	default:
		return "Summary is the last step"
	}
}

// moveCursor applies up/down navigation and reports whether key was one.
func moveCursor(key string, cursor *int, n int) bool {
	switch key {
	case "up", "k":
		*cursor = clampCursor(*cursor-1, n)
	case "down", "j":
		*cursor = clampCursor(*cursor+1, n)
	case "home", "g":
		*cursor = 0
	case "end", "G":
		*cursor = clampCursor(n-1, n)
	default:
		return false
	}
	return true
}

// slotKey maps "1".."5" to a zero-based slot.
func slotKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '0'+engine.SlotCount {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (a *App) handleStyleKey(key string) tea.Cmd {
	styles := a.ctrl.Catalog().Styles()
	if moveCursor(key, &a.styleCursor, len(styles)) {
		return nil
	}
	if key != "enter" || len(styles) == 0 {
		return nil
	}

	style := styles[a.styleCursor]
	if a.view.Style != nil && a.view.Style.ID == style.ID {
		return a.advance()
	}
	if !a.ctrl.SelectStyle(style) {
		return nil
	}
	a.refresh()
	if n := len(a.view.StaleSlots); n > 0 {
		return a.toast.Show(fmt.Sprintf("%d selected scripts do not fit the %s family", n, a.view.Family))
	}
	if a.view.StaleHook {
		return a.toast.Show(fmt.Sprintf("The selected hook does not fit the %s family", a.view.Family))
	}
	return nil
}

func (a *App) handleHookKey(key string) tea.Cmd {
	switch key {
	case "tab", "right", "l":
		if n := len(a.view.HookCategories); n > 0 {
			a.hookTab = (a.hookTab + 1) % n
			a.hookCursor = 0
		}
		return nil
	case "shift+tab", "left", "h":
		if n := len(a.view.HookCategories); n > 0 {
			a.hookTab = (a.hookTab + n - 1) % n
			a.hookCursor = 0
		}
		return nil
	}

	hooks := a.hooks()
	if moveCursor(key, &a.hookCursor, len(hooks)) {
		return nil
	}
	if key != "enter" || len(hooks) == 0 {
		return nil
	}

	hook := hooks[a.hookCursor]
	if a.view.Hook != nil && a.view.Hook.ID == hook.ID {
		return a.advance()
	}
	if a.ctrl.SelectHook(hook) {
		a.refresh()
	}
	return nil
}

func (a *App) handleScriptsKey(key string) tea.Cmd {
	switch key {
	case "tab", "shift+tab":
		return a.cycleTab(key == "tab")
	case "x", "delete", "backspace":
		a.awaitingRemove = true
		return nil
	}

	if slot, ok := slotKey(key); ok {
		if a.ctrl.FocusSlot(slot) {
			a.refresh()
			return nil
		}
		return a.toast.Show(fmt.Sprintf("Slot %d is filled; press x %d to clear it", slot+1, slot+1))
	}

	if moveCursor(key, &a.scriptCursor, len(a.view.Listed)) {
		return nil
	}
	if key != "enter" || len(a.view.Listed) == 0 {
		return nil
	}

	script := a.view.Listed[a.scriptCursor]
	if !a.view.IsEligible(script.ID) {
		reason := a.view.DisabledReasons[script.ID]
		if reason == "" {
			reason = "Not allowed in this slot"
		}
		return a.toast.Show("Unavailable: " + reason)
	}
	slot := a.view.ActiveSlot
	if !a.ctrl.SelectScript(script, slot) {
		return nil
	}
	a.refresh()
	if a.view.Slots.Full() {
		return a.toast.Show("All scripts selected; press n to review")
	}
	return nil
}

func (a *App) cycleTab(forward bool) tea.Cmd {
	tabs := a.view.Tabs
	if len(tabs) < 2 {
		return a.toast.Show(engine.TabLabel(a.view.ActiveCategory) + " is the only option for this slot")
	}
	i := slices.Index(tabs, a.view.ActiveCategory)
	if forward {
		i = (i + 1) % len(tabs)
	} else {
		i = (i + len(tabs) - 1) % len(tabs)
	}
	if a.ctrl.SelectTab(tabs[i]) {
		a.refresh()
	}
	return nil
}

func (a *App) removeScript(slot int) tea.Cmd {
	if !a.ctrl.RemoveScript(slot) {
		logger.Debug("nothing to remove in slot %d", slot)
		return a.toast.Show(fmt.Sprintf("Slot %d is already empty", slot+1))
	}
	a.refresh()
	return nil
}

// typeLabels returns the tab captions of types.
func typeLabels(types []catalog.ScriptType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = engine.TabLabel(t)
	}
	return out
}

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/summary"
	"github.com/shesviral/viralkit/internal/wizard"
)

// slotArg reads a 1-based slot argument and returns the 0-based index.
// JSON numbers arrive as float64.
func slotArg(args map[string]any, key string) (int, bool) {
	v, ok := args[key].(float64)
	if !ok || v != float64(int(v)) {
		return 0, false
	}
	return int(v) - 1, true
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

func rejected(format string, a ...any) *mcp.CallToolResult {
	return mcp.NewToolResultText("rejected: " + fmt.Sprintf(format, a...))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatState renders a view for agents.
func formatState(v wizard.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step: %s (%d/%d)\n", v.Step, int(v.Step)+1, len(wizard.Steps))

	if v.Style != nil {
		fmt.Fprintf(&b, "Style: %s %s (%s family)\n", v.Style.ID, v.Style.DisplayTitle(), v.Family)
	} else {
		b.WriteString("Style: none\n")
	}
	if v.Hook != nil {
		fmt.Fprintf(&b, "Hook: %s %s\n", v.Hook.ID, v.Hook.Idea)
	} else {
		b.WriteString("Hook: none\n")
	}

	b.WriteString("Slots:\n")
	for i, s := range v.Slots {
		marker := ""
		if i == v.ActiveSlot {
			marker = "  <- active"
		}
		if s == nil {
			fmt.Fprintf(&b, "  %d: (empty)%s\n", i+1, marker)
			continue
		}
		fmt.Fprintf(&b, "  %d: %s [%s]%s\n", i+1, s.ID, s.Type, marker)
	}

	fmt.Fprintf(&b, "Active slot: %d - %s\n", v.ActiveSlot+1, v.Subtitle)
	fmt.Fprintf(&b, "Active category: %s\n", v.ActiveCategory)
	if len(v.StaleSlots) > 0 {
		stale := make([]string, 0, len(v.StaleSlots))
		for _, i := range v.StaleSlots {
			stale = append(stale, fmt.Sprint(i+1))
		}
		fmt.Fprintf(&b, "Stale slots: %s\n", strings.Join(stale, ", "))
	}
	if v.StaleHook {
		fmt.Fprintf(&b, "Stale hook: %s is not offered for the %s family\n", v.Hook.ID, v.Family)
	}
	fmt.Fprintf(&b, "Can advance: %s", yesNo(v.CanAdvance))
	return b.String()
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatState(s.rec.Snapshot())), nil
}

func (s *Server) handleListStyles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	styles := s.rec.Catalog().Styles()
	if len(styles) == 0 {
		return mcp.NewToolResultText("No styles"), nil
	}

	var lines []string
	for _, st := range styles {
		line := fmt.Sprintf("%s: %s", st.ID, st.DisplayTitle())
		if st.IsMistake() {
			line += " [mistake]"
		}
		lines = append(lines, line)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleListHooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat := s.rec.Catalog()
	v := s.rec.Snapshot()
	category := stringArg(request.GetArguments(), "category")

	var hooks []catalog.Hook
	if category != "" {
		hooks = cat.HooksBySlug(category)
	} else {
		hooks = cat.HooksForFamily(v.Family == engine.Mistake)
	}
	if len(hooks) == 0 {
		if category != "" {
			return mcp.NewToolResultText(fmt.Sprintf("No hooks in category '%s'", category)), nil
		}
		return mcp.NewToolResultText("No hooks"), nil
	}

	var lines []string
	for _, h := range hooks {
		lines = append(lines, fmt.Sprintf("%s [%s] %s", h.ID, catalog.CategorySlug(h.Category), h.Idea))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleListScripts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v := s.rec.Snapshot()
	listed := v.Listed
	if t := catalog.ScriptType(stringArg(request.GetArguments(), "type")); t != "" {
		if !t.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown script type '%s'", t)), nil
		}
		listed = s.rec.Catalog().ScriptsOfType(t)
	}

	header := fmt.Sprintf("Slot %d: %s", v.ActiveSlot+1, v.Subtitle)
	if len(listed) == 0 {
		return mcp.NewToolResultText(header + "\nNo scripts"), nil
	}

	lines := []string{header}
	for _, sc := range listed {
		status := "eligible"
		if !v.IsEligible(sc.ID) {
			status = "unavailable"
			if reason := v.DisabledReasons[sc.ID]; reason != "" {
				status += ": " + reason
			}
		}
		lines = append(lines, fmt.Sprintf("%s [%s] (%s) %s", sc.ID, sc.Type, status, sc.Paragraph1))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleSelectStyle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(request.GetArguments(), "id")
	if id == "" {
		return mcp.NewToolResultError("missing or empty 'id' parameter"), nil
	}
	st, ok := s.rec.Catalog().Style(id)
	if !ok {
		return rejected("unknown style '%s'", id), nil
	}
	if !s.rec.SelectStyle(st) {
		return rejected("style '%s' not accepted", id), nil
	}

	msg := fmt.Sprintf("Selected style %s (%s family)", st.ID, s.rec.Snapshot().Family)
	if stale := s.rec.Snapshot().StaleSlots; len(stale) > 0 {
		msg += fmt.Sprintf("; %d selected script(s) no longer fit this family", len(stale))
	}
	if s.rec.Snapshot().StaleHook {
		msg += "; the selected hook no longer fits this family"
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSelectHook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(request.GetArguments(), "id")
	if id == "" {
		return mcp.NewToolResultError("missing or empty 'id' parameter"), nil
	}
	h, ok := s.rec.Catalog().Hook(id)
	if !ok {
		return rejected("unknown hook '%s'", id), nil
	}
	if f := s.rec.Snapshot().Family; !wizard.HookFits(h, f) {
		return rejected("hook '%s' is not offered for the %s family", id, f), nil
	}
	if !s.rec.SelectHook(h) {
		return rejected("hook '%s' not accepted", id), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Selected hook %s", h.ID)), nil
}

func (s *Server) handleSelectScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := stringArg(args, "id")
	if id == "" {
		return mcp.NewToolResultError("missing or empty 'id' parameter"), nil
	}
	sc, ok := s.rec.Catalog().Script(id)
	if !ok {
		return rejected("unknown script '%s'", id), nil
	}

	v := s.rec.Snapshot()
	slot := v.ActiveSlot
	if _, present := args["slot"]; present {
		if slot, ok = slotArg(args, "slot"); !ok {
			return mcp.NewToolResultError("'slot' must be a whole number"), nil
		}
	}
	if !engine.InRange(slot) {
		return rejected("slot %d out of range 1-%d", slot+1, engine.SlotCount), nil
	}

	if !s.rec.SelectScript(sc, slot) {
		reason := engine.Evaluate(v.Slots, slot, v.Family).DisabledReason(sc)
		if reason == "" {
			reason = fmt.Sprintf("%s not allowed in slot %d", sc.Type.Label(), slot+1)
		}
		return rejected("%s", reason), nil
	}

	after := s.rec.Snapshot()
	return mcp.NewToolResultText(fmt.Sprintf("Selected script %s into slot %d; active slot %d (%d/%d filled)",
		sc.ID, slot+1, after.ActiveSlot+1, after.Filled, engine.SlotCount)), nil
}

func (s *Server) handleRemoveScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, ok := slotArg(request.GetArguments(), "slot")
	if !ok {
		return mcp.NewToolResultError("missing or invalid 'slot' parameter"), nil
	}
	if !s.rec.RemoveScript(slot) {
		return rejected("slot %d is empty", slot+1), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Cleared slot %d", slot+1)), nil
}

func (s *Server) handleFocusSlot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, ok := slotArg(request.GetArguments(), "slot")
	if !ok {
		return mcp.NewToolResultError("missing or invalid 'slot' parameter"), nil
	}
	if !s.rec.FocusSlot(slot) {
		return rejected("only empty slots 1-%d can be focused", engine.SlotCount), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Active slot %d: %s", slot+1, s.rec.Snapshot().Subtitle)), nil
}

func (s *Server) handleSelectTab(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t := catalog.ScriptType(stringArg(request.GetArguments(), "type"))
	if t == "" {
		return mcp.NewToolResultError("missing or empty 'type' parameter"), nil
	}
	if !s.rec.SelectTab(t) {
		return rejected("slot %d does not offer %s", s.rec.Snapshot().ActiveSlot+1, engine.TabLabel(t)), nil
	}
	return mcp.NewToolResultText("Showing " + engine.TabLabel(t)), nil
}

func (s *Server) handleAdvanceStep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	before := s.rec.Snapshot()
	if !s.rec.AdvanceStep() {
		switch before.Step {
		case wizard.StepStyle:
			return rejected("select a style first"), nil
		case wizard.StepHook:
			return rejected("select a hook first"), nil
		case wizard.StepScripts:
			return rejected("fill all %d script slots first (%d filled)", engine.SlotCount, before.Filled), nil
		default:
			return rejected("summary is the last step"), nil
		}
	}
	return mcp.NewToolResultText(fmt.Sprintf("Now at step %s", s.rec.Snapshot().Step)), nil
}

func (s *Server) handleRetreatStep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rec.RetreatStep() {
		return rejected("already at the first step"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Now at step %s", s.rec.Snapshot().Step)), nil
}

func (s *Server) handleBackToEdit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.rec.JumpToStep(wizard.StepStyle)
	return mcp.NewToolResultText("Back at step style; selections kept"), nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events, err := s.rec.History(ctx)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("No history"), nil
	}

	var lines []string
	for _, e := range events {
		line := fmt.Sprintf("#%s %s %s/%s", e.ID, e.Timestamp.Format(time.TimeOnly), e.Type, e.Action)
		if e.Data != "" {
			line += " " + e.Data
		}
		if len(e.Meta) > 0 {
			line += " " + string(e.Meta)
		}
		lines = append(lines, line)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	v := s.rec.Snapshot()

	text := summary.Markdown(v)
	if stringArg(args, "format") == "text" {
		text = summary.PlainText(v)
	}

	if export, _ := args["export"].(bool); export {
		path, err := summary.Write(s.exportDir, v, time.Now())
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}
		text += "\n\nWritten to " + path
	}
	return mcp.NewToolResultText(text), nil
}

package tui

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/tui/theme"
)

// drawStyleStep draws the style list on the left and the info panel of the
// style under the cursor on the right.
func (a *App) drawStyleStep(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	styles := a.ctrl.Catalog().Styles()

	listWidth := area.Dx() * 2 / 5
	rows := make([]listRow, len(styles))
	for i, st := range styles {
		rows[i] = listRow{
			text:     st.DisplayTitle(),
			selected: a.view.Style != nil && a.view.Style.ID == st.ID,
		}
	}
	DrawText(scr, uv.Rect(area.Min.X, area.Min.Y, listWidth, area.Dy()),
		renderList(rows, a.styleCursor, listWidth, area.Dy(), "No styles in catalog"))

	if len(styles) == 0 {
		return
	}
	st := styles[a.styleCursor]
	infoWidth := area.Dx() - listWidth - 2
	if infoWidth < 10 {
		return
	}

	var b strings.Builder
	b.WriteString(PanelHeader(st.DisplayTitle(), infoWidth-4, s.HeaderTitle, s.Muted))
	b.WriteString("\n")
	if st.IsMistake() {
		b.WriteString(s.Reason.Render("Mistake family: mistake scripts only"))
		b.WriteString("\n")
	}
	if st.Info != "" {
		b.WriteString("\n")
		b.WriteString(s.Body.Render(wrapText(st.Info, infoWidth-4)))
		b.WriteString("\n")
	}
	if n := len(st.Images); n > 0 {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d preview images", n)))
	}
	panel := s.Panel.Width(infoWidth).Render(b.String())
	DrawText(scr, uv.Rect(area.Min.X+listWidth+2, area.Min.Y, infoWidth, area.Dy()), panel)
}

func (a *App) drawHookStep(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	hooks := a.hooks()

	rows := make([]listRow, len(hooks))
	for i, h := range hooks {
		text := firstLine(h.Idea)
		if h.Rank != nil {
			text = fmt.Sprintf("#%d %s", *h.Rank, text)
		}
		rows[i] = listRow{
			text:     text,
			selected: a.view.Hook != nil && a.view.Hook.ID == h.ID,
		}
	}

	listHeight := max(area.Dy()-3, 1)
	empty := "No hooks in this category"
	rest := DrawRows(scr, area, lipgloss.NewStyle().Height(listHeight).Render(
		renderList(rows, a.hookCursor, area.Dx(), listHeight, empty)))

	if len(hooks) > 0 {
		h := hooks[a.hookCursor]
		preview := s.Body.Render(truncate(h.Idea, area.Dx()*2))
		if h.Notes != "" {
			preview += "\n" + s.Muted.Render(truncate(h.Notes, area.Dx()))
		}
		DrawRows(scr, rest, s.Muted.Render(strings.Repeat("─", area.Dx())), preview)
	}
}

func (a *App) drawScriptsStep(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	v := a.view

	tabs := renderTabs(typeLabels(v.Tabs), slices.Index(v.Tabs, v.ActiveCategory))
	if len(v.Tabs) < 2 {
		tabs = renderTabs([]string{engine.TabLabel(v.ActiveCategory)}, 0)
	}
	rest := DrawRows(scr, area, renderSlotStrip(v, area.Dx()), tabs)

	rows := make([]listRow, len(v.Listed))
	for i, script := range v.Listed {
		rows[i] = listRow{
			text:     firstLine(script.Paragraph1),
			selected: v.Slots.IndexOf(script.ID) >= 0,
			disabled: !v.IsEligible(script.ID),
			reason:   v.DisabledReasons[script.ID],
		}
	}

	listHeight := max(rest.Dy()-3, 1)
	empty := fmt.Sprintf("No %s in catalog", engine.TabLabel(v.ActiveCategory))
	rest = DrawRows(scr, rest, lipgloss.NewStyle().Height(listHeight).Render(
		renderList(rows, a.scriptCursor, rest.Dx(), listHeight, empty)))

	if len(v.Listed) > 0 {
		script := v.Listed[a.scriptCursor]
		DrawRows(scr, rest,
			s.Muted.Render(strings.Repeat("─", rest.Dx())),
			s.Body.Render(truncate("P1: "+script.Paragraph1, rest.Dx())),
			s.Body.Render(truncate("P2: "+script.Paragraph2, rest.Dx())),
		)
	}
}

// Package tui is the terminal front end of the content wizard. It renders
// wizard snapshots and turns key presses into wizard intents; every decision
// about what is selectable comes from the snapshot.
package tui

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/clipboard"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/tui/theme"
	"github.com/shesviral/viralkit/internal/wizard"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	headerHeight = 4 // stepper, blank, title, subtitle
	footerHeight = 3 // toast, buttons, hints
)

// Controller drives a wizard session. Both *wizard.Session and the
// journaling recorder satisfy it.
type Controller interface {
	wizard.Intents
	Catalog() *catalog.Catalog
}

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options configures the App.
type Options struct {
	ExportDir     string
	MarkdownStyle string
	Copier        Copier
	Now           func() time.Time
}

// App is the Bubbletea model of the wizard.
type App struct {
	ctrl Controller
	opts Options
	view wizard.View

	width  int
	height int

	styleCursor  int
	hookCursor   int
	hookTab      int
	scriptCursor int
	listedType   catalog.ScriptType

	awaitingRemove bool // "x" pressed, waiting for a slot number

	summary    viewport.Model
	summaryKey string
	exported   string

	toast    *Toast
	quitting bool
}

// NewApp creates the wizard model over ctrl.
func NewApp(ctrl Controller, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "dark"
	}
	a := &App{
		ctrl:    ctrl,
		opts:    opts,
		width:   defaultWidth,
		height:  defaultHeight,
		summary: viewport.New(viewport.WithWidth(defaultWidth), viewport.WithHeight(defaultHeight-headerHeight-footerHeight)),
		toast:   NewToast(),
	}
	a.refresh()
	return a
}

// Run starts a full-screen program for ctrl and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, ctrl Controller, opts Options) error {
	theme.SetCurrent(theme.ForMarkdownStyle(opts.MarkdownStyle))
	p := tea.NewProgram(NewApp(ctrl, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return nil
}

// Snapshot returns the last rendered wizard view.
func (a *App) Snapshot() wizard.View {
	return a.view
}

// Update handles messages for the wizard.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.summaryKey = ""
		a.refresh()
		return a, nil

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case editorFinishedMsg:
		if msg.err != nil {
			logger.Warn("editor exited with error: %v", msg.err)
			return a, a.toast.Show("Editor failed: " + msg.err.Error())
		}
		return a, nil
	}

	if a.view.Step == wizard.StepSummary {
		var cmd tea.Cmd
		a.summary, cmd = a.summary.Update(msg)
		return a, cmd
	}
	return a, nil
}

// refresh re-reads the snapshot and keeps cursors in range.
func (a *App) refresh() {
	a.view = a.ctrl.Snapshot()
	cat := a.ctrl.Catalog()

	a.styleCursor = clampCursor(a.styleCursor, len(cat.Styles()))

	if a.hookTab >= len(a.view.HookCategories) {
		a.hookTab = 0
	}
	a.hookCursor = clampCursor(a.hookCursor, len(a.hooks()))

	if a.view.ActiveCategory != a.listedType {
		a.listedType = a.view.ActiveCategory
		a.scriptCursor = 0
	}
	a.scriptCursor = clampCursor(a.scriptCursor, len(a.view.Listed))

	if a.view.Step == wizard.StepSummary {
		a.syncSummary()
	}
}

// hooks returns the hooks of the current category tab.
func (a *App) hooks() []catalog.Hook {
	if len(a.view.HookCategories) == 0 {
		return nil
	}
	return a.ctrl.Catalog().HooksInCategory(a.view.HookCategories[a.hookTab])
}

// bodySize returns the dimensions left for the step body.
func (a *App) bodySize() (int, int) {
	return max(a.width-2, 20), max(a.height-headerHeight-footerHeight, 3)
}

// View renders the wizard. In Bubbletea v2 this returns tea.View with
// display options.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.quitting {
		view.AltScreen = false
		view.Content = lipgloss.NewLayer("")
		return view
	}

	view.Content = lipgloss.NewLayer(a.Render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)
	return view
}

// Render draws the whole screen and returns it as a string.
func (a *App) Render() string {
	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	return canvas.Render()
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	inner := uv.Rect(area.Min.X+1, area.Min.Y, max(area.Dx()-2, 0), area.Dy())

	body := DrawRows(scr, inner,
		renderStepper(a.view.Step),
		"",
		renderStepTitle(a.view.Step),
		a.renderSubheader(),
	)
	body.Max.Y = max(area.Max.Y-footerHeight, body.Min.Y)

	switch a.view.Step {
	case wizard.StepStyle:
		a.drawStyleStep(scr, body)
	case wizard.StepHook:
		a.drawHookStep(scr, body)
	case wizard.StepScripts:
		a.drawScriptsStep(scr, body)
	case wizard.StepSummary:
		DrawText(scr, body, a.summary.View())
	}

	footer := uv.Rect(inner.Min.X, max(area.Max.Y-footerHeight, area.Min.Y), inner.Dx(), footerHeight)
	DrawRows(scr, footer,
		a.toast.View(inner.Dx()),
		a.renderButtons(inner.Dx()),
		a.renderHints(),
	)
}

func (a *App) renderSubheader() string {
	s := theme.Current().S()
	switch a.view.Step {
	case wizard.StepHook:
		labels := make([]string, len(a.view.HookCategories))
		for i, c := range a.view.HookCategories {
			labels[i] = catalog.CategoryLabel(c)
		}
		return renderTabs(labels, a.hookTab)
	case wizard.StepScripts:
		return s.Subtitle.Render(fmt.Sprintf("Slot %d: %s", a.view.ActiveSlot+1, a.view.Subtitle)) +
			s.Muted.Render(fmt.Sprintf("  (%d/%d filled)", a.view.Filled, len(a.view.Slots)))
	case wizard.StepSummary:
		if a.exported != "" {
			return s.Muted.Render("Saved: " + a.exported)
		}
	}
	return ""
}

func (a *App) renderButtons(width int) string {
	nextLabel := ""
	switch a.view.Step {
	case wizard.StepStyle, wizard.StepHook:
		nextLabel = "Next →"
	case wizard.StepScripts:
		nextLabel = "Review →"
	}
	bar := NewButtonBar(BackNextButtons(a.view.Step != wizard.StepStyle, a.view.CanAdvance, nextLabel))
	bar.SetWidth(width)
	return bar.Render()
}

func (a *App) renderHints() string {
	if a.awaitingRemove {
		return RenderHintBar(KeySlots, "clear slot", KeyEsc, "cancel")
	}
	switch a.view.Step {
	case wizard.StepHook:
		return HintHook()
	case wizard.StepScripts:
		return HintScripts()
	case wizard.StepSummary:
		return HintSummary()
	default:
		return HintStyle()
	}
}

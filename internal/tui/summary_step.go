package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"

	"github.com/shesviral/viralkit/internal/clipboard"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/summary"
	"github.com/shesviral/viralkit/internal/wizard"
)

// editorFinishedMsg is sent when the external editor exits.
type editorFinishedMsg struct {
	err error
}

// syncSummary re-renders the summary markdown when the selection or the
// viewport width changed.
func (a *App) syncSummary() {
	width, height := a.bodySize()
	a.summary.SetWidth(width)
	a.summary.SetHeight(height)

	md := summary.Markdown(a.view)
	key := fmt.Sprintf("%d|%s", width, md)
	if key == a.summaryKey {
		return
	}
	a.summaryKey = key
	a.summary.SetContent(renderMarkdown(md, width, a.opts.MarkdownStyle))
	a.summary.GotoTop()
}

func (a *App) handleSummaryKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "c":
		return a.copy("summary", summary.PlainText(a.view))
	case "h":
		if a.view.Hook == nil {
			return a.toast.Show("No hook selected")
		}
		return a.copy("hook", a.view.Hook.Idea)
	case "s":
		if _, err := a.export(); err != nil {
			return a.toast.Show("Save failed: " + err.Error())
		}
		return a.toast.Show("Saved " + a.exported)
	case "e":
		return a.openEditor()
	case "b":
		if a.ctrl.JumpToStep(wizard.StepStyle) {
			a.refresh()
		}
		return nil
	case "r":
		a.ctrl.Reset()
		a.exported = ""
		a.styleCursor, a.hookCursor, a.hookTab, a.scriptCursor = 0, 0, 0, 0
		a.refresh()
		return a.toast.Show("Started over")
	}

	if slot, ok := slotKey(key); ok {
		script := a.view.Slots[slot]
		if script == nil {
			return a.toast.Show(fmt.Sprintf("Script %d not selected", slot+1))
		}
		return a.copy(fmt.Sprintf("script %d", slot+1), script.Paragraph1+"\n\n"+script.Paragraph2)
	}

	var cmd tea.Cmd
	a.summary, cmd = a.summary.Update(msg)
	return cmd
}

// copy puts text on the clipboard and reports the outcome in a toast.
// Failures never touch the wizard state, so the user can simply retry.
func (a *App) copy(what, text string) tea.Cmd {
	if a.opts.Copier == nil {
		return a.toast.Show("Clipboard unavailable")
	}
	method, err := a.opts.Copier.Copy(text)
	if err != nil {
		logger.Warn("copy %s failed: %v", what, err)
		return a.toast.Show("Copy failed, try again")
	}
	logger.Debug("copied %s via %s", what, method)
	if method == clipboard.MethodOSC52 {
		return a.toast.Show("Copied " + what + " (terminal)")
	}
	return a.toast.Show("Copied " + what)
}

// export writes the summary file and remembers its path.
func (a *App) export() (string, error) {
	path, err := summary.Write(a.opts.ExportDir, a.view, a.opts.Now())
	if err != nil {
		logger.Error("export failed: %v", err)
		return "", err
	}
	a.exported = path
	return path, nil
}

// openEditor saves the summary if needed and opens it in $EDITOR.
func (a *App) openEditor() tea.Cmd {
	path := a.exported
	if _, err := os.Stat(path); path == "" || err != nil {
		if path, err = a.export(); err != nil {
			return a.toast.Show("Save failed: " + err.Error())
		}
	}

	cmd, err := editor.Command("viralkit", path)
	if err != nil {
		return a.toast.Show("No editor available: " + err.Error())
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

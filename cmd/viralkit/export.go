package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/clipboard"
	"github.com/shesviral/viralkit/internal/engine"
	"github.com/shesviral/viralkit/internal/summary"
	"github.com/shesviral/viralkit/internal/wizard"
)

var exportFlags struct {
	style   string
	hook    string
	scripts []string
	format  string
	save    bool
	copy    bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build a content summary without the interactive wizard",
	Long: `Build a summary from ids, applying the same slot rules as the wizard.

Scripts are given in slot order:
  viralkit export --style vs1 --hook h12 --scripts 4,17,9,31,22`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.style, "style", "", "Style id")
	f.StringVar(&exportFlags.hook, "hook", "", "Hook id")
	f.StringSliceVar(&exportFlags.scripts, "scripts", nil, "Script ids in slot order (comma separated)")
	f.StringVar(&exportFlags.format, "format", "markdown", "Output format: markdown or text")
	f.BoolVarP(&exportFlags.save, "save", "s", false, "Also write the markdown summary to the export directory")
	f.BoolVarP(&exportFlags.copy, "copy", "c", false, "Copy the plain text summary to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	v, err := buildSelection(cat, exportFlags.style, exportFlags.hook, exportFlags.scripts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch exportFlags.format {
	case "markdown", "md":
		fmt.Fprint(out, summary.Markdown(v))
	case "text", "txt":
		fmt.Fprint(out, summary.PlainText(v))
	default:
		return fmt.Errorf("unknown format %q (want markdown or text)", exportFlags.format)
	}

	if exportFlags.save {
		path, err := summary.Write(cfg.ExportDir, v, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Written to %s\n", path)
	}

	if exportFlags.copy {
		method, err := clipboard.New(os.Stderr).Copy(summary.PlainText(v))
		if err != nil {
			return fmt.Errorf("copy summary: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied (%s)\n", method)
	}
	return nil
}

// buildSelection replays the ids through a wizard session so the export
// obeys the slot rules. Unset parts stay unselected.
func buildSelection(cat *catalog.Catalog, styleID, hookID string, scriptIDs []string) (wizard.View, error) {
	wiz := wizard.New(cat)

	if styleID != "" {
		style, ok := cat.Style(styleID)
		if !ok {
			return wizard.View{}, fmt.Errorf("unknown style %q", styleID)
		}
		wiz.SelectStyle(style)
	}

	if hookID != "" {
		hook, ok := cat.Hook(hookID)
		if !ok {
			return wizard.View{}, fmt.Errorf("unknown hook %q", hookID)
		}
		if f := wiz.Family(); !wizard.HookFits(hook, f) {
			return wizard.View{}, fmt.Errorf("hook %s is not offered for the %s family", hookID, f)
		}
		wiz.SelectHook(hook)
	}

	if len(scriptIDs) > engine.SlotCount {
		return wizard.View{}, fmt.Errorf("at most %d scripts, got %d", engine.SlotCount, len(scriptIDs))
	}
	var errs []error
	for slot, id := range scriptIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		script, ok := cat.Script(id)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown script %q", id))
			continue
		}
		v := wiz.Snapshot()
		if !wiz.SelectScript(script, slot) {
			reason := engine.Evaluate(v.Slots, slot, v.Family).DisabledReason(script)
			if reason == "" {
				reason = script.Type.Label() + " does not fit this slot"
			}
			errs = append(errs, fmt.Errorf("script %s not allowed in slot %d: %s", id, slot+1, reason))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return wizard.View{}, err
	}
	return wiz.Snapshot(), nil
}

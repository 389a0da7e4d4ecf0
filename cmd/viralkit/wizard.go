package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/clipboard"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/nats"
	"github.com/shesviral/viralkit/internal/session"
	"github.com/shesviral/viralkit/internal/tui"
	"github.com/shesviral/viralkit/internal/wizard"
)

func runWizard(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	rec, closeJournal, err := openRecorder(cmd.Context(), cat)
	if err != nil {
		return err
	}
	defer closeJournal()

	return tui.Run(cmd.Context(), rec, tui.Options{
		ExportDir:     cfg.ExportDir,
		MarkdownStyle: cfg.MarkdownStyle,
		Copier:        clipboard.New(os.Stdout),
	})
}

// openRecorder creates a wizard session. With the journal enabled every
// accepted intent is recorded on an embedded NATS server for the lifetime of
// the process.
func openRecorder(ctx context.Context, cat *catalog.Catalog) (*session.Recorder, func(), error) {
	name := nats.NewSessionName(time.Now())
	wiz := wizard.New(cat)
	if !cfg.Journal {
		return session.NewRecorder(nil, name, wiz), func() {}, nil
	}

	storeDir, err := os.MkdirTemp("", "viralkit-journal-*")
	if err != nil {
		return nil, nil, fmt.Errorf("create journal dir: %w", err)
	}

	emb, err := nats.Start(ctx, storeDir)
	if err != nil {
		_ = os.RemoveAll(storeDir)
		return nil, nil, fmt.Errorf("start journal: %w", err)
	}

	cleanup := func() {
		if err := emb.Close(); err != nil {
			logger.Warn("journal shutdown: %v", err)
		}
		_ = os.RemoveAll(storeDir)
	}

	logger.Info("Journaling session %s", name)
	store := session.NewStore(emb.JetStream, emb.Stream)
	return session.NewRecorder(store, name, wiz), cleanup, nil
}

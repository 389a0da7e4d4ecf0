package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shesviral/viralkit/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Drive a wizard session over MCP (streamable HTTP)",
	Long: `Start an MCP server on 127.0.0.1 that exposes the wizard as tools.
Agents can list the catalog, select a style, hook and scripts, and export the
summary. The session is journaled like the interactive wizard.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "Port to listen on (0 picks a free port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	rec, closeJournal, err := openRecorder(ctx, cat)
	if err != nil {
		return err
	}
	defer closeJournal()

	srv := mcpserver.New(rec, cfg.ExportDir)
	if _, err := srv.Start(ctx, cfg.MCPPort); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Session %s\nMCP endpoint: %s\n", rec.Name(), srv.URL())

	<-ctx.Done()
	fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

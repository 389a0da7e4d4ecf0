package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/config"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/tui/theme"
)

const (
	logoText1 = "█ █ █ █▀█ ▄▀█ █   █▄▀ █ ▀█▀"
	logoText2 = "▀▄▀ █ █▀▄ █▀█ █▄▄ █ █ █  █ "
)

// Version set via ldflags during build
var version = "dev"

// cfg is loaded before any command runs.
var cfg *config.Config

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "viralkit",
	Short:             "Assemble a short-form video content package in four steps",
	PersistentPreRunE: loadConfig,
	RunE:              runWizard,
	SilenceUsage:      true,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

viralkit walks you through a slideshow content package: pick a visual style,
an opening hook and five scripts, then copy or export the summary.
Script slots follow fixed pairing rules; mistake styles switch to the
mistake script family.`

	pf := rootCmd.PersistentFlags()
	pf.String("catalog", "", "Catalog YAML file (default: embedded catalog)")
	pf.String("export-dir", "", "Directory for exported summaries")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("markdown-style", "", "Glamour style for the summary: "+strings.Join(config.MarkdownStyles, ", "))

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig resolves configuration for every command and applies the
// logging settings.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = loaded
	return logger.Configure(cfg.LogLevel, cfg.LogFile)
}

// openCatalog opens the configured catalog.
func openCatalog() (*catalog.Catalog, error) {
	return catalog.Open(cfg.CatalogFile)
}

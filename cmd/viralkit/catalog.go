package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shesviral/viralkit/internal/catalog"
)

var catalogFlags struct {
	category string
	mistake  bool
	typ      string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the content catalog",
}

var catalogStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List visual styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range cat.Styles() {
			family := ""
			if s.IsMistake() {
				family = " [mistake]"
			}
			fmt.Fprintf(out, "%s: %s%s\n", s.ID, s.DisplayTitle(), family)
		}
		return nil
	},
}

var catalogHooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List hooks by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}

		categories := catalog.HookCategories(catalogFlags.mistake)
		if catalogFlags.category != "" {
			categories = []string{catalogFlags.category}
		}

		out := cmd.OutOrStdout()
		for _, c := range categories {
			hooks := cat.HooksInCategory(c)
			if len(hooks) == 0 {
				hooks = cat.HooksBySlug(c)
			}
			fmt.Fprintf(out, "%s (%d)\n", c, len(hooks))
			for _, h := range hooks {
				fmt.Fprintf(out, "  %s: %s\n", h.ID, h.Idea)
			}
		}
		return nil
	},
}

var catalogScriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List scripts by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}

		types := catalog.ScriptTypes
		if catalogFlags.typ != "" {
			t := catalog.ScriptType(catalogFlags.typ)
			if !t.Valid() {
				return fmt.Errorf("unknown script type %q", catalogFlags.typ)
			}
			types = []catalog.ScriptType{t}
		}

		out := cmd.OutOrStdout()
		for _, t := range types {
			scripts := cat.ScriptsOfType(t)
			fmt.Fprintf(out, "%s (%d)\n", t.Label(), len(scripts))
			for _, s := range scripts {
				fmt.Fprintf(out, "  %s: %s\n", s.ID, s.Paragraph1)
			}
		}
		return nil
	},
}

func init() {
	catalogHooksCmd.Flags().StringVarP(&catalogFlags.category, "category", "c", "", "Only this category (name or slug)")
	catalogHooksCmd.Flags().BoolVarP(&catalogFlags.mistake, "mistake", "m", false, "List the mistake family categories")
	catalogScriptsCmd.Flags().StringVarP(&catalogFlags.typ, "type", "t", "", "Only this script type")

	catalogCmd.AddCommand(catalogStylesCmd)
	catalogCmd.AddCommand(catalogHooksCmd)
	catalogCmd.AddCommand(catalogScriptsCmd)
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-devme/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List content levels, templates and themes",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}
	c, err := loadCatalog(cfg.Catalog.Dir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVELS")
	for _, l := range c.Levels {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", l.ID, l.Name, l.Description)
	}
	fmt.Fprintln(w, "TEMPLATES")
	for _, t := range c.Templates {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", t.ID, t.Name, t.Description)
	}
	fmt.Fprintln(w, "THEMES")
	for _, t := range c.Themes {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", t.ID, t.Name, strings.Join([]string{t.Colors.Primary, t.Colors.Secondary, t.Colors.Accent}, " "))
	}
	return w.Flush()
}

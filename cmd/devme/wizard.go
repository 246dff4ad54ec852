package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-devme/pkg/tui"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive resume wizard",
	Long:  "Starts the six step wizard, resuming from the saved document. Every edit is saved immediately; quitting keeps your progress.",
	RunE:  runWizard,
}

var wizardExportPath string

func init() {
	wizardCmd.Flags().StringVarP(&wizardExportPath, "output", "o", tui.DefaultExportPath, "Default file offered by the HTML export action")
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, cfg, err := loadApp(ctx)
	if err != nil {
		return err
	}

	shell, err := tui.New(app.Controller, app.Composer,
		tui.WithRenderers(app.Renderers),
		tui.WithSelector(app.Selector),
		tui.WithPreviewFormat(cfg.Render.Format),
		tui.WithExportPath(wizardExportPath),
		tui.WithOutput(cmd.OutOrStdout()),
		tui.WithLogger(app.Logger),
	)
	if err != nil {
		return err
	}

	err = shell.Run(ctx)
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted. Your progress is saved.")
		return nil
	}
	return err
}

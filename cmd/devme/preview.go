package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the saved resume",
	Long:  "Renders the saved document with its selected template and theme. Writes to stdout unless --output is given.",
	RunE:  runPreview,
}

var (
	previewFormat string
	previewOutput string
)

func init() {
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "", "Output format: html or text (default from config)")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, cfg, err := loadApp(ctx)
	if err != nil {
		return err
	}

	format := previewFormat
	if format == "" {
		format = cfg.Render.Format
	}
	out, err := app.Render(ctx, format)
	if err != nil {
		return err
	}

	if previewOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(previewOutput, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", previewOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Resume written to %s\n", previewOutput)
	return nil
}

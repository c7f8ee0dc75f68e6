package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/org-builder/internal"
	"github.com/iksnae/org-builder/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the org chart to a file or stdout",
	Long: `Export the loaded org chart in one of the supported formats.

Formats:
  json      full scenario as a single JSON document
  jsonl     one JSON object per org node
  md        human-readable markdown report with a health summary
  yaml      full scenario as YAML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadBaseline()
		if err != nil {
			return fmt.Errorf("failed to load baseline: %w", err)
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
			}
			defer f.Close()
			out = f
		}

		if err := exporter.Export(scenario, out); err != nil {
			return err
		}
		if exportOutput != "" {
			internal.LogInfo("exported %s to %s", scenario.Name, exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportTemplate string
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Export a resume snapshot to a paginated A4 PDF",
	Long:  "Renders the resume with its template, rasterizes it in headless Chrome, slices the bitmap into A4 pages, and writes the assembled PDF. Requires a Chrome or Chromium binary (set CHROME_PATH to override discovery).",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output PDF path (defaults to a name derived from the resume title)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Template override (classic, modern, split)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return fmt.Errorf("resume failed schema validation: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	if exportTemplate != "" {
		resume.Template = exportTemplate
	}

	surface, err := render.Render(&resume)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	exporter := export.New(export.NewChromeRasterizer())
	result, err := exporter.Export(cmd.Context(), surface, resume.Title)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	output := exportOutput
	if output == "" {
		output = result.FileName
	}
	if err := os.WriteFile(output, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d pages, %d bytes)\n", output, result.Pages, len(result.PDF))
	return nil
}

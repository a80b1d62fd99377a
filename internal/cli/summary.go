package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/pdftool"
	"github.com/docweave/docweave/internal/report"
)

var summaryOutput string

var summaryCmd = &cobra.Command{
	Use:   "summary <file.pdf>",
	Short: "Create a structured summary of a PDF document",
	Long: `Extract the text of a PDF and write a companion summary document with
metadata, a synthesized table of contents, and content previews.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]
		if _, err := os.Stat(pdfPath); err != nil {
			return fmt.Errorf("PDF file not found: %s", pdfPath)
		}

		cfg := config.Load()
		extractor := newExtractor(cfg)
		ctx := cmd.Context()

		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("Processing PDF: ")+pdfPath)

		text, err := extractor.ExtractText(ctx, pdfPath)
		if err != nil {
			if errors.Is(err, pdftool.ErrNoContent) {
				return fmt.Errorf("no text content extracted from %s", pdfPath)
			}
			return fmt.Errorf("extract text: %w", err)
		}

		meta, err := extractor.Metadata(ctx, pdfPath)
		if err != nil {
			meta = map[string]string{}
		}

		sections := newHeuristics(cfg).Extract(strings.Split(text, "\n"))
		limits := report.SummaryLimits{
			TOCSections:     cfg.TOCSectionLimit,
			PreviewSections: cfg.PreviewSectionLimit,
			PreviewLen:      cfg.PreviewMaxLen,
		}

		name := filepath.Base(pdfPath)
		content := report.Summary(name, meta, sections, time.Now(), limits)

		out := outputPath(pdfPath, summaryOutput, strings.TrimSuffix(name, ".pdf")+"-summary.md")
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Summary created: ")+out)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "Output directory (default: same as PDF)")

	rootCmd.AddCommand(summaryCmd)
}

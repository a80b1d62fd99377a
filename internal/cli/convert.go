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

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf>",
	Short: "Convert a PDF to a structured markdown document",
	Long: `Extract the text of a PDF and reconstruct a markdown document from it,
with detected headings, lists, and code continuations plus a metadata
header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]
		if _, err := os.Stat(pdfPath); err != nil {
			return fmt.Errorf("PDF file not found: %s", pdfPath)
		}

		cfg := config.Load()
		extractor := newExtractor(cfg)
		ctx := cmd.Context()

		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("Converting PDF: ")+pdfPath)

		text, err := extractor.ExtractText(ctx, pdfPath)
		if err != nil {
			if errors.Is(err, pdftool.ErrNoContent) {
				return fmt.Errorf("no text content extracted from %s", pdfPath)
			}
			return fmt.Errorf("extract text: %w", err)
		}

		// Metadata failures degrade to an empty map; the header
		// renders N/A fallbacks.
		meta, err := extractor.Metadata(ctx, pdfPath)
		if err != nil {
			meta = map[string]string{}
		}

		name := filepath.Base(pdfPath)
		content := report.Conversion(name, meta, strings.Split(text, "\n"), newHeuristics(cfg), time.Now())

		out := outputPath(pdfPath, convertOutput, strings.TrimSuffix(name, ".pdf")+".md")
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Markdown file created: ")+out)
		return nil
	},
}

// outputPath places the generated file next to the PDF by default, or in
// the requested output directory.
func outputPath(pdfPath, outDir, name string) string {
	if outDir == "" {
		return filepath.Join(filepath.Dir(pdfPath), name)
	}
	return filepath.Join(outDir, name)
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output directory (default: same as PDF)")

	rootCmd.AddCommand(convertCmd)
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/links"
)

var (
	validateVerbose bool
	validatePDFOnly bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <directory>",
	Short: "Validate links in markdown documentation",
	Long: `Extract every link from the corpus's markdown files, classify it, and
check local targets against the file tree. PDF targets additionally get
a cross-format readability check. Exits nonzero when any link or PDF is
invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("directory not found: %s", root)
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return err
		}

		cfg := config.Load()
		v := &links.Validator{
			Root:    absRoot,
			PDF:     newExtractor(cfg),
			Workers: cfg.WorkerCount,
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, dimStyle.Render("Scanning for markdown files in: ")+root)

		fileResults, err := v.ValidateCorpus(cmd.Context(), root)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Found %d markdown files", len(fileResults))))

		var summary links.Summary
		for _, fr := range fileResults {
			if fr.Err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("ERROR"), fr.Path, fr.Err)
				continue
			}
			if validateVerbose {
				fmt.Fprintf(out, "\nValidating: %s\n", fr.Path)
			}

			fileInvalid := 0
			for _, r := range fr.Results {
				if r.Target.IsPDF() && (validatePDFOnly || validateVerbose) {
					fmt.Fprintf(out, "  PDF: %s - %s\n", r.Link.Target, r.Status)
					if r.CrossFormat != "" {
						fmt.Fprintf(out, "    PDF Validation: %s\n", r.CrossReason)
					}
				}
				switch {
				case r.Status == links.StatusInvalid:
					fileInvalid++
					if !validatePDFOnly {
						fmt.Fprintf(out, "  %s %s - %s\n", errorStyle.Render("INVALID:"), r.Link.Target, r.Reason)
					}
				case validateVerbose && !validatePDFOnly:
					fmt.Fprintf(out, "  OK: %s\n", r.Link.Target)
				}
			}
			summary.Add(fr.Results)
			if fileInvalid > 0 {
				fmt.Fprintf(out, "  %s: %d invalid links\n", fr.Path, fileInvalid)
			}
		}

		fmt.Fprintln(out, "\n"+headerStyle.Render("=== Summary ==="))
		fmt.Fprintf(out, "Total links checked: %d\n", summary.Total)
		fmt.Fprintf(out, "Invalid links: %d\n", summary.Invalid)
		fmt.Fprintf(out, "PDF links found: %d\n", summary.PDFLinks)
		fmt.Fprintf(out, "Invalid PDFs: %d\n", summary.InvalidPDFs)

		if summary.Failed() {
			return fmt.Errorf("validation failed: %d issues found", summary.Invalid+summary.InvalidPDFs)
		}
		fmt.Fprintln(out, successStyle.Render("All links are valid"))
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Verbose output")
	validateCmd.Flags().BoolVar(&validatePDFOnly, "pdf-only", false, "Only report PDF links")

	rootCmd.AddCommand(validateCmd)
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/report"
	"github.com/docweave/docweave/internal/watch"
)

var (
	indexOutput  string
	indexInclude []string
	indexExclude []string
	indexWatch   bool
)

var indexCmd = &cobra.Command{
	Use:   "index <directory>",
	Short: "Generate a documentation index for a corpus",
	Long: `Scan a documentation tree and write a markdown index with summary
statistics, a table of all documents, and per-category groupings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("directory not found: %s", root)
		}

		cfg := config.Load()
		scanner := newScanner(cfg, indexInclude, indexExclude)

		build := func(ctx context.Context) error {
			records, err := scanner.Scan(ctx, root)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("Found %d documentation files", len(records))))

			content := report.Index(records, time.Now())
			if dir := filepath.Dir(indexOutput); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := os.WriteFile(indexOutput, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write index: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Index written: ")+indexOutput)
			return nil
		}

		ctx := cmd.Context()
		if err := build(ctx); err != nil {
			return err
		}
		if !indexWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		return watch.Watch(ctx, root, logger, func() {
			if err := build(ctx); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		})
	},
}

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "docs/INDEX.md", "Output file path")
	indexCmd.Flags().StringSliceVar(&indexInclude, "include", nil, "File patterns to include")
	indexCmd.Flags().StringSliceVar(&indexExclude, "exclude", nil, "Directory patterns to exclude")
	indexCmd.Flags().BoolVar(&indexWatch, "watch", false, "Watch the corpus and regenerate on changes")

	rootCmd.AddCommand(indexCmd)
}

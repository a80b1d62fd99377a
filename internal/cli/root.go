// Package cli implements the docweave command-line tools.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/corpus"
	"github.com/docweave/docweave/internal/extract"
	"github.com/docweave/docweave/internal/pdftool"
)

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))
)

var rootCmd = &cobra.Command{
	Use:   "docweave",
	Short: "Documentation corpus indexing, PDF conversion, and link validation",
	Long: `Docweave builds a navigable index over a documentation corpus, reconstructs
structured markdown from PDF text, and validates the link graph across
markdown files, anchors, and PDF references.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// newExtractor builds the external PDF collaborator from configuration.
func newExtractor(cfg config.Config) *pdftool.Extractor {
	return &pdftool.Extractor{
		Timeout:     cfg.CollaboratorTimeout,
		FallbackLib: cfg.PDFFallbackLib,
	}
}

func newHeuristics(cfg config.Config) extract.Heuristics {
	return extract.Heuristics{
		HeadingMinLen:   cfg.HeadingMinLen,
		HeadingMaxWords: cfg.HeadingMaxWords,
		IndentMinSpaces: cfg.IndentMinSpaces,
	}
}

func newScanner(cfg config.Config, include, exclude []string) *corpus.Scanner {
	if len(include) == 0 {
		include = cfg.IncludePatterns
	}
	if len(exclude) == 0 {
		exclude = cfg.ExcludePatterns
	}
	return &corpus.Scanner{
		Include:        include,
		Exclude:        exclude,
		Workers:        cfg.WorkerCount,
		PDF:            newExtractor(cfg),
		DescriptionMin: cfg.DescriptionMinLen,
		DescriptionMax: cfg.DescriptionMaxLen,
	}
}

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/docweave/docweave/internal/extract"
)

var convertNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestConversion_HeaderAndBody(t *testing.T) {
	meta := map[string]string{
		"Title":  "Quarterly Report",
		"Author": "Finance",
		"Pages":  "12",
	}
	lines := []string{
		"REVENUE REPORT",
		"",
		"Total revenue was up this quarter.",
		"1. First item",
		"- detail",
	}

	out := Conversion("report.pdf", meta, lines, extract.DefaultHeuristics(), convertNow)

	for _, want := range []string{
		"# Quarterly Report",
		"## Document Information",
		"- **Source**: [report.pdf](report.pdf)",
		"- **Converted**: 2026-03-14 09:30:00",
		"- **Author**: Finance",
		"- **Subject**: N/A",
		"- **Pages**: 12",
		"\n---\n",
		"## Revenue Report",
		"Total revenue was up this quarter.",
		"1. First item",
		"- detail",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("conversion missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("conversion should end with a newline")
	}
}

func TestConversion_TitleFallsBackToStem(t *testing.T) {
	out := Conversion("user-guide.pdf", nil, []string{"content"}, extract.DefaultHeuristics(), convertNow)
	if !strings.HasPrefix(out, "# user-guide\n") {
		t.Errorf("output starts with %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestConversion_CollapsesBlankRuns(t *testing.T) {
	lines := []string{"para one", "", "", "", "para two"}
	out := Conversion("doc.pdf", nil, lines, extract.DefaultHeuristics(), convertNow)
	if strings.Contains(out, "\n\n\n") {
		t.Error("conversion contains a run of blank lines")
	}
	if !strings.Contains(out, "para one\n\npara two") {
		t.Error("paragraphs should be separated by a single blank line")
	}
}

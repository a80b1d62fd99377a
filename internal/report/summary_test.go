package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/docweave/docweave/internal/extract"
)

var summaryNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func makeSections(n int) []extract.Section {
	out := make([]extract.Section, n)
	for i := range out {
		title := fmt.Sprintf("Section %d", i+1)
		out[i] = extract.Section{
			Title:  title,
			Level:  2,
			Anchor: fmt.Sprintf("section-%d", i+1),
			Body: []extract.Block{
				{Kind: extract.KindParagraph, Text: fmt.Sprintf("Body of section %d.", i+1)},
			},
		}
	}
	return out
}

func TestSummary_Layout(t *testing.T) {
	meta := map[string]string{"Title": "User Manual", "Author": "Docs Team"}
	out := Summary("manual.pdf", meta, makeSections(2), summaryNow, DefaultSummaryLimits())

	for _, want := range []string{
		"# PDF Summary: manual",
		"## Document Information",
		"- **File**: [`manual.pdf`](manual.pdf)",
		"- **Generated**: 2026-03-14 09:30:00",
		"- **Title**: User Manual",
		"- **Subject**: N/A",
		"## Quick Reference Links",
		"- [View Original PDF](manual.pdf)",
		"- [Full Markdown Version](manual.md)",
		"- [Search in PDF](#search-tips)",
		"### Table of Contents",
		"1. [Section 1](#section-1)",
		"2. [Section 2](#section-2)",
		"## Key Sections",
		"### Section 1",
		"Body of section 1....",
		"## Search Tips",
		`pdfgrep "search term" "manual.pdf"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestSummary_TOCLimit(t *testing.T) {
	out := Summary("big.pdf", nil, makeSections(25), summaryNow, DefaultSummaryLimits())

	if !strings.Contains(out, "20. [Section 20](#section-20)") {
		t.Error("TOC should include the 20th section")
	}
	if strings.Contains(out, "21. [Section 21]") {
		t.Error("TOC should stop at 20 entries")
	}
}

func TestSummary_PreviewLimit(t *testing.T) {
	out := Summary("big.pdf", nil, makeSections(25), summaryNow, DefaultSummaryLimits())

	if !strings.Contains(out, "### Section 10") {
		t.Error("previews should include the 10th section")
	}
	if strings.Contains(out, "### Section 11") {
		t.Error("previews should stop at 10 sections")
	}
}

func TestSummary_NoSections(t *testing.T) {
	out := Summary("empty.pdf", nil, nil, summaryNow, DefaultSummaryLimits())
	if strings.Contains(out, "Table of Contents") {
		t.Error("summary without sections should omit the structure block")
	}
	if !strings.Contains(out, "## Search Tips") {
		t.Error("footer should always be present")
	}
}

func TestPreview(t *testing.T) {
	sec := extract.Section{Body: []extract.Block{
		{Kind: extract.KindParagraph, Text: "one"},
		{Kind: extract.KindBlank},
		{Kind: extract.KindParagraph, Text: "two"},
		{Kind: extract.KindListItem, Text: "- three"},
		{Kind: extract.KindParagraph, Text: "four"},
	}}
	got := preview(sec, 200)
	if got != "one two - three..." {
		t.Errorf("preview = %q", got)
	}
}

func TestPreview_Truncates(t *testing.T) {
	sec := extract.Section{Body: []extract.Block{
		{Kind: extract.KindParagraph, Text: strings.Repeat("x", 300)},
	}}
	got := preview(sec, 200)
	if len([]rune(got)) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("preview length = %d", len([]rune(got)))
	}
}

func TestPreview_Empty(t *testing.T) {
	if got := preview(extract.Section{}, 200); got != "No content" {
		t.Errorf("preview = %q", got)
	}
}

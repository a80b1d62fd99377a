package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/docweave/docweave/internal/extract"
)

// SummaryLimits bounds how much of the document structure the summary
// reproduces.
type SummaryLimits struct {
	TOCSections     int // table-of-contents entries
	PreviewSections int // sections given a content preview
	PreviewLen      int // preview length in runes
}

// DefaultSummaryLimits returns the limits the summary layout was
// designed around.
func DefaultSummaryLimits() SummaryLimits {
	return SummaryLimits{TOCSections: 20, PreviewSections: 10, PreviewLen: 200}
}

// Summary renders the structured summary of a PDF: metadata, quick
// reference links, a synthesized table of contents, section previews,
// and a fixed search-tips footer.
func Summary(pdfName string, meta map[string]string, sections []extract.Section, now time.Time, limits SummaryLimits) string {
	stem := strings.TrimSuffix(pdfName, ".pdf")
	var b strings.Builder

	fmt.Fprintf(&b, "# PDF Summary: %s\n\n", stem)
	b.WriteString("## Document Information\n\n")
	fmt.Fprintf(&b, "- **File**: [`%s`](%s)\n", pdfName, pdfName)
	fmt.Fprintf(&b, "- **Generated**: %s\n", now.Format(timeLayout))
	fmt.Fprintf(&b, "- **Title**: %s\n", metaOr(meta, "Title", "N/A"))
	fmt.Fprintf(&b, "- **Author**: %s\n", metaOr(meta, "Author", "N/A"))
	fmt.Fprintf(&b, "- **Subject**: %s\n", metaOr(meta, "Subject", "N/A"))
	fmt.Fprintf(&b, "- **Creator**: %s\n", metaOr(meta, "Creator", "N/A"))
	fmt.Fprintf(&b, "- **Pages**: %s\n", metaOr(meta, "Pages", "N/A"))
	fmt.Fprintf(&b, "- **Creation Date**: %s\n\n", metaOr(meta, "CreationDate", "N/A"))

	b.WriteString("## Quick Reference Links\n\n")
	fmt.Fprintf(&b, "- [View Original PDF](%s)\n", pdfName)
	fmt.Fprintf(&b, "- [Full Markdown Version](%s.md)\n", stem)
	b.WriteString("- [Search in PDF](#search-tips)\n\n")

	b.WriteString("## Document Structure\n\n")
	if len(sections) > 0 {
		b.WriteString("### Table of Contents\n\n")
		for i, sec := range sections {
			if i >= limits.TOCSections {
				break
			}
			fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, truncate(sec.Title, 100), sec.Anchor)
		}
		b.WriteString("\n## Key Sections\n\n")
		for i, sec := range sections {
			if i >= limits.PreviewSections {
				break
			}
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", sec.Title, preview(sec, limits.PreviewLen))
		}
	}

	writeSummaryFooter(&b, pdfName, stem)
	return b.String()
}

// preview joins the first three body lines of a section, truncated to
// max runes with a trailing ellipsis.
func preview(sec extract.Section, max int) string {
	lines := sec.BodyLines()
	if len(lines) == 0 {
		return "No content"
	}
	if len(lines) > 3 {
		lines = lines[:3]
	}
	joined := strings.Join(lines, " ")
	runes := []rune(joined)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}

func writeSummaryFooter(b *strings.Builder, pdfName, stem string) {
	fmt.Fprintf(b, `## Search Tips

### Command Line Search
`+"```bash"+`
# Search for text in PDF
pdfgrep "search term" "%s"

# Search with context
pdfgrep -n -C 2 "search term" "%s"
`+"```"+`

### Cross-Reference with Markdown
- This PDF has been converted to markdown: [`+"`%s.md`"+`](%s.md)
- Use markdown for better searchability and linking

---
*This summary was auto-generated from the PDF content. For complete information, refer to the original PDF document.*
`, pdfName, pdfName, stem, stem)
}

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/docweave/docweave/internal/extract"
)

// Conversion renders the full markdown reconstruction of a PDF: a
// metadata header, a horizontal rule, then the structurally extracted
// body.
func Conversion(pdfName string, meta map[string]string, lines []string, h extract.Heuristics, now time.Time) string {
	stem := strings.TrimSuffix(pdfName, ".pdf")

	header := []string{
		"# " + metaOr(meta, "Title", stem),
		"",
		"## Document Information",
		"",
		fmt.Sprintf("- **Source**: [%s](%s)", pdfName, pdfName),
		fmt.Sprintf("- **Converted**: %s", now.Format(timeLayout)),
		fmt.Sprintf("- **Author**: %s", metaOr(meta, "Author", "N/A")),
		fmt.Sprintf("- **Subject**: %s", metaOr(meta, "Subject", "N/A")),
		fmt.Sprintf("- **Creator**: %s", metaOr(meta, "Creator", "N/A")),
		fmt.Sprintf("- **Pages**: %s", metaOr(meta, "Pages", "N/A")),
		fmt.Sprintf("- **Creation Date**: %s", metaOr(meta, "CreationDate", "N/A")),
		"",
		"---",
		"",
	}

	body := extract.Render(h.ClassifyAll(lines))
	all := extract.CollapseBlanks(append(header, body...))
	return strings.Join(all, "\n") + "\n"
}

package report

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/docweave/docweave/internal/corpus"
)

// category groups index entries by file-name keywords, in a fixed order.
type category struct {
	name     string
	keywords []string
}

var categories = []category{
	{"Setup Guides", []string{"setup", "install"}},
	{"Configuration", []string{"config", "settings"}},
	{"Troubleshooting", []string{"troubleshoot", "debug"}},
	{"Reference", []string{"reference", "spec"}},
	{"API Documentation", []string{"api"}},
}

// Index renders the corpus index document: summary statistics, a table
// of all documents, per-format sections, and keyword category groupings.
func Index(records []corpus.Record, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Documentation Index\n\n")
	fmt.Fprintf(&b, "*Generated on %s*\n\n", now.Format(timeLayout))
	b.WriteString("This index contains all documentation files in the project, including PDFs, markdown files, and other documentation formats.\n\n")
	b.WriteString("## Quick Navigation\n\n")
	b.WriteString("- [All Documents](#all-documents)\n")
	b.WriteString("- [PDF Documents](#pdf-documents)\n")
	b.WriteString("- [Markdown Documents](#markdown-documents)\n")
	b.WriteString("- [By Category](#by-category)\n\n")

	writeStatistics(&b, records)
	writeAllDocuments(&b, records)
	writePDFSection(&b, records)
	writeMarkdownSection(&b, records)
	writeCategories(&b, records)
	writeIndexFooter(&b)

	return b.String()
}

func writeStatistics(b *strings.Builder, records []corpus.Record) {
	var pdfs, mds int
	var totalSize int64
	for _, r := range records {
		switch r.Kind {
		case corpus.KindPDF:
			pdfs++
		case corpus.KindMarkdown:
			mds++
		}
		totalSize += r.Size
	}

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(b, "- **Total Documents**: %d\n", len(records))
	fmt.Fprintf(b, "- **PDF Files**: %d\n", pdfs)
	fmt.Fprintf(b, "- **Markdown Files**: %d\n", mds)
	fmt.Fprintf(b, "- **Total Size**: %s\n\n", fmtSizeMB(totalSize))
}

func writeAllDocuments(b *strings.Builder, records []corpus.Record) {
	sorted := make([]corpus.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Ext() != sorted[j].Ext() {
			return sorted[i].Ext() < sorted[j].Ext()
		}
		return sorted[i].Name < sorted[j].Name
	})

	b.WriteString("## All Documents\n\n")
	b.WriteString("| Document | Type | Size | Modified | Description |\n")
	b.WriteString("|----------|------|------|----------|-------------|\n")
	for _, r := range sorted {
		desc := r.Description
		if desc == "" {
			desc = r.Subject
		}
		fmt.Fprintf(b, "| [%s](%s) | %s | %s | %s | %s |\n",
			r.Name, r.Path,
			strings.ToUpper(strings.TrimPrefix(r.Ext(), ".")),
			fmtSize(r.Size),
			r.Modified.Format("2006-01-02"),
			truncate(desc, 100))
	}
	b.WriteString("\n")
}

func writePDFSection(b *strings.Builder, records []corpus.Record) {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.Path] = true
	}

	var pdfs []corpus.Record
	for _, r := range records {
		if r.Kind == corpus.KindPDF {
			pdfs = append(pdfs, r)
		}
	}
	if len(pdfs) == 0 {
		return
	}

	b.WriteString("## PDF Documents\n\n")
	for _, r := range pdfs {
		title := r.Title
		if title == "" {
			title = r.Name
		}
		fmt.Fprintf(b, "### [%s](%s)\n\n", title, r.Path)
		fmt.Fprintf(b, "- **Author**: %s\n", orUnknown(r.Author))
		fmt.Fprintf(b, "- **Pages**: %s\n", orUnknown(r.Pages))
		fmt.Fprintf(b, "- **Size**: %s\n", fmtSizeMB(r.Size))
		if r.Subject != "" {
			fmt.Fprintf(b, "- **Subject**: %s\n", r.Subject)
		}
		// Link the derived markdown artifact when the corpus has one.
		companion := strings.TrimSuffix(r.Path, path.Ext(r.Path)) + ".md"
		if known[companion] {
			fmt.Fprintf(b, "- **Markdown Version**: [%s](%s)\n", path.Base(companion), companion)
		}
		b.WriteString("\n")
	}
}

func writeMarkdownSection(b *strings.Builder, records []corpus.Record) {
	byDir := make(map[string][]corpus.Record)
	for _, r := range records {
		if r.Kind == corpus.KindMarkdown {
			dir := path.Dir(r.Path)
			byDir[dir] = append(byDir[dir], r)
		}
	}
	if len(byDir) == 0 {
		return
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	b.WriteString("## Markdown Documents\n\n")
	for _, dir := range dirs {
		fmt.Fprintf(b, "### %s\n\n", dir)
		docs := byDir[dir]
		sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
		for _, r := range docs {
			title := r.Title
			if title == "" {
				title = r.Name
			}
			fmt.Fprintf(b, "- [%s](%s)", title, r.Path)
			if r.Description != "" {
				fmt.Fprintf(b, " - %s", truncate(r.Description, 100))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func writeCategories(b *strings.Builder, records []corpus.Record) {
	b.WriteString("## By Category\n\n")
	for _, cat := range categories {
		var docs []corpus.Record
		for _, r := range records {
			name := strings.ToLower(r.Name)
			for _, kw := range cat.keywords {
				if strings.Contains(name, kw) {
					docs = append(docs, r)
					break
				}
			}
		}
		if len(docs) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", cat.name)
		for _, r := range docs {
			title := r.Title
			if title == "" {
				title = r.Name
			}
			fmt.Fprintf(b, "- [%s](%s)\n", title, r.Path)
		}
		b.WriteString("\n")
	}
}

func writeIndexFooter(b *strings.Builder) {
	b.WriteString(`## Usage Tips

### Searching
- Use your editor's workspace search to look across all documentation
- PDF files can be searched with pdfgrep:

` + "```bash" + `
find docs/ -name "*.pdf" -exec pdfgrep "search term" {} +
` + "```" + `

### Keeping the index fresh
` + "```bash" + `
# Regenerate this index
docweave index docs/

# Validate all links
docweave validate docs/
` + "```" + `

### PDF Tools
` + "```bash" + `
# Create a PDF summary
docweave summary path/to/document.pdf

# Convert a PDF to markdown
docweave convert path/to/document.pdf
` + "```" + `

---
*This index is automatically generated. To update it, run the documentation index generator.*
`)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

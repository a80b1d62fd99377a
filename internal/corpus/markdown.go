package corpus

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docweave/docweave/internal/extract"
)

// fillMarkdown populates a record from markdown content: frontmatter
// fields with heading/paragraph fallbacks, tags, word count, and the
// heading section list.
func (s *Scanner) fillMarkdown(rec *Record, data []byte) {
	content := string(data)
	fm, body := splitFrontmatter(content)

	rec.Title = fm["title"]
	rec.Description = fm["description"]
	rec.Author = fm["author"]
	rec.Date = fm["date"]
	if tags := fm["tags"]; tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				rec.Tags = append(rec.Tags, t)
			}
		}
	}

	if rec.Title == "" {
		rec.Title = firstH1(body)
	}
	if rec.Description == "" {
		rec.Description = s.firstDescription(body)
	}

	rec.WordCount = len(strings.Fields(content))
	rec.Sections = markdownSections(data)
}

// firstH1 returns the text of the first level-1 heading line.
func firstH1(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// firstDescription returns the first non-heading, non-fence line longer
// than the configured minimum, truncated to the configured maximum.
func (s *Scanner) firstDescription(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		if len(line) > s.descriptionMinLen() {
			return truncate(line, s.descriptionMaxLen())
		}
	}
	return ""
}

// truncate shortens s to max runes, appending "..." when it had to cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// markdownSections walks the goldmark AST and returns the document's
// headings as a flat section list with document-unique anchors.
func markdownSections(src []byte) []extract.Section {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	sl := extract.NewSlugger()
	var sections []extract.Section
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(string(heading.Text(src)))
		if title == "" {
			return ast.WalkContinue, nil
		}
		sections = append(sections, extract.Section{
			Title:  title,
			Level:  heading.Level,
			Anchor: sl.Anchor(title),
		})
		return ast.WalkContinue, nil
	})
	return sections
}

package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/docweave/docweave/internal/extract"
)

// fillDocx populates a record from a .docx file: title from the first
// top-level heading paragraph, heading sections, and word count.
func fillDocx(rec *Record, path string, size int64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	doc, err := docx.Parse(f, size)
	if err != nil {
		return fmt.Errorf("parse docx: %w", err)
	}

	sl := extract.NewSlugger()
	words := 0
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		words += len(strings.Fields(text))

		level := headingLevel(para)
		if level == 0 {
			continue
		}
		if rec.Title == "" && level == 1 {
			rec.Title = text
		}
		rec.Sections = append(rec.Sections, extract.Section{
			Title:  text,
			Level:  level,
			Anchor: sl.Anchor(text),
		})
	}
	rec.WordCount = words
	return nil
}

func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

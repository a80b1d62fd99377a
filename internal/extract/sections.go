package extract

import (
	"fmt"
	"strings"
)

// Section is one heading-delimited span of a document. Sections form a
// flat list: Level is recorded but deliberately unused for nesting.
type Section struct {
	Title  string  `json:"title"`
	Level  int     `json:"level"`
	Anchor string  `json:"anchor"`
	Body   []Block `json:"-"`
}

// Extract classifies lines and assembles the flat section list. A new
// section starts at every heading; non-heading blocks before the first
// heading belong to no section. Anchors are unique within the result.
func (h Heuristics) Extract(lines []string) []Section {
	sl := NewSlugger()
	var sections []Section
	cur := -1

	for _, line := range lines {
		b := h.Classify(line)
		if b.Kind == KindHeading {
			title := strings.TrimSpace(b.Text)
			sections = append(sections, Section{
				Title:  title,
				Level:  b.Level,
				Anchor: sl.Anchor(title),
			})
			cur = len(sections) - 1
			continue
		}
		if cur >= 0 {
			sections[cur].Body = append(sections[cur].Body, b)
		}
	}
	return sections
}

// BodyLines returns the section's non-blank body text, trimmed, in order.
func (s Section) BodyLines() []string {
	var out []string
	for _, b := range s.Body {
		if b.Kind == KindBlank {
			continue
		}
		t := strings.TrimSpace(b.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Slug normalizes a heading title into an anchor identifier: lower-cased,
// whitespace runs collapsed to a single hyphen, and the characters
// . , ( ) removed.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Join(strings.Fields(s), "-")
	return slugStrip.Replace(s)
}

var slugStrip = strings.NewReplacer(".", "", ",", "", "(", "", ")", "")

// Slugger generates document-unique anchors. Repeated titles get a
// deterministic numeric suffix in first-occurrence order: the first use
// keeps the bare slug, the second becomes "slug-2", and so on.
type Slugger struct {
	taken map[string]bool
}

func NewSlugger() *Slugger {
	return &Slugger{taken: make(map[string]bool)}
}

// Anchor returns a unique anchor for title within this document.
func (s *Slugger) Anchor(title string) string {
	base := Slug(title)
	anchor := base
	// Suffixes count occurrences, starting at -2; skip any suffix a
	// distinct title already produced naturally.
	for n := 2; s.taken[anchor]; n++ {
		anchor = fmt.Sprintf("%s-%d", base, n)
	}
	s.taken[anchor] = true
	return anchor
}

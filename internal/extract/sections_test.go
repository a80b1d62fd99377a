package extract

import (
	"testing"
)

func TestExtract_HeadingStartsSection(t *testing.T) {
	h := DefaultHeuristics()
	lines := []string{
		"REVENUE REPORT",
		"",
		"Total sales increased significantly this quarter across all regions.",
	}
	sections := h.Extract(lines)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}

	sec := sections[0]
	if sec.Title != "REVENUE REPORT" {
		t.Errorf("expected title %q, got %q", "REVENUE REPORT", sec.Title)
	}
	if sec.Anchor != "revenue-report" {
		t.Errorf("expected anchor %q, got %q", "revenue-report", sec.Anchor)
	}
	if sec.Level != 2 {
		t.Errorf("expected level 2, got %d", sec.Level)
	}

	body := sec.BodyLines()
	if len(body) != 1 {
		t.Fatalf("expected 1 body line, got %d", len(body))
	}
	if body[0] != "Total sales increased significantly this quarter across all regions." {
		t.Errorf("unexpected body line: %q", body[0])
	}
}

func TestExtract_FlatSectionList(t *testing.T) {
	h := DefaultHeuristics()
	lines := []string{
		"preamble before any heading",
		"FIRST SECTION",
		"alpha",
		"SECOND SECTION",
		"beta",
		"gamma",
	}
	sections := h.Extract(lines)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if got := len(sections[0].BodyLines()); got != 1 {
		t.Errorf("first section: expected 1 body line, got %d", got)
	}
	if got := len(sections[1].BodyLines()); got != 2 {
		t.Errorf("second section: expected 2 body lines, got %d", got)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Revenue Report", "revenue-report"},
		{"Section 1.2 (Overview)", "section-12-overview"},
		{"  spaced   out  title ", "spaced-out-title"},
		{"Costs, Margins, and Risk", "costs-margins-and-risk"},
		{"ALL CAPS HEADING", "all-caps-heading"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugger_DeduplicatesAnchors(t *testing.T) {
	sl := NewSlugger()
	first := sl.Anchor("SUMMARY")
	second := sl.Anchor("SUMMARY")
	third := sl.Anchor("Summary")

	if first != "summary" {
		t.Errorf("first anchor = %q, want %q", first, "summary")
	}
	if second != "summary-2" {
		t.Errorf("second anchor = %q, want %q", second, "summary-2")
	}
	if third != "summary-3" {
		t.Errorf("third anchor = %q, want %q", third, "summary-3")
	}
}

func TestSlugger_SkipsNaturallyTakenSuffix(t *testing.T) {
	sl := NewSlugger()
	sl.Anchor("Results 2") // slugs to results-2
	a := sl.Anchor("Results")
	b := sl.Anchor("Results")
	if a != "results" {
		t.Errorf("expected %q, got %q", "results", a)
	}
	// results-2 is taken by a distinct title; the duplicate must not
	// collide with it.
	if b == "results-2" {
		t.Errorf("duplicate anchor collided with existing %q", b)
	}
	if b != "results-3" {
		t.Errorf("expected %q, got %q", "results-3", b)
	}
}

func TestExtract_AnchorsUniquePerDocument(t *testing.T) {
	h := DefaultHeuristics()
	lines := []string{
		"QUARTERLY RESULTS",
		"body one",
		"QUARTERLY RESULTS",
		"body two",
		"QUARTERLY RESULTS",
	}
	sections := h.Extract(lines)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	seen := make(map[string]bool)
	for _, sec := range sections {
		if seen[sec.Anchor] {
			t.Errorf("duplicate anchor %q", sec.Anchor)
		}
		seen[sec.Anchor] = true
	}
}

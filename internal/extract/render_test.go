package extract

import (
	"reflect"
	"testing"
)

func TestRender_KindSyntax(t *testing.T) {
	h := DefaultHeuristics()
	lines := []string{
		"REVENUE REPORT",
		"",
		"Total sales increased.",
		"1. First item",
		"- Bullet item",
		"    indented continuation",
	}
	got := Render(h.ClassifyAll(lines))
	want := []string{
		"## Revenue Report",
		"",
		"Total sales increased.",
		"1. First item",
		"- Bullet item",
		"    indented continuation",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CollapsesBlankRuns(t *testing.T) {
	h := DefaultHeuristics()
	lines := []string{"", "", "alpha", "", "", "", "beta", ""}
	got := Render(h.ClassifyAll(lines))
	want := []string{"alpha", "", "beta", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestCollapseBlanks_Idempotent(t *testing.T) {
	in := []string{"a", "", "", "b", "", "c"}
	once := CollapseBlanks(in)
	twice := CollapseBlanks(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("CollapseBlanks not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"REVENUE REPORT", "Revenue Report"},
		{"already Mixed", "Already Mixed"},
		{"SECTION 2: RESULTS", "Section 2: Results"},
		{"", ""},
		{"A-B TEST", "A-B Test"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

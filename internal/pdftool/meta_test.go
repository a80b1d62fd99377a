package pdftool

import "testing"

func TestParseInfo(t *testing.T) {
	out := `Title:          Quarterly Report
Author:         Finance Team
Subject:        FY24 Results
Pages:          42
CreationDate:   Mon Mar  4 09:00:00 2024 UTC
PDF version:    1.7
Encrypted:      no
`
	meta := parseInfo(out)

	want := map[string]string{
		"Title":       "Quarterly Report",
		"Author":      "Finance Team",
		"Subject":     "FY24 Results",
		"Pages":       "42",
		"PDF version": "1.7",
		"Encrypted":   "no",
	}
	for k, v := range want {
		if meta[k] != v {
			t.Errorf("meta[%q] = %q, want %q", k, meta[k], v)
		}
	}

	// CreationDate values contain colons of their own; only the first
	// colon delimits.
	if got := meta["CreationDate"]; got != "Mon Mar  4 09:00:00 2024 UTC" {
		t.Errorf("CreationDate = %q", got)
	}
}

func TestParseInfo_SkipsMalformedLines(t *testing.T) {
	meta := parseInfo("no delimiter here\n: empty key\nPages: 3\n\n")
	if len(meta) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(meta), meta)
	}
	if meta["Pages"] != "3" {
		t.Errorf("Pages = %q, want %q", meta["Pages"], "3")
	}
}

func TestExtractor_TimeoutDefault(t *testing.T) {
	e := &Extractor{}
	if e.timeout().Seconds() != 10 {
		t.Errorf("default timeout = %v, want 10s", e.timeout())
	}
}

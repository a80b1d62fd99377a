package corpus

import "testing"

func TestSplitFrontmatter_Basic(t *testing.T) {
	content := "---\ntitle: Getting Started\ndescription: How to set things up\n---\n# Heading\n\nBody text.\n"
	fm, body := splitFrontmatter(content)

	if fm["title"] != "Getting Started" {
		t.Errorf("title = %q", fm["title"])
	}
	if fm["description"] != "How to set things up" {
		t.Errorf("description = %q", fm["description"])
	}
	if body != "# Heading\n\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatter_ListTagsFlattened(t *testing.T) {
	content := "---\ntags:\n  - setup\n  - guide\n---\nBody\n"
	fm, _ := splitFrontmatter(content)
	if fm["tags"] != "setup, guide" {
		t.Errorf("tags = %q, want %q", fm["tags"], "setup, guide")
	}
}

func TestSplitFrontmatter_NoBlock(t *testing.T) {
	content := "# Just a document\n\nNo frontmatter here.\n"
	fm, body := splitFrontmatter(content)
	if fm != nil {
		t.Errorf("expected nil frontmatter, got %v", fm)
	}
	if body != content {
		t.Errorf("body should be entire content")
	}
}

func TestSplitFrontmatter_UnclosedBlock(t *testing.T) {
	content := "---\ntitle: Broken\nNo closing delimiter.\n"
	fm, body := splitFrontmatter(content)
	if fm != nil {
		t.Errorf("expected nil frontmatter for unclosed block, got %v", fm)
	}
	if body != content {
		t.Errorf("body should be entire content")
	}
}

func TestSplitFrontmatter_InvalidYAMLFallsBack(t *testing.T) {
	// Unbalanced bracket is not valid YAML; the degraded parse splits
	// on the first colon per line.
	content := "---\ntitle: My Doc\nbroken: [unclosed\n---\nBody\n"
	fm, body := splitFrontmatter(content)
	if fm["title"] != "My Doc" {
		t.Errorf("title = %q, want %q", fm["title"], "My Doc")
	}
	if body != "Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestColonSplit_StripsQuotes(t *testing.T) {
	fm := colonSplit(`title: "Quoted Title"` + "\n" + `author: 'Someone'`)
	if fm["title"] != "Quoted Title" {
		t.Errorf("title = %q", fm["title"])
	}
	if fm["author"] != "Someone" {
		t.Errorf("author = %q", fm["author"])
	}
}

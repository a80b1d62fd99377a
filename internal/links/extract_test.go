package links

import "testing"

func TestExtract_ThreeSyntaxes(t *testing.T) {
	content := "See [the guide](./guide.md) and <a href=\"../api.md\">API</a>.\n" +
		"[ref]: https://example.com/docs\n"

	got := Extract(content)
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(got), got)
	}

	want := []Link{
		{Text: "the guide", Target: "./guide.md", Syntax: SyntaxInline},
		{Text: "ref", Target: "https://example.com/docs", Syntax: SyntaxReference},
		{Target: "../api.md", Syntax: SyntaxHTML},
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("link %d = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestExtract_CountMatchesOccurrences(t *testing.T) {
	content := "[a](one.md) text [b](two.md)\n[c](#frag) [d](mailto:x@y.z)\n"
	got := Extract(content)
	if len(got) != 4 {
		t.Fatalf("expected 4 links, got %d", len(got))
	}
	targets := []string{"one.md", "two.md", "#frag", "mailto:x@y.z"}
	for i, w := range targets {
		if got[i].Target != w {
			t.Errorf("link %d target = %q, want %q", i, got[i].Target, w)
		}
	}
}

func TestExtract_EmptyLinkText(t *testing.T) {
	got := Extract("[](image.png)")
	if len(got) != 1 {
		t.Fatalf("expected 1 link, got %d", len(got))
	}
	if got[0].Text != "" || got[0].Target != "image.png" {
		t.Errorf("got %+v", got[0])
	}
}

func TestExtract_ReferenceRequiresLineStart(t *testing.T) {
	got := Extract("some text [ref]: not-a-definition\n")
	if len(got) != 0 {
		t.Fatalf("mid-line bracket should not match a reference definition: %+v", got)
	}
}

func TestExtract_ReferenceTrimsTarget(t *testing.T) {
	got := Extract("[spec]:   ./spec/overview.md  \n")
	if len(got) != 1 {
		t.Fatalf("expected 1 link, got %d", len(got))
	}
	if got[0].Target != "./spec/overview.md" {
		t.Errorf("target = %q", got[0].Target)
	}
}

func TestExtract_HTMLIgnoresEmptyHref(t *testing.T) {
	got := Extract(`<a href="">empty</a> <a name="x">no href</a> <a href="ok.md">ok</a>`)
	if len(got) != 1 {
		t.Fatalf("expected 1 link, got %d: %+v", len(got), got)
	}
	if got[0].Target != "ok.md" {
		t.Errorf("target = %q", got[0].Target)
	}
}

func TestExtract_NoLinks(t *testing.T) {
	if got := Extract("plain paragraph with no references\n"); len(got) != 0 {
		t.Fatalf("expected no links, got %+v", got)
	}
}

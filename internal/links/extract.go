// Package links extracts, classifies, and validates every link in a
// document against the corpus file tree.
package links

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Syntax identifies which of the three recognized link syntaxes
// produced a link.
type Syntax string

const (
	SyntaxInline    Syntax = "inline"    // [text](target)
	SyntaxReference Syntax = "reference" // [text]: target, at line start
	SyntaxHTML      Syntax = "html"      // <a href="target">
)

// Link is one extracted reference, prior to classification.
type Link struct {
	Source string `json:"source"` // referencing document path
	Target string `json:"target"` // raw target string
	Text   string `json:"text,omitempty"`
	Syntax Syntax `json:"syntax"`
}

var (
	inlineRe    = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	referenceRe = regexp.MustCompile(`(?m)^\[([^\]]+)\]:\s*(.+)$`)
)

// Extract returns every link in content. The three syntaxes are scanned
// independently: inline links first, then reference definitions, then
// HTML hrefs, each group in first-occurrence order.
func Extract(content string) []Link {
	var out []Link
	for _, m := range inlineRe.FindAllStringSubmatch(content, -1) {
		out = append(out, Link{Text: m[1], Target: m[2], Syntax: SyntaxInline})
	}
	for _, m := range referenceRe.FindAllStringSubmatch(content, -1) {
		out = append(out, Link{Text: m[1], Target: strings.TrimSpace(m[2]), Syntax: SyntaxReference})
	}
	out = append(out, htmlHrefs(content)...)
	return out
}

// htmlHrefs tokenizes content as HTML and collects anchor hrefs. The
// tokenizer treats surrounding markdown as plain text, so mixed
// documents are fine.
func htmlHrefs(content string) []Link {
	z := html.NewTokenizer(strings.NewReader(content))
	var out []Link
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return out
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tok := z.Token()
		if tok.Data != "a" {
			continue
		}
		for _, attr := range tok.Attr {
			if attr.Key == "href" && attr.Val != "" {
				out = append(out, Link{Target: attr.Val, Syntax: SyntaxHTML})
			}
		}
	}
}

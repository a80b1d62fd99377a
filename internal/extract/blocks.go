// Package extract recovers document structure from linear extracted text.
//
// Input is a stream of physical lines with no markup. Each line is
// classified into exactly one block kind by a set of tuned heuristics,
// and heading blocks delimit flat sections with stable anchor slugs.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BlockKind identifies how a physical line was classified.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindListItem
	KindIndented
	KindBlank
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list"
	case KindIndented:
		return "indented"
	case KindBlank:
		return "blank"
	default:
		return "paragraph"
	}
}

// Block is one classified line. Text is the line with trailing
// whitespace removed; Level is set for headings only.
type Block struct {
	Kind    BlockKind
	Level   int
	Text    string
	Ordered bool // set for numbered list items
}

// Heuristics holds the tuned constants for heading and indent detection.
// The thresholds are arbitrary but deliberate; they are configuration,
// not implementation detail.
type Heuristics struct {
	HeadingMinLen   int // heading length must exceed this (runes)
	HeadingMaxWords int // heading word count must stay below this
	IndentMinSpaces int // leading spaces for indented/code continuation
}

// DefaultHeuristics returns the thresholds the extractor was tuned with.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		HeadingMinLen:   5,
		HeadingMaxWords: 10,
		IndentMinSpaces: 3,
	}
}

// orderedPrefixes covers "1." through "10.". The range is part of the
// tuned heuristic: deeper ordinals rarely start top-level list items in
// extracted PDF text.
var orderedPrefixes = []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9.", "10."}

var bulletPrefixes = []string{"•", "-", "*"}

// Classify assigns exactly one block kind to a physical line. It is a
// pure function of the line content; first matching rule wins.
func (h Heuristics) Classify(line string) Block {
	line = strings.TrimRight(line, " \t\r")

	switch {
	case h.isHeading(line):
		// A single synthetic level: case alone carries no depth signal.
		return Block{Kind: KindHeading, Level: 2, Text: line}
	case hasAnyPrefix(line, orderedPrefixes):
		return Block{Kind: KindListItem, Text: line, Ordered: true}
	case hasAnyPrefix(line, bulletPrefixes):
		return Block{Kind: KindListItem, Text: line}
	case h.isIndented(line):
		return Block{Kind: KindIndented, Text: line}
	case line == "":
		return Block{Kind: KindBlank}
	default:
		return Block{Kind: KindParagraph, Text: line}
	}
}

// ClassifyAll classifies every line in document order.
func (h Heuristics) ClassifyAll(lines []string) []Block {
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = h.Classify(line)
	}
	return blocks
}

func (h Heuristics) isHeading(line string) bool {
	if utf8.RuneCountInString(line) <= h.HeadingMinLen {
		return false
	}
	if len(strings.Fields(line)) >= h.HeadingMaxWords {
		return false
	}
	return isUpperLine(line)
}

func (h Heuristics) isIndented(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return strings.HasPrefix(line, strings.Repeat(" ", h.IndentMinSpaces))
}

// isUpperLine reports whether line contains at least one letter and no
// lower-case letters.
func isUpperLine(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

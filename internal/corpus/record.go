// Package corpus walks a documentation tree and assembles one metadata
// record per file, for the index renderer and the link validator.
package corpus

import (
	"path"
	"strings"
	"time"

	"github.com/docweave/docweave/internal/extract"
)

// Kind classifies a corpus file by format.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindPDF      Kind = "pdf"
	KindDocx     Kind = "docx"
	KindText     Kind = "text"
	KindOther    Kind = "other"
)

// KindOf maps a file path to its corpus kind by extension.
func KindOf(p string) Kind {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".markdown":
		return KindMarkdown
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDocx
	case ".txt", ".rst", ".text":
		return KindText
	default:
		return KindOther
	}
}

// Record is the metadata collected for one corpus file. It is built
// once per scan and read-shared afterwards.
type Record struct {
	Path     string    `json:"path"` // relative to the scan root, slash-separated
	Name     string    `json:"name"`
	Kind     Kind      `json:"kind"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Date        string `json:"date,omitempty"`

	// PDF metadata, set only when the metadata collaborator succeeds.
	Pages        string `json:"pages,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	PDFVersion   string `json:"pdf_version,omitempty"`

	Tags      []string          `json:"tags,omitempty"`
	Sections  []extract.Section `json:"sections,omitempty"`
	WordCount int               `json:"word_count,omitempty"`

	// Err records a per-file processing failure; the scan continues.
	Err string `json:"error,omitempty"`
}

// Ext returns the record's lower-cased file extension including the dot.
func (r Record) Ext() string {
	return strings.ToLower(path.Ext(r.Path))
}

// Stem returns the file name without its extension.
func (r Record) Stem() string {
	return strings.TrimSuffix(r.Name, path.Ext(r.Name))
}

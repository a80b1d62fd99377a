package links

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docweave/docweave/internal/pdftool"
)

// Status is a validation verdict for one link.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusSkipped Status = "skipped"
)

// Result is the verdict for one extracted link. CrossFormat is set only
// for local targets that are existing PDFs: the target existing and the
// PDF being well-formed are independent facts.
type Result struct {
	Link     Link   `json:"link"`
	Target   Target `json:"target"`
	Status   Status `json:"status"`
	Reason   string `json:"reason"`
	Resolved string `json:"resolved,omitempty"`

	CrossFormat Status `json:"cross_format,omitempty"`
	CrossReason string `json:"cross_reason,omitempty"`
}

// Validator resolves and checks links against the file system.
type Validator struct {
	// Root anchors "/"-prefixed targets. Relative targets resolve
	// against the referencing document's directory.
	Root string

	// PDF enables cross-format checks on PDF targets. Nil disables
	// them.
	PDF *pdftool.Extractor

	// Workers bounds corpus-wide parallelism. Zero or negative means 4.
	Workers int
}

// ValidateFile extracts and validates every link in one document. The
// result sequence has exactly one entry per extracted link, in
// extraction order.
func (v *Validator) ValidateFile(ctx context.Context, docPath, content string) []Result {
	ls := Extract(content)
	out := make([]Result, 0, len(ls))
	for _, l := range ls {
		l.Source = docPath
		out = append(out, v.validate(ctx, l))
	}
	return out
}

func (v *Validator) validate(ctx context.Context, l Link) Result {
	t := Classify(l.Target)
	res := Result{Link: l, Target: t}

	switch t.Kind {
	case TargetSkipped:
		res.Status = StatusSkipped
		res.Reason = "special protocol"
		return res
	case TargetAnchor:
		// Fragment existence in the target document is deliberately
		// not verified.
		res.Status = StatusValid
		res.Reason = "anchor link"
		return res
	case TargetExternal:
		res.Status = StatusValid
		res.Reason = "external URL (not validated)"
		return res
	}

	resolved, err := v.resolve(l.Source, t.Path)
	if err != nil {
		res.Status = StatusInvalid
		res.Reason = fmt.Sprintf("error resolving path: %v", err)
		return res
	}
	res.Resolved = resolved

	if _, err := os.Stat(resolved); err != nil {
		res.Status = StatusInvalid
		if errors.Is(err, fs.ErrNotExist) {
			res.Reason = "file not found: " + resolved
		} else {
			res.Reason = fmt.Sprintf("error resolving path: %v", err)
		}
		return res
	}
	res.Status = StatusValid
	res.Reason = "file exists: " + resolved

	if t.IsPDF() && v.PDF != nil {
		ok, msg := v.PDF.Verify(ctx, resolved)
		if ok {
			res.CrossFormat = StatusValid
		} else {
			res.CrossFormat = StatusInvalid
		}
		res.CrossReason = msg
	}
	return res
}

// resolve turns a local target into an absolute path: relative targets
// against the source document's directory, "/"-prefixed targets against
// the validation root.
func (v *Validator) resolve(source, target string) (string, error) {
	if target == "" {
		return "", errors.New("empty path")
	}
	var p string
	if strings.HasPrefix(target, "/") {
		p = filepath.Join(v.Root, filepath.FromSlash(target))
	} else {
		p = filepath.Join(filepath.Dir(source), filepath.FromSlash(target))
	}
	return filepath.Abs(p)
}

// FileResult pairs one document with its validation results. Err
// records a per-file read failure; corpus validation continues.
type FileResult struct {
	Path    string
	Results []Result
	Err     error
}

// ValidateCorpus finds every markdown file under root and validates each
// one with a bounded worker pool. File order follows enumeration order;
// within a file, result order is extraction order.
func (v *Validator) ValidateCorpus(ctx context.Context, root string) ([]FileResult, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("validation root: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	workers := v.Workers
	if workers <= 0 {
		workers = 4
	}
	out := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			out[i] = FileResult{Path: p}
			data, err := os.ReadFile(p)
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Results = v.ValidateFile(gctx, p, string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary aggregates corpus-wide counts. Skipped links count toward
// Total but neither Valid nor Invalid.
type Summary struct {
	Files       int `json:"files"`
	Total       int `json:"total"`
	Valid       int `json:"valid"`
	Invalid     int `json:"invalid"`
	Skipped     int `json:"skipped"`
	PDFLinks    int `json:"pdf_links"`
	InvalidPDFs int `json:"invalid_pdfs"`
}

// Add folds one file's results into the summary.
func (s *Summary) Add(results []Result) {
	s.Files++
	for _, r := range results {
		s.Total++
		switch r.Status {
		case StatusValid:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		case StatusSkipped:
			s.Skipped++
		}
		if r.Target.IsPDF() {
			s.PDFLinks++
			if r.CrossFormat == StatusInvalid {
				s.InvalidPDFs++
			}
		}
	}
}

// Failed reports whether the overall run should exit nonzero.
func (s Summary) Failed() bool {
	return s.Invalid > 0 || s.InvalidPDFs > 0
}

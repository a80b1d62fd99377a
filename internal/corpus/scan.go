package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docweave/docweave/internal/pdftool"
)

// Scanner walks a corpus root and builds one Record per included file.
// Records have no shared mutable state, so files are processed by a
// bounded worker pool; record order matches enumeration order.
type Scanner struct {
	// Include patterns are glob-matched against the base name, or
	// against the full relative path when the pattern contains a "/".
	Include []string

	// Exclude patterns are substring-matched against directory names;
	// matching subtrees are pruned, never descended into.
	Exclude []string

	// Workers bounds scan parallelism. Zero or negative means 4.
	Workers int

	// PDF provides the external metadata collaborator. Nil leaves PDF
	// records with format metadata unset.
	PDF *pdftool.Extractor

	DescriptionMin int
	DescriptionMax int

	Log *slog.Logger
}

func (s *Scanner) descriptionMinLen() int {
	if s.DescriptionMin > 0 {
		return s.DescriptionMin
	}
	return 20
}

func (s *Scanner) descriptionMaxLen() int {
	if s.DescriptionMax > 0 {
		return s.DescriptionMax
	}
	return 200
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return 4
}

func (s *Scanner) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Scan enumerates root and returns one record per included file. Only a
// missing or unwalkable root is an error; per-file failures are recorded
// on the file's record and the scan continues.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Record, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if s.included(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	records := make([]Record, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, rel := range paths {
		i, rel := i, rel
		g.Go(func() error {
			records[i] = s.process(gctx, root, rel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Scanner) excluded(dirName string) bool {
	for _, pat := range s.Exclude {
		if pat != "" && strings.Contains(dirName, pat) {
			return true
		}
	}
	return false
}

func (s *Scanner) included(rel string) bool {
	for _, pat := range s.Include {
		var ok bool
		if strings.ContainsRune(pat, '/') {
			ok, _ = path.Match(pat, rel)
		} else {
			ok, _ = path.Match(pat, path.Base(rel))
		}
		if ok {
			return true
		}
	}
	return false
}

// process builds the record for one file. Failures land on the record.
func (s *Scanner) process(ctx context.Context, root, rel string) Record {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	rec := Record{
		Path: rel,
		Name: path.Base(rel),
		Kind: KindOf(rel),
	}

	info, err := os.Stat(abs)
	if err != nil {
		rec.Err = err.Error()
		return rec
	}
	rec.Size = info.Size()
	rec.Modified = info.ModTime()

	switch rec.Kind {
	case KindMarkdown:
		data, err := os.ReadFile(abs)
		if err != nil {
			rec.Err = err.Error()
			return rec
		}
		s.fillMarkdown(&rec, data)

	case KindPDF:
		s.fillPDF(ctx, &rec, abs)

	case KindDocx:
		if err := fillDocx(&rec, abs, rec.Size); err != nil {
			rec.Err = err.Error()
		}

	case KindText:
		data, err := os.ReadFile(abs)
		if err != nil {
			rec.Err = err.Error()
			return rec
		}
		rec.WordCount = len(strings.Fields(string(data)))
	}
	return rec
}

// fillPDF asks the metadata collaborator for format metadata. Absence or
// failure of the collaborator leaves the fields unset and is not an
// error: the record still carries path, size, and timestamps.
func (s *Scanner) fillPDF(ctx context.Context, rec *Record, abs string) {
	if s.PDF == nil {
		return
	}
	meta, err := s.PDF.Metadata(ctx, abs)
	if err != nil {
		if !errors.Is(err, pdftool.ErrToolMissing) {
			s.logger().Debug("pdf metadata unavailable", "path", rec.Path, "error", err)
		}
		return
	}
	rec.Title = meta["Title"]
	rec.Author = meta["Author"]
	rec.Subject = meta["Subject"]
	rec.Pages = meta["Pages"]
	rec.CreationDate = meta["CreationDate"]
	rec.PDFVersion = meta["PDF version"]
}

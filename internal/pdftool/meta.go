package pdftool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Metadata returns the flat key/value map pdfinfo reports for a PDF:
// Title, Author, Subject, Pages, CreationDate, PDF version and friends.
// A missing key simply stays absent from the map.
func (e *Extractor) Metadata(ctx context.Context, path string) (map[string]string, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pdfinfo", path).Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("pdfinfo %s: %w", path, ctxErr)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrToolMissing
		}
		return nil, fmt.Errorf("pdfinfo %s: %w", path, err)
	}
	return parseInfo(string(out)), nil
}

// parseInfo splits pdfinfo's colon-delimited lines into a flat map.
func parseInfo(out string) map[string]string {
	meta := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = strings.TrimSpace(value)
	}
	return meta
}

// Verify probes whether the document is parseable, for cross-format
// checks on PDF link targets. A missing pdfinfo counts as readable: the
// absence of the collaborator must not fail otherwise-valid corpora.
func (e *Extractor) Verify(ctx context.Context, path string) (bool, string) {
	_, err := e.Metadata(ctx, path)
	switch {
	case err == nil:
		return true, "PDF is readable"
	case errors.Is(err, ErrToolMissing):
		return true, "pdfinfo not available (install poppler-utils for PDF validation)"
	case errors.Is(err, context.DeadlineExceeded):
		return false, "PDF validation timed out"
	default:
		return false, fmt.Sprintf("PDF validation failed: %v", err)
	}
}

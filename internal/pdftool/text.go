package pdftool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractText returns the linearized text of a PDF, preserving layout
// via pdftotext's column-aware mode. When pdftotext is unavailable or
// fails and FallbackLib is set, extraction falls back to the in-process
// PDF library. Empty output is ErrNoContent.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pdftotext", "-layout", path, "-").Output()
	if err == nil {
		if strings.TrimSpace(string(out)) == "" {
			return "", ErrNoContent
		}
		return string(out), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("pdftotext %s: %w", path, ctxErr)
	}
	if e.FallbackLib {
		return extractWithLib(path)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return "", fmt.Errorf("pdftotext %s: %w", path, ErrToolMissing)
	}
	return "", fmt.Errorf("pdftotext %s: %w", path, err)
}

// extractWithLib reads the PDF in-process. Pages are separated with a
// form feed so downstream line handling matches pdftotext output.
func extractWithLib(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}
	if strings.TrimSpace(buf.String()) == "" {
		return "", ErrNoContent
	}
	return buf.String(), nil
}

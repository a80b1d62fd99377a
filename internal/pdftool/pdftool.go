// Package pdftool wraps the external poppler utilities (pdftotext,
// pdfinfo) behind bounded-timeout calls, with an in-process fallback for
// text extraction when the tools are not installed.
package pdftool

import (
	"context"
	"errors"
	"time"
)

// ErrToolMissing reports that the external tool is not installed.
// Callers degrade the affected fields rather than aborting.
var ErrToolMissing = errors.New("pdftool: external tool not installed")

// ErrNoContent reports that extraction produced no text.
var ErrNoContent = errors.New("pdftool: no text content extracted")

// Extractor invokes the external PDF collaborators.
type Extractor struct {
	// Timeout bounds each tool invocation. Zero means 10 seconds.
	Timeout time.Duration

	// FallbackLib enables in-process extraction when pdftotext fails
	// or is missing.
	FallbackLib bool
}

func (e *Extractor) timeout() time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	return 10 * time.Second
}

func (e *Extractor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.timeout())
}

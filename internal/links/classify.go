package links

import (
	"regexp"
	"strings"
)

// TargetKind partitions raw targets: every target maps to exactly one
// kind.
type TargetKind string

const (
	TargetAnchor   TargetKind = "anchor"
	TargetExternal TargetKind = "external"
	TargetLocal    TargetKind = "local"
	TargetSkipped  TargetKind = "skipped"
)

// Target is a classified link destination.
type Target struct {
	Kind     TargetKind `json:"kind"`
	Scheme   string     `json:"scheme,omitempty"`   // external and skipped targets
	Path     string     `json:"path,omitempty"`     // local targets, fragment removed
	Fragment string     `json:"fragment,omitempty"` // anchor and local targets
}

// skippedSchemes are excluded from validation entirely.
var skippedSchemes = []string{"mailto:", "tel:", "javascript:"}

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Classify maps a raw target to exactly one target kind.
func Classify(raw string) Target {
	for _, prefix := range skippedSchemes {
		if strings.HasPrefix(raw, prefix) {
			return Target{Kind: TargetSkipped, Scheme: strings.TrimSuffix(prefix, ":")}
		}
	}
	if strings.HasPrefix(raw, "#") {
		return Target{Kind: TargetAnchor, Fragment: raw[1:]}
	}
	if strings.HasPrefix(raw, "http") || schemeRe.MatchString(raw) {
		return Target{Kind: TargetExternal, Scheme: externalScheme(raw)}
	}
	p, frag, _ := strings.Cut(raw, "#")
	return Target{Kind: TargetLocal, Path: p, Fragment: frag}
}

func externalScheme(raw string) string {
	if scheme, _, ok := strings.Cut(raw, "://"); ok {
		return strings.ToLower(scheme)
	}
	// Bare "http..." prefix without "://".
	return "http"
}

// IsPDF reports whether a local target points at a PDF.
func (t Target) IsPDF() bool {
	return t.Kind == TargetLocal && strings.HasSuffix(strings.ToLower(t.Path), ".pdf")
}

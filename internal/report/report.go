// Package report renders the generated artifacts: the corpus index, the
// markdown reconstruction of a PDF, and the per-PDF summary. Output
// structure is deterministic; callers inject the clock.
package report

import (
	"fmt"
)

const timeLayout = "2006-01-02 15:04:05"

func metaOr(meta map[string]string, key, fallback string) string {
	if v := meta[key]; v != "" {
		return v
	}
	return fallback
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func fmtSize(bytes int64) string {
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/1024/1024)
}

func fmtSizeMB(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/1024/1024)
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Worker pool
	WorkerCount int

	// External PDF tools
	CollaboratorTimeout time.Duration
	PDFFallbackLib      bool

	// Heading detection heuristics
	HeadingMinLen   int
	HeadingMaxWords int
	IndentMinSpaces int

	// Metadata extraction limits
	DescriptionMinLen int
	DescriptionMaxLen int

	// Summary generation limits
	TOCSectionLimit     int
	PreviewSectionLimit int
	PreviewMaxLen       int

	// Corpus scan filters
	IncludePatterns []string
	ExcludePatterns []string
}

func Load() Config {
	cfg := Config{
		WorkerCount: envInt("DOCWEAVE_WORKERS", 4),

		CollaboratorTimeout: envDuration("DOCWEAVE_PDF_TIMEOUT", 10*time.Second),
		PDFFallbackLib:      envBool("DOCWEAVE_PDF_FALLBACK_LIB", true),

		HeadingMinLen:   envInt("DOCWEAVE_HEADING_MIN_LEN", 5),
		HeadingMaxWords: envInt("DOCWEAVE_HEADING_MAX_WORDS", 10),
		IndentMinSpaces: envInt("DOCWEAVE_INDENT_MIN_SPACES", 3),

		DescriptionMinLen: envInt("DOCWEAVE_DESCRIPTION_MIN_LEN", 20),
		DescriptionMaxLen: envInt("DOCWEAVE_DESCRIPTION_MAX_LEN", 200),

		TOCSectionLimit:     envInt("DOCWEAVE_TOC_SECTIONS", 20),
		PreviewSectionLimit: envInt("DOCWEAVE_PREVIEW_SECTIONS", 10),
		PreviewMaxLen:       envInt("DOCWEAVE_PREVIEW_LEN", 200),

		IncludePatterns: envList("DOCWEAVE_INCLUDE", []string{"*.md", "*.pdf", "*.rst", "*.txt", "*.docx"}),
		ExcludePatterns: envList("DOCWEAVE_EXCLUDE", []string{"node_modules", ".git", "__pycache__", ".vscode", "venv", "env"}),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.CollaboratorTimeout <= 0 {
		cfg.CollaboratorTimeout = 10 * time.Second
	}
	if cfg.HeadingMinLen <= 0 {
		cfg.HeadingMinLen = 5
	}
	if cfg.HeadingMaxWords <= 0 {
		cfg.HeadingMaxWords = 10
	}
	if cfg.IndentMinSpaces <= 0 {
		cfg.IndentMinSpaces = 3
	}
	if cfg.DescriptionMinLen <= 0 {
		cfg.DescriptionMinLen = 20
	}
	if cfg.DescriptionMaxLen <= 0 {
		cfg.DescriptionMaxLen = 200
	}
	if cfg.TOCSectionLimit <= 0 {
		cfg.TOCSectionLimit = 20
	}
	if cfg.PreviewSectionLimit <= 0 {
		cfg.PreviewSectionLimit = 10
	}
	if cfg.PreviewMaxLen <= 0 {
		cfg.PreviewMaxLen = 200
	}

	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Package api exposes a scanned corpus over a small read-only HTTP
// surface.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docweave/docweave/internal/corpus"
)

// ScanFunc produces a fresh set of corpus records.
type ScanFunc func(ctx context.Context) ([]corpus.Record, error)

// Server serves corpus records and the rendered index.
type Server struct {
	router chi.Router
	scan   ScanFunc
	log    *slog.Logger

	mu      sync.RWMutex
	records []corpus.Record
	scanned time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(scan ScanFunc, log *slog.Logger) *Server {
	s := &Server{scan: scan, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/api/records", s.handleRecords)
	r.Get("/api/index", s.handleIndex)
	r.Post("/api/rescan", s.handleRescan)

	s.router = r
}

// Refresh rescans the corpus and swaps in the new record set.
func (s *Server) Refresh(ctx context.Context) error {
	records, err := s.scan(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records = records
	s.scanned = time.Now()
	s.mu.Unlock()
	s.log.Info("corpus scanned", "records", len(records))
	return nil
}

func (s *Server) snapshot() ([]corpus.Record, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.scanned
}

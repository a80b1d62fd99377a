package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/docweave/docweave/internal/report"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records, scanned := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"records":    records,
		"scanned_at": scanned,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	records, _ := s.snapshot()
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(report.Index(records, time.Now())))
}

func (s *Server) handleRescan(w http.ResponseWriter, r *http.Request) {
	if err := s.Refresh(r.Context()); err != nil {
		s.log.Error("rescan failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	records, scanned := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"records":    len(records),
		"scanned_at": scanned,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcampos/notedeck/internal/aigen"
)

// Superseded requests resolve with no content: a newer request replaced
// this one, and the stale result must not reach the client's state.

func (s *Server) handleSummarizeNote(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Level string `json:"level"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Assist.Summarize(r.Context(), chi.URLParam(r, "id"), aigen.SummaryLevel(p.Level))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if result.Superseded {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":    result.Value,
		"from_cache": result.FromCache,
	})
}

func (s *Server) handleEnhanceNote(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Kind string `json:"kind"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Assist.Enhance(r.Context(), chi.URLParam(r, "id"), aigen.EnhanceKind(p.Kind))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if result.Superseded {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"content":    result.Value,
		"from_cache": result.FromCache,
	})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	var p struct {
		DeckID string `json:"deck_id"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	snap, err := s.Quiz.Start(r.Context(), p.DeckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleQuizNavigate(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Direction string `json:"direction"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	dir, err := parseDirection(p.Direction)
	if err != nil {
		handleError(w, r, err)
		return
	}
	snap, err := s.Quiz.Navigate(chi.URLParam(r, "id"), dir)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleQuizOptions(w http.ResponseWriter, r *http.Request) {
	options, err := s.Quiz.CurrentOptions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": options})
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var p struct {
		OwnerID  string `json:"owner_id"`
		OptionID string `json:"option_id"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	snap, err := s.Quiz.Answer(r.Context(), chi.URLParam(r, "id"), p.OwnerID, p.OptionID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleQuizReset(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Quiz.Reset(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEndQuiz(w http.ResponseWriter, r *http.Request) {
	s.Quiz.End(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

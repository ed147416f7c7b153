package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/study"
)

func parseDirection(s string) (study.Direction, error) {
	switch s {
	case "prev":
		return study.Prev, nil
	case "next":
		return study.Next, nil
	default:
		return 0, apperrors.NewValidationError("direction", "must be prev or next")
	}
}

func (s *Server) handleStartStudy(w http.ResponseWriter, r *http.Request) {
	var p struct {
		DeckID string `json:"deck_id"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	snap, err := s.Study.Start(r.Context(), p.DeckID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleStudyNavigate(w http.ResponseWriter, r *http.Request) {
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
	snap, err := s.Study.Navigate(chi.URLParam(r, "id"), dir)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStudyFlip(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Study.Flip(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStudyShuffle(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Study.Shuffle(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStudyMarkLearned(w http.ResponseWriter, r *http.Request) {
	var p struct {
		CardID  string `json:"card_id"`
		Learned bool   `json:"learned"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	snap, err := s.Study.MarkLearned(r.Context(), chi.URLParam(r, "id"), p.CardID, p.Learned)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEndStudy(w http.ResponseWriter, r *http.Request) {
	s.Study.End(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

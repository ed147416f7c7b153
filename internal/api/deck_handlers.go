package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcampos/notedeck/internal/services"
)

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.Decks.ListByOwner(r.Context(), r.URL.Query().Get("owner_id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"decks": decks})
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var p struct {
		OwnerID string               `json:"owner_id"`
		Title   string               `json:"title"`
		NoteID  string               `json:"note_id"`
		Cards   []services.CardInput `json:"cards"`
	}
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	deck, err := s.Decks.Create(r.Context(), p.OwnerID, p.Title, p.NoteID, p.Cards)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := s.Decks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	if err := s.Decks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeckCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.Decks.Cards(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

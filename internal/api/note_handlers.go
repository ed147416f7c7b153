package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lcampos/notedeck/internal/models"
)

type notePayload struct {
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	notes, err := s.Notes.List(r.Context(), models.NoteFilter{
		OwnerID: q.Get("owner_id"),
		Query:   q.Get("q"),
		Limit:   limit,
		Offset:  offset,
		OrderBy: q.Get("order_by"),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": notes})
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var p notePayload
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	note, err := s.Notes.Create(r.Context(), p.OwnerID, p.Title, p.Content)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.Notes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var p notePayload
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, r, err)
		return
	}
	note, err := s.Notes.Update(r.Context(), chi.URLParam(r, "id"), p.Title, p.Content)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.Notes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcampos/notedeck/internal/realtime"
	"github.com/lcampos/notedeck/internal/services"
)

// Server holds the HTTP handlers' dependencies
type Server struct {
	Notes  services.NoteService
	Decks  services.DeckService
	Study  *services.StudyService
	Quiz   *services.QuizService
	Assist *services.AssistService
	Hub    *realtime.Hub
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.Hub.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Route("/notes", func(r chi.Router) {
			r.Get("/", s.handleListNotes)
			r.Post("/", s.handleCreateNote)
			r.Get("/{id}", s.handleGetNote)
			r.Put("/{id}", s.handleUpdateNote)
			r.Delete("/{id}", s.handleDeleteNote)
			r.Post("/{id}/summarize", s.handleSummarizeNote)
			r.Post("/{id}/enhance", s.handleEnhanceNote)
		})

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", s.handleListDecks)
			r.Post("/", s.handleCreateDeck)
			r.Get("/{id}", s.handleGetDeck)
			r.Delete("/{id}", s.handleDeleteDeck)
			r.Get("/{id}/cards", s.handleDeckCards)
		})

		r.Route("/study/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartStudy)
			r.Post("/{id}/navigate", s.handleStudyNavigate)
			r.Post("/{id}/flip", s.handleStudyFlip)
			r.Post("/{id}/shuffle", s.handleStudyShuffle)
			r.Post("/{id}/learned", s.handleStudyMarkLearned)
			r.Delete("/{id}", s.handleEndStudy)
		})

		r.Route("/quiz/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartQuiz)
			r.Post("/{id}/navigate", s.handleQuizNavigate)
			r.Get("/{id}/options", s.handleQuizOptions)
			r.Post("/{id}/answer", s.handleQuizAnswer)
			r.Post("/{id}/reset", s.handleQuizReset)
			r.Delete("/{id}", s.handleEndQuiz)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

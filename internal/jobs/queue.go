package jobs

import "github.com/lcampos/notedeck/internal/models"

// Queue provides an abstraction for enqueueing background persistence writes
type Queue interface {
	EnqueueLearnedUpdate(cardID string, learned bool) error
	EnqueueAttempt(attempt models.QuizAttempt) error
}

package jobs

import (
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
	"github.com/lcampos/notedeck/internal/worker"
)

// WorkerQueue implements Queue using a worker pool
type WorkerQueue struct {
	pool     *worker.Pool
	cards    repository.CardRepository
	attempts repository.AttemptRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, cards repository.CardRepository, attempts repository.AttemptRepository) Queue {
	return &WorkerQueue{
		pool:     pool,
		cards:    cards,
		attempts: attempts,
	}
}

func (q *WorkerQueue) EnqueueLearnedUpdate(cardID string, learned bool) error {
	return q.pool.Submit(&worker.SaveLearnedJob{
		Cards:   q.cards,
		CardID:  cardID,
		Learned: learned,
	})
}

func (q *WorkerQueue) EnqueueAttempt(attempt models.QuizAttempt) error {
	return q.pool.Submit(&worker.SaveAttemptJob{
		Attempts: q.attempts,
		Attempt:  attempt,
	})
}

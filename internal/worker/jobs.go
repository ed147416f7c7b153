package worker

import (
	"context"
	"fmt"

	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

// SaveLearnedJob writes a card's learned flag through to storage.
type SaveLearnedJob struct {
	Cards   repository.CardRepository
	CardID  string
	Learned bool
}

func (j *SaveLearnedJob) Name() string {
	return fmt.Sprintf("save-learned:%s", j.CardID)
}

func (j *SaveLearnedJob) Run(ctx context.Context) error {
	return j.Cards.UpdateLearned(ctx, j.CardID, j.Learned)
}

// SaveAttemptJob records a quiz attempt. Failure never rolls back the
// in-memory score; it is only logged by the pool.
type SaveAttemptJob struct {
	Attempts repository.AttemptRepository
	Attempt  models.QuizAttempt
}

func (j *SaveAttemptJob) Name() string {
	return fmt.Sprintf("save-attempt:%s", j.Attempt.CardID)
}

func (j *SaveAttemptJob) Run(ctx context.Context) error {
	return j.Attempts.Insert(ctx, j.Attempt)
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new AttemptRepository implementation
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Insert(ctx context.Context, a models.QuizAttempt) error {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("inserting attempt: card_id=%s, correct=%v", a.CardID, a.Correct)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO quiz_attempts (id, card_id, owner_id, option_id, correct)
VALUES (?, ?, ?, ?, ?)
`, a.ID, a.CardID, a.OwnerID, a.OptionID, a.Correct)
	if err != nil {
		log.Error("failed to insert attempt: %v", err)
	}
	return err
}

func (r *attemptRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.QuizAttempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing attempts: owner_id=%s", ownerID)

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, card_id, owner_id, option_id, correct, created_at
FROM quiz_attempts
WHERE owner_id = ?
ORDER BY created_at DESC
LIMIT ?
`, ownerID, limit)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var attempts []models.QuizAttempt
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.CardID, &a.OwnerID, &a.OptionID, &a.Correct, &a.CreatedAt); err != nil {
			log.Error("failed to scan attempt: %v", err)
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

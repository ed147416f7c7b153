package sqlite

import (
	"context"
	"database/sql"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

type optionRepository struct {
	db *sql.DB
}

// NewOptionRepository creates a new OptionRepository implementation
func NewOptionRepository(db *sql.DB) repository.OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) ListByCard(ctx context.Context, cardID string) ([]models.QuizOption, error) {
	log := logger.FromContext(ctx).WithPrefix("option_repo")
	log.Debug("listing options: card_id=%s", cardID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, card_id, content, is_correct, explanation
FROM quiz_options
WHERE card_id = ?
ORDER BY id ASC
`, cardID)
	if err != nil {
		log.Error("failed to list options: %v", err)
		return nil, err
	}
	defer rows.Close()

	var options []models.QuizOption
	for rows.Next() {
		var o models.QuizOption
		if err := rows.Scan(&o.ID, &o.CardID, &o.Content, &o.IsCorrect, &o.Explanation); err != nil {
			log.Error("failed to scan option: %v", err)
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *optionRepository) InsertBatch(ctx context.Context, options []models.QuizOption) error {
	if len(options) == 0 {
		return nil
	}
	log := logger.FromContext(ctx).WithPrefix("option_repo")
	log.Debug("inserting %d options for card %s", len(options), options[0].CardID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO quiz_options (id, card_id, content, is_correct, explanation)
VALUES (?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range options {
		if _, err := stmt.ExecContext(ctx, o.ID, o.CardID, o.Content, o.IsCorrect, o.Explanation); err != nil {
			log.Error("failed to insert option %s: %v", o.ID, err)
			return err
		}
	}
	return tx.Commit()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository implementation
func NewCardRepository(db *sql.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("getting card: id=%s", id)

	var c models.Card
	err := r.db.QueryRowContext(ctx, `
SELECT id, deck_id, question, answer, learned, position
FROM cards
WHERE id = ?
`, id).Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.Learned, &c.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found: id=%s", id)
		} else {
			log.Error("failed to get card: %v", err)
		}
		return nil, err
	}
	return &c, nil
}

func (r *cardRepository) ListByDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("listing cards: deck_id=%s", deckID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, deck_id, question, answer, learned, position
FROM cards
WHERE deck_id = ?
ORDER BY position ASC
`, deckID)
	if err != nil {
		log.Error("failed to list cards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.Learned, &c.Position); err != nil {
			log.Error("failed to scan card: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *cardRepository) InsertBatch(ctx context.Context, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("inserting %d cards", len(cards))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO cards (id, deck_id, question, answer, learned, position)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range cards {
		if _, err := stmt.ExecContext(ctx, c.ID, c.DeckID, c.Question, c.Answer, c.Learned, c.Position); err != nil {
			log.Error("failed to insert card %s: %v", c.ID, err)
			return err
		}
	}
	return tx.Commit()
}

func (r *cardRepository) UpdateLearned(ctx context.Context, id string, learned bool) error {
	log := logger.FromContext(ctx).WithPrefix("card_repo")
	log.Debug("updating learned flag: id=%s, learned=%v", id, learned)

	res, err := r.db.ExecContext(ctx, `UPDATE cards SET learned = ? WHERE id = ?`, learned, id)
	if err != nil {
		log.Error("failed to update learned flag: %v", err)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

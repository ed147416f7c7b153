package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
)

type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new DeckRepository implementation
func NewDeckRepository(db *sql.DB) repository.DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Get(ctx context.Context, id string) (*models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("getting deck: id=%s", id)

	var d models.Deck
	var noteID sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT id, owner_id, title, note_id, created_at
FROM decks
WHERE id = ?
`, id).Scan(&d.ID, &d.OwnerID, &d.Title, &noteID, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("deck not found: id=%s", id)
		} else {
			log.Error("failed to get deck: %v", err)
		}
		return nil, err
	}
	d.NoteID = noteID.String
	return &d, nil
}

func (r *deckRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("listing decks: owner_id=%s", ownerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, title, note_id, created_at
FROM decks
WHERE owner_id = ?
ORDER BY created_at DESC
`, ownerID)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var d models.Deck
		var noteID sql.NullString
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Title, &noteID, &d.CreatedAt); err != nil {
			log.Error("failed to scan deck: %v", err)
			return nil, err
		}
		d.NoteID = noteID.String
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *deckRepository) Insert(ctx context.Context, d models.Deck) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("inserting deck: id=%s, title=%s", d.ID, d.Title)

	var noteID any
	if d.NoteID != "" {
		noteID = d.NoteID
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO decks (id, owner_id, title, note_id)
VALUES (?, ?, ?, ?)
`, d.ID, d.OwnerID, d.Title, noteID)
	if err != nil {
		log.Error("failed to insert deck: %v", err)
	}
	return err
}

func (r *deckRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("deck_repo")
	log.Debug("deleting deck: id=%s", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete deck: %v", err)
	}
	return err
}

package repository

import (
	"context"

	"github.com/lcampos/notedeck/internal/models"
)

// NoteRepository handles note data access
type NoteRepository interface {
	Get(ctx context.Context, id string) (*models.Note, error)
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	Insert(ctx context.Context, note models.Note) error
	Update(ctx context.Context, note models.Note) error
	Delete(ctx context.Context, id string) error
}

// DeckRepository handles deck data access
type DeckRepository interface {
	Get(ctx context.Context, id string) (*models.Deck, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Deck, error)
	Insert(ctx context.Context, deck models.Deck) error
	Delete(ctx context.Context, id string) error
}

// CardRepository handles card data access
type CardRepository interface {
	Get(ctx context.Context, id string) (*models.Card, error)
	ListByDeck(ctx context.Context, deckID string) ([]models.Card, error)
	InsertBatch(ctx context.Context, cards []models.Card) error
	UpdateLearned(ctx context.Context, id string, learned bool) error
}

// OptionRepository handles quiz option data access
type OptionRepository interface {
	ListByCard(ctx context.Context, cardID string) ([]models.QuizOption, error)
	InsertBatch(ctx context.Context, options []models.QuizOption) error
}

// AttemptRepository handles quiz attempt data access
type AttemptRepository interface {
	Insert(ctx context.Context, attempt models.QuizAttempt) error
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.QuizAttempt, error)
}

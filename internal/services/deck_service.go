package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/realtime"
	"github.com/lcampos/notedeck/internal/repository"
)

// CardInput is the caller-supplied content for a new card.
type CardInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DeckService handles deck and card management
type DeckService interface {
	Create(ctx context.Context, ownerID, title, noteID string, cards []CardInput) (*models.Deck, error)
	Get(ctx context.Context, id string) (*models.Deck, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Deck, error)
	Cards(ctx context.Context, deckID string) ([]models.Card, error)
	Delete(ctx context.Context, id string) error
}

type deckService struct {
	decks  repository.DeckRepository
	cards  repository.CardRepository
	events *realtime.Hub
}

// NewDeckService creates a new DeckService. events may be nil.
func NewDeckService(decks repository.DeckRepository, cards repository.CardRepository, events *realtime.Hub) DeckService {
	return &deckService{decks: decks, cards: cards, events: events}
}

func (s *deckService) Create(ctx context.Context, ownerID, title, noteID string, inputs []CardInput) (*models.Deck, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id", "must not be empty")
	}
	if title == "" {
		return nil, apperrors.NewValidationError("title", "must not be empty")
	}
	for _, in := range inputs {
		if in.Question == "" || in.Answer == "" {
			return nil, apperrors.NewValidationError("cards", "question and answer must not be empty")
		}
	}

	deck := models.Deck{
		ID:      models.NewID(),
		OwnerID: ownerID,
		Title:   title,
		NoteID:  noteID,
	}
	if err := s.decks.Insert(ctx, deck); err != nil {
		log.Error("failed to create deck: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	cards := make([]models.Card, len(inputs))
	for i, in := range inputs {
		cards[i] = models.Card{
			ID:       models.NewID(),
			DeckID:   deck.ID,
			Question: in.Question,
			Answer:   in.Answer,
			Position: i,
		}
	}
	if err := s.cards.InsertBatch(ctx, cards); err != nil {
		log.Error("failed to insert cards: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	log.Info("deck created: id=%s, cards=%d", deck.ID, len(cards))
	if s.events != nil {
		s.events.Broadcast(models.Event{Kind: "deck.created", EntityID: deck.ID, OwnerID: ownerID})
	}
	return &deck, nil
}

func (s *deckService) Get(ctx context.Context, id string) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("deck", id)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return deck, nil
}

func (s *deckService) ListByOwner(ctx context.Context, ownerID string) ([]models.Deck, error) {
	decks, err := s.decks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return decks, nil
}

func (s *deckService) Cards(ctx context.Context, deckID string) ([]models.Card, error) {
	if _, err := s.Get(ctx, deckID); err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return cards, nil
}

func (s *deckService) Delete(ctx context.Context, id string) error {
	deck, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.decks.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError(err)
	}
	if s.events != nil {
		s.events.Broadcast(models.Event{Kind: "deck.deleted", EntityID: id, OwnerID: deck.OwnerID})
	}
	return nil
}

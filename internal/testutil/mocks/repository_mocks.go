package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lcampos/notedeck/internal/models"
)

// MockCardRepository is a mock implementation of repository.CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Get(ctx context.Context, id string) (*models.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) ListByDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepository) InsertBatch(ctx context.Context, cards []models.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockCardRepository) UpdateLearned(ctx context.Context, id string, learned bool) error {
	args := m.Called(ctx, id, learned)
	return args.Error(0)
}

// MockOptionRepository is a mock implementation of repository.OptionRepository
type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) ListByCard(ctx context.Context, cardID string) ([]models.QuizOption, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizOption), args.Error(1)
}

func (m *MockOptionRepository) InsertBatch(ctx context.Context, options []models.QuizOption) error {
	args := m.Called(ctx, options)
	return args.Error(0)
}

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Insert(ctx context.Context, attempt models.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]models.QuizAttempt, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizAttempt), args.Error(1)
}

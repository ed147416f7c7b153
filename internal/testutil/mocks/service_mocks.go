package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/services"
)

// MockDeckService is a mock implementation of services.DeckService
type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) Create(ctx context.Context, ownerID, title, noteID string, cards []services.CardInput) (*models.Deck, error) {
	args := m.Called(ctx, ownerID, title, noteID, cards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckService) Get(ctx context.Context, id string) (*models.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckService) ListByOwner(ctx context.Context, ownerID string) ([]models.Deck, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Deck), args.Error(1)
}

func (m *MockDeckService) Cards(ctx context.Context, deckID string) ([]models.Card, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockDeckService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNoteService is a mock implementation of services.NoteService
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, id, title, content string) (*models.Note, error) {
	args := m.Called(ctx, id, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQueue is a mock implementation of jobs.Queue
type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) EnqueueLearnedUpdate(cardID string, learned bool) error {
	args := m.Called(cardID, learned)
	return args.Error(0)
}

func (m *MockQueue) EnqueueAttempt(attempt models.QuizAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

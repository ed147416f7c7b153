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

// NoteService handles note CRUD
type NoteService interface {
	Create(ctx context.Context, ownerID, title, content string) (*models.Note, error)
	Get(ctx context.Context, id string) (*models.Note, error)
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	Update(ctx context.Context, id, title, content string) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	notes  repository.NoteRepository
	events *realtime.Hub
}

// NewNoteService creates a new NoteService. events may be nil.
func NewNoteService(notes repository.NoteRepository, events *realtime.Hub) NoteService {
	return &noteService{notes: notes, events: events}
}

func (s *noteService) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id", "must not be empty")
	}
	if title == "" {
		return nil, apperrors.NewValidationError("title", "must not be empty")
	}

	note := models.Note{
		ID:      models.NewID(),
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		log.Error("failed to create note: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	s.broadcast("note.created", note.ID, ownerID)
	return &note, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*models.Note, error) {
	note, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("note", id)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.notes.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return notes, nil
}

func (s *noteService) Update(ctx context.Context, id, title, content string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		return nil, apperrors.NewValidationError("title", "must not be empty")
	}

	note, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := s.notes.Update(ctx, *note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("note", id)
		}
		log.Error("failed to update note: %v", err)
		return nil, apperrors.NewInternalError(err)
	}

	s.broadcast("note.updated", id, note.OwnerID)
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	note, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.broadcast("note.deleted", id, note.OwnerID)
	return nil
}

func (s *noteService) broadcast(kind, entityID, ownerID string) {
	if s.events == nil {
		return
	}
	s.events.Broadcast(models.Event{Kind: kind, EntityID: entityID, OwnerID: ownerID})
}

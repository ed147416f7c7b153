package services

import (
	"context"
	"time"

	"github.com/lcampos/notedeck/internal/aigen"
	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/assist"
	"github.com/lcampos/notedeck/internal/cache"
)

// Generator is the text-generation boundary. aigen.Client satisfies it;
// tests substitute a fake.
type Generator interface {
	Summarize(ctx context.Context, content string, level aigen.SummaryLevel) (string, error)
	Enhance(ctx context.Context, content string, kind aigen.EnhanceKind) (string, error)
	GenerateOptions(ctx context.Context, question, answer string) ([]aigen.GeneratedOption, error)
}

// AssistService runs AI summarize/enhance operations over notes. Each
// operation family gets its own cache and coordinator, built here rather
// than held in package globals so instances stay test-isolated and die
// with their owner.
type AssistService struct {
	notes        NoteService
	gen          Generator
	summaries    *cache.Cache
	enhancements *cache.Cache
	sumCoord     *assist.Coordinator
	enhCoord     *assist.Coordinator
	prefixLen    int
}

// NewAssistService creates an AssistService with fresh caches.
func NewAssistService(notes NoteService, gen Generator, retention, timeout time.Duration, prefixLen int) *AssistService {
	summaries := cache.New(retention)
	enhancements := cache.New(retention)
	return &AssistService{
		notes:        notes,
		gen:          gen,
		summaries:    summaries,
		enhancements: enhancements,
		sumCoord:     assist.NewCoordinator(summaries, timeout),
		enhCoord:     assist.NewCoordinator(enhancements, timeout),
		prefixLen:    prefixLen,
	}
}

// StartSweeping runs periodic eviction on both caches until ctx is cancelled.
func (s *AssistService) StartSweeping(ctx context.Context, interval time.Duration) {
	s.summaries.StartSweeping(ctx, interval)
	s.enhancements.StartSweeping(ctx, interval)
}

// Summarize produces a summary of the note at the given level.
func (s *AssistService) Summarize(ctx context.Context, noteID string, level aigen.SummaryLevel) (assist.Result, error) {
	switch level {
	case aigen.SummaryBrief, aigen.SummaryMedium, aigen.SummaryDetailed:
	default:
		return assist.Result{}, apperrors.NewValidationError("level", "must be brief, medium or detailed")
	}

	note, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return assist.Result{}, err
	}
	if note.Content == "" {
		return assist.Result{}, apperrors.NewBadRequestError("note has no content to summarize")
	}

	fp := cache.FingerprintN("summarize", note.ID, note.Content, s.prefixLen, string(level))
	return s.sumCoord.Execute(ctx, "summarize", fp, func(ctx context.Context) (string, error) {
		return s.gen.Summarize(ctx, note.Content, level)
	})
}

// Enhance rewrites the note's content according to kind.
func (s *AssistService) Enhance(ctx context.Context, noteID string, kind aigen.EnhanceKind) (assist.Result, error) {
	switch kind {
	case aigen.EnhanceClarity, aigen.EnhanceStructure, aigen.EnhanceExamples:
	default:
		return assist.Result{}, apperrors.NewValidationError("kind", "must be clarity, structure or examples")
	}

	note, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return assist.Result{}, err
	}
	if note.Content == "" {
		return assist.Result{}, apperrors.NewBadRequestError("note has no content to enhance")
	}

	fp := cache.FingerprintN("enhance", note.ID, note.Content, s.prefixLen, string(kind))
	return s.enhCoord.Execute(ctx, "enhance", fp, func(ctx context.Context) (string, error) {
		return s.gen.Enhance(ctx, note.Content, kind)
	})
}

package services

import (
	"context"
	"math/rand"
	"sync"

	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/jobs"
	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
	"github.com/lcampos/notedeck/internal/study"
)

// QuizSnapshot is the render state of a quiz session after a transition.
type QuizSnapshot struct {
	SessionID        string       `json:"session_id"`
	Card             *models.Card `json:"card,omitempty"`
	Index            int          `json:"index"`
	Total            int          `json:"total"`
	Answered         bool         `json:"answered"`
	SelectedOptionID string       `json:"selected_option_id,omitempty"`
	CorrectCount     int          `json:"correct_count"`
	AttemptedCount   int          `json:"attempted_count"`
	Complete         bool         `json:"complete"`
	Completions      int          `json:"completions"`
	ScorePercent     *int         `json:"score_percent,omitempty"`
}

// QuizService owns live quiz sessions and the per-card option sets.
// Options are loaded lazily: the first request for a card generates and
// stores them, later requests read the stored set.
type QuizService struct {
	deckService DeckService
	options     repository.OptionRepository
	gen         Generator
	queue       jobs.Queue
	log         *logger.Logger

	mu       sync.Mutex
	sessions map[string]*study.QuizSession
}

// NewQuizService creates a new QuizService.
func NewQuizService(deckService DeckService, options repository.OptionRepository, gen Generator, queue jobs.Queue) *QuizService {
	return &QuizService{
		deckService: deckService,
		options:     options,
		gen:         gen,
		queue:       queue,
		log:         logger.Default().WithPrefix("quiz"),
		sessions:    make(map[string]*study.QuizSession),
	}
}

// Start loads the deck's cards and opens a quiz over them.
func (s *QuizService) Start(ctx context.Context, deckID string) (QuizSnapshot, error) {
	cards, err := s.deckService.Cards(ctx, deckID)
	if err != nil {
		return QuizSnapshot{}, err
	}

	id := models.NewID()
	session := study.NewQuizSession(cards)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	s.log.Info("quiz session started: id=%s, deck_id=%s, cards=%d", id, deckID, len(cards))
	return s.snapshot(id, session), nil
}

// End discards the session. Unknown ids are ignored.
func (s *QuizService) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Navigate moves the quiz one card in the given direction, starting a
// fresh unanswered visit when the position changes.
func (s *QuizService) Navigate(sessionID string, dir study.Direction) (QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return QuizSnapshot{}, apperrors.NewNotFoundError("quiz session", sessionID)
	}
	session.Navigate(dir)
	return s.snapshot(sessionID, session), nil
}

// Reset zeroes the session's score, keeping card order and position.
func (s *QuizService) Reset(sessionID string) (QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return QuizSnapshot{}, apperrors.NewNotFoundError("quiz session", sessionID)
	}
	session.Reset()
	return s.snapshot(sessionID, session), nil
}

// CurrentOptions returns the option set for the session's current card,
// generating and storing one on first access.
func (s *QuizService) CurrentOptions(ctx context.Context, sessionID string) ([]models.QuizOption, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.NewNotFoundError("quiz session", sessionID)
	}
	card, ok := session.Current()
	s.mu.Unlock()
	if !ok {
		return nil, apperrors.NewBadRequestError("quiz has no cards")
	}
	return s.optionsForCard(ctx, card)
}

func (s *QuizService) optionsForCard(ctx context.Context, card models.Card) ([]models.QuizOption, error) {
	log := logger.FromContext(ctx)

	stored, err := s.options.ListByCard(ctx, card.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(stored) > 0 {
		return stored, nil
	}

	log.Debug("generating options: card_id=%s", card.ID)
	generated, err := s.gen.GenerateOptions(ctx, card.Question, card.Answer)
	if err != nil {
		return nil, apperrors.NewOperationFailedError("option generation", err)
	}

	options := make([]models.QuizOption, len(generated))
	for i, g := range generated {
		options[i] = models.QuizOption{
			ID:          models.NewID(),
			CardID:      card.ID,
			Content:     g.Content,
			IsCorrect:   g.IsCorrect,
			Explanation: g.Explanation,
		}
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	if err := s.options.InsertBatch(ctx, options); err != nil {
		// The generated set is still usable this round; storage gets
		// another chance on the next visit.
		log.Warn("failed to store generated options: %v", err)
	}
	return options, nil
}

// Answer grades the selected option against the session's current card.
// A repeat answer during the same visit changes nothing, and an answer
// whose card is no longer current (the session navigated away while the
// options loaded) is dropped the same way. Accepted answers enqueue the
// attempt record fire-and-forget; local scoring stands whether or not the
// write lands.
func (s *QuizService) Answer(ctx context.Context, sessionID, ownerID, optionID string) (QuizSnapshot, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return QuizSnapshot{}, apperrors.NewNotFoundError("quiz session", sessionID)
	}
	card, ok := session.Current()
	s.mu.Unlock()
	if !ok {
		return QuizSnapshot{}, apperrors.NewBadRequestError("quiz has no cards")
	}

	options, err := s.optionsForCard(ctx, card)
	if err != nil {
		return QuizSnapshot{}, err
	}
	var selected *models.QuizOption
	for i := range options {
		if options[i].ID == optionID {
			selected = &options[i]
			break
		}
	}
	if selected == nil {
		return QuizSnapshot{}, apperrors.NewValidationError("option_id", "not an option for the current card")
	}

	s.mu.Lock()
	// Option loading ran outside the lock; the session may have moved on.
	// An answer for a card that is no longer current belongs to a finished
	// visit and is not applied.
	current, ok := session.Current()
	if !ok || current.ID != card.ID {
		snap := s.snapshot(sessionID, session)
		s.mu.Unlock()
		return snap, nil
	}
	accepted := session.SelectOption(*selected)
	snap := s.snapshot(sessionID, session)
	s.mu.Unlock()

	if accepted {
		attempt := models.QuizAttempt{
			ID:       models.NewID(),
			CardID:   card.ID,
			OwnerID:  ownerID,
			OptionID: selected.ID,
			Correct:  selected.IsCorrect,
		}
		if err := s.queue.EnqueueAttempt(attempt); err != nil {
			logger.FromContext(ctx).Warn("attempt record dropped: card_id=%s: %v", card.ID, err)
		}
	}
	return snap, nil
}

func (s *QuizService) snapshot(id string, session *study.QuizSession) QuizSnapshot {
	snap := QuizSnapshot{
		SessionID:      id,
		Index:          session.Index(),
		Total:          session.Len(),
		Answered:       session.IsAnswered(),
		CorrectCount:   session.CorrectCount(),
		AttemptedCount: session.AttemptedCount(),
		Complete:       session.IsComplete(),
		Completions:    session.Completions(),
	}
	if card, ok := session.Current(); ok {
		snap.Card = &card
	}
	if answer, ok := session.Answer(); ok {
		snap.SelectedOptionID = answer.OptionID
	}
	if pct, ok := session.ScorePercent(); ok {
		snap.ScorePercent = &pct
	}
	return snap
}

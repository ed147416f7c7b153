package services

import (
	"context"
	"sync"

	"github.com/lcampos/notedeck/internal/apperrors"
	"github.com/lcampos/notedeck/internal/jobs"
	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/realtime"
	"github.com/lcampos/notedeck/internal/study"
)

// StudySnapshot is the render state of a study session after a transition.
type StudySnapshot struct {
	SessionID string       `json:"session_id"`
	Card      *models.Card `json:"card,omitempty"`
	Index     int          `json:"index"`
	Total     int          `json:"total"`
	IsFlipped bool         `json:"is_flipped"`
}

// StudyService owns live study sessions. Sessions are in-memory and bound
// to this process; ending one discards everything except the learned-flag
// writes already handed to the persistence queue. Transitions on a session
// are serialized under the service lock, which stands in for the
// single-threaded event loop the session types assume.
type StudyService struct {
	deckService DeckService
	queue       jobs.Queue
	events      *realtime.Hub
	log         *logger.Logger

	mu       sync.Mutex
	sessions map[string]*study.DeckSession
}

// NewStudyService creates a new StudyService. events may be nil.
func NewStudyService(deckService DeckService, queue jobs.Queue, events *realtime.Hub) *StudyService {
	return &StudyService{
		deckService: deckService,
		queue:       queue,
		events:      events,
		log:         logger.Default().WithPrefix("study"),
		sessions:    make(map[string]*study.DeckSession),
	}
}

// Start loads the deck's cards and opens a session over them.
func (s *StudyService) Start(ctx context.Context, deckID string) (StudySnapshot, error) {
	cards, err := s.deckService.Cards(ctx, deckID)
	if err != nil {
		return StudySnapshot{}, err
	}

	id := models.NewID()
	session := study.NewDeckSession(cards)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	s.log.Info("study session started: id=%s, deck_id=%s, cards=%d", id, deckID, len(cards))
	return s.snapshot(id, session), nil
}

// End discards the session. Unknown ids are ignored.
func (s *StudyService) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Navigate moves the session one card in the given direction.
func (s *StudyService) Navigate(sessionID string, dir study.Direction) (StudySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return StudySnapshot{}, apperrors.NewNotFoundError("study session", sessionID)
	}
	session.Navigate(dir)
	return s.snapshot(sessionID, session), nil
}

// Flip toggles the current card.
func (s *StudyService) Flip(sessionID string) (StudySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return StudySnapshot{}, apperrors.NewNotFoundError("study session", sessionID)
	}
	session.ToggleFlip()
	return s.snapshot(sessionID, session), nil
}

// Shuffle reorders the session's cards.
func (s *StudyService) Shuffle(sessionID string) (StudySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return StudySnapshot{}, apperrors.NewNotFoundError("study session", sessionID)
	}
	session.Shuffle()
	return s.snapshot(sessionID, session), nil
}

// MarkLearned grades a card. When the session reports a state change the
// write-through is enqueued fire-and-forget; a saturated queue is logged
// and the in-memory state stands.
func (s *StudyService) MarkLearned(ctx context.Context, sessionID, cardID string, learned bool) (StudySnapshot, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return StudySnapshot{}, apperrors.NewNotFoundError("study session", sessionID)
	}
	persist := session.MarkLearned(cardID, learned)
	snap := s.snapshot(sessionID, session)
	s.mu.Unlock()

	if persist {
		if err := s.queue.EnqueueLearnedUpdate(cardID, learned); err != nil {
			logger.FromContext(ctx).Warn("learned update dropped: card_id=%s: %v", cardID, err)
		}
		if s.events != nil {
			s.events.Broadcast(models.Event{Kind: "card.learned", EntityID: cardID})
		}
	}
	return snap, nil
}

func (s *StudyService) snapshot(id string, session *study.DeckSession) StudySnapshot {
	snap := StudySnapshot{
		SessionID: id,
		Index:     session.Index(),
		Total:     session.Len(),
		IsFlipped: session.IsFlipped(),
	}
	if card, ok := session.Current(); ok {
		snap.Card = &card
	}
	return snap
}

package study

import (
	"math/rand"
	"time"

	"github.com/lcampos/notedeck/internal/models"
)

// Direction selects which neighbor a navigation step moves to.
type Direction int

const (
	Prev Direction = iota
	Next
)

// DeckSession tracks position and flip state over an ordered card sequence.
// It lives for one study view: the card order may change (shuffle) but the
// set never grows or shrinks mid-session, and nothing here is persisted
// except learned-flag changes, which the caller writes through.
//
// Methods are silent no-ops on an empty deck and at navigation boundaries.
// Expected UI races (double-click, key repeat) are guarded, not errored.
type DeckSession struct {
	cards   []models.Card
	index   int
	flipped bool
	rng     *rand.Rand
}

// DeckOption configures a DeckSession.
type DeckOption func(*DeckSession)

// WithRand overrides the shuffle randomness source. Used by tests.
func WithRand(rng *rand.Rand) DeckOption {
	return func(s *DeckSession) {
		s.rng = rng
	}
}

// NewDeckSession creates a session over a copy of cards, positioned at the
// first card, unflipped.
func NewDeckSession(cards []models.Card, opts ...DeckOption) *DeckSession {
	s := &DeckSession{
		cards: append([]models.Card(nil), cards...),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of cards in the session.
func (s *DeckSession) Len() int {
	return len(s.cards)
}

// Index returns the current position. It is 0 for an empty deck.
func (s *DeckSession) Index() int {
	return s.index
}

// IsFlipped reports whether the current card shows its answer side.
func (s *DeckSession) IsFlipped() bool {
	return s.flipped
}

// Current returns the card at the current position. ok is false for an
// empty deck; the UI renders that distinctly from an unflipped card.
func (s *DeckSession) Current() (models.Card, bool) {
	if len(s.cards) == 0 {
		return models.Card{}, false
	}
	return s.cards[s.index], true
}

// Cards returns a copy of the current card order.
func (s *DeckSession) Cards() []models.Card {
	return append([]models.Card(nil), s.cards...)
}

// Navigate moves one step in the given direction, saturating at the deck
// bounds (no wraparound). A move that changes position resets the flip
// state; a boundary call changes nothing. Returns whether the index moved.
func (s *DeckSession) Navigate(dir Direction) bool {
	if len(s.cards) == 0 {
		return false
	}
	next := s.index
	switch dir {
	case Prev:
		next--
	case Next:
		next++
	}
	if next < 0 || next >= len(s.cards) {
		return false
	}
	s.index = next
	s.flipped = false
	return true
}

// Flip sets the flip state directly. No-op on an empty deck.
func (s *DeckSession) Flip(to bool) {
	if len(s.cards) == 0 {
		return
	}
	s.flipped = to
}

// ToggleFlip inverts the flip state. No-op on an empty deck.
func (s *DeckSession) ToggleFlip() {
	if len(s.cards) == 0 {
		return
	}
	s.flipped = !s.flipped
}

// Shuffle rearranges the cards into a uniformly random permutation
// (Fisher-Yates) and returns to the first card, unflipped.
func (s *DeckSession) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.index = 0
	s.flipped = false
}

// MarkLearned updates the matching card's learned flag in place and reports
// whether a write-through to the store is requested. The session only
// mutates in-memory state; persistence is the caller's job.
func (s *DeckSession) MarkLearned(cardID string, learned bool) bool {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			if s.cards[i].Learned == learned {
				return false
			}
			s.cards[i].Learned = learned
			return true
		}
	}
	return false
}

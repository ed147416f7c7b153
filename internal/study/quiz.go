package study

import (
	"math"

	"github.com/lcampos/notedeck/internal/models"
)

// Answer records the outcome of answering the current card. A nil *Answer
// is the unanswered state; collapsing the answered flag and the selected
// option into one value keeps the two from ever disagreeing.
type Answer struct {
	OptionID string
	Correct  bool
}

// QuizSession layers answer tracking and scoring over deck navigation.
// Each card visit moves through at most one transition, unanswered to
// answered; navigating to another card starts a fresh visit.
type QuizSession struct {
	deck        *DeckSession
	answer      *Answer
	correct     int
	attempted   int
	completions int
	completed   bool
}

// NewQuizSession creates a quiz over a copy of cards.
func NewQuizSession(cards []models.Card, opts ...DeckOption) *QuizSession {
	return &QuizSession{deck: NewDeckSession(cards, opts...)}
}

// Len returns the number of cards in the quiz.
func (q *QuizSession) Len() int {
	return q.deck.Len()
}

// Index returns the current position.
func (q *QuizSession) Index() int {
	return q.deck.Index()
}

// Current returns the card at the current position.
func (q *QuizSession) Current() (models.Card, bool) {
	return q.deck.Current()
}

// ToggleFlip inverts the flip state of the underlying deck.
func (q *QuizSession) ToggleFlip() {
	q.deck.ToggleFlip()
}

// Navigate moves through the deck. Any move that changes position starts a
// fresh unanswered visit for the new card. Returns whether the index moved.
func (q *QuizSession) Navigate(dir Direction) bool {
	moved := q.deck.Navigate(dir)
	if moved {
		q.answer = nil
		q.completed = false
	}
	return moved
}

// SelectOption answers the current card. Repeat calls during the same visit
// are no-ops so a double-click can never double-count; the first call
// records the selection, bumps attempted, and bumps correct iff the option
// is the correct one. Returns whether the answer was accepted; an accepted
// answer is the caller's cue to fire the write-through of the attempt
// (fire-and-forget, local score stays authoritative even if it fails).
func (q *QuizSession) SelectOption(opt models.QuizOption) bool {
	if q.answer != nil {
		return false
	}
	if _, ok := q.deck.Current(); !ok {
		return false
	}

	q.answer = &Answer{OptionID: opt.ID, Correct: opt.IsCorrect}
	q.attempted++
	if opt.IsCorrect {
		q.correct++
	}

	if q.isCompleteNow() && !q.completed {
		q.completed = true
		q.completions++
	}
	return true
}

// Answer returns the recorded answer for the current visit, if any.
func (q *QuizSession) Answer() (Answer, bool) {
	if q.answer == nil {
		return Answer{}, false
	}
	return *q.answer, true
}

// IsAnswered reports whether the current card has been answered this visit.
func (q *QuizSession) IsAnswered() bool {
	return q.answer != nil
}

// CorrectCount returns how many answers were correct.
func (q *QuizSession) CorrectCount() int {
	return q.correct
}

// AttemptedCount returns how many cards have been answered.
func (q *QuizSession) AttemptedCount() int {
	return q.attempted
}

// IsComplete reports whether the quiz has reached its finished condition:
// last card, answered, with at least one attempt overall.
func (q *QuizSession) IsComplete() bool {
	return q.completed
}

func (q *QuizSession) isCompleteNow() bool {
	return q.deck.Len() > 0 &&
		q.deck.Index() == q.deck.Len()-1 &&
		q.answer != nil &&
		q.attempted > 0
}

// Completions counts how many times the quiz has newly reached completion.
// It only grows, so callers dedupe completion side effects (summary dialog,
// notification) by comparing against the last value they acted on instead
// of tracking their own dialog state.
func (q *QuizSession) Completions() int {
	return q.completions
}

// ScorePercent returns the rounded percentage of correct answers. ok is
// false before any attempt, when a score is undefined.
func (q *QuizSession) ScorePercent() (int, bool) {
	if q.attempted == 0 {
		return 0, false
	}
	return int(math.Round(float64(q.correct) / float64(q.attempted) * 100)), true
}

// Reset zeroes the counters and clears the current answer, leaving card
// order and position alone. The caller re-navigates to the start if it
// wants a fresh run from the first card. The completion counter is not
// reset; it is a lifetime event count.
func (q *QuizSession) Reset() {
	q.correct = 0
	q.attempted = 0
	q.answer = nil
	q.completed = false
}

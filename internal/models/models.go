package models

import "time"

type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Deck struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	NoteID    string    `json:"note_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Card is a single flashcard. Identity is immutable; Learned is the only
// field mutated after creation, and only through an explicit grading action.
type Card struct {
	ID       string `json:"id"`
	DeckID   string `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Learned  bool   `json:"learned"`
	Position int    `json:"position"`
}

// QuizOption is one multiple-choice answer for a card. Exactly one option
// per card has IsCorrect set. Options are generated lazily and immutable
// once stored.
type QuizOption struct {
	ID          string `json:"id"`
	CardID      string `json:"card_id"`
	Content     string `json:"content"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

type QuizAttempt struct {
	ID        string    `json:"id"`
	CardID    string    `json:"card_id"`
	OwnerID   string    `json:"owner_id"`
	OptionID  string    `json:"option_id"`
	Correct   bool      `json:"correct"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteFilter struct {
	OwnerID string
	Query   string
	Limit   int
	Offset  int
	OrderBy string
}

// Event is a realtime change notification pushed to subscribed clients.
type Event struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	OwnerID  string `json:"owner_id,omitempty"`
}

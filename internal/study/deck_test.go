package study_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/study"
)

func threeCards() []models.Card {
	return []models.Card{
		{ID: "c1", Question: "Q1", Answer: "A1"},
		{ID: "c2", Question: "Q2", Answer: "A2"},
		{ID: "c3", Question: "Q3", Answer: "A3"},
	}
}

func TestDeckSession_NavigateSaturatesAtBounds(t *testing.T) {
	s := study.NewDeckSession(threeCards())

	assert.False(t, s.Navigate(study.Prev), "prev at first card should be a no-op")
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Navigate(study.Next))
	assert.True(t, s.Navigate(study.Next))
	assert.Equal(t, 2, s.Index())

	assert.False(t, s.Navigate(study.Next), "next at last card should be a no-op")
	assert.Equal(t, 2, s.Index(), "no wraparound")
}

func TestDeckSession_IndexStaysInBounds(t *testing.T) {
	s := study.NewDeckSession(threeCards())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			s.Navigate(study.Prev)
		} else {
			s.Navigate(study.Next)
		}
		assert.GreaterOrEqual(t, s.Index(), 0)
		assert.Less(t, s.Index(), s.Len())
	}
}

func TestDeckSession_NavigateResetsFlip(t *testing.T) {
	s := study.NewDeckSession(threeCards())

	s.Flip(true)
	require.True(t, s.IsFlipped())

	s.Navigate(study.Next)
	assert.False(t, s.IsFlipped(), "flip state should reset on index change")

	// A boundary no-op leaves everything untouched.
	s.Navigate(study.Prev)
	s.Flip(true)
	s.Navigate(study.Prev)
	assert.True(t, s.IsFlipped(), "boundary navigation should not reset flip")
	assert.Equal(t, 0, s.Index())
}

func TestDeckSession_ToggleFlip(t *testing.T) {
	s := study.NewDeckSession(threeCards())

	s.ToggleFlip()
	assert.True(t, s.IsFlipped())
	s.ToggleFlip()
	assert.False(t, s.IsFlipped())
}

func TestDeckSession_ShuffleIsPermutation(t *testing.T) {
	cards := threeCards()
	s := study.NewDeckSession(cards, study.WithRand(rand.New(rand.NewSource(42))))

	s.Navigate(study.Next)
	s.Flip(true)
	s.Shuffle()

	assert.Equal(t, 0, s.Index(), "shuffle should reset position")
	assert.False(t, s.IsFlipped(), "shuffle should reset flip state")

	ids := map[string]int{}
	for _, c := range s.Cards() {
		ids[c.ID]++
	}
	require.Len(t, ids, len(cards), "same identities, same multiplicity")
	for _, c := range cards {
		assert.Equal(t, 1, ids[c.ID])
	}
}

func TestDeckSession_MarkLearned(t *testing.T) {
	s := study.NewDeckSession(threeCards())

	assert.True(t, s.MarkLearned("c2", true), "state change should request persistence")
	assert.False(t, s.MarkLearned("c2", true), "no-op change should not request persistence")
	assert.False(t, s.MarkLearned("missing", true), "unknown card should not request persistence")

	for _, c := range s.Cards() {
		if c.ID == "c2" {
			assert.True(t, c.Learned)
		} else {
			assert.False(t, c.Learned)
		}
	}
}

func TestDeckSession_EmptyDeck(t *testing.T) {
	s := study.NewDeckSession(nil)

	assert.False(t, s.Navigate(study.Next))
	assert.False(t, s.Navigate(study.Prev))
	s.Flip(true)
	s.ToggleFlip()
	s.Shuffle()

	assert.Equal(t, 0, s.Index())
	assert.False(t, s.IsFlipped())
	_, ok := s.Current()
	assert.False(t, ok, "empty deck has no current card")
}

func TestDeckSession_CopiesInput(t *testing.T) {
	cards := threeCards()
	s := study.NewDeckSession(cards)

	cards[0].Question = "mutated"
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Q1", current.Question, "session should own a copy of the cards")
}

package study_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/study"
)

func correctOption(id string) models.QuizOption {
	return models.QuizOption{ID: id, IsCorrect: true}
}

func wrongOption(id string) models.QuizOption {
	return models.QuizOption{ID: id, IsCorrect: false}
}

func TestQuizSession_SelectOptionScores(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	require.True(t, q.SelectOption(correctOption("o1")))
	assert.Equal(t, 1, q.CorrectCount())
	assert.Equal(t, 1, q.AttemptedCount())
	assert.True(t, q.IsAnswered())

	answer, ok := q.Answer()
	require.True(t, ok)
	assert.Equal(t, "o1", answer.OptionID)
	assert.True(t, answer.Correct)
}

func TestQuizSession_RepeatAnswerIsNoOp(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	require.True(t, q.SelectOption(wrongOption("o1")))
	assert.False(t, q.SelectOption(correctOption("o2")), "second answer in the same visit should be rejected")

	assert.Equal(t, 1, q.AttemptedCount(), "attempted should change by exactly 1")
	assert.Equal(t, 0, q.CorrectCount(), "rejected answer should not score")

	answer, ok := q.Answer()
	require.True(t, ok)
	assert.Equal(t, "o1", answer.OptionID, "first selection stands")
}

func TestQuizSession_NavigationResetsAnswer(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	q.SelectOption(correctOption("o1"))
	require.True(t, q.IsAnswered())

	require.True(t, q.Navigate(study.Next))
	assert.False(t, q.IsAnswered(), "new visit starts unanswered")

	// Boundary no-op keeps the current visit's answer.
	q.SelectOption(wrongOption("o2"))
	q.Navigate(study.Next)
	require.True(t, q.Navigate(study.Prev), "sanity: back to card 2")
	assert.False(t, q.IsAnswered())
}

func TestQuizSession_Monotonicity(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	check := func() {
		assert.LessOrEqual(t, q.CorrectCount(), q.AttemptedCount())
	}

	q.SelectOption(correctOption("o1"))
	check()
	q.Navigate(study.Next)
	q.SelectOption(wrongOption("o2"))
	check()
	q.Navigate(study.Next)
	q.SelectOption(correctOption("o3"))
	check()
}

func TestQuizSession_TwoCardRun(t *testing.T) {
	q := study.NewQuizSession([]models.Card{
		{ID: "c1", Question: "Q1"},
		{ID: "c2", Question: "Q2"},
	})

	require.True(t, q.SelectOption(correctOption("o1")))
	assert.Equal(t, 1, q.CorrectCount())
	assert.Equal(t, 1, q.AttemptedCount())
	assert.True(t, q.IsAnswered())
	assert.False(t, q.IsComplete())

	require.True(t, q.Navigate(study.Next))
	assert.False(t, q.IsAnswered())

	require.True(t, q.SelectOption(wrongOption("o2")))
	assert.Equal(t, 1, q.CorrectCount())
	assert.Equal(t, 2, q.AttemptedCount())
	assert.True(t, q.IsComplete(), "last card answered with attempts")

	pct, ok := q.ScorePercent()
	require.True(t, ok)
	assert.Equal(t, 50, pct)
}

func TestQuizSession_ScoreUndefinedBeforeAttempts(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	_, ok := q.ScorePercent()
	assert.False(t, ok, "no attempts means no score")
}

func TestQuizSession_CompletionCounter(t *testing.T) {
	q := study.NewQuizSession([]models.Card{
		{ID: "c1"},
		{ID: "c2"},
	})

	q.SelectOption(correctOption("o1"))
	q.Navigate(study.Next)
	q.SelectOption(correctOption("o2"))
	assert.Equal(t, 1, q.Completions())

	// Re-answering the same completed visit cannot re-trigger.
	q.SelectOption(correctOption("o3"))
	assert.Equal(t, 1, q.Completions())

	// Navigating away and back, then answering again, is a new completion.
	q.Navigate(study.Prev)
	q.Navigate(study.Next)
	q.SelectOption(wrongOption("o4"))
	assert.Equal(t, 2, q.Completions())
}

func TestQuizSession_Reset(t *testing.T) {
	q := study.NewQuizSession(threeCards())

	q.SelectOption(correctOption("o1"))
	q.Navigate(study.Next)
	q.SelectOption(wrongOption("o2"))

	q.Reset()

	assert.Equal(t, 0, q.CorrectCount())
	assert.Equal(t, 0, q.AttemptedCount())
	assert.False(t, q.IsAnswered())
	assert.Equal(t, 1, q.Index(), "reset keeps position")

	_, ok := q.ScorePercent()
	assert.False(t, ok)
}

func TestQuizSession_EmptyDeck(t *testing.T) {
	q := study.NewQuizSession(nil)

	assert.False(t, q.SelectOption(correctOption("o1")), "no card to answer")
	assert.Equal(t, 0, q.AttemptedCount())
	assert.False(t, q.IsComplete())
}

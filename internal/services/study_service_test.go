package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/services"
	"github.com/lcampos/notedeck/internal/study"
	"github.com/lcampos/notedeck/internal/testutil/mocks"
)

func TestStudyService_StartAndNavigate(t *testing.T) {
	decks := new(mocks.MockDeckService)
	decks.On("Cards", mock.Anything, "d1").Return(twoCards(), nil)

	svc := services.NewStudyService(decks, new(mocks.MockQueue), nil)

	snap, err := svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Total)
	require.NotNil(t, snap.Card)
	assert.Equal(t, "c1", snap.Card.ID)

	snap, err = svc.Navigate(snap.SessionID, study.Next)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, "c2", snap.Card.ID)

	// Saturates at the last card.
	snap, err = svc.Navigate(snap.SessionID, study.Next)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Index)
}

func TestStudyService_FlipResetsOnNavigate(t *testing.T) {
	decks := new(mocks.MockDeckService)
	decks.On("Cards", mock.Anything, "d1").Return(twoCards(), nil)

	svc := services.NewStudyService(decks, new(mocks.MockQueue), nil)
	snap, err := svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	snap, err = svc.Flip(snap.SessionID)
	require.NoError(t, err)
	assert.True(t, snap.IsFlipped)

	snap, err = svc.Navigate(snap.SessionID, study.Next)
	require.NoError(t, err)
	assert.False(t, snap.IsFlipped)
}

func TestStudyService_MarkLearnedEnqueuesOnce(t *testing.T) {
	decks := new(mocks.MockDeckService)
	decks.On("Cards", mock.Anything, "d1").Return(twoCards(), nil)

	queue := new(mocks.MockQueue)
	queue.On("EnqueueLearnedUpdate", "c1", true).Return(nil).Once()

	svc := services.NewStudyService(decks, queue, nil)
	snap, err := svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	_, err = svc.MarkLearned(context.Background(), snap.SessionID, "c1", true)
	require.NoError(t, err)

	// Same grade again is a no-op and must not enqueue a second write.
	_, err = svc.MarkLearned(context.Background(), snap.SessionID, "c1", true)
	require.NoError(t, err)

	queue.AssertExpectations(t)
	queue.AssertNumberOfCalls(t, "EnqueueLearnedUpdate", 1)
}

func TestStudyService_MarkLearnedSurvivesFullQueue(t *testing.T) {
	decks := new(mocks.MockDeckService)
	decks.On("Cards", mock.Anything, "d1").Return(twoCards(), nil)

	queue := new(mocks.MockQueue)
	queue.On("EnqueueLearnedUpdate", "c1", true).Return(assert.AnError)

	svc := services.NewStudyService(decks, queue, nil)
	snap, err := svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	_, err = svc.MarkLearned(context.Background(), snap.SessionID, "c1", true)
	require.NoError(t, err, "a dropped write-through is not an operation failure")
}

func TestStudyService_UnknownSession(t *testing.T) {
	svc := services.NewStudyService(new(mocks.MockDeckService), new(mocks.MockQueue), nil)

	_, err := svc.Navigate("nope", study.Next)
	require.Error(t, err)

	_, err = svc.Flip("nope")
	require.Error(t, err)

	_, err = svc.MarkLearned(context.Background(), "nope", "c1", true)
	require.Error(t, err)
}

func TestStudyService_EndDiscardsSession(t *testing.T) {
	decks := new(mocks.MockDeckService)
	decks.On("Cards", mock.Anything, "d1").Return(twoCards(), nil)

	svc := services.NewStudyService(decks, new(mocks.MockQueue), nil)
	snap, err := svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	svc.End(snap.SessionID)
	svc.End(snap.SessionID) // unknown ids are ignored

	_, err = svc.Navigate(snap.SessionID, study.Next)
	require.Error(t, err)
}

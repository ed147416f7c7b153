package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/models"
	"github.com/lcampos/notedeck/internal/repository"
	"github.com/lcampos/notedeck/internal/repository/sqlite"
	"github.com/lcampos/notedeck/internal/testutil"
)

func seedDeck(t *testing.T, db *sql.DB, deckID string) {
	t.Helper()
	repo := sqlite.NewDeckRepository(db)
	err := repo.Insert(context.Background(), models.Deck{ID: deckID, OwnerID: "u1", Title: "Deck"})
	require.NoError(t, err)
}

func seedCards(t *testing.T, repo repository.CardRepository, deckID string) []models.Card {
	t.Helper()
	cards := []models.Card{
		{ID: "c1", DeckID: deckID, Question: "Q1", Answer: "A1", Position: 0},
		{ID: "c2", DeckID: deckID, Question: "Q2", Answer: "A2", Position: 1},
		{ID: "c3", DeckID: deckID, Question: "Q3", Answer: "A3", Position: 2},
	}
	require.NoError(t, repo.InsertBatch(context.Background(), cards))
	return cards
}

func TestCardRepository_InsertBatchAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedDeck(t, db, "d1")
	repo := sqlite.NewCardRepository(db)

	seedCards(t, repo, "d1")

	got, err := repo.ListByDeck(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID, "cards come back in position order")
	assert.Equal(t, "c3", got[2].ID)
	assert.False(t, got[0].Learned)
}

func TestCardRepository_InsertBatchEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewCardRepository(db)

	assert.NoError(t, repo.InsertBatch(context.Background(), nil))
}

func TestCardRepository_InsertBatchRollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedDeck(t, db, "d1")
	repo := sqlite.NewCardRepository(db)
	ctx := context.Background()

	err := repo.InsertBatch(ctx, []models.Card{
		{ID: "c1", DeckID: "d1", Question: "Q1", Answer: "A1"},
		{ID: "c1", DeckID: "d1", Question: "dup id", Answer: "A2"},
	})
	require.Error(t, err)

	got, err := repo.ListByDeck(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, got, "a failed batch leaves nothing behind")
}

func TestCardRepository_UpdateLearned(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedDeck(t, db, "d1")
	repo := sqlite.NewCardRepository(db)
	ctx := context.Background()

	seedCards(t, repo, "d1")

	require.NoError(t, repo.UpdateLearned(ctx, "c2", true))

	got, err := repo.Get(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, got.Learned)

	err = repo.UpdateLearned(ctx, "nope", true)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCardRepository_DeckCascadeDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedDeck(t, db, "d1")
	cards := sqlite.NewCardRepository(db)
	decks := sqlite.NewDeckRepository(db)
	ctx := context.Background()

	seedCards(t, cards, "d1")
	require.NoError(t, decks.Delete(ctx, "d1"))

	got, err := cards.ListByDeck(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, got, "deleting the deck removes its cards")
}

package store_test

import (
	"testing"

	"github.com/phantomloop/ttclub/internal/database"
	"github.com/phantomloop/ttclub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (store.Adapter, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	adapter := store.New(db)
	teardown := func() {
		dbTeardown()
	}

	return adapter, teardown
}

func TestCreateAndGet(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	id, err := adapter.Create(store.Players, store.Document{"name": "Alice", "rank": 1})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := adapter.Get(store.Players, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Alice", doc["name"])
	assert.Equal(t, id, doc["id"])
}

func TestGetMissingReturnsNil(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	doc, err := adapter.Get(store.Players, "nope")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestPutUpserts(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	err := adapter.Put(store.Users, "alice", store.Document{"username": "alice", "role": "player"})
	require.NoError(t, err)

	err = adapter.Put(store.Users, "alice", store.Document{"username": "alice", "role": "admin"})
	require.NoError(t, err)

	doc, err := adapter.Get(store.Users, "alice")
	require.NoError(t, err)
	assert.Equal(t, "admin", doc["role"])
}

func TestUpdateMergesFields(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	id, err := adapter.Create(store.Players, store.Document{"name": "Alice", "wins": 0, "rank": 3})
	require.NoError(t, err)

	err = adapter.Update(store.Players, id, store.Document{"wins": 5})
	require.NoError(t, err)

	doc, err := adapter.Get(store.Players, id)
	require.NoError(t, err)
	assert.Equal(t, float64(5), doc["wins"])
	// Untouched fields survive the merge.
	assert.Equal(t, "Alice", doc["name"])
	assert.Equal(t, float64(3), doc["rank"])
}

func TestUpdateUnknownID(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	err := adapter.Update(store.Players, "nope", store.Document{"wins": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	id, err := adapter.Create(store.Matches, store.Document{"player1_id": "a"})
	require.NoError(t, err)

	require.NoError(t, adapter.Delete(store.Matches, id))

	doc, err := adapter.Get(store.Matches, id)
	require.NoError(t, err)
	assert.Nil(t, doc)

	assert.ErrorIs(t, adapter.Delete(store.Matches, id), store.ErrNotFound)
}

func TestQueryByField(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	_, err := adapter.Create(store.Matches, store.Document{"player1_id": "a", "player2_id": "b"})
	require.NoError(t, err)
	_, err = adapter.Create(store.Matches, store.Document{"player1_id": "c", "player2_id": "a"})
	require.NoError(t, err)
	_, err = adapter.Create(store.Matches, store.Document{"player1_id": "b", "player2_id": "c"})
	require.NoError(t, err)

	docs, err := adapter.Query(store.Matches, "player1_id", "a")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0]["player2_id"])
}

func TestListAllInsertionOrder(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	for _, name := range []string{"first", "second", "third"} {
		_, err := adapter.Create(store.Matches, store.Document{"name": name})
		require.NoError(t, err)
	}

	docs, err := adapter.ListAll(store.Matches, "")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "first", docs[0]["name"])
	assert.Equal(t, "second", docs[1]["name"])
	assert.Equal(t, "third", docs[2]["name"])
}

func TestListAllOrderedByField(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	for _, rank := range []int{3, 1, 2} {
		_, err := adapter.Create(store.Players, store.Document{"rank": rank})
		require.NoError(t, err)
	}

	docs, err := adapter.ListAll(store.Players, "rank")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, float64(1), docs[0]["rank"])
	assert.Equal(t, float64(2), docs[1]["rank"])
	assert.Equal(t, float64(3), docs[2]["rank"])
}

func TestCollectionsAreIsolated(t *testing.T) {
	adapter, teardown := setupTestDB(t)
	defer teardown()

	_, err := adapter.Create(store.Players, store.Document{"name": "Alice"})
	require.NoError(t, err)

	docs, err := adapter.ListAll(store.Matches, "")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

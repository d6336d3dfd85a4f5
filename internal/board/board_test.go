package board_test

import (
	"testing"

	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoard(t *testing.T) (board.Board, *store.Mock) {
	t.Helper()
	mock := store.NewMock()
	b := board.New(mock)
	require.NoError(t, b.Load())
	return b, mock
}

func TestCreateAnnouncement(t *testing.T) {
	b, mock := setupBoard(t)

	ann, err := b.Create(board.NewAnnouncement{
		Title:     "Tournament Saturday",
		Content:   "Sign up at the front desk.",
		Type:      "event",
		Priority:  "high",
		CreatedBy: "admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ann.ID)
	assert.True(t, ann.IsActive)
	assert.NotEmpty(t, ann.CreatedAt)

	doc, err := mock.Get(store.Announcements, ann.ID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Tournament Saturday", doc["title"])
}

func TestListFiltersInactive(t *testing.T) {
	b, _ := setupBoard(t)

	active, err := b.Create(board.NewAnnouncement{Title: "Active"})
	require.NoError(t, err)
	hidden, err := b.Create(board.NewAnnouncement{Title: "Hidden"})
	require.NoError(t, err)
	require.NoError(t, b.SetActive(hidden.ID, false))

	all := b.List(false)
	assert.Len(t, all, 2)

	visible := b.List(true)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)
}

func TestListFiltersExpired(t *testing.T) {
	b, _ := setupBoard(t)

	_, err := b.Create(board.NewAnnouncement{Title: "Old news", ExpiresAt: "2001-01-01T00:00:00Z"})
	require.NoError(t, err)
	fresh, err := b.Create(board.NewAnnouncement{Title: "Still on", ExpiresAt: "2999-01-01T00:00:00Z"})
	require.NoError(t, err)

	visible := b.List(true)
	require.Len(t, visible, 1)
	assert.Equal(t, fresh.ID, visible[0].ID)
}

func TestDeleteAnnouncement(t *testing.T) {
	b, _ := setupBoard(t)

	ann, err := b.Create(board.NewAnnouncement{Title: "Going away"})
	require.NoError(t, err)

	require.NoError(t, b.Delete(ann.ID))
	assert.Empty(t, b.List(false))

	assert.ErrorIs(t, b.Delete(ann.ID), board.ErrNotFound)
}

func TestSetActiveUnknownID(t *testing.T) {
	b, _ := setupBoard(t)

	assert.ErrorIs(t, b.SetActive("ghost", false), board.ErrNotFound)
}

func TestLoadRestoresBoard(t *testing.T) {
	mock := store.NewMock()
	b := board.New(mock)
	require.NoError(t, b.Load())

	_, err := b.Create(board.NewAnnouncement{Title: "Persisted"})
	require.NoError(t, err)

	fresh := board.New(mock)
	require.NoError(t, fresh.Load())
	require.Len(t, fresh.List(false), 1)
	assert.Equal(t, "Persisted", fresh.List(false)[0].Title)
}

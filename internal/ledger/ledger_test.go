package ledger_test

import (
	"testing"

	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/roster"
	"github.com/phantomloop/ttclub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T) (ledger.Ledger, roster.Repository, *store.Mock) {
	t.Helper()
	mock := store.NewMock()
	repo := roster.New(mock)
	require.NoError(t, repo.Load())
	l := ledger.New(mock, repo)
	require.NoError(t, l.Load())
	return l, repo, mock
}

func addPlayers(t *testing.T, repo roster.Repository, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		p, err := repo.AddPlayer(roster.NewPlayer{Name: name})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRecordMatch(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	m, err := l.Record(ledger.NewMatch{
		Player1ID:    ids[0],
		Player2ID:    ids[1],
		Player1Score: 11,
		Player2Score: 5,
		WinnerID:     ids[0],
		MatchDate:    "2026-08-30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "2026-08-30", m.MatchDate)
	assert.Equal(t, "Alice", m.Player1Name)
	assert.Equal(t, "Bob", m.Player2Name)
	assert.Equal(t, "Alice", m.WinnerName)
}

func TestRecordValidation(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	cases := []struct {
		name   string
		nm     ledger.NewMatch
		reason string
	}{
		{
			name:   "missing winner",
			nm:     ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[1]},
			reason: ledger.ReasonMissingPlayer,
		},
		{
			name:   "same player twice",
			nm:     ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[0], WinnerID: ids[0]},
			reason: ledger.ReasonSamePlayer,
		},
		{
			name:   "winner is a bystander",
			nm:     ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[1], WinnerID: "someone-else"},
			reason: ledger.ReasonWinnerNotPlayer,
		},
		{
			name:   "unknown player",
			nm:     ledger.NewMatch{Player1ID: ids[0], Player2ID: "ghost", WinnerID: "ghost"},
			reason: ledger.ReasonUnknownPlayer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.Record(tc.nm)
			var ve *ledger.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}
	assert.Empty(t, l.List())
}

func TestRecordClampsNegativeScores(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	m, err := l.Record(ledger.NewMatch{
		Player1ID:    ids[0],
		Player2ID:    ids[1],
		Player1Score: -3,
		Player2Score: 11,
		WinnerID:     ids[1],
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Player1Score)
	assert.Equal(t, 11, m.Player2Score)
}

func TestRecordCoercesInvalidScores(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	// Scores arrive untyped from JSON payloads. Garbage coerces to 0, the
	// match still goes through.
	m, err := l.Record(ledger.NewMatch{
		Player1ID:    ids[0],
		Player2ID:    ids[1],
		Player1Score: "garbage",
		Player2Score: float64(11),
		WinnerID:     ids[1],
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Player1Score)
	assert.Equal(t, 11, m.Player2Score)

	m, err = l.Record(ledger.NewMatch{
		Player1ID:    ids[0],
		Player2ID:    ids[1],
		Player1Score: "9",
		Player2Score: nil,
		WinnerID:     ids[0],
	})
	require.NoError(t, err)
	assert.Equal(t, 9, m.Player1Score)
	assert.Equal(t, 0, m.Player2Score)
}

func TestRecordValidatesMatchDate(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	_, err := l.Record(ledger.NewMatch{
		Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0],
		MatchDate: "not-a-date",
	})
	var ve *ledger.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ledger.ReasonBadDate, ve.Reason)
	assert.Empty(t, l.List())

	// Full timestamps are trimmed to their calendar date.
	m, err := l.Record(ledger.NewMatch{
		Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0],
		MatchDate: "2026-08-30T18:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", m.MatchDate)
}

func TestRecordToleratesNumericIDs(t *testing.T) {
	mock := store.NewMock()
	require.NoError(t, mock.Put(store.Players, "7", store.Document{"id": "7", "name": "Legacy"}))
	require.NoError(t, mock.Put(store.Players, "8", store.Document{"id": "8", "name": "Import"}))
	repo := roster.New(mock)
	require.NoError(t, repo.Load())
	l := ledger.New(mock, repo)
	require.NoError(t, l.Load())

	m, err := l.Record(ledger.NewMatch{
		Player1ID: 7,
		Player2ID: float64(8),
		WinnerID:  "7",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", m.Player1ID)
	assert.Equal(t, "8", m.Player2ID)
	assert.Equal(t, "7", m.WinnerID)
}

func TestListOrdersByMatchDateDescending(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	for _, date := range []string{"2026-08-10", "2026-08-30", "2026-08-20"} {
		_, err := l.Record(ledger.NewMatch{
			Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0], MatchDate: date,
		})
		require.NoError(t, err)
	}

	list := l.List()
	require.Len(t, list, 3)
	assert.Equal(t, "2026-08-30", list[0].MatchDate)
	assert.Equal(t, "2026-08-20", list[1].MatchDate)
	assert.Equal(t, "2026-08-10", list[2].MatchDate)

	// Replay order is insertion order, not display order.
	stored := l.ListInStoredOrder()
	assert.Equal(t, "2026-08-10", stored[0].MatchDate)
	assert.Equal(t, "2026-08-30", stored[1].MatchDate)
	assert.Equal(t, "2026-08-20", stored[2].MatchDate)
}

func TestDeleteMatch(t *testing.T) {
	l, repo, mock := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	m, err := l.Record(ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0]})
	require.NoError(t, err)

	assert.True(t, l.Delete(m.ID))
	assert.Empty(t, l.List())
	doc, err := mock.Get(store.Matches, m.ID)
	require.NoError(t, err)
	assert.Nil(t, doc)

	assert.False(t, l.Delete(m.ID))
}

func TestDeleteByPlayer(t *testing.T) {
	l, repo, _ := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob", "Cara")

	_, err := l.Record(ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0]})
	require.NoError(t, err)
	_, err = l.Record(ledger.NewMatch{Player1ID: ids[1], Player2ID: ids[2], WinnerID: ids[2]})
	require.NoError(t, err)
	_, err = l.Record(ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[2], WinnerID: ids[0]})
	require.NoError(t, err)

	removed := l.DeleteByPlayer(ids[1])
	assert.Equal(t, 2, removed)

	remaining := l.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[0], remaining[0].Player1ID)
	assert.Equal(t, ids[2], remaining[0].Player2ID)
}

func TestClear(t *testing.T) {
	l, repo, mock := setupLedger(t)
	ids := addPlayers(t, repo, "Alice", "Bob")

	_, err := l.Record(ledger.NewMatch{Player1ID: ids[0], Player2ID: ids[1], WinnerID: ids[0]})
	require.NoError(t, err)
	_, err = l.Record(ledger.NewMatch{Player1ID: ids[1], Player2ID: ids[0], WinnerID: ids[1]})
	require.NoError(t, err)

	require.NoError(t, l.Clear())
	assert.Empty(t, l.List())

	docs, err := mock.ListAll(store.Matches, "")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

package ledger

import "github.com/phantomloop/ttclub/internal/club"

// Ledger owns the in-memory match list and mirrors it to the store. Matches
// are immutable once recorded; the only mutations are deletion and bulk clear.
type Ledger interface {
	// Load refreshes the in-memory list from the store.
	Load() error
	// Record validates and persists a new result. The returned match carries
	// denormalized player and winner names for display. Stat application is
	// the caller's contract (see processor.RecordMatch).
	Record(nm NewMatch) (*club.Match, error)
	// Delete removes a match. It does not reverse the statistics the match
	// previously caused; RecalculateAllFromHistory is the repair path.
	Delete(id any) bool
	// DeleteByPlayer removes every match referencing the player as player1,
	// player2 or winner, returning how many were removed.
	DeleteByPlayer(playerID string) int
	// Clear empties the ledger.
	Clear() error
	// List returns a snapshot ordered by descending match date.
	List() []*club.Match
	// ListInStoredOrder returns a snapshot in insertion order, as needed for
	// history replay.
	ListInStoredOrder() []*club.Match
}

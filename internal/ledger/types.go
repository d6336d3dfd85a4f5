package ledger

import (
	"sync"

	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/store"
)

// ValidationError reports a malformed match submission. Each failed check
// carries its own reason; nothing is mutated when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid match: " + e.Reason
}

// Validation reasons, in check order.
const (
	ReasonMissingPlayer   = "player1, player2 and winner are all required"
	ReasonSamePlayer      = "a player cannot play against themselves"
	ReasonWinnerNotPlayer = "winner must be one of the two players"
	ReasonUnknownPlayer   = "both players must exist in the roster"
	ReasonBadDate         = "match_date must be a YYYY-MM-DD date"
)

// NewMatch carries a match submission. Ids and scores may arrive in any
// scalar form; both are normalized before validation. Non-numeric scores
// coerce to 0, the date must parse or be empty.
type NewMatch struct {
	Player1ID    any    `json:"player1_id"`
	Player2ID    any    `json:"player2_id"`
	Player1Score any    `json:"player1_score"`
	Player2Score any    `json:"player2_score"`
	WinnerID     any    `json:"winner_id"`
	MatchDate    string `json:"match_date"`
}

// PlayerResolver is the slice of the roster the ledger needs for validation
// and name denormalization.
type PlayerResolver interface {
	GetByID(id any) *club.Player
}

// ledger is the in-memory match list mirrored to the store.
type ledger struct {
	store    store.Adapter
	resolver PlayerResolver
	mu       sync.RWMutex
	matches  []*club.Match
}

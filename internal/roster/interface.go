package roster

import "github.com/phantomloop/ttclub/internal/club"

// Repository owns the in-memory player list and mirrors every mutation to the
// store. Reads are served from memory; the store is the durable backing.
type Repository interface {
	// Load refreshes the in-memory list from the store.
	Load() error
	// AddPlayer registers a player with zeroed stats and attendance seeded to
	// Present today. The requested rank uses insertion semantics: players at
	// or below it shift down one place. Post-commit hooks fire afterwards.
	AddPlayer(np NewPlayer) (*club.Player, error)
	// UpdatePlayer merges partial fields into the player. When the merge
	// leaves both wins and losses set and win_rate was not supplied, the win
	// rate is recomputed. Returns ErrNotFound for an unknown id.
	UpdatePlayer(id any, fields map[string]any) (*club.Player, error)
	// DeletePlayer removes the player from the roster and the store and
	// returns the removed record. Match cascade and rerank are the caller's
	// contract (see processor.DeletePlayer).
	DeletePlayer(id any) (*club.Player, error)
	// GetByID returns the player or nil. Id comparison is type-tolerant:
	// values are normalized to the canonical string form first.
	GetByID(id any) *club.Player
	// List returns a snapshot ordered by ascending rank.
	List() []*club.Player
	// Players returns the live records for the ranking engine to mutate.
	Players() []*club.Player
	// SaveStats re-persists a player's derived fields after recomputation.
	SaveStats(p *club.Player) error
	// SavePlayer re-persists the full player record.
	SavePlayer(p *club.Player) error
	// OnPlayerCreated registers a post-commit hook invoked after a successful
	// AddPlayer. Hooks run fire-and-forget; their failures never surface to
	// the caller of AddPlayer.
	OnPlayerCreated(hook PlayerCreatedHook)
}

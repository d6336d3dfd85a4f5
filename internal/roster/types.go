package roster

import (
	"errors"
	"sync"

	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/store"
)

// ErrNotFound is returned when an operation names an unknown player id.
var ErrNotFound = errors.New("player not found")

// NewPlayer carries the registration input. The credential fields ride along
// for the account-creation and welcome-notification collaborators; the roster
// itself only persists the player record.
type NewPlayer struct {
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// PlayerCreatedHook observes successful registrations.
type PlayerCreatedHook func(player club.Player, input NewPlayer)

// repository is the in-memory roster mirrored to the store.
type repository struct {
	store   store.Adapter
	mu      sync.RWMutex
	players []*club.Player
	hooks   []PlayerCreatedHook
}

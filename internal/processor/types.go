package processor

import (
	"github.com/phantomloop/ttclub/internal/auth"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/events"
	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/metrics"
	"github.com/phantomloop/ttclub/internal/ranking"
	"github.com/phantomloop/ttclub/internal/roster"
)

// Processor coordinates the repositories, the ranking engine and the store
// around each public mutation: mutate, persist, recompute derived state,
// re-persist, signal. There is no transaction across the store writes; the
// designed recovery path for drift is Recalculate.
type Processor struct {
	roster  roster.Repository
	ledger  ledger.Ledger
	board   board.Board
	auth    *auth.Service
	metrics metrics.Metrics
	bus     events.Bus
}

// RecalcReport summarizes a full history replay.
type RecalcReport struct {
	Players int                    `json:"players"`
	Matches int                    `json:"matches"`
	Skipped []ranking.SkippedMatch `json:"skipped,omitempty"`
}

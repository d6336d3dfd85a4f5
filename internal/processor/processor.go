package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/auth"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/events"
	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/metrics"
	"github.com/phantomloop/ttclub/internal/ranking"
	"github.com/phantomloop/ttclub/internal/roster"
	"github.com/phantomloop/ttclub/internal/store"
)

// New creates a new Processor.
func New(r roster.Repository, l ledger.Ledger, b board.Board, a *auth.Service, m metrics.Metrics, bus events.Bus) *Processor {
	return &Processor{
		roster:  r,
		ledger:  l,
		board:   b,
		auth:    a,
		metrics: m,
		bus:     bus,
	}
}

// LoadAll refreshes every in-memory collection from the store and signals
// data-loaded once complete.
func (p *Processor) LoadAll() error {
	if err := p.roster.Load(); err != nil {
		return err
	}
	if err := p.ledger.Load(); err != nil {
		return err
	}
	if err := p.board.Load(); err != nil {
		return err
	}
	if err := p.bus.SendMessage(events.TopicDataLoaded, events.Change{Op: "loaded"}); err != nil {
		log.Error("Failed to signal data loaded", "error", err)
	}
	return nil
}

// AddPlayer registers a player and creates their login account. The rank the
// caller supplies is advisory: insertion semantics now, superseded by the
// next full rerank. The welcome notification fires through the roster's
// post-commit hook, not here.
func (p *Processor) AddPlayer(np roster.NewPlayer) (*club.Player, error) {
	player, err := p.roster.AddPlayer(np)
	if err != nil {
		return nil, err
	}

	if np.Username != "" {
		if err := p.auth.CreateAccount(np.Username, np.Email, np.Password, player.ID); err != nil {
			log.Error("Failed to create account for new player", "error", err, "playerID", player.ID)
		}
	}

	p.metrics.IncPlayersCreated()
	p.signalChange(store.Players, "create", player.ID)
	return player, nil
}

// UpdatePlayer merges administrative edits. Edits that touch wins or losses
// trigger a full rerank.
func (p *Processor) UpdatePlayer(id any, fields map[string]any) (*club.Player, error) {
	player, err := p.roster.UpdatePlayer(id, fields)
	if err != nil {
		return nil, err
	}

	_, winsTouched := fields["wins"]
	_, lossesTouched := fields["losses"]
	if winsTouched || lossesTouched {
		p.rerankAndPersist()
	}

	p.signalChange(store.Players, "update", player.ID)
	return player, nil
}

// DeletePlayer removes the player, cascades deletion of every match
// referencing them, and reranks the remaining roster.
func (p *Processor) DeletePlayer(id any) (*club.Player, error) {
	removed, err := p.roster.DeletePlayer(id)
	if err != nil {
		return nil, err
	}

	p.ledger.DeleteByPlayer(removed.ID)
	p.rerankAndPersist()
	p.signalChange(store.Players, "delete", removed.ID)
	return removed, nil
}

// RecordMatch validates and persists the result, applies it to both players,
// and reranks. The two player writes are not transactional with the match
// write; Recalculate repairs any divergence.
func (p *Processor) RecordMatch(nm ledger.NewMatch) (*club.Match, error) {
	match, err := p.ledger.Record(nm)
	if err != nil {
		return nil, err
	}

	p1 := p.roster.GetByID(match.Player1ID)
	p2 := p.roster.GetByID(match.Player2ID)
	if p1 == nil || p2 == nil {
		// The match is already persisted; a recalculation pass folds it in
		// once the roster is consistent again.
		log.Warn("Skipping stats update for match with unresolved player", "matchID", match.ID, "player1ID", match.Player1ID, "player2ID", match.Player2ID)
	} else {
		ranking.ApplyMatchResult(p1, p2, match.WinnerID)
		if err := p.roster.SaveStats(p1); err != nil {
			log.Error("Failed to persist winner-side stats", "error", err, "playerID", p1.ID)
		}
		if err := p.roster.SaveStats(p2); err != nil {
			log.Error("Failed to persist loser-side stats", "error", err, "playerID", p2.ID)
		}
	}

	p.rerankAndPersist()
	p.metrics.IncMatchesRecorded()
	p.signalChange(store.Matches, "create", match.ID)
	return match, nil
}

// DeleteMatch removes the match without reversing the statistics it caused.
func (p *Processor) DeleteMatch(id any) bool {
	deleted := p.ledger.Delete(id)
	if deleted {
		p.signalChange(store.Matches, "delete", club.NormalizeID(id))
	}
	return deleted
}

// ClearMatches empties the ledger, zeroes every player's derived stats and
// reranks.
func (p *Processor) ClearMatches() error {
	if err := p.ledger.Clear(); err != nil {
		return err
	}

	for _, player := range p.roster.Players() {
		player.Wins = 0
		player.Losses = 0
		player.CurrentStreak = 0
		player.WinRate = 0
	}
	p.rerankAndPersist()
	p.signalChange(store.Matches, "clear", "")
	return nil
}

// Recalculate zeroes all derived stats and replays the full match history in
// stored order. Matches referencing missing players are skipped and reported.
// This is the designed recovery path for store/memory drift.
func (p *Processor) Recalculate() (*RecalcReport, error) {
	start := time.Now()

	players := p.roster.Players()
	matches := p.ledger.ListInStoredOrder()
	skipped := ranking.RecalculateAllFromHistory(players, matches)
	for _, s := range skipped {
		log.Warn("Skipped match during replay: player missing from roster", "matchID", s.MatchID, "playerID", s.PlayerID)
	}

	for _, player := range players {
		if err := p.roster.SaveStats(player); err != nil {
			log.Error("Failed to persist recalculated stats", "error", err, "playerID", player.ID)
		}
	}

	p.metrics.IncRerankRuns()
	p.metrics.AddReplaySkipped(len(skipped))
	p.metrics.ObserveRecalcDuration(time.Since(start).Seconds())
	p.signalChange(store.Players, "recalculate", "")

	log.Info("Recalculation complete", "players", len(players), "matches", len(matches), "skipped", len(skipped))
	return &RecalcReport{
		Players: len(players),
		Matches: len(matches),
		Skipped: skipped,
	}, nil
}

// Auth exposes the credential service to the transport layer.
func (p *Processor) Auth() *auth.Service {
	return p.auth
}

// Matches returns the ledger snapshot in display order.
func (p *Processor) Matches() []*club.Match {
	return p.ledger.List()
}

func (p *Processor) rerankAndPersist() {
	players := p.roster.Players()
	ranking.ReRank(players)
	for _, player := range players {
		if err := p.roster.SaveStats(player); err != nil {
			log.Error("Failed to persist rank", "error", err, "playerID", player.ID)
		}
	}
	p.metrics.IncRerankRuns()
}

func (p *Processor) signalChange(collection, op, id string) {
	if err := p.bus.SendMessage(events.TopicDataChanged, events.Change{Collection: collection, Op: op, ID: id}); err != nil {
		log.Error("Failed to signal data change", "error", err, "collection", collection, "op", op)
	}
}

package roster

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/ranking"
	"github.com/phantomloop/ttclub/internal/store"
)

// New creates a Repository backed by the given store adapter.
func New(adapter store.Adapter) Repository {
	return &repository{
		store: adapter,
	}
}

func (r *repository) Load() error {
	docs, err := r.store.ListAll(store.Players, "")
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	players := make([]*club.Player, 0, len(docs))
	for _, doc := range docs {
		var p club.Player
		if err := store.Unmarshal(doc, &p); err != nil {
			log.Error("Failed to decode player document", "error", err, "id", doc["id"])
			continue
		}
		p.ID = club.NormalizeID(p.ID)
		players = append(players, &p)
	}

	r.mu.Lock()
	r.players = players
	r.mu.Unlock()

	log.Info("Players loaded from store", "count", len(players))
	return nil
}

func (r *repository) AddPlayer(np NewPlayer) (*club.Player, error) {
	now := time.Now()
	today := now.Format(club.DateFormat)

	r.mu.Lock()
	rank := np.Rank
	if rank <= 0 {
		rank = len(r.players) + 1
	}

	player := &club.Player{
		Name:             np.Name,
		Rank:             rank,
		AttendanceStatus: club.AttendancePresent,
		LastSeen:         today,
		History:          map[string]string{today: club.AttendancePresent},
		CreatedAt:        now.Format(time.RFC3339),
	}

	doc, err := store.Marshal(player)
	if err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("failed to encode player: %w", err)
	}
	id, err := r.store.Create(store.Players, doc)
	if err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("failed to persist player: %w", err)
	}
	player.ID = id

	// Insertion semantics: everyone at or below the requested rank moves
	// down one place. The next full rerank supersedes all of this.
	for _, p := range r.players {
		if p.Rank >= rank {
			p.Rank++
			if err := r.store.Update(store.Players, p.ID, store.Document{"rank": p.Rank}); err != nil {
				log.Error("Failed to persist shifted rank", "error", err, "playerID", p.ID)
			}
		}
	}
	r.players = append(r.players, player)
	created := *player
	hooks := append([]PlayerCreatedHook(nil), r.hooks...)
	r.mu.Unlock()

	log.Info("Player registered", "playerID", created.ID, "name", created.Name, "rank", created.Rank)

	for _, hook := range hooks {
		go hook(created, np)
	}

	return player, nil
}

func (r *repository) UpdatePlayer(id any, fields map[string]any) (*club.Player, error) {
	nid := club.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.findLocked(nid)
	if player == nil {
		return nil, ErrNotFound
	}

	doc, err := store.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("failed to encode player: %w", err)
	}
	_, winRateSupplied := fields["win_rate"]
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = nid

	var updated club.Player
	if err := store.Unmarshal(doc, &updated); err != nil {
		return nil, fmt.Errorf("invalid player fields: %w", err)
	}
	if !winRateSupplied {
		updated.WinRate = ranking.WinRate(updated.Wins, updated.Losses)
		fields = cloneFields(fields)
		fields["win_rate"] = updated.WinRate
	}

	if err := r.store.Update(store.Players, nid, fields); err != nil {
		return nil, fmt.Errorf("failed to persist player update: %w", err)
	}

	*player = updated
	return player, nil
}

func (r *repository) DeletePlayer(id any) (*club.Player, error) {
	nid := club.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == nid {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	removed := r.players[idx]
	if err := r.store.Delete(store.Players, nid); err != nil && err != store.ErrNotFound {
		return nil, fmt.Errorf("failed to delete player: %w", err)
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)

	log.Info("Player deleted", "playerID", nid, "name", removed.Name)
	return removed, nil
}

func (r *repository) GetByID(id any) *club.Player {
	nid := club.NormalizeID(id)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(nid)
}

func (r *repository) List() []*club.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*club.Player, len(r.players))
	copy(out, r.players)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

func (r *repository) Players() []*club.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*club.Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *repository) SaveStats(p *club.Player) error {
	partial := store.Document{
		"rank":           p.Rank,
		"wins":           p.Wins,
		"losses":         p.Losses,
		"current_streak": p.CurrentStreak,
		"win_rate":       p.WinRate,
	}
	if err := r.store.Update(store.Players, p.ID, partial); err != nil {
		return fmt.Errorf("failed to persist stats for player %s: %w", p.ID, err)
	}
	return nil
}

func (r *repository) SavePlayer(p *club.Player) error {
	doc, err := store.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player: %w", err)
	}
	if err := r.store.Update(store.Players, p.ID, doc); err != nil {
		return fmt.Errorf("failed to persist player %s: %w", p.ID, err)
	}
	return nil
}

func (r *repository) OnPlayerCreated(hook PlayerCreatedHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, hook)
}

func (r *repository) findLocked(id string) *club.Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	return out
}

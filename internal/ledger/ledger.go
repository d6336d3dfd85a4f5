package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/store"
)

// New creates a Ledger backed by the given store adapter. The resolver is
// consulted for validation and display names.
func New(adapter store.Adapter, resolver PlayerResolver) Ledger {
	return &ledger{
		store:    adapter,
		resolver: resolver,
	}
}

func (l *ledger) Load() error {
	docs, err := l.store.ListAll(store.Matches, "")
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	matches := make([]*club.Match, 0, len(docs))
	for _, doc := range docs {
		var m club.Match
		if err := store.Unmarshal(doc, &m); err != nil {
			log.Error("Failed to decode match document", "error", err, "id", doc["id"])
			continue
		}
		matches = append(matches, &m)
	}

	l.mu.Lock()
	l.matches = matches
	l.mu.Unlock()

	log.Info("Matches loaded from store", "count", len(matches))
	return nil
}

func (l *ledger) Record(nm NewMatch) (*club.Match, error) {
	p1ID := club.NormalizeID(nm.Player1ID)
	p2ID := club.NormalizeID(nm.Player2ID)
	winnerID := club.NormalizeID(nm.WinnerID)

	if p1ID == "" || p2ID == "" || winnerID == "" {
		return nil, &ValidationError{Reason: ReasonMissingPlayer}
	}
	if p1ID == p2ID {
		return nil, &ValidationError{Reason: ReasonSamePlayer}
	}
	if winnerID != p1ID && winnerID != p2ID {
		return nil, &ValidationError{Reason: ReasonWinnerNotPlayer}
	}
	p1 := l.resolver.GetByID(p1ID)
	p2 := l.resolver.GetByID(p2ID)
	if p1 == nil || p2 == nil {
		return nil, &ValidationError{Reason: ReasonUnknownPlayer}
	}

	now := time.Now()
	matchDate, ok := normalizeMatchDate(nm.MatchDate, now)
	if !ok {
		return nil, &ValidationError{Reason: ReasonBadDate}
	}

	match := &club.Match{
		Player1ID:    p1ID,
		Player2ID:    p2ID,
		Player1Score: club.NormalizeScore(nm.Player1Score),
		Player2Score: club.NormalizeScore(nm.Player2Score),
		WinnerID:     winnerID,
		MatchDate:    matchDate,
		CreatedAt:    now.Format(time.RFC3339),
	}

	doc, err := store.Marshal(match)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match: %w", err)
	}
	id, err := l.store.Create(store.Matches, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to persist match: %w", err)
	}
	match.ID = id

	match.Player1Name = p1.Name
	match.Player2Name = p2.Name
	if winnerID == p1ID {
		match.WinnerName = p1.Name
	} else {
		match.WinnerName = p2.Name
	}

	l.mu.Lock()
	l.matches = append(l.matches, match)
	l.mu.Unlock()

	log.Info("Match recorded", "matchID", id, "player1", p1.Name, "player2", p2.Name, "winner", match.WinnerName)
	return match, nil
}

// normalizeMatchDate pins submitted dates to the canonical YYYY-MM-DD form
// so the descending-date ordering in List stays lexicographic-safe. Empty
// means today; RFC3339 timestamps keep their date part.
func normalizeMatchDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(club.DateFormat), true
	}
	if t, err := time.Parse(club.DateFormat, raw); err == nil {
		return t.Format(club.DateFormat), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(club.DateFormat), true
	}
	return "", false
}

func (l *ledger) Delete(id any) bool {
	nid := club.NormalizeID(id)

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, m := range l.matches {
		if m.ID == nid {
			if err := l.store.Delete(store.Matches, nid); err != nil && err != store.ErrNotFound {
				log.Error("Failed to delete match from store", "error", err, "matchID", nid)
				return false
			}
			l.matches = append(l.matches[:i], l.matches[i+1:]...)
			log.Info("Match deleted", "matchID", nid)
			return true
		}
	}
	return false
}

func (l *ledger) DeleteByPlayer(playerID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.matches[:0]
	removed := 0
	for _, m := range l.matches {
		if !m.Involves(playerID) {
			kept = append(kept, m)
			continue
		}
		if err := l.store.Delete(store.Matches, m.ID); err != nil && err != store.ErrNotFound {
			log.Error("Failed to delete cascaded match from store", "error", err, "matchID", m.ID)
		}
		removed++
	}
	l.matches = kept

	if removed > 0 {
		log.Info("Cascaded match deletion", "playerID", playerID, "removed", removed)
	}
	return removed
}

func (l *ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.matches {
		if err := l.store.Delete(store.Matches, m.ID); err != nil && err != store.ErrNotFound {
			return fmt.Errorf("failed to clear match %s: %w", m.ID, err)
		}
	}
	l.matches = nil

	log.Info("Ledger cleared")
	return nil
}

func (l *ledger) List() []*club.Match {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*club.Match, len(l.matches))
	copy(out, l.matches)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchDate > out[j].MatchDate })
	return out
}

func (l *ledger) ListInStoredOrder() []*club.Match {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*club.Match, len(l.matches))
	copy(out, l.matches)
	return out
}

// Package ranking holds the pure recomputation rules that turn a stream of
// match results into consistent win/loss/streak/rank state. Nothing in here
// touches the store; callers persist what these functions mutate.
package ranking

import (
	"sort"

	"github.com/phantomloop/ttclub/internal/club"
)

// WinRate returns wins/(wins+losses)*100, or 0 when no games were played.
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// ApplyMatchResult applies a single result to both participants. The winner's
// streak resets any loss run to zero before incrementing; the loser's streak
// resets any win run symmetrically. Win rates are recomputed for both.
func ApplyMatchResult(p1, p2 *club.Player, winnerID string) {
	if winnerID == p1.ID {
		p1.Wins++
		p2.Losses++
		p1.CurrentStreak = max(0, p1.CurrentStreak) + 1
		p2.CurrentStreak = min(0, p2.CurrentStreak) - 1
	} else {
		p2.Wins++
		p1.Losses++
		p2.CurrentStreak = max(0, p2.CurrentStreak) + 1
		p1.CurrentStreak = min(0, p1.CurrentStreak) - 1
	}

	p1.WinRate = WinRate(p1.Wins, p1.Losses)
	p2.WinRate = WinRate(p2.Wins, p2.Losses)
}

// ReRank assigns a dense 1..N rank over all players, ordered by win rate
// descending, then total games descending, then wins descending, then losses
// ascending. Residual ties keep their current order.
func ReRank(players []*club.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.Games() != b.Games() {
			return a.Games() > b.Games()
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Losses < b.Losses
	})
	for i, p := range players {
		p.Rank = i + 1
	}
}

// SkippedMatch reports a match that could not be replayed because it
// references a player no longer in the roster. Non-fatal.
type SkippedMatch struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
}

// RecalculateAllFromHistory zeroes every player's derived stats, replays all
// matches in stored order and reranks. Matches referencing unknown players are
// skipped and reported. Running it twice in a row yields identical results.
func RecalculateAllFromHistory(players []*club.Player, matches []*club.Match) []SkippedMatch {
	byID := make(map[string]*club.Player, len(players))
	for _, p := range players {
		p.Wins = 0
		p.Losses = 0
		p.CurrentStreak = 0
		p.WinRate = 0
		byID[p.ID] = p
	}

	var skipped []SkippedMatch
	for _, m := range matches {
		p1, ok1 := byID[m.Player1ID]
		p2, ok2 := byID[m.Player2ID]
		if !ok1 {
			skipped = append(skipped, SkippedMatch{MatchID: m.ID, PlayerID: m.Player1ID})
			continue
		}
		if !ok2 {
			skipped = append(skipped, SkippedMatch{MatchID: m.ID, PlayerID: m.Player2ID})
			continue
		}
		ApplyMatchResult(p1, p2, m.WinnerID)
	}

	ReRank(players)
	return skipped
}

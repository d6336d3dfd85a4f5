package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/database"
	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/ranking"
	"github.com/phantomloop/ttclub/internal/roster"
	"github.com/phantomloop/ttclub/internal/store"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "seed.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	adapter := store.New(db)
	rosterRepo := roster.New(adapter)
	if err := rosterRepo.Load(); err != nil {
		log.Fatalf("Failed to load roster: %s", err)
	}
	matchLedger := ledger.New(adapter, rosterRepo)
	if err := matchLedger.Load(); err != nil {
		log.Fatalf("Failed to load ledger: %s", err)
	}

	names := []string{"Alice Chen", "Bruno Costa", "Carla Novak", "Dmitri Orlov", "Emma Lindqvist", "Felix Braun", "Grace Okafor", "Henrik Dahl"}
	players := make([]*club.Player, 0, len(names))
	for i, name := range names {
		p, err := rosterRepo.AddPlayer(roster.NewPlayer{
			Name:     name,
			Username: fmt.Sprintf("seed-player-%d", i+1),
		})
		if err != nil {
			log.Fatalf("Failed to seed player %s: %s", name, err)
		}
		players = append(players, p)
	}
	log.Info("Seeded players.", "count", len(players))

	const numMatches = 200

	log.Info("Recording dummy matches...", "total", numMatches)
	startTime := time.Now()

	for i := 0; i < numMatches; i++ {
		p1 := players[rand.Intn(len(players))]
		p2 := players[rand.Intn(len(players))]
		for p2.ID == p1.ID {
			p2 = players[rand.Intn(len(players))]
		}

		loserScore := rand.Intn(10)
		winner := p1
		score1, score2 := 11, loserScore
		if rand.Intn(2) == 1 {
			winner = p2
			score1, score2 = loserScore, 11
		}
		matchDate := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		if _, err := matchLedger.Record(ledger.NewMatch{
			Player1ID:    p1.ID,
			Player2ID:    p2.ID,
			Player1Score: score1,
			Player2Score: score2,
			WinnerID:     winner.ID,
			MatchDate:    matchDate.Format(club.DateFormat),
		}); err != nil {
			log.Fatalf("Failed to record match %d: %s", i+1, err)
		}
	}
	log.Info("Matches recorded.", "duration", time.Since(startTime))

	skipped := ranking.RecalculateAllFromHistory(rosterRepo.Players(), matchLedger.ListInStoredOrder())
	if len(skipped) > 0 {
		log.Warn("Some matches were skipped during recalculation", "count", len(skipped))
	}
	for _, p := range rosterRepo.Players() {
		if err := rosterRepo.SaveStats(p); err != nil {
			log.Fatalf("Failed to persist stats for %s: %s", p.Name, err)
		}
	}

	log.Info("Seeding complete.", "players", len(players), "matches", numMatches)
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/attendance"
	"github.com/phantomloop/ttclub/internal/auth"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/config"
	"github.com/phantomloop/ttclub/internal/database"
	"github.com/phantomloop/ttclub/internal/events"
	server "github.com/phantomloop/ttclub/internal/http"
	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/metrics"
	"github.com/phantomloop/ttclub/internal/notifier/slack"
	"github.com/phantomloop/ttclub/internal/processor"
	"github.com/phantomloop/ttclub/internal/roster"
	"github.com/phantomloop/ttclub/internal/store"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	adapter := store.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, cfg.ClubName, metricsSvc)
	bus := events.New(cfg.ProjectID)

	rosterRepo := roster.New(adapter)
	matchLedger := ledger.New(adapter, rosterRepo)
	announcementBoard := board.New(adapter)
	authSvc := auth.New(adapter)
	tracker := attendance.New(rosterRepo)
	proc := processor.New(rosterRepo, matchLedger, announcementBoard, authSvc, metricsSvc, bus)

	// Welcome messages fire after the roster commit; a Slack failure never
	// rolls back the new player.
	rosterRepo.OnPlayerCreated(func(p club.Player, np roster.NewPlayer) {
		if np.Email == "" && np.Username == "" {
			return
		}
		if err := notifier.SendWelcome(np.Email, p.Name, np.Username, np.Password, false); err != nil {
			log.Error("Failed to send welcome message", "playerID", p.ID, "error", err)
		}
	})

	if err := authSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("Failed to ensure admin account: %s", err)
	}
	if err := proc.LoadAll(); err != nil {
		log.Fatalf("Failed to load club state: %s", err)
	}

	s := server.NewServer(
		rosterRepo,
		announcementBoard,
		tracker,
		proc,
		notifier,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

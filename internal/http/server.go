package http

import (
	"net/http"

	"github.com/phantomloop/ttclub/internal/attendance"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/config"
	"github.com/phantomloop/ttclub/internal/metrics"
	"github.com/phantomloop/ttclub/internal/notifier"
	"github.com/phantomloop/ttclub/internal/processor"
	"github.com/phantomloop/ttclub/internal/roster"
)

func NewServer(rosterRepo roster.Repository, boardSvc board.Board, tracker *attendance.Tracker, processor *processor.Processor, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Roster:         rosterRepo,
		Board:          boardSvc,
		Attendance:     tracker,
		Processor:      processor,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/login", Chain(s.LoginHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/add", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/update", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/delete", Chain(s.DeletePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/record", Chain(s.RecordMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/delete", Chain(s.DeleteMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/clear", Chain(s.ClearMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/recalculate", Chain(s.RecalculateHandler(), paramsMiddleware))
	s.Router.Handle("/attendance/set", Chain(s.SetAttendanceHandler(), paramsMiddleware))
	s.Router.Handle("/attendance/report", Chain(s.AttendanceReportHandler(), paramsMiddleware))
	s.Router.Handle("/announcements", Chain(s.ListAnnouncementsHandler(), paramsMiddleware))
	s.Router.Handle("/announcements/create", Chain(s.CreateAnnouncementHandler(), paramsMiddleware))
	s.Router.Handle("/announcements/delete", Chain(s.DeleteAnnouncementHandler(), paramsMiddleware))
	s.Router.Handle("/announcements/notify", Chain(s.NotifyAnnouncementHandler(), paramsMiddleware))
	s.Router.Handle("/notify-leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

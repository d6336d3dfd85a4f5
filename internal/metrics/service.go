package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	PlayersCreated     prometheus.Counter
	MatchesRecorded    prometheus.Counter
	RerankRuns         prometheus.Counter
	ReplaySkipped      prometheus.Counter
	RecalcDuration     prometheus.Histogram
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_players_created_total",
			Help: "The total number of players registered.",
		}),
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_matches_recorded_total",
			Help: "The total number of match results recorded.",
		}),
		RerankRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_rerank_runs_total",
			Help: "The total number of full rank recomputations.",
		}),
		ReplaySkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_replay_skipped_matches_total",
			Help: "The total number of matches skipped during history replay because a referenced player was missing.",
		}),
		RecalcDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ttclub_recalculation_duration_seconds",
			Help:    "The duration of full history recalculations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ttclub_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ttclub_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersCreated,
		s.MatchesRecorded,
		s.RerankRuns,
		s.ReplaySkipped,
		s.RecalcDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersCreated() {
	s.PlayersCreated.Inc()
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncRerankRuns() {
	s.RerankRuns.Inc()
}

func (s *Service) AddReplaySkipped(count int) {
	s.ReplaySkipped.Add(float64(count))
}

func (s *Service) ObserveRecalcDuration(seconds float64) {
	s.RecalcDuration.Observe(seconds)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}

package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation
// (e.g., Prometheus).
type Metrics interface {
	IncPlayersCreated()
	IncMatchesRecorded()
	IncRerankRuns()
	AddReplaySkipped(count int)
	ObserveRecalcDuration(seconds float64)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(seconds float64)
}

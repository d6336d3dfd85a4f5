package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock counts calls in memory for tests. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	PlayersCreatedCount  int
	MatchesRecordedCount int
	RerankRunsCount      int
	ReplaySkippedCount   int
	RecalcObservations   []float64
	NotifSentCount       int
	NotifFailedCount     int
	StartupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncPlayersCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersCreatedCount++
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesRecordedCount++
}

func (m *Mock) IncRerankRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RerankRunsCount++
}

func (m *Mock) AddReplaySkipped(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaySkippedCount += count
}

func (m *Mock) ObserveRecalcDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecalcObservations = append(m.RecalcObservations, seconds)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}

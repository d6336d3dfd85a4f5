package notifier

import (
	"sync"

	"github.com/phantomloop/ttclub/internal/club"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendWelcomeFunc      func(email, name, username, password string, dryRun bool) error
	SendLeaderboardFunc  func(players []*club.Player, dryRun bool) error
	SendAnnouncementFunc func(ann *club.Announcement, dryRun bool) error

	// Call records
	SendWelcomeCalls []struct {
		Email    string
		Name     string
		Username string
	}
	SendLeaderboardCalls  [][]*club.Player
	SendAnnouncementCalls []*club.Announcement
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWelcomeCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendAnnouncementCalls = nil
}

func (m *Mock) SendWelcome(email, name, username, password string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWelcomeCalls = append(m.SendWelcomeCalls, struct {
		Email    string
		Name     string
		Username string
	}{email, name, username})
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(email, name, username, password, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(players []*club.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, players)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(players, dryRun)
	}
	return nil
}

func (m *Mock) SendAnnouncement(ann *club.Announcement, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAnnouncementCalls = append(m.SendAnnouncementCalls, ann)
	if m.SendAnnouncementFunc != nil {
		return m.SendAnnouncementFunc(ann, dryRun)
	}
	return nil
}

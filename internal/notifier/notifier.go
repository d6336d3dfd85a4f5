package notifier

import "github.com/phantomloop/ttclub/internal/club"

// Notifier defines a high-level interface for sending notifications about
// business events. This decouples the rest of the application from the
// specific notification provider (e.g., Slack).
type Notifier interface {
	// SendWelcome greets a newly registered player with their credentials.
	// Invoked fire-and-forget after registration; failure never blocks the
	// registration itself.
	SendWelcome(email, name, username, password string, dryRun bool) error
	// SendLeaderboard posts the current standings to the club channel.
	SendLeaderboard(players []*club.Player, dryRun bool) error
	// SendAnnouncement posts a board announcement to the club channel.
	SendAnnouncement(ann *club.Announcement, dryRun bool) error
}

package slack

import (
	"fmt"

	"github.com/phantomloop/ttclub/internal/club"
	"github.com/slack-go/slack"
)

// formatWelcome creates the greeting sent after a player registers.
func (s *Notifier) formatWelcome(email, name, username, password string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏓 Welcome to %s!", s.clubName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s just joined the club.\n> Username: %s\n> Email: %s\n> Temporary password: %s",
		name, username, email, password)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the club standings.
func (s *Notifier) formatLeaderboard(players []*club.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Club Rankings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players yet. Go recruit some!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, p := range players {
		var medal string
		switch p.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		streak := "-"
		if p.CurrentStreak > 0 {
			streak = fmt.Sprintf("W%d", p.CurrentStreak)
		} else if p.CurrentStreak < 0 {
			streak = fmt.Sprintf("L%d", -p.CurrentStreak)
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Win %%: %.1f%% (%d-%d) | Streak: %s",
			p.Rank,
			medal,
			p.Name,
			p.WinRate,
			p.Wins,
			p.Losses,
			streak,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatAnnouncement creates a Slack message for a board announcement.
func (s *Notifier) formatAnnouncement(ann *club.Announcement) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📣 %s", ann.Title), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := ann.Content
	if ann.Priority != "" {
		body = fmt.Sprintf("[%s] %s", ann.Priority, body)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

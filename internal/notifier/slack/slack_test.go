package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metricsMock := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", "Test TTC", metricsMock)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metricsMock.NotifSentCount)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metricsMock := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", "Test TTC", metricsMock)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metricsMock.NotifSentCount)
	assert.Equal(t, 0, metricsMock.NotifFailedCount)
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metricsMock := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", "Test TTC", metricsMock)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metricsMock.NotifSentCount)
	assert.Equal(t, 1, metricsMock.NotifFailedCount)
}

func TestSendLeaderboard_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", "Test TTC", metrics.NewMock())
	players := []*club.Player{
		{ID: "a", Name: "Alice", Rank: 1, Wins: 5, Losses: 1, WinRate: 83.3, CurrentStreak: 3},
		{ID: "b", Name: "Bob", Rank: 2, Wins: 1, Losses: 5, WinRate: 16.7, CurrentStreak: -2},
	}

	err := notifier.SendLeaderboard(players, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
}

func TestFormatLeaderboard(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", "Test TTC", metrics.NewMock())
	players := []*club.Player{
		{ID: "a", Name: "Alice", Rank: 1, Wins: 5, Losses: 1, WinRate: 83.3, CurrentStreak: 3},
	}

	msg := notifier.formatLeaderboard(players)
	require.NotEmpty(t, msg.Blocks.BlockSet)
}

func TestFormatAnnouncement(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", "Test TTC", metrics.NewMock())
	ann := &club.Announcement{Title: "Club night", Content: "Doors at 19:00."}

	msg := notifier.formatAnnouncement(ann)
	require.NotEmpty(t, msg.Blocks.BlockSet)
}

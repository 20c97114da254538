package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/slack-go/slack"
	"github.com/spf13/viper"
)

// SlackNotifier posts events to a Slack channel.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier builds a notifier from viper config and the bot token
// env var. Returns nil when Slack notifications are disabled or the token
// is missing.
func NewSlackNotifier() *SlackNotifier {
	if !viper.GetBool("notifications.slack.enabled") {
		return nil
	}

	botToken := os.Getenv("SLACK_BOT_USER_TOKEN")
	if botToken == "" {
		return nil
	}

	return &SlackNotifier{
		client:  slack.New(botToken),
		channel: viper.GetString("notifications.slack.channel"),
	}
}

// Notify posts the message when the event type is enabled in config.
func (s *SlackNotifier) Notify(ctx context.Context, eventType, message string) error {
	if !viper.GetBool("notifications.slack.events." + eventType) {
		return nil
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	return nil
}

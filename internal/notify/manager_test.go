package notify

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewSlackNotifier_DisabledByDefault(t *testing.T) {
	viper.Reset()
	assert.Nil(t, NewSlackNotifier())
}

func TestNewSlackNotifier_RequiresToken(t *testing.T) {
	viper.Reset()
	viper.Set("notifications.slack.enabled", true)
	t.Setenv("SLACK_BOT_USER_TOKEN", "")

	assert.Nil(t, NewSlackNotifier())
}

func TestNewSlackNotifier_Enabled(t *testing.T) {
	viper.Reset()
	viper.Set("notifications.slack.enabled", true)
	viper.Set("notifications.slack.channel", "#skycast-alerts")
	t.Setenv("SLACK_BOT_USER_TOKEN", "xoxb-test")

	notifier := NewSlackNotifier()
	assert.NotNil(t, notifier)
	assert.Equal(t, "#skycast-alerts", notifier.channel)
}

func TestSlackNotifier_SkipsDisabledEvent(t *testing.T) {
	viper.Reset()
	viper.Set("notifications.slack.enabled", true)
	viper.Set("notifications.slack.events."+EventRequestFailed, false)
	t.Setenv("SLACK_BOT_USER_TOKEN", "xoxb-test")

	notifier := NewSlackNotifier()
	// Disabled event never reaches the Slack API, so no error either.
	assert.NoError(t, notifier.Notify(context.Background(), EventRequestFailed, "boom"))
}

func TestManager_NoProvidersIsSafe(t *testing.T) {
	viper.Reset()
	manager := NewManager()

	assert.NoError(t, manager.Notify(context.Background(), EventRequestFailed, "prediction request failed"))
	assert.NoError(t, manager.Notify(context.Background(), EventAuthFailed, "session rejected"))
}

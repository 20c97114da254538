package notify

import (
	"context"
	"log/slog"
)

// Manager fans events out to the configured providers, falling back to the
// structured log when none are configured. The view layer reports request
// failures here; nothing in this layer is fatal to the process.
type Manager struct {
	slack *SlackNotifier
}

// NewManager creates a Notification Manager from the ambient config.
func NewManager() *Manager {
	return &Manager{slack: NewSlackNotifier()}
}

// Notify delivers the event. Delivery errors are logged, never propagated:
// a broken notification channel must not fail the request it reports on.
func (m *Manager) Notify(ctx context.Context, eventType, message string) error {
	if m.slack != nil {
		if err := m.slack.Notify(ctx, eventType, message); err != nil {
			slog.Error("notification delivery failed", "event", eventType, "error", err)
		}
		return nil
	}

	slog.Warn("request failure", "event", eventType, "message", message)
	return nil
}

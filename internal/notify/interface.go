package notify

import "context"

// Event types
const (
	EventRequestFailed = "on_request_failure"
	EventAuthFailed    = "on_auth_failure"
)

// Notifier is the external channel request failures are reported through.
type Notifier interface {
	Notify(ctx context.Context, eventType, message string) error
}

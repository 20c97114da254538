package session

// Target names a navigable view.
type Target string

const (
	TargetLogin          Target = "login"
	TargetDashboard      Target = "dashboard"
	TargetDelayPredictor Target = "delay-predictor"
	TargetPriceOracle    Target = "price-oracle"
)

// Guard gates navigation on session presence. Redirection to login is the
// normal outcome for an absent session, not a failure.
type Guard struct {
	sessions *Provider
}

// NewGuard wraps the session provider.
func NewGuard(sessions *Provider) *Guard {
	return &Guard{sessions: sessions}
}

// Protected reports whether a target requires an active session.
func (g *Guard) Protected(target Target) bool {
	return target != TargetLogin
}

// Resolve returns the view to render for the requested target. The session
// is re-read on every call, so a sign-out elsewhere is honored on the next
// guarded navigation.
func (g *Guard) Resolve(target Target) Target {
	if !g.Protected(target) {
		return target
	}
	if g.sessions.Current().Valid() {
		return target
	}
	return TargetLogin
}

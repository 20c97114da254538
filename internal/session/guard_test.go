package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_RedirectsWithoutSession(t *testing.T) {
	provider := newTestProvider(t)
	guard := NewGuard(provider)

	for _, target := range []Target{TargetDashboard, TargetDelayPredictor, TargetPriceOracle} {
		assert.Equal(t, TargetLogin, guard.Resolve(target), "target %s", target)
	}

	// Login itself never redirects.
	assert.Equal(t, TargetLogin, guard.Resolve(TargetLogin))
}

func TestGuard_RendersWithSession(t *testing.T) {
	provider := newTestProvider(t)
	require.NoError(t, provider.SignIn("tok-1", "Captain"))
	guard := NewGuard(provider)

	for _, target := range []Target{TargetDashboard, TargetDelayPredictor, TargetPriceOracle} {
		assert.Equal(t, target, guard.Resolve(target), "target %s", target)
	}
}

func TestGuard_ReevaluatesEveryNavigation(t *testing.T) {
	provider := newTestProvider(t)
	require.NoError(t, provider.SignIn("tok-1", "Captain"))
	guard := NewGuard(provider)

	assert.Equal(t, TargetDashboard, guard.Resolve(TargetDashboard))

	// A sign-out elsewhere is honored on the next guarded navigation; the
	// decision is never cached.
	require.NoError(t, provider.SignOut())
	assert.Equal(t, TargetLogin, guard.Resolve(TargetDashboard))
}

func TestGuard_Protected(t *testing.T) {
	guard := NewGuard(newTestProvider(t))

	assert.False(t, guard.Protected(TargetLogin))
	assert.True(t, guard.Protected(TargetDashboard))
	assert.True(t, guard.Protected(TargetPriceOracle))
}

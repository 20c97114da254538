package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/flight"
)

func TestTracker_HappyPath(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, Idle, tr.Phase())
	assert.False(t, tr.Pending())

	ctx, seq := tr.Begin(context.Background())
	require.NoError(t, ctx.Err())
	assert.True(t, tr.Pending())

	applied := tr.Resolve(seq, flight.DelayOutcome(flight.DelayResult{
		Prediction: "ON_TIME", RiskScore: 18,
	}), nil)
	assert.True(t, applied)
	assert.Equal(t, Succeeded, tr.Phase())

	result, ok := tr.Result()
	require.True(t, ok)
	assert.Equal(t, "ON_TIME", result.Delay.Prediction)
	assert.NoError(t, tr.Err())
}

func TestTracker_StaleResponseDiscarded(t *testing.T) {
	tr := NewTracker()

	_, first := tr.Begin(context.Background())
	_, second := tr.Begin(context.Background())

	// The older submission resolving late must not overwrite anything.
	applied := tr.Resolve(first, flight.DelayOutcome(flight.DelayResult{Prediction: "STALE"}), nil)
	assert.False(t, applied)
	assert.True(t, tr.Pending())

	applied = tr.Resolve(second, flight.DelayOutcome(flight.DelayResult{Prediction: "FRESH"}), nil)
	assert.True(t, applied)

	result, ok := tr.Result()
	require.True(t, ok)
	assert.Equal(t, "FRESH", result.Delay.Prediction)
}

func TestTracker_BeginCancelsPrevious(t *testing.T) {
	tr := NewTracker()

	first, _ := tr.Begin(context.Background())
	require.NoError(t, first.Err())

	second, _ := tr.Begin(context.Background())
	assert.ErrorIs(t, first.Err(), context.Canceled)
	assert.NoError(t, second.Err())
}

func TestTracker_BeginClearsPriorResult(t *testing.T) {
	tr := NewTracker()

	_, seq := tr.Begin(context.Background())
	require.True(t, tr.Resolve(seq, flight.PriceOutcome(flight.PriceResult{EstimatedPrice: 389.75}), nil))
	_, ok := tr.Result()
	require.True(t, ok)

	// A fresh submission drops the stale panel immediately, before any
	// response arrives.
	tr.Begin(context.Background())
	_, ok = tr.Result()
	assert.False(t, ok)
	assert.NoError(t, tr.Err())
}

func TestTracker_Failure(t *testing.T) {
	tr := NewTracker()
	boom := errors.New("backend down")

	_, seq := tr.Begin(context.Background())
	require.True(t, tr.Resolve(seq, flight.Result{}, boom))

	assert.Equal(t, Failed, tr.Phase())
	assert.ErrorIs(t, tr.Err(), boom)
	_, ok := tr.Result()
	assert.False(t, ok)
}

func TestTracker_ResolveAfterResolveIgnored(t *testing.T) {
	tr := NewTracker()

	_, seq := tr.Begin(context.Background())
	require.True(t, tr.Resolve(seq, flight.Result{}, errors.New("first")))

	// Only one response per submission ever applies.
	assert.False(t, tr.Resolve(seq, flight.PriceOutcome(flight.PriceResult{}), nil))
	assert.Equal(t, Failed, tr.Phase())
}

func TestTracker_CloseCancelsInFlight(t *testing.T) {
	tr := NewTracker()

	ctx, _ := tr.Begin(context.Background())
	tr.Close()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// Close on an idle tracker is a no-op.
	NewTracker().Close()
}

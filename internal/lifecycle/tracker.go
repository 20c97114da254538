// Package lifecycle tracks the idle/pending/resolved state of a single
// view's prediction submissions.
package lifecycle

import (
	"context"
	"sync"

	"skycast/internal/flight"
)

// Phase is the lifecycle state of the most recent submission.
type Phase int

const (
	// Idle: no request outstanding, no result displayed.
	Idle Phase = iota
	// Pending: a request is in flight; the submit affordance is disabled
	// and any previously displayed result has been cleared.
	Pending
	// Succeeded: the latest request resolved with a result, which persists
	// on screen until superseded by a fresh submission.
	Succeeded
	// Failed: the latest request resolved with an error; the prior result
	// is not restored.
	Failed
)

// Tracker supervises submissions for one view. Each Begin issues a
// monotonically increasing sequence number; a response only applies if its
// sequence is still the latest, so an out-of-order stale response can never
// overwrite a newer submission. Beginning a submission cancels the context
// of the previous one.
type Tracker struct {
	mu     sync.Mutex
	phase  Phase
	seq    uint64
	result flight.Result
	err    error
	cancel context.CancelFunc
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin transitions to Pending, clears the prior result immediately, and
// returns the request context plus the sequence number the eventual
// Resolve must present.
func (t *Tracker) Begin(parent context.Context) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel

	t.seq++
	t.phase = Pending
	t.result = flight.Result{}
	t.err = nil
	return ctx, t.seq
}

// Resolve applies the response for the submission identified by seq. A
// stale sequence number is discarded silently and Resolve reports false.
func (t *Tracker) Resolve(seq uint64, result flight.Result, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq || t.phase != Pending {
		return false
	}
	if err != nil {
		t.phase = Failed
		t.err = err
		return true
	}
	t.phase = Succeeded
	t.result = result
	return true
}

// Phase returns the current lifecycle phase.
func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Pending reports whether a request is outstanding; the UI disables the
// submit affordance while this holds.
func (t *Tracker) Pending() bool {
	return t.Phase() == Pending
}

// Result returns the authoritative result; ok is false unless the latest
// submission succeeded.
func (t *Tracker) Result() (flight.Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.phase == Succeeded
}

// Err returns the failure of the latest submission, if any.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != Failed {
		return nil
	}
	return t.err
}

// Close cancels any in-flight request; an abandoned response is discarded
// by the sequence check.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

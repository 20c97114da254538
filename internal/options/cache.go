// Package options caches the server-supplied enumerations (airlines,
// cities) that populate selection inputs. One cache instance corresponds to
// one view mount; it is not persisted across runs.
package options

import (
	"context"
	"log/slog"
	"sync"

	"skycast/internal/flight"
	"skycast/internal/telemetry"
)

// FetchFunc retrieves the options set from the backend.
type FetchFunc func(ctx context.Context) (flight.OptionsSet, error)

// Cache fetches the options set at most once per mount. A failed fetch
// leaves the cache empty and is not surfaced: the selectable lists simply
// stay empty until an explicit Refresh.
type Cache struct {
	mu      sync.Mutex
	fetch   FetchFunc
	fetched bool
	set     flight.OptionsSet

	// AutoSelectFirstAirline lets the consuming form pre-select the first
	// airline as a convenience default when the list is non-empty.
	AutoSelectFirstAirline bool
}

// NewCache wraps a fetch function.
func NewCache(fetch FetchFunc, autoSelectFirstAirline bool) *Cache {
	return &Cache{fetch: fetch, AutoSelectFirstAirline: autoSelectFirstAirline}
}

// Get returns the cached options set, fetching on first access. Later
// calls within the same mount never refetch, even after a failed fetch.
func (c *Cache) Get(ctx context.Context) flight.OptionsSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetched {
		c.load(ctx)
	}
	return c.set
}

// Refresh discards the cached value and fetches again.
func (c *Cache) Refresh(ctx context.Context) flight.OptionsSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set = flight.OptionsSet{}
	c.load(ctx)
	return c.set
}

func (c *Cache) load(ctx context.Context) {
	c.fetched = true
	telemetry.CountOptionsFetch()

	set, err := c.fetch(ctx)
	if err != nil {
		// Silent degradation: empty dropdowns instead of an error banner.
		slog.Debug("options fetch failed, lists stay empty", "error", err)
		return
	}
	c.set = set
}

// DefaultAirline returns the pre-selection for the airline field, honoring
// the auto-select policy. The second return is false when nothing should be
// pre-selected.
func (c *Cache) DefaultAirline() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.AutoSelectFirstAirline || len(c.set.Airlines) == 0 {
		return "", false
	}
	return c.set.Airlines[0], true
}

package session

import (
	"fmt"
	"sync"
)

// Session is the client-held proof of authentication. It exists iff the
// token is present in persistent storage.
type Session struct {
	Token       string
	DisplayName string
}

// Valid reports whether the session counts as authenticated.
func (s Session) Valid() bool {
	return s.Token != ""
}

// Provider owns all access to the persisted session. Reads return an
// atomic snapshot; writes (sign-in, sign-out) are serialized so a sign-out
// racing a concurrent authenticated request never yields a torn session.
type Provider struct {
	mu      sync.RWMutex
	store   Store
	current Session
}

// NewProvider loads the persisted session, if any, and wraps the store.
func NewProvider(store Store) (*Provider, error) {
	token, err := store.Get(KeyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	name, err := store.Get(KeyDisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to read display name: %w", err)
	}

	return &Provider{
		store:   store,
		current: Session{Token: token, DisplayName: name},
	}, nil
}

// Current returns a snapshot of the session state.
func (p *Provider) Current() Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// SignIn persists the token and display name and updates the snapshot.
func (p *Provider) SignIn(token, displayName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Set(KeyToken, token); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	if err := p.store.Set(KeyDisplayName, displayName); err != nil {
		return fmt.Errorf("failed to persist display name: %w", err)
	}
	p.current = Session{Token: token, DisplayName: displayName}
	return nil
}

// SignOut clears both persisted fields and the in-memory snapshot. Signing
// out while already signed out is a no-op.
func (p *Provider) SignOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Delete(KeyToken); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	if err := p.store.Delete(KeyDisplayName); err != nil {
		return fmt.Errorf("failed to clear display name: %w", err)
	}
	p.current = Session{}
	return nil
}

// Close releases the underlying store.
func (p *Provider) Close() error {
	return p.store.Close()
}

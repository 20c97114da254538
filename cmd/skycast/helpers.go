package main

import (
	"fmt"

	"github.com/spf13/viper"

	"skycast/internal/api"
	"skycast/internal/session"
)

// apiClientFactory is swappable in tests.
var apiClientFactory = func() *api.Client {
	return api.NewClient(viper.GetString("api.base_url"))
}

// sessionProviderFactory is swappable in tests.
var sessionProviderFactory = func() (*session.Provider, error) {
	store, err := session.NewStore(session.StoreConfig{
		Type:             viper.GetString("session.store"),
		ConnectionString: viper.GetString("session.path"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	provider, err := session.NewProvider(store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return provider, nil
}

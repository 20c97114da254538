package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Validate checks configuration values before any command runs.
func Validate() error {
	base := viper.GetString("api.base_url")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http(s) URL", base)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.base_url scheme %q: must be http or https", u.Scheme)
	}

	switch store := viper.GetString("session.store"); store {
	case "sqlite", "sqlite3", "postgres", "postgresql", "":
	default:
		return fmt.Errorf("invalid session.store %q: must be sqlite or postgres", store)
	}

	if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
		return fmt.Errorf("invalid metrics_port %d: must be 0-65535", port)
	}

	return nil
}

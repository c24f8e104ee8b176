// Package config resolves runtime settings from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Backend names a plan-store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Config holds the CLI's runtime settings.
type Config struct {
	// Backend selects the plan store: "json" (state-file document) or
	// "sqlite".
	Backend Backend

	// StatePath is the state file or database path. Empty means the
	// default data-dir location.
	StatePath string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	godotenv.Load()

	backend := Backend(getEnvOrDefault("LEARNZY_STORE", string(BackendJSON)))
	switch backend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown LEARNZY_STORE %q (want json or sqlite)", backend)
	}

	return &Config{
		Backend:   backend,
		StatePath: os.Getenv("LEARNZY_STATE"),
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with MAREVIVA_* environment variables. Unset
// variables leave the current values alone.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(err)
	}
}

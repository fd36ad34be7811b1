// Package config loads runtime configuration for the Maré Viva CLI.
//
// Sources & precedence, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (MAREVIVA_* — see the env struct tags).
//  4. Command-line flags.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-i int      chat refresh interval (seconds)
//	-s bool     seed demo data on startup
package config

import "time"

// Config holds runtime settings for the Maré Viva CLI.
type Config struct {
	// DatabasePath is the SQLite file holding all app data. ":memory:"
	// gives a throwaway session.
	DatabasePath string `env:"MAREVIVA_DB_PATH"`

	// ChatPollInterval is how often an open conversation re-reads its
	// messages.
	ChatPollInterval time.Duration `env:"MAREVIVA_CHAT_POLL_INTERVAL"`

	// SeedTestData seeds the demo listings and conversation on startup.
	SeedTestData bool `env:"MAREVIVA_SEED_TEST_DATA"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "mareviva.db"
	c.ChatPollInterval = 2 * time.Second
	c.SeedTestData = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a file is given), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

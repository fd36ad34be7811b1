package config

import (
	"encoding/json"
	"os"

	"github.com/mareviva/mareviva/internal/flagx"
	"github.com/mareviva/mareviva/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the interval can be either a string like "2s" or integer
// nanoseconds. A field absent from the file leaves the current value alone.
type jsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	ChatPollInterval timex.Duration `json:"chat_poll_interval"`
	SeedTestData     *bool          `json:"seed_test_data"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. Without the flag nothing is loaded. Panics on read or
// unmarshal errors: a config file that is present but broken should stop
// startup, not be silently skipped.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ChatPollInterval.Duration != 0 {
		cfg.ChatPollInterval = jc.ChatPollInterval.Duration
	}
	if jc.SeedTestData != nil {
		cfg.SeedTestData = *jc.SeedTestData
	}
}

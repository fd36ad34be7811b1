package config

import (
	"flag"
	"os"
	"time"

	"github.com/mareviva/mareviva/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file (default from Config)
//	-i int      chat refresh interval in seconds (default from Config)
//	-s bool     seed demo data on startup (default from Config)
//
// The function filters os.Args to only include the flags it knows about, so
// the -c/-config flag handled by the JSON stage does not abort parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	pollInterval := fs.Int("i", int(cfg.ChatPollInterval.Seconds()), "chat refresh interval (in seconds)")
	fs.BoolVar(&cfg.SeedTestData, "s", cfg.SeedTestData, "seed demo data on startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ChatPollInterval = time.Duration(*pollInterval) * time.Second
}

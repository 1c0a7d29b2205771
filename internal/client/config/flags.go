package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database file
//	-t int      operation timeout in seconds
//	-l string   log level
//	-b string   log backend (slog or zap)
//
// os.Args is filtered through flagx.FilterArgs first so -c/-config and
// anything else do not reach this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database file")
	timeout := fs.Int("t", 0, "operation timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend: slog or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides earlier layers when given; they may hold sub-second values.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OperationTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

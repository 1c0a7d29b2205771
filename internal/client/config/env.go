package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "LUGGAGESHARE"

// envFile is loaded into the process environment before it is read.
// A missing file is fine; variables that are already set are not replaced.
var envFile = ".env"

// EnvConfig is the environment view of Config, e.g.
// LUGGAGESHARE_DATABASE_DSN=/var/lib/ls.db.
type EnvConfig struct {
	DatabaseDSN      string        `envconfig:"DATABASE_DSN"`
	OperationTimeout time.Duration `envconfig:"OPERATION_TIMEOUT"`
	LogLevel         string        `envconfig:"LOG_LEVEL"`
	LogBackend       string        `envconfig:"LOG_BACKEND"`
}

// parseEnv overlays cfg with LUGGAGESHARE_* variables. Unset variables keep
// the current values; malformed ones panic.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var ec EnvConfig
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}

	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.OperationTimeout != 0 {
		cfg.OperationTimeout = ec.OperationTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/common"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
	"github.com/hashicorp/go-multierror"
)

// Config holds runtime settings for the luggageshare CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite file holding all documents.
//   - OperationTimeout: upper bound for a single store operation.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: "slog" or "zap".
type Config struct {
	DatabaseDSN      string
	OperationTimeout time.Duration
	LogLevel         string
	LogBackend       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "data/luggageshare.db"
	c.OperationTimeout = 5 * time.Second
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.DatabaseDSN == "" {
		result = multierror.Append(result, fmt.Errorf("%w: database dsn is empty", common.ErrValidation))
	}
	if c.OperationTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("%w: operation timeout must be positive, got %s", common.ErrValidation, c.OperationTimeout))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %w", common.ErrValidation, err))
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: unknown log backend %q", common.ErrValidation, c.LogBackend))
	}

	return result.ErrorOrNil()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present), the environment and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

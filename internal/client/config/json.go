package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/luggageshare/internal/flagx"
	"github.com/dmitrijs2005/luggageshare/internal/timex"
)

// JsonConfig is a DTO used exclusively for file unmarshalling. Durations go
// through timex.Duration so the file may say "5s" (or, in JSON, integer
// nanoseconds).
type JsonConfig struct {
	DatabaseDSN      string         `json:"database_dsn" toml:"database_dsn"`
	OperationTimeout timex.Duration `json:"operation_timeout" toml:"operation_timeout"`
	LogLevel         string         `json:"log_level" toml:"log_level"`
	LogBackend       string         `json:"log_backend" toml:"log_backend"`
}

// parseJson overlays cfg with the config file named by -c or -config.
// Files ending in .toml are read as TOML, anything else as JSON.
// Fields absent from the file keep their current values. Read and decode
// errors panic, as flag errors do.
func parseJson(cfg *Config) {
	jsonConfigFile, err := flagx.ConfigPath()
	if err != nil {
		panic(err)
	}
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if strings.EqualFold(filepath.Ext(jsonConfigFile), ".toml") {
		if _, err := toml.Decode(string(data), &jc); err != nil {
			panic(err)
		}
	} else if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OperationTimeout.Duration != 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}

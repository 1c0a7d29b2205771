// Package config loads runtime configuration for the luggageshare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or TOML file (see parseJson) selected via -c or -config.
//  3. LUGGAGESHARE_* environment variables, optionally from a .env file
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database file
//	-t int      operation timeout (seconds)
//	-l string   log level
//	-b string   log backend
//
// # JSON schema
//
//	{
//	  "database_dsn": "data/luggageshare.db",
//	  "operation_timeout": "5s",
//	  "log_level": "info",
//	  "log_backend": "zap"
//	}
//
// The same keys work in a .toml file.
package config

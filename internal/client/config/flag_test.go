package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-d", "x.db", "-t", "10", "-l", "debug", "-b", "zap"}, expectPanic: false,
			expected: &Config{DatabaseDSN: "x.db", OperationTimeout: 10 * time.Second, LogLevel: "debug", LogBackend: "zap"}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-t", "3"}, expectPanic: false,
			expected: &Config{OperationTimeout: 3 * time.Second}},
		{name: "incorrect timeout", args: []string{"cmd", "-d", "x.db", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_TimeoutKeptWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-d", "x.db"}

	config := &Config{OperationTimeout: 250 * time.Millisecond}
	parseFlags(config)

	assert.Equal(t, 250*time.Millisecond, config.OperationTimeout)
	assert.Equal(t, "x.db", config.DatabaseDSN)
}

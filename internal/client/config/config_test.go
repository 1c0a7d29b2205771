package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data/luggageshare.db", c.DatabaseDSN)
	assert.Equal(t, 5*time.Second, c.OperationTimeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "data/luggageshare.db", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.OperationTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn":      "from-json.db",
		"operation_timeout": "9s",
		"log_backend":       "zap",
	})
	os.Args = []string{"testbin", "-c", path, "-d", "from-flag.db"}
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("LUGGAGESHARE_LOG_LEVEL", "info")

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.DatabaseDSN)
	assert.Equal(t, 9*time.Second, cfg.OperationTimeout)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	var ok Config
	ok.LoadDefaults()
	require.NoError(t, ok.Validate())

	bad := Config{LogLevel: "loud", LogBackend: "syslog"}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	for _, want := range []string{"database dsn", "operation timeout", "loud", "syslog"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadConfig_SubSecondTimeoutFromEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	for _, tt := range []struct {
		env  string
		want time.Duration
	}{
		{"1500ms", 1500 * time.Millisecond},
		{"500ms", 500 * time.Millisecond},
	} {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("LUGGAGESHARE_OPERATION_TIMEOUT", tt.env)

			cfg := LoadConfig()

			assert.Equal(t, tt.want, cfg.OperationTimeout)
			require.NoError(t, cfg.Validate())
		})
	}
}

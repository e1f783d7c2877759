package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("BIOSCRAPE_WORKERS", "8")
	t.Setenv("BIOSCRAPE_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
}

func TestTimeoutDuration(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "25s", cfg.Timeout().String())
}

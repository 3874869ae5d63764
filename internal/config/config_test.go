package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://visuddha@localhost/visuddha")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Simulation.Interval)
	assert.NotZero(t, cfg.Simulation.Seed)
	assert.True(t, cfg.Access.AnonymousDemo)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("ACCESS_ANONYMOUS_DEMO", "false")
	t.Setenv("SIMULATION_INTERVAL", "500ms")
	t.Setenv("SIMULATION_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.False(t, cfg.Access.AnonymousDemo)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulation.Interval)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "DB_DSN is required")

	t.Setenv("DB_DSN", "postgres://localhost/visuddha")
	_, err = Load()
	assert.EqualError(t, err, "JWT_ACCESS_SECRET is required")
}

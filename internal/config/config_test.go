package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobfit")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jobfit", cfg.App.AppName)
	assert.Equal(t, slog.LevelInfo, cfg.App.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "match.batch", cfg.AMQP.Queue)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("DB_POOL_MAX_CONN_LIFETIME", "1h")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("BATCH_RATE_PER_SECOND", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, time.Hour, cfg.Database.PoolMaxConnLifetime)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 2.5, cfg.Batch.RatePerSecond)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestLoadInvalidNumber(t *testing.T) {
	setRequired(t)
	t.Setenv("BATCH_WORKERS", "many")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "BATCH_WORKERS")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "resale-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, time.Hour, cfg.FX.CacheTTL)
	assert.Equal(t, 150.0, cfg.FX.FallbackRate)
	assert.Equal(t, 0.13, cfg.Fees.FlatRate)
	assert.Equal(t, 0, cfg.Tables.DefaultZone)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RESALE_APP_PORT", "9090")
	t.Setenv("RESALE_FX_FALLBACK_RATE", "148.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 148.5, cfg.FX.FallbackRate)
}

func TestValidate(t *testing.T) {
	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv("RESALE_APP_ENV", "staging")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.env")
	})

	t.Run("flat rate out of range", func(t *testing.T) {
		t.Setenv("RESALE_FEES_FLAT_RATE", "1.5")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "flat_rate")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "resale", Password: "secret",
		DBName: "resale", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=resale password=secret dbname=resale sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", r.Addr())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rooms")
	for _, key := range []string{"APP_ENV", "HTTP_ADDR", "DB_MAX_CONNS", "LOG_LEVEL", "AUTO_MIGRATE", "SWEEP_ENABLED", "SWEEP_CRON", "SWEEP_TIMEOUT"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, "*/5 * * * *", cfg.SweepCron)
	assert.Equal(t, time.Minute, cfg.SweepTimeout)
	assert.True(t, cfg.SweepEnabled)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rooms")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("APP_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("SWEEP_ENABLED", "false")
	t.Setenv("SWEEP_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location.String())
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.SweepEnabled)
	assert.Equal(t, 30*time.Second, cfg.SweepTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{name: "missing dsn", key: "DB_DSN", value: "", wantMsg: "DB_DSN"},
		{name: "bad max conns", key: "DB_MAX_CONNS", value: "many", wantMsg: "DB_MAX_CONNS"},
		{name: "zero max conns", key: "DB_MAX_CONNS", value: "0", wantMsg: "DB_MAX_CONNS"},
		{name: "bad timezone", key: "APP_TIMEZONE", value: "Mars/Olympus", wantMsg: "APP_TIMEZONE"},
		{name: "bad bool", key: "SWEEP_ENABLED", value: "sometimes", wantMsg: "SWEEP_ENABLED"},
		{name: "bad duration", key: "SWEEP_TIMEOUT", value: "soon", wantMsg: "SWEEP_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DSN", "postgres://localhost/rooms")
			t.Setenv("APP_TIMEZONE", "UTC")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

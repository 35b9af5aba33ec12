package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "banker-bot", cfg.ServiceName)
	assert.Equal(t, StatsBackendFile, cfg.StatsBackend)
	assert.Equal(t, DefaultStatsFile, cfg.StatsFile)
	assert.Equal(t, DefaultSessionCap, cfg.SessionCap)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, DefaultEventLogRetentionDays, cfg.EventLogRetentionDays)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidRetention(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("EVENTLOG_RETENTION_DAYS", "forever")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidStatsBackend(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("STATS_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SessionOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("SESSION_CAP", "32")
	t.Setenv("SESSION_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.SessionCap)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "pass",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "banker",
	}
	assert.Equal(t, "postgres://user:pass@db:5432/banker?sslmode=disable", cfg.GetDBConnString())
}

func TestValidateEnv(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("STATS_BACKEND", StatsBackendMemory)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresRequiresDBVars(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("STATS_BACKEND", StatsBackendPostgres)
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
}

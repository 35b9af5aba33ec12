package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication

	// Stats persistence
	StatsBackend string // "memory", "file", or "postgres"
	StatsFile    string // path for the file backend
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string

	// Session registry
	SessionCap int
	SessionTTL time.Duration

	// Event log retention, postgres backend only
	EventLogRetentionDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		LogDir:       getEnv("LOG_DIR", "logs"),
		ServiceName:  getEnv("SERVICE_NAME", "banker-bot"),
		Version:      getEnv("VERSION", "dev"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		APIKey:       getEnv("API_KEY", ""),
		StatsBackend: getEnv("STATS_BACKEND", StatsBackendFile),
		StatsFile:    getEnv("STATS_FILE", DefaultStatsFile),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "bankerbot"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	capStr := getEnv("SESSION_CAP", strconv.Itoa(DefaultSessionCap))
	sessionCap, err := strconv.Atoi(capStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CAP value: %w", err)
	}
	cfg.SessionCap = sessionCap

	retentionStr := getEnv("EVENTLOG_RETENTION_DAYS", strconv.Itoa(DefaultEventLogRetentionDays))
	retentionDays, err := strconv.Atoi(retentionStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENTLOG_RETENTION_DAYS value: %w", err)
	}
	cfg.EventLogRetentionDays = retentionDays

	ttlStr := getEnv("SESSION_TTL", DefaultSessionTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	cfg.SessionTTL = ttl

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if !validStatsBackend(cfg.StatsBackend) {
		return nil, fmt.Errorf("invalid STATS_BACKEND value: %q", cfg.StatsBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func validStatsBackend(backend string) bool {
	switch backend {
	case StatsBackendMemory, StatsBackendFile, StatsBackendPostgres:
		return true
	}
	return false
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

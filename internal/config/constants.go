package config

const (
	// Stats backends
	StatsBackendMemory   = "memory"
	StatsBackendFile     = "file"
	StatsBackendPostgres = "postgres"

	// Defaults
	DefaultStatsFile             = "dealornodeal_stats.txt"
	DefaultSessionCap            = 1024
	DefaultSessionTTL            = "1h"
	DefaultEventLogRetentionDays = 30
)

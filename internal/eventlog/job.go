package eventlog

import (
	"context"
	"time"

	"github.com/osse101/BankerBot_Go/internal/logger"
)

// CleanupJob trims the event log to the retention window. It runs on the
// worker pool via the scheduler.
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process executes the cleanup
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting, "retention_days", j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", time.Since(start))
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted", count, "duration", time.Since(start))
	return nil
}

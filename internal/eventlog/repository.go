package eventlog

import (
	"context"
	"time"
)

// Entry is one logged game lifecycle event
type Entry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	GameID    *string                `json:"game_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Filter narrows event queries
type Filter struct {
	GameID    *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository defines the persistence contract for the event log
type Repository interface {
	LogEvent(ctx context.Context, eventType string, gameID *string, payload map[string]interface{}) error
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)
	GetEventsByGame(ctx context.Context, gameID string, limit int) ([]Entry, error)
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

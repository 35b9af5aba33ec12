package eventlog

import (
	"context"

	"github.com/osse101/BankerBot_Go/internal/event"
	"github.com/osse101/BankerBot_Go/internal/logger"
)

// Service persists game lifecycle events as an audit trail
type Service interface {
	// Subscribe registers the event logger on the bus
	Subscribe(bus event.Bus)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers handlers for every game lifecycle event type
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.GameStarted, s.handleEvent)
	bus.Subscribe(event.GameConcluded, s.handleEvent)
}

// handleEvent normalizes a typed payload to a JSON map and stores it with the
// game id pulled out for querying.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	var gameID *string
	if id, ok := payload[PayloadKeyGameID].(string); ok {
		gameID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), gameID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "game_id", gameID)
	return nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

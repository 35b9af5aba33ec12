package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/event"
	"github.com/osse101/BankerBot_Go/internal/logger"
)

// EventHandler records aggregate statistics from game lifecycle events
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.GameConcluded, h.HandleGameConcluded)
}

// HandleGameConcluded folds a concluded game into the aggregate stats
func (h *EventHandler) HandleGameConcluded(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[domain.GameConcludedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		return fmt.Errorf("failed to decode game concluded payload: %w", err)
	}

	gameID, err := uuid.Parse(payload.GameID)
	if err != nil {
		return fmt.Errorf("invalid game id in payload: %w", err)
	}

	concludedAt := payload.Timestamp
	if concludedAt.IsZero() {
		concludedAt = time.Now()
	}

	return h.service.RecordOutcome(ctx, domain.GameOutcome{
		GameID:      gameID,
		Actor:       domain.Actor(payload.Actor),
		State:       domain.GameState(payload.State),
		Payout:      payload.Payout,
		Rounds:      payload.Rounds,
		ConcludedAt: concludedAt,
	})
}

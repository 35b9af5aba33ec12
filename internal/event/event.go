package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Common event types
const (
	GameStarted   Type = Type(domain.EventGameStarted)
	GameConcluded Type = Type(domain.EventGameConcluded)
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// GameStartedPayloadV1 is the typed payload for game started events
type GameStartedPayloadV1 struct {
	GameID    string    `json:"game_id"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// NewGameStartedEvent creates a new game started event with type-safe payload
func NewGameStartedEvent(gameID, actor string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameStarted,
		Payload: GameStartedPayloadV1{
			GameID:    gameID,
			Actor:     actor,
			Timestamp: time.Now(),
		},
	}
}

// NewGameConcludedEvent creates a new game concluded event from an outcome
func NewGameConcludedEvent(outcome domain.GameOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameConcluded,
		Payload: domain.GameConcludedPayloadV1{
			GameID:    outcome.GameID.String(),
			Actor:     string(outcome.Actor),
			State:     string(outcome.State),
			Payout:    outcome.Payout,
			Rounds:    outcome.Rounds,
			Timestamp: outcome.ConcludedAt,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// handler errors are collected and returned, never panicked.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(GameStarted, func(ctx context.Context, evt Event) error {
		received = append(received, evt)
		return nil
	})

	evt := NewGameStartedEvent("game-1", "human")
	require.NoError(t, bus.Publish(context.Background(), evt))

	require.Len(t, received, 1)
	assert.Equal(t, GameStarted, received[0].Type)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewGameStartedEvent("game-1", "human")))
}

func TestMemoryBus_MultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	handler := func(ctx context.Context, evt Event) error {
		calls++
		return nil
	}
	bus.Subscribe(GameStarted, handler)
	bus.Subscribe(GameStarted, handler)

	require.NoError(t, bus.Publish(context.Background(), NewGameStartedEvent("game-1", "human")))
	assert.Equal(t, 2, calls)
}

func TestMemoryBus_HandlerErrorsCollected(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(GameStarted, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("first failed")
	})
	bus.Subscribe(GameStarted, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewGameStartedEvent("game-1", "human"))
	assert.ErrorContains(t, err, "first failed")
	// A failing handler never blocks the others
	assert.Equal(t, 2, calls)
}

func TestDecodePayload_TypeAssertion(t *testing.T) {
	payload := GameStartedPayloadV1{GameID: "game-1", Actor: "human"}

	decoded, err := DecodePayload[GameStartedPayloadV1](payload)
	require.NoError(t, err)
	assert.Equal(t, "game-1", decoded.GameID)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	payload := map[string]interface{}{
		"game_id": "game-2",
		"actor":   "computer",
		"payout":  1000.0,
	}

	decoded, err := DecodePayload[domain.GameConcludedPayloadV1](payload)
	require.NoError(t, err)
	assert.Equal(t, "game-2", decoded.GameID)
	assert.Equal(t, 1000.0, decoded.Payout)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	payload := map[string]interface{}{"payout": "not a number"}

	_, err := DecodePayload[domain.GameConcludedPayloadV1](payload)
	assert.Error(t, err)
}

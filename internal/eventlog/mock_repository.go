package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, gameID *string, payload map[string]interface{}) error {
	args := m.Called(ctx, eventType, gameID, payload)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter Filter) ([]Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) GetEventsByGame(ctx context.Context, gameID string, limit int) ([]Entry, error) {
	args := m.Called(ctx, gameID, limit)
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

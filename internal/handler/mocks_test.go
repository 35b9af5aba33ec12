package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// mockGameService is a hand-rolled testify mock for the game service
type mockGameService struct {
	mock.Mock
}

func (m *mockGameService) StartGame(ctx context.Context, actor domain.Actor, seed *int64) (*domain.Game, error) {
	args := m.Called(ctx, actor, seed)
	if g := args.Get(0); g != nil {
		return g.(*domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) ChooseCase(ctx context.Context, id uuid.UUID, caseID int) (*domain.Game, error) {
	args := m.Called(ctx, id, caseID)
	if g := args.Get(0); g != nil {
		return g.(*domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) OpenCases(ctx context.Context, id uuid.UUID, caseIDs []int) (*domain.OpenResult, error) {
	args := m.Called(ctx, id, caseIDs)
	if r := args.Get(0); r != nil {
		return r.(*domain.OpenResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) Advice(ctx context.Context, id uuid.UUID) (*domain.Advice, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Advice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) Decide(ctx context.Context, id uuid.UUID, accept bool) (*domain.Game, error) {
	args := m.Called(ctx, id, accept)
	if g := args.Get(0); g != nil {
		return g.(*domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGameService) AutoPlay(ctx context.Context, seed *int64) (*domain.Game, error) {
	args := m.Called(ctx, seed)
	if g := args.Get(0); g != nil {
		return g.(*domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockStatsService is a hand-rolled testify mock for the stats service
type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) RecordOutcome(ctx context.Context, outcome domain.GameOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *mockStatsService) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*domain.StatsSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatsService) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

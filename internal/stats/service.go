package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/logger"
	"github.com/osse101/BankerBot_Go/internal/metrics"
)

// Service defines the interface for stats operations
type Service interface {
	RecordOutcome(ctx context.Context, outcome domain.GameOutcome) error
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	Reset(ctx context.Context) error
}

// Repository defines the persistence contract for game outcomes.
// Implementations must treat a missing or unreadable backing store as empty
// stats rather than an error; persistence trouble is never fatal to a game.
type Repository interface {
	AddOutcome(ctx context.Context, outcome domain.GameOutcome) error
	GetSummary(ctx context.Context) (*domain.StatsSummary, error)
	Reset(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// RecordOutcome records one concluded game. Called exactly once per game.
func (s *service) RecordOutcome(ctx context.Context, outcome domain.GameOutcome) error {
	log := logger.FromContext(ctx)

	if outcome.GameID == (domain.GameOutcome{}).GameID {
		return errors.New(ErrMsgGameIDRequired)
	}
	if !outcome.State.Concluded() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidState, ErrMsgOutcomeNotConcluded)
	}

	if err := s.repo.AddOutcome(ctx, outcome); err != nil {
		log.Error(LogMsgFailedToRecordOutcome, "error", err, "game_id", outcome.GameID)
		return fmt.Errorf(ErrMsgRecordOutcomeFailed, err)
	}

	metrics.GamesConcluded.WithLabelValues(string(outcome.Actor), string(outcome.State)).Inc()
	metrics.PayoutAmounts.Observe(outcome.Payout)

	log.Debug(LogMsgOutcomeRecorded, "game_id", outcome.GameID, "payout", outcome.Payout)
	return nil
}

// GetSummary returns the aggregate statistics with derived fields filled in.
func (s *service) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	summary, err := s.repo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSummaryFailed, err)
	}
	summary.Derive()
	return summary, nil
}

// Reset clears all recorded statistics.
func (s *service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf(ErrMsgResetFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgStatsReset)
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/osse101/BankerBot_Go/internal/stats"
)

type statsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new PostgreSQL stats repository
func NewStatsRepository(db *pgxpool.Pool) stats.Repository {
	return &statsRepository{db: db}
}

// AddOutcome stores a concluded game in the outcomes table. Replays of the
// same game id are ignored so an at-least-once event bus cannot double count.
func (r *statsRepository) AddOutcome(ctx context.Context, outcome domain.GameOutcome) error {
	query := `
		INSERT INTO game_outcomes (game_id, actor, final_state, payout, rounds, concluded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		outcome.GameID,
		string(outcome.Actor),
		string(outcome.State),
		outcome.Payout,
		outcome.Rounds,
		outcome.ConcludedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game outcome: %w", err)
	}

	return nil
}

// GetSummary aggregates all recorded outcomes into a summary
func (r *statsRepository) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE payout > 0),
			COALESCE(SUM(payout), 0),
			COALESCE(MAX(payout), 0)
		FROM game_outcomes
	`

	summary := &domain.StatsSummary{}
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.GamesPlayed,
		&summary.GamesWon,
		&summary.TotalWinnings,
		&summary.BestWinning,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats summary: %w", err)
	}

	summary.Derive()
	return summary, nil
}

// Reset deletes all recorded outcomes
func (r *statsRepository) Reset(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM game_outcomes`); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}
	return nil
}

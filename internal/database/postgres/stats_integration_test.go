package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/osse101/BankerBot_Go/internal/database"
	"github.com/osse101/BankerBot_Go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStatsRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.RunMigrations(ctx, connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := NewStatsRepository(pool)

	t.Run("EmptySummary", func(t *testing.T) {
		summary, err := repo.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.GamesPlayed)
		assert.Equal(t, 0.0, summary.TotalWinnings)
	})

	dealID := uuid.New()

	t.Run("AddOutcome", func(t *testing.T) {
		err := repo.AddOutcome(ctx, domain.GameOutcome{
			GameID:      dealID,
			Actor:       domain.ActorHuman,
			State:       domain.GameStateDeal,
			Payout:      50000,
			Rounds:      5,
			ConcludedAt: time.Now(),
		})
		require.NoError(t, err)

		err = repo.AddOutcome(ctx, domain.GameOutcome{
			GameID:      uuid.New(),
			Actor:       domain.ActorComputer,
			State:       domain.GameStateFinalReveal,
			Payout:      0.01,
			Rounds:      9,
			ConcludedAt: time.Now(),
		})
		require.NoError(t, err)

		summary, err := repo.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.GamesPlayed)
		assert.Equal(t, 2, summary.GamesWon)
		assert.InDelta(t, 50000.01, summary.TotalWinnings, 0.001)
		assert.InDelta(t, 50000, summary.BestWinning, 0.001)
	})

	t.Run("DuplicateGameIgnored", func(t *testing.T) {
		err := repo.AddOutcome(ctx, domain.GameOutcome{
			GameID:      dealID,
			Actor:       domain.ActorHuman,
			State:       domain.GameStateDeal,
			Payout:      50000,
			Rounds:      5,
			ConcludedAt: time.Now(),
		})
		require.NoError(t, err)

		summary, err := repo.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.GamesPlayed)
	})

	t.Run("Reset", func(t *testing.T) {
		require.NoError(t, repo.Reset(ctx))

		summary, err := repo.GetSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.GamesPlayed)
		assert.Equal(t, 0.0, summary.BestWinning)
	})
}

package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	summary, err := repo.GetSummary(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.GamesPlayed)

	require.NoError(t, repo.AddOutcome(ctx, testOutcome(100)))
	require.NoError(t, repo.AddOutcome(ctx, testOutcome(700)))

	summary, err = repo.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.GamesPlayed)
	assert.Equal(t, 2, summary.GamesWon)
	assert.Equal(t, 800.0, summary.TotalWinnings)
	assert.Equal(t, 700.0, summary.BestWinning)
	assert.Equal(t, 400.0, summary.AverageWinning)
	assert.Equal(t, 100.0, summary.WinRate)
}

func TestMemoryRepository_Reset(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddOutcome(ctx, testOutcome(100)))
	require.NoError(t, repo.Reset(ctx))

	summary, err := repo.GetSummary(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.GamesPlayed)
	assert.Zero(t, summary.TotalWinnings)
}

func TestMemoryRepository_SummaryIsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	summary, err := repo.GetSummary(ctx)
	require.NoError(t, err)
	summary.GamesPlayed = 99

	fresh, err := repo.GetSummary(ctx)
	require.NoError(t, err)
	assert.Zero(t, fresh.GamesPlayed)
}

package stats

import (
	"context"
	"sync"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// MemoryRepository keeps aggregate stats in process memory. Used when no
// persistent backend is configured, and as the base for the file store.
type MemoryRepository struct {
	mu      sync.Mutex
	summary domain.StatsSummary
}

// NewMemoryRepository creates an empty in-memory stats repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// AddOutcome folds an outcome into the aggregates.
func (r *MemoryRepository) AddOutcome(ctx context.Context, outcome domain.GameOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary.Record(outcome)
	return nil
}

// GetSummary returns a copy of the current aggregates.
func (r *MemoryRepository) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := r.summary
	return &summary, nil
}

// Reset clears the aggregates.
func (r *MemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = domain.StatsSummary{}
	return nil
}

package stats

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/osse101/BankerBot_Go/internal/domain"
)

// statsFileVersion is the current on-disk format version
const statsFileVersion = "1.0"

// statsFile is the persisted form of the aggregates. Only the stored fields
// are written; averages and rates are re-derived on load.
type statsFile struct {
	Version       string  `json:"version"`
	GamesPlayed   int     `json:"games_played"`
	GamesWon      int     `json:"games_won"`
	TotalWinnings float64 `json:"total_winnings"`
	BestWinning   float64 `json:"best_winning"`
}

// FileRepository persists aggregate stats to a JSON file. A missing or
// corrupt file loads as zeroed stats with a warning; write failures are
// surfaced to the caller, which treats them as non-fatal.
type FileRepository struct {
	mu      sync.Mutex
	path    string
	summary domain.StatsSummary
}

// NewFileRepository loads existing stats from path, or starts fresh.
func NewFileRepository(path string) *FileRepository {
	r := &FileRepository{path: path}
	r.load()
	return r
}

func (r *FileRepository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Default().Warn(LogMsgStoreLoadFailed, "path", r.path, "error", err)
		}
		return
	}

	var f statsFile
	if err := json.Unmarshal(data, &f); err != nil {
		slog.Default().Warn(LogMsgStoreLoadFailed, "path", r.path, "error", err)
		return
	}

	r.summary = domain.StatsSummary{
		GamesPlayed:   f.GamesPlayed,
		GamesWon:      f.GamesWon,
		TotalWinnings: f.TotalWinnings,
		BestWinning:   f.BestWinning,
	}
	r.summary.Derive()
}

func (r *FileRepository) save() error {
	f := statsFile{
		Version:       statsFileVersion,
		GamesPlayed:   r.summary.GamesPlayed,
		GamesWon:      r.summary.GamesWon,
		TotalWinnings: r.summary.TotalWinnings,
		BestWinning:   r.summary.BestWinning,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}

// AddOutcome folds an outcome into the aggregates and persists them.
func (r *FileRepository) AddOutcome(ctx context.Context, outcome domain.GameOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summary.Record(outcome)
	if err := r.save(); err != nil {
		slog.Default().Warn(LogMsgStoreSaveFailed, "path", r.path, "error", err)
		return err
	}
	return nil
}

// GetSummary returns a copy of the current aggregates.
func (r *FileRepository) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := r.summary
	return &summary, nil
}

// Reset clears the aggregates and deletes the backing file.
func (r *FileRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summary = domain.StatsSummary{}
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

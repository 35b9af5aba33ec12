package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/BankerBot_Go/internal/event"
	"github.com/osse101/BankerBot_Go/internal/game"
	"github.com/osse101/BankerBot_Go/internal/logger"
	"github.com/osse101/BankerBot_Go/internal/stats"
	"github.com/osse101/BankerBot_Go/internal/worker"
)

// autoPlayJob runs one computer game to completion
type autoPlayJob struct {
	service game.Service
	seed    *int64
}

func (j *autoPlayJob) Process(ctx context.Context) error {
	_, err := j.service.AutoPlay(ctx, j.seed)
	return err
}

func main() {
	games := flag.Int("games", 100, "number of games to simulate")
	seed := flag.Int64("seed", 0, "base seed for reproducible runs (0 seeds from the clock)")
	workers := flag.Int("workers", 4, "number of concurrent workers")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := logger.LogLevelWarn
	if *verbose {
		level = logger.LogLevelDebug
	}
	logger.InitLogger(logger.NewConfig(level, logger.LogFormatText, "banker-sim", "dev", "dev", false))

	if *games <= 0 {
		slog.Error("games must be positive", "games", *games)
		os.Exit(1)
	}

	// Everything in memory: the simulator needs no persistence
	statsService := stats.NewService(stats.NewMemoryRepository())
	eventBus := event.NewMemoryBus()
	stats.NewEventHandler(statsService).Register(eventBus)

	registry := game.NewRegistry(*games+1, time.Hour)
	gameService := game.NewService(registry, eventBus)

	pool := worker.NewPool(*workers, *games)
	pool.Start()

	start := time.Now()
	for i := 0; i < *games; i++ {
		job := &autoPlayJob{service: gameService}
		if *seed != 0 {
			gameSeed := *seed + int64(i)
			job.seed = &gameSeed
		}
		pool.Enqueue(job)
	}
	pool.Stop()
	elapsed := time.Since(start)

	summary, err := statsService.GetSummary(context.Background())
	if err != nil {
		slog.Error("Failed to read summary", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Simulated %d games in %s\n\n", summary.GamesPlayed, elapsed.Round(time.Millisecond))
	fmt.Printf("  Games won:       %d (%.1f%%)\n", summary.GamesWon, summary.WinRate)
	fmt.Printf("  Total winnings:  %s\n", game.FormatMoney(summary.TotalWinnings))
	fmt.Printf("  Best winning:    %s\n", game.FormatMoney(summary.BestWinning))
	fmt.Printf("  Average winning: %s\n", game.FormatMoney(summary.AverageWinning))
}

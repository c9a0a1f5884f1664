package experiments

import (
	"fmt"
	"sync"

	"hex/engine"
	"hex/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment plays cfg.Workers independent streams of random
// self-play games, one board per goroutine with no shared state, and
// reports aggregate games and moves per second. This is the engine's
// intended scaling model: parallel games, never intra-board parallelism.
// Results are stored as CSV under cfg.ResultsDir.
func RunThroughputExperiment(cfg Config) (metrics.ThroughputMetric, error) {
	log.Info().Msgf("starting throughput experiment: size=%d workers=%d games=%d seed=%d",
		cfg.BoardSize, cfg.Workers, cfg.Games, cfg.Seed)

	collector := metrics.NewCollector()
	collector.Start()

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		gameRecords []metrics.GameRecord
		moveRecords []metrics.MoveRecord
		firstErr    error
	)

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < cfg.Games; i++ {
				// Two seeds per game so agents never share a stream.
				seed := cfg.Seed + 2*uint64(worker*cfg.Games+i)
				winner, gameMetric, moveMetrics, err := runGame(cfg.BoardSize, seed)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("worker %d game %d: %w", worker, i+1, err)
					}
					mu.Unlock()
					return
				}
				collector.AddGame(gameMetric.TotalMoves)

				mu.Lock()
				id := len(gameRecords) + 1
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         id,
					Worker:     worker,
					GameMetric: gameMetric,
				})
				if cfg.RecordMoves {
					for _, mm := range moveMetrics {
						moveRecords = append(moveRecords, metrics.MoveRecord{
							Game:       id,
							MoveMetric: mm,
						})
					}
				}
				mu.Unlock()

				log.Debug().Msgf("worker %d completed game %d of %d with winner %s",
					worker, i+1, cfg.Games, winner)
			}
		}(w)
	}
	wg.Wait()

	if firstErr != nil {
		return metrics.ThroughputMetric{}, firstErr
	}

	throughput := collector.Complete()
	log.Info().Msgf("completed throughput experiment: %d games, %d moves in %s (%.1f games/s, %.1f moves/s)",
		throughput.Games, throughput.Moves, throughput.Duration,
		throughput.GamesPerSecond, throughput.MovesPerSecond)

	writer, err := metrics.NewWriter(cfg.ResultsDir, "throughput")
	if err != nil {
		return metrics.ThroughputMetric{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughput(throughput); err != nil {
		return metrics.ThroughputMetric{}, fmt.Errorf("failed to write throughput summary: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return metrics.ThroughputMetric{}, fmt.Errorf("failed to write game records: %w", err)
	}
	if cfg.RecordMoves {
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			return metrics.ThroughputMetric{}, fmt.Errorf("failed to write move records: %w", err)
		}
	}
	log.Info().Msgf("stored experiment results under %s", writer.Dir())

	return throughput, nil
}

// runGame executes a single random self-play game and returns the winner.
func runGame(size int, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.LocalEngine(size,
		engine.NewRandomAgent(seed),
		engine.NewRandomAgent(seed+1),
	)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"logsweep/internal/config"
	"logsweep/internal/history"
	"logsweep/internal/metrics"
	"logsweep/internal/safety"
	"logsweep/internal/scan"
	"logsweep/internal/sweep"
)

var errNilConfig = errors.New("nil config")

// RunOnce executes a single sweep pass over root.
func RunOnce(ctx context.Context, cfg *config.Config, root string, logger *log.Logger, db *history.DB) error {
	if logger == nil {
		logger = log.Default()
	}
	if cfg == nil {
		return errNilConfig
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	metrics.RecordSweep()

	candidates, err := scan.Scan(root, cfg.Patterns())
	if err != nil {
		return err
	}

	sweeper := sweep.NewSweeper(logger, nil, db)
	sweeper.SetValidator(safety.NewValidator(root))
	removed, freed := sweeper.Run(candidates)

	elapsed := time.Since(start).Seconds()
	metrics.SweepDuration.Observe(elapsed)

	logger.Printf("pass complete: candidates=%d removed=%d freed=%d bytes duration=%.3fs", len(candidates), removed, freed, elapsed)
	return nil
}

// Run executes sweep passes on the configured interval until the
// context is cancelled. The first pass runs immediately.
func Run(ctx context.Context, cfg *config.Config, root string, logger *log.Logger, db *history.DB) error {
	if logger == nil {
		logger = log.Default()
	}
	if cfg == nil {
		return errNilConfig
	}

	if err := RunOnce(ctx, cfg, root, logger, db); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Println("scheduler shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := RunOnce(ctx, cfg, root, logger, db); err != nil {
				logger.Printf("error running pass: %v", err)
			}
		}
	}
}

package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/cleanup"
)

type Sweeper interface {
	Sweep(ctx context.Context) (*cleanup.Result, error)
}

// CleanupWorker runs the storage sweep on a fixed interval.
type CleanupWorker struct {
	sweeper    Sweeper
	interval   time.Duration
	runOnStart bool
	logger     *zap.Logger
}

func NewCleanupWorker(sweeper Sweeper, interval time.Duration, runOnStart bool, logger *zap.Logger) *CleanupWorker {
	return &CleanupWorker{
		sweeper:    sweeper,
		interval:   interval,
		runOnStart: runOnStart,
		logger:     logger,
	}
}

// Start blocks until ctx is cancelled.
func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Bool("run_on_start", w.runOnStart),
	)

	if w.runOnStart {
		w.sweep(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	if _, err := w.sweeper.Sweep(ctx); err != nil && ctx.Err() == nil {
		w.logger.Error("cleanup sweep failed", zap.Error(err))
	}
}

package cleanup

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
)

const DefaultMaxAge = time.Hour

// Target is one blob namespace swept by the service.
type Target struct {
	Name  string
	Store storage.BlobStore
}

type Result struct {
	Scanned        int
	Removed        int
	Failed         int
	RemainingBytes map[string]int64
}

type Service struct {
	targets []Target
	maxAge  time.Duration
	logger  *zap.Logger
}

func NewService(maxAge time.Duration, logger *zap.Logger, targets ...Target) *Service {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Service{
		targets: targets,
		maxAge:  maxAge,
		logger:  logger,
	}
}

// Sweep deletes every blob last modified more than maxAge ago. Failures on
// individual blobs are counted and logged; only cancellation stops a sweep
// early.
func (s *Service) Sweep(ctx context.Context) (*Result, error) {
	start := time.Now()
	cutoff := start.Add(-s.maxAge)
	result := &Result{RemainingBytes: make(map[string]int64, len(s.targets))}

	for _, target := range s.targets {
		log := s.logger.With(zap.String("store", target.Name))

		blobs, err := target.Store.List(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Error("failed to list blobs", zap.Error(err))
			result.Failed++
			continue
		}

		var remaining int64
		for _, blob := range blobs {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			result.Scanned++

			if !blob.ModTime.Before(cutoff) {
				remaining += blob.Size
				continue
			}

			if err := target.Store.Delete(ctx, blob.ID); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
				log.Warn("failed to delete expired blob", zap.String("id", blob.ID), zap.Error(err))
				result.Failed++
				remaining += blob.Size
				continue
			}
			result.Removed++
		}

		result.RemainingBytes[target.Name] = remaining
		log.Info("storage usage", zap.Int64("bytes", remaining), zap.Float64("megabytes", float64(remaining)/(1024*1024)))
	}

	s.logger.Info("cleanup sweep finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("removed", result.Removed),
		zap.Int("failed", result.Failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/gemini"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/imaging"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/cleanup"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/watermark"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Storage
	uploads, processed, err := newBlobStores(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create storage", zap.Error(err))
	}

	// Rate limiting is best effort; the API runs without it when Redis is down.
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("rate limiting disabled, redis unavailable", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
		}
	}

	// Infrastructure services
	geminiClient := gemini.NewClient(cfg.Gemini, logger)
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, requests must send X-Gemini-Api-Key")
	}
	imageProcessor := imaging.NewProcessor(cfg.Pipeline.MaxImageDimension, logger)

	// Use cases
	watermarkSvc := watermark.NewService(uploads, processed, imageProcessor, geminiClient, watermark.Config{
		MaxFileSize:     cfg.Pipeline.MaxFileSize,
		KeepPNG:         cfg.Pipeline.KeepPNG,
		PreviewMaxWidth: cfg.Pipeline.PreviewMaxWidth,
	}, logger)
	cleanupSvc := cleanup.NewService(cfg.Cleanup.MaxAge, logger,
		cleanup.Target{Name: "uploads", Store: uploads},
		cleanup.Target{Name: "processed", Store: processed},
	)

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	cleanupWorker := worker.NewCleanupWorker(cleanupSvc, cfg.Cleanup.Interval, cfg.Cleanup.OnStartup, logger)
	go cleanupWorker.Start(workerCtx)

	// Handlers
	watermarkHandler := handler.NewWatermarkHandler(watermarkSvc, cfg.Pipeline.MaxFileSize)
	cleanupHandler := handler.NewCleanupHandler(cleanupSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		WatermarkHandler: watermarkHandler,
		CleanupHandler:   cleanupHandler,
		RateLimiter:      rateLimiter,
		AllowedOrigins:   cfg.CORS.AllowedOrigins(),
		ProcessTimeout:   cfg.Pipeline.ProcessTimeout,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newBlobStores(cfg *config.Config, logger *zap.Logger) (adapterstorage.BlobStore, adapterstorage.BlobStore, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		client := storage.NewS3Client(cfg.S3)
		logger.Info("using s3 storage", zap.String("bucket", cfg.S3.Bucket), zap.String("endpoint", cfg.S3.Endpoint))
		return storage.NewS3Store(client, cfg.S3.Bucket, cfg.S3.UploadsPrefix, logger),
			storage.NewS3Store(client, cfg.S3.Bucket, cfg.S3.ProcessedPrefix, logger),
			nil
	}

	uploads, err := storage.NewLocalStore(cfg.Storage.UploadsDir, logger)
	if err != nil {
		return nil, nil, err
	}
	processed, err := storage.NewLocalStore(cfg.Storage.ProcessedDir, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using local storage",
		zap.String("uploads_dir", cfg.Storage.UploadsDir),
		zap.String("processed_dir", cfg.Storage.ProcessedDir),
	)
	return uploads, processed, nil
}

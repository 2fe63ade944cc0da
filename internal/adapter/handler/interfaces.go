package handler

import (
	"context"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/cleanup"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/watermark"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type WatermarkService interface {
	Process(ctx context.Context, input watermark.ProcessInput) (*entity.ProcessResult, error)
	Info(ctx context.Context, input watermark.InfoInput) (*entity.ImageInfo, error)
	Download(ctx context.Context, id string) (*watermark.Blob, error)
	Preview(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	TestConnection(ctx context.Context, apiKey string) bool
	ListModels(ctx context.Context, apiKey string) ([]string, error)
}

type CleanupService interface {
	Sweep(ctx context.Context) (*cleanup.Result, error)
}

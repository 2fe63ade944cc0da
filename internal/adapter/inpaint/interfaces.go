package inpaint

import (
	"context"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/inpaint_mocks.go -package=mocks

// Client fills a region of an image through a remote generative model.
// An empty apiKey selects the configured default key.
type Client interface {
	RemoveWatermark(ctx context.Context, image []byte, mimeType string, region valueobject.Region, apiKey string) ([]byte, error)
	TestConnection(ctx context.Context, apiKey string) bool
	ListModels(ctx context.Context, apiKey string) ([]string, error)
}

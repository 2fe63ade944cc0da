package storage

import (
	"context"
	"image"
	"time"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type BlobInfo struct {
	ID      string
	Size    int64
	ModTime time.Time
}

// BlobStore is a flat namespace of immutable blobs. Read returns
// domain.ErrBlobNotFound for unknown ids and Delete of a missing blob is not
// an error.
type BlobStore interface {
	Save(ctx context.Context, data []byte, ext string) (string, error)
	Read(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]BlobInfo, error)
}

type ImageProcessor interface {
	Metadata(buf []byte) (*entity.ImageInfo, error)
	Preprocess(buf []byte) (*entity.PreprocessResult, error)
	ResizeToExact(buf []byte, width, height int) ([]byte, error)
	CropRegion(buf []byte, region valueobject.Region, padding int) ([]byte, valueobject.Region, error)
	CompositeRegion(base, overlay []byte, pos image.Point) ([]byte, error)
	Encode(buf []byte, opts entity.EncodeOptions) (*entity.EncodedImage, error)
	GeneratePreview(buf []byte, maxWidth int) ([]byte, error)
}

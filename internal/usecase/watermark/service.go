package watermark

import (
	"context"
	"fmt"
	"math"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/inpaint"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

const (
	DefaultMaxFileSize     = 20 << 20
	DefaultPreviewMaxWidth = 800
	DefaultURLPrefix       = "/api/watermark"

	// axis scale factors further apart than this are logged
	aspectDriftTolerance = 0.01
)

type Config struct {
	MaxFileSize     int64
	KeepPNG         bool
	PreviewMaxWidth int
	URLPrefix       string
}

type Service struct {
	uploads   storage.BlobStore
	processed storage.BlobStore
	processor storage.ImageProcessor
	inpainter inpaint.Client
	cfg       Config
	logger    *zap.Logger
}

func NewService(
	uploads storage.BlobStore,
	processed storage.BlobStore,
	processor storage.ImageProcessor,
	inpainter inpaint.Client,
	cfg Config,
	logger *zap.Logger,
) *Service {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.PreviewMaxWidth <= 0 {
		cfg.PreviewMaxWidth = DefaultPreviewMaxWidth
	}
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = DefaultURLPrefix
	}
	cfg.URLPrefix = strings.TrimRight(cfg.URLPrefix, "/")

	return &Service{
		uploads:   uploads,
		processed: processed,
		processor: processor,
		inpainter: inpainter,
		cfg:       cfg,
		logger:    logger,
	}
}

type ProcessInput struct {
	File        []byte
	Filename    string
	ContentType string
	Size        int64
	Region      valueobject.Region
	Lossless    bool
	APIKey      string
}

type InfoInput struct {
	File        []byte
	ContentType string
	Size        int64
}

type Blob struct {
	ID          string
	Data        []byte
	ContentType string
}

// Process removes the content of input.Region and stores the result.
// Nothing is written before the upload and region are validated; once the
// upload is stored it is deleted again whether the pipeline succeeds or
// fails.
func (s *Service) Process(ctx context.Context, input ProcessInput) (*entity.ProcessResult, error) {
	start := time.Now()

	if err := s.validateUpload(input.Size, len(input.File), input.ContentType); err != nil {
		return nil, err
	}

	prep, err := s.processor.Preprocess(input.File)
	if err != nil {
		return nil, err
	}

	info, err := s.processor.Metadata(prep.Buffer)
	if err != nil {
		return nil, err
	}

	region := input.Region
	if prep.Resized {
		region = s.scaleRegion(region, prep, info)
	}

	if err := region.Validate(info.Width, info.Height); err != nil {
		return nil, apperror.RegionInvalid(err)
	}

	uploadID, err := s.uploads.Save(ctx, input.File, uploadExtension(input.Filename, prep.MimeType))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("saving upload: %w", err))
	}

	log := s.logger.With(
		zap.String("upload_id", uploadID),
		zap.String("region", region.String()),
		zap.String("mime_type", prep.MimeType),
	)

	result, err := s.inpaint(ctx, input, prep, info, region, log)
	s.discardUpload(ctx, uploadID, log)
	if err != nil {
		log.Warn("watermark removal failed", zap.Error(err))
		return nil, err
	}

	result.OriginalFilename = input.Filename
	result.OriginalSize = max(input.Size, int64(len(input.File)))
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	log.Info("watermark removed",
		zap.String("processed_id", result.BlobID),
		zap.Int64("processing_time_ms", result.ProcessingTimeMs),
		zap.Int64("processed_size", result.ProcessedSize),
	)
	return result, nil
}

// inpaint runs the remote call and everything after it. The caller owns
// the upload blob.
func (s *Service) inpaint(
	ctx context.Context,
	input ProcessInput,
	prep *entity.PreprocessResult,
	info *entity.ImageInfo,
	region valueobject.Region,
	log *zap.Logger,
) (*entity.ProcessResult, error) {
	edited, err := s.inpainter.RemoveWatermark(ctx, prep.Buffer, prep.MimeType, region, input.APIKey)
	if err != nil {
		return nil, err
	}

	editedInfo, err := s.processor.Metadata(edited)
	if err != nil {
		return nil, err
	}
	if editedInfo.Width != info.Width || editedInfo.Height != info.Height {
		log.Info("reconciling remote output size",
			zap.Int("remote_width", editedInfo.Width),
			zap.Int("remote_height", editedInfo.Height),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height),
		)
		edited, err = s.processor.ResizeToExact(edited, info.Width, info.Height)
		if err != nil {
			return nil, err
		}
	}

	overlay, cropped, err := s.processor.CropRegion(edited, region, 0)
	if err != nil {
		return nil, err
	}

	composed, err := s.processor.CompositeRegion(prep.Buffer, overlay, cropped.Origin())
	if err != nil {
		return nil, err
	}

	encoded, err := s.processor.Encode(composed, entity.EncodeOptions{
		Lossless:       input.Lossless,
		OriginalFormat: s.outputFormat(prep),
	})
	if err != nil {
		return nil, err
	}

	processedID, err := s.processed.Save(ctx, encoded.Data, encoded.Extension)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("saving processed image: %w", err))
	}

	return &entity.ProcessResult{
		ID:            strings.TrimSuffix(processedID, path.Ext(processedID)),
		BlobID:        processedID,
		ProcessedURL:  fmt.Sprintf("%s/download/%s", s.cfg.URLPrefix, processedID),
		PreviewURL:    fmt.Sprintf("%s/preview/%s", s.cfg.URLPrefix, processedID),
		ProcessedSize: int64(len(encoded.Data)),
	}, nil
}

func (s *Service) Info(_ context.Context, input InfoInput) (*entity.ImageInfo, error) {
	if err := s.validateUpload(input.Size, len(input.File), input.ContentType); err != nil {
		return nil, err
	}
	return s.processor.Metadata(input.File)
}

func (s *Service) Download(ctx context.Context, id string) (*Blob, error) {
	data, err := s.processed.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	contentType := "image/jpeg"
	if strings.EqualFold(path.Ext(id), ".png") {
		contentType = "image/png"
	}

	return &Blob{ID: id, Data: data, ContentType: contentType}, nil
}

func (s *Service) Preview(ctx context.Context, id string) ([]byte, error) {
	data, err := s.processed.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.processor.GeneratePreview(data, s.cfg.PreviewMaxWidth)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.processed.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("processed image deleted", zap.String("id", id))
	return nil
}

func (s *Service) TestConnection(ctx context.Context, apiKey string) bool {
	return s.inpainter.TestConnection(ctx, apiKey)
}

func (s *Service) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	return s.inpainter.ListModels(ctx, apiKey)
}

func (s *Service) validateUpload(declaredSize int64, actualSize int, contentType string) error {
	size := max(declaredSize, int64(actualSize))
	if size > s.cfg.MaxFileSize {
		return apperror.FileTooLarge(size, s.cfg.MaxFileSize)
	}
	if actualSize == 0 {
		return apperror.BadRequest("image file is required")
	}
	if !domain.IsSupportedContentType(contentType) {
		return apperror.InvalidFormat(contentType)
	}
	return nil
}

// scaleRegion maps a region drawn on the original upload onto the
// downscaled buffer, one factor per axis.
func (s *Service) scaleRegion(region valueobject.Region, prep *entity.PreprocessResult, info *entity.ImageInfo) valueobject.Region {
	scaleX := float64(info.Width) / float64(prep.OriginalWidth)
	scaleY := float64(info.Height) / float64(prep.OriginalHeight)

	if drift := math.Abs(scaleX-scaleY) / math.Max(scaleX, scaleY); drift > aspectDriftTolerance {
		s.logger.Warn("axis scale factors diverge",
			zap.Float64("scale_x", scaleX),
			zap.Float64("scale_y", scaleY),
		)
	}

	scaled := region.Scale(scaleX, scaleY)
	s.logger.Debug("region rescaled",
		zap.String("from", region.String()),
		zap.String("to", scaled.String()),
	)
	return scaled
}

// outputFormat is the format hint for the final encode, taken from the upload
// as received rather than the working buffer. With KeepPNG off, PNG sources
// are delivered as JPEG like every other lossy request.
func (s *Service) outputFormat(prep *entity.PreprocessResult) string {
	mimeType := prep.SourceMimeType
	if mimeType == "" {
		mimeType = prep.MimeType
	}
	format := strings.TrimPrefix(mimeType, "image/")
	if format == "png" && !s.cfg.KeepPNG {
		return ""
	}
	return format
}

func (s *Service) discardUpload(ctx context.Context, id string, log *zap.Logger) {
	if err := s.uploads.Delete(context.WithoutCancel(ctx), id); err != nil {
		log.Warn("failed to delete upload", zap.Error(err))
	}
}

func uploadExtension(filename, mimeType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); domain.IsSupportedImageFormat(ext) {
		return ext
	}
	switch mimeType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpg"
	}
}

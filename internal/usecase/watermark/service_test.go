package watermark_test

import (
	"context"
	"errors"
	"image"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/mocks"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/usecase/watermark"
)

type fixture struct {
	uploads   *mocks.MockBlobStore
	processed *mocks.MockBlobStore
	processor *mocks.MockImageProcessor
	inpainter *mocks.MockClient
	svc       *watermark.Service
}

func newFixture(t *testing.T, cfg watermark.Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uploads:   mocks.NewMockBlobStore(ctrl),
		processed: mocks.NewMockBlobStore(ctrl),
		processor: mocks.NewMockImageProcessor(ctrl),
		inpainter: mocks.NewMockClient(ctrl),
	}
	f.svc = watermark.NewService(f.uploads, f.processed, f.processor, f.inpainter, cfg, zap.NewNop())
	return f
}

var (
	rawUpload   = []byte("raw-upload")
	prepared    = []byte("prepared")
	remoteImage = []byte("remote-output")
	overlay     = []byte("overlay")
	composed    = []byte("composed")
	finalImage  = []byte("final-image")
)

func validInput() watermark.ProcessInput {
	return watermark.ProcessInput{
		File:        rawUpload,
		Filename:    "photo.png",
		ContentType: "image/png",
		Size:        int64(len(rawUpload)),
		Region:      valueobject.NewRegion(100, 100, 200, 150),
		APIKey:      "override",
	}
}

func TestService_Process(t *testing.T) {
	t.Run("runs the full pipeline", func(t *testing.T) {
		f := newFixture(t, watermark.Config{KeepPNG: true})
		ctx := context.Background()
		region := valueobject.NewRegion(100, 100, 200, 150)

		gomock.InOrder(
			f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
				Buffer: prepared, MimeType: "image/png", OriginalWidth: 800, OriginalHeight: 600,
			}, nil),
			f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600, Format: "png"}, nil),
			f.uploads.EXPECT().Save(ctx, rawUpload, "png").Return("upload-1.png", nil),
			f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", region, "override").Return(remoteImage, nil),
			f.processor.EXPECT().Metadata(remoteImage).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil),
			f.processor.EXPECT().CropRegion(remoteImage, region, 0).Return(overlay, region, nil),
			f.processor.EXPECT().CompositeRegion(prepared, overlay, image.Pt(100, 100)).Return(composed, nil),
			f.processor.EXPECT().Encode(composed, entity.EncodeOptions{OriginalFormat: "png"}).
				Return(&entity.EncodedImage{Data: finalImage, Extension: "png", MimeType: "image/png"}, nil),
			f.processed.EXPECT().Save(ctx, finalImage, "png").Return("abc-123.png", nil),
			f.uploads.EXPECT().Delete(gomock.Any(), "upload-1.png").Return(nil),
		)

		result, err := f.svc.Process(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, "abc-123", result.ID)
		assert.Equal(t, "abc-123.png", result.BlobID)
		assert.Equal(t, "photo.png", result.OriginalFilename)
		assert.Equal(t, "/api/watermark/download/abc-123.png", result.ProcessedURL)
		assert.Equal(t, "/api/watermark/preview/abc-123.png", result.PreviewURL)
		assert.Equal(t, int64(len(rawUpload)), result.OriginalSize)
		assert.Equal(t, int64(len(finalImage)), result.ProcessedSize)
		assert.GreaterOrEqual(t, result.ProcessingTimeMs, int64(0))
	})

	t.Run("rescales the region and reconciles remote size", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		ctx := context.Background()
		input := validInput()
		input.Region = valueobject.NewRegion(1000, 500, 400, 300)
		input.ContentType = "image/jpeg"
		input.Filename = "big.jpeg"
		scaled := valueobject.NewRegion(500, 250, 200, 150)

		f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
			Buffer: prepared, MimeType: "image/jpeg", OriginalWidth: 8000, OriginalHeight: 4000, Resized: true,
		}, nil)
		f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 4000, Height: 2000}, nil)
		f.uploads.EXPECT().Save(ctx, rawUpload, "jpeg").Return("u.jpeg", nil)
		f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/jpeg", scaled, "override").Return(remoteImage, nil)
		f.processor.EXPECT().Metadata(remoteImage).Return(&entity.ImageInfo{Width: 1024, Height: 512}, nil)
		f.processor.EXPECT().ResizeToExact(remoteImage, 4000, 2000).Return([]byte("reconciled"), nil)
		f.processor.EXPECT().CropRegion([]byte("reconciled"), scaled, 0).Return(overlay, scaled, nil)
		f.processor.EXPECT().CompositeRegion(prepared, overlay, image.Pt(500, 250)).Return(composed, nil)
		f.processor.EXPECT().Encode(composed, entity.EncodeOptions{OriginalFormat: "jpeg"}).
			Return(&entity.EncodedImage{Data: finalImage, Extension: "jpg", MimeType: "image/jpeg"}, nil)
		f.processed.EXPECT().Save(ctx, finalImage, "jpg").Return("out.jpg", nil)
		f.uploads.EXPECT().Delete(gomock.Any(), "u.jpeg").Return(nil)

		result, err := f.svc.Process(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "out", result.ID)
	})

	t.Run("converted sources are encoded from the upload format", func(t *testing.T) {
		for _, source := range []string{"image/gif", "image/webp"} {
			t.Run(source, func(t *testing.T) {
				f := newFixture(t, watermark.Config{KeepPNG: true})
				ctx := context.Background()
				input := validInput()
				input.ContentType = source
				input.Filename = "anim." + source[len("image/"):]
				region := input.Region

				f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
					Buffer: prepared, MimeType: "image/png", SourceMimeType: source, OriginalWidth: 800, OriginalHeight: 600,
				}, nil)
				f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
				f.uploads.EXPECT().Save(ctx, rawUpload, gomock.Any()).Return("u.bin", nil)
				f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", region, "override").Return(remoteImage, nil)
				f.processor.EXPECT().Metadata(remoteImage).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
				f.processor.EXPECT().CropRegion(remoteImage, region, 0).Return(overlay, region, nil)
				f.processor.EXPECT().CompositeRegion(prepared, overlay, region.Origin()).Return(composed, nil)
				f.processor.EXPECT().Encode(composed, entity.EncodeOptions{OriginalFormat: source[len("image/"):]}).
					Return(&entity.EncodedImage{Data: finalImage, Extension: "jpg", MimeType: "image/jpeg"}, nil)
				f.processed.EXPECT().Save(ctx, finalImage, "jpg").Return("out.jpg", nil)
				f.uploads.EXPECT().Delete(gomock.Any(), "u.bin").Return(nil)

				result, err := f.svc.Process(ctx, input)

				require.NoError(t, err)
				assert.Equal(t, "out.jpg", result.BlobID)
			})
		}
	})

	t.Run("png is delivered as jpeg when preservation is off", func(t *testing.T) {
		f := newFixture(t, watermark.Config{KeepPNG: false})
		ctx := context.Background()
		region := validInput().Region

		f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
			Buffer: prepared, MimeType: "image/png", OriginalWidth: 800, OriginalHeight: 600,
		}, nil)
		f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.uploads.EXPECT().Save(ctx, rawUpload, "png").Return("u.png", nil)
		f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", region, "override").Return(remoteImage, nil)
		f.processor.EXPECT().Metadata(remoteImage).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.processor.EXPECT().CropRegion(remoteImage, region, 0).Return(overlay, region, nil)
		f.processor.EXPECT().CompositeRegion(prepared, overlay, region.Origin()).Return(composed, nil)
		f.processor.EXPECT().Encode(composed, entity.EncodeOptions{OriginalFormat: ""}).
			Return(&entity.EncodedImage{Data: finalImage, Extension: "jpg", MimeType: "image/jpeg"}, nil)
		f.processed.EXPECT().Save(ctx, finalImage, "jpg").Return("out.jpg", nil)
		f.uploads.EXPECT().Delete(gomock.Any(), "u.png").Return(nil)

		_, err := f.svc.Process(ctx, validInput())

		require.NoError(t, err)
	})

	t.Run("rejects oversized uploads without side effects", func(t *testing.T) {
		f := newFixture(t, watermark.Config{MaxFileSize: 5})

		_, err := f.svc.Process(context.Background(), validInput())

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindFileTooLarge))
		assert.Equal(t, http.StatusRequestEntityTooLarge, apperror.StatusCode(err))
	})

	t.Run("rejects unsupported formats without side effects", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		input := validInput()
		input.ContentType = "image/bmp"

		_, err := f.svc.Process(context.Background(), input)

		assert.True(t, apperror.IsKind(err, apperror.KindInvalidFormat))
	})

	t.Run("rejects empty files", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		input := validInput()
		input.File = nil
		input.Size = 0

		_, err := f.svc.Process(context.Background(), input)

		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	})

	t.Run("invalid region is rejected before any write", func(t *testing.T) {
		tests := []struct {
			name   string
			region valueobject.Region
			want   error
		}{
			{"too small", valueobject.NewRegion(0, 0, 4, 4), domain.ErrRegionTooSmall},
			{"out of bounds", valueobject.NewRegion(10, 10, 50, 50), domain.ErrRegionOutOfBounds},
			{"negative", valueobject.NewRegion(-1, 0, 10, 10), domain.ErrRegionNegative},
			{"coordinates near max int", valueobject.NewRegion(math.MaxInt-2, 0, 5, 5), domain.ErrRegionOutOfBounds},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t, watermark.Config{})
				input := validInput()
				input.Region = tt.region

				f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
					Buffer: prepared, MimeType: "image/png", OriginalWidth: 40, OriginalHeight: 40,
				}, nil)
				f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 40, Height: 40}, nil)

				_, err := f.svc.Process(context.Background(), input)

				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindRegionInvalid))
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("preprocess failure has no side effects", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		procErr := apperror.ImageProcessing("unable to read image dimensions", nil)

		f.processor.EXPECT().Preprocess(rawUpload).Return(nil, procErr)

		_, err := f.svc.Process(context.Background(), validInput())

		assert.Same(t, procErr, err)
	})

	t.Run("remote failure deletes the upload and propagates unchanged", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		ctx := context.Background()
		refusal := apperror.ContentPolicy("declined")

		f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
			Buffer: prepared, MimeType: "image/png", OriginalWidth: 800, OriginalHeight: 600,
		}, nil)
		f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.uploads.EXPECT().Save(ctx, rawUpload, "png").Return("u.png", nil)
		f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", gomock.Any(), "override").Return(nil, refusal)
		f.uploads.EXPECT().Delete(gomock.Any(), "u.png").Return(nil)

		_, err := f.svc.Process(ctx, validInput())

		assert.Same(t, refusal, err)
	})

	t.Run("processed save failure deletes the upload", func(t *testing.T) {
		f := newFixture(t, watermark.Config{KeepPNG: true})
		ctx := context.Background()
		region := validInput().Region

		f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
			Buffer: prepared, MimeType: "image/png", OriginalWidth: 800, OriginalHeight: 600,
		}, nil)
		f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.uploads.EXPECT().Save(ctx, rawUpload, "png").Return("u.png", nil)
		f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", region, "override").Return(remoteImage, nil)
		f.processor.EXPECT().Metadata(remoteImage).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.processor.EXPECT().CropRegion(remoteImage, region, 0).Return(overlay, region, nil)
		f.processor.EXPECT().CompositeRegion(prepared, overlay, region.Origin()).Return(composed, nil)
		f.processor.EXPECT().Encode(composed, gomock.Any()).
			Return(&entity.EncodedImage{Data: finalImage, Extension: "png", MimeType: "image/png"}, nil)
		f.processed.EXPECT().Save(ctx, finalImage, "png").Return("", errors.New("disk full"))
		f.uploads.EXPECT().Delete(gomock.Any(), "u.png").Return(nil)

		_, err := f.svc.Process(ctx, validInput())

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInternal))
	})

	t.Run("upload cleanup failure does not mask the result", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		ctx := context.Background()
		remoteErr := apperror.RemoteTransient("HTTP 503", nil)

		f.processor.EXPECT().Preprocess(rawUpload).Return(&entity.PreprocessResult{
			Buffer: prepared, MimeType: "image/png", OriginalWidth: 800, OriginalHeight: 600,
		}, nil)
		f.processor.EXPECT().Metadata(prepared).Return(&entity.ImageInfo{Width: 800, Height: 600}, nil)
		f.uploads.EXPECT().Save(ctx, rawUpload, "png").Return("u.png", nil)
		f.inpainter.EXPECT().RemoveWatermark(ctx, prepared, "image/png", gomock.Any(), "override").Return(nil, remoteErr)
		f.uploads.EXPECT().Delete(gomock.Any(), "u.png").Return(errors.New("permission denied"))

		_, err := f.svc.Process(ctx, validInput())

		assert.Same(t, remoteErr, err)
	})
}

func TestService_Info(t *testing.T) {
	f := newFixture(t, watermark.Config{})
	want := &entity.ImageInfo{Width: 10, Height: 20, Format: "png", Size: int64(len(rawUpload))}

	f.processor.EXPECT().Metadata(rawUpload).Return(want, nil)

	got, err := f.svc.Info(context.Background(), watermark.InfoInput{
		File: rawUpload, ContentType: "image/png", Size: int64(len(rawUpload)),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Download(t *testing.T) {
	tests := []struct {
		id          string
		contentType string
	}{
		{"a.png", "image/png"},
		{"a.jpg", "image/jpeg"},
		{"a.webp", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f := newFixture(t, watermark.Config{})
			ctx := context.Background()
			f.processed.EXPECT().Read(ctx, tt.id).Return(finalImage, nil)

			blob, err := f.svc.Download(ctx, tt.id)

			require.NoError(t, err)
			assert.Equal(t, tt.contentType, blob.ContentType)
			assert.Equal(t, finalImage, blob.Data)
		})
	}

	t.Run("missing blob", func(t *testing.T) {
		f := newFixture(t, watermark.Config{})
		ctx := context.Background()
		f.processed.EXPECT().Read(ctx, "gone.png").Return(nil, domain.ErrBlobNotFound)

		_, err := f.svc.Download(ctx, "gone.png")

		assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	})
}

func TestService_Preview(t *testing.T) {
	f := newFixture(t, watermark.Config{PreviewMaxWidth: 640})
	ctx := context.Background()

	f.processed.EXPECT().Read(ctx, "a.png").Return(finalImage, nil)
	f.processor.EXPECT().GeneratePreview(finalImage, 640).Return([]byte("preview"), nil)

	out, err := f.svc.Preview(ctx, "a.png")

	require.NoError(t, err)
	assert.Equal(t, []byte("preview"), out)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t, watermark.Config{})
	ctx := context.Background()

	f.processed.EXPECT().Delete(ctx, "a.png").Return(nil)

	assert.NoError(t, f.svc.Delete(ctx, "a.png"))
}

func TestService_Passthroughs(t *testing.T) {
	f := newFixture(t, watermark.Config{})
	ctx := context.Background()

	f.inpainter.EXPECT().TestConnection(ctx, "k").Return(true)
	f.inpainter.EXPECT().ListModels(ctx, "k").Return([]string{"gemini-2.5-flash-image"}, nil)

	assert.True(t, f.svc.TestConnection(ctx, "k"))
	models, err := f.svc.ListModels(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini-2.5-flash-image"}, models)
}

package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

const (
	DefaultMaxDimension = 4096
	JPEGQuality         = 95
	PreviewJPEGQuality  = 80
)

// Processor implements every pixel operation of the pipeline on encoded
// buffers. It never mutates its inputs.
type Processor struct {
	maxDimension int
	logger       *zap.Logger
}

func NewProcessor(maxDimension int, logger *zap.Logger) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{
		maxDimension: maxDimension,
		logger:       logger,
	}
}

func (p *Processor) Metadata(buf []byte) (*entity.ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, apperror.ImageProcessing("failed to read image metadata", err)
	}

	return &entity.ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		Size:   int64(len(buf)),
	}, nil
}

// Preprocess prepares an upload for the remote model. The buffer is only
// re-encoded when it has to be downscaled or is in a format the working
// pipeline does not keep (GIF, WebP).
func (p *Processor) Preprocess(buf []byte) (*entity.PreprocessResult, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, apperror.ImageProcessing("unable to read image dimensions", err)
	}

	mimeType := DetectMimeType(buf, format)
	targetMime := workingMimeType(mimeType)
	needsResize := cfg.Width > p.maxDimension || cfg.Height > p.maxDimension

	result := &entity.PreprocessResult{
		Buffer:         buf,
		MimeType:       mimeType,
		SourceMimeType: mimeType,
		OriginalWidth:  cfg.Width,
		OriginalHeight: cfg.Height,
		Resized:        needsResize,
	}

	if !needsResize && targetMime == mimeType {
		return result, nil
	}

	var out []byte
	if needsResize {
		out, err = p.ResizeToFit(buf, p.maxDimension)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("image downscaled for processing",
			zap.Int("original_width", cfg.Width),
			zap.Int("original_height", cfg.Height),
			zap.Int("max_dimension", p.maxDimension),
		)
	} else {
		img, err := decode(buf)
		if err != nil {
			return nil, err
		}
		out, err = encodeWorking(NormalizeChannelsForFormat(img, targetMime), targetMime)
		if err != nil {
			return nil, err
		}
	}

	result.Buffer = out
	result.MimeType = DetectMimeType(out, FormatName(targetMime))
	return result, nil
}

// ResizeToFit scales buf down so neither side exceeds maxDimension. Images
// already within bounds are never enlarged.
func (p *Processor) ResizeToFit(buf []byte, maxDimension int) ([]byte, error) {
	img, mimeType, err := decodeWithMime(buf)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= maxDimension && b.Dy() <= maxDimension {
		return bytes.Clone(buf), nil
	}

	target := workingMimeType(mimeType)
	return encodeWorking(NormalizeChannelsForFormat(imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos), target), target)
}

// ResizeToExact forces buf to width x height without preserving the aspect
// ratio.
func (p *Processor) ResizeToExact(buf []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, apperror.ImageProcessing(fmt.Sprintf("invalid target size %dx%d", width, height), nil)
	}

	img, mimeType, err := decodeWithMime(buf)
	if err != nil {
		return nil, err
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	return encodeWorking(resized, workingMimeType(mimeType))
}

// CropRegion extracts region grown by padding on every side. The returned
// region is the clamped rectangle that was actually extracted.
func (p *Processor) CropRegion(buf []byte, region valueobject.Region, padding int) ([]byte, valueobject.Region, error) {
	img, mimeType, err := decodeWithMime(buf)
	if err != nil {
		return nil, valueobject.Region{}, err
	}

	b := img.Bounds()
	padded := region.Pad(padding, b.Dx(), b.Dy())
	if padded.IsEmpty() || !padded.Rect().In(image.Rect(0, 0, b.Dx(), b.Dy())) {
		return nil, valueobject.Region{}, apperror.ImageProcessing(
			fmt.Sprintf("crop region %s outside image bounds %dx%d", padded, b.Dx(), b.Dy()), nil)
	}

	cropped := imaging.Crop(img, padded.Rect().Add(b.Min))

	out, err := encodeWorking(cropped, workingMimeType(mimeType))
	if err != nil {
		return nil, valueobject.Region{}, err
	}
	return out, padded, nil
}

// CompositeRegion pastes overlay onto base with its top-left corner at pos.
// Overlay pixels replace the base pixels; the output keeps the base size.
func (p *Processor) CompositeRegion(base, overlay []byte, pos image.Point) ([]byte, error) {
	baseImg, mimeType, err := decodeWithMime(base)
	if err != nil {
		return nil, err
	}
	overlayImg, err := decode(overlay)
	if err != nil {
		return nil, err
	}

	composed := imaging.Paste(baseImg, overlayImg, pos)
	return encodeWorking(composed, workingMimeType(mimeType))
}

// NormalizeChannelsForFormat flattens translucent images onto opaque white
// when the target format cannot carry alpha.
func NormalizeChannelsForFormat(img image.Image, mimeType string) image.Image {
	if mimeType != MimeJPEG || !hasAlpha(img) {
		return img
	}

	b := img.Bounds()
	background := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// Encode produces the final deliverable. Lossless requests and PNG sources
// become PNG at maximum compression, everything else JPEG.
func (p *Processor) Encode(buf []byte, opts entity.EncodeOptions) (*entity.EncodedImage, error) {
	img, err := decode(buf)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if opts.Lossless || FormatName(opts.OriginalFormat) == "png" {
		if err := imaging.Encode(&out, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, apperror.ImageProcessing("failed to encode png", err)
		}
		return &entity.EncodedImage{Data: out.Bytes(), Extension: "png", MimeType: MimePNG}, nil
	}

	flat := NormalizeChannelsForFormat(img, MimeJPEG)
	if err := imaging.Encode(&out, flat, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, apperror.ImageProcessing("failed to encode jpeg", err)
	}
	return &entity.EncodedImage{Data: out.Bytes(), Extension: "jpg", MimeType: MimeJPEG}, nil
}

// GeneratePreview renders a JPEG no wider than maxWidth.
func (p *Processor) GeneratePreview(buf []byte, maxWidth int) ([]byte, error) {
	img, err := decode(buf)
	if err != nil {
		return nil, err
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, NormalizeChannelsForFormat(img, MimeJPEG), imaging.JPEG, imaging.JPEGQuality(PreviewJPEGQuality)); err != nil {
		return nil, apperror.ImageProcessing("failed to encode preview", err)
	}
	return out.Bytes(), nil
}

func decode(buf []byte) (image.Image, error) {
	img, _, err := decodeWithMime(buf)
	return img, err
}

func decodeWithMime(buf []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, "", apperror.ImageProcessing("failed to decode image", err)
	}
	return img, DetectMimeType(buf, format), nil
}

// workingMimeType is the format intermediate buffers are kept in. JPEG stays
// JPEG; everything else is held as lossless PNG.
func workingMimeType(mimeType string) string {
	if mimeType == MimeJPEG {
		return MimeJPEG
	}
	return MimePNG
}

func encodeWorking(img image.Image, mimeType string) ([]byte, error) {
	var out bytes.Buffer

	if mimeType == MimeJPEG {
		if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
			return nil, apperror.ImageProcessing("failed to encode jpeg", err)
		}
		return out.Bytes(), nil
	}

	if err := imaging.Encode(&out, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return nil, apperror.ImageProcessing("failed to encode png", err)
	}
	return out.Bytes(), nil
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

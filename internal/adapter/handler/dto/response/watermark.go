package response

import "github.com/marcos-nsantos/watermark-remover-backend/internal/domain/entity"

type ProcessResultResponse struct {
	ID               string `json:"id"`
	OriginalFilename string `json:"originalFilename"`
	ProcessedURL     string `json:"processedUrl"`
	PreviewURL       string `json:"previewUrl"`
	OriginalSize     int64  `json:"originalSize"`
	ProcessedSize    int64  `json:"processedSize"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

func ProcessResultFromEntity(r *entity.ProcessResult) ProcessResultResponse {
	return ProcessResultResponse{
		ID:               r.ID,
		OriginalFilename: r.OriginalFilename,
		ProcessedURL:     r.ProcessedURL,
		PreviewURL:       r.PreviewURL,
		OriginalSize:     r.OriginalSize,
		ProcessedSize:    r.ProcessedSize,
		ProcessingTimeMs: r.ProcessingTimeMs,
	}
}

type ImageInfoResponse struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

func ImageInfoFromEntity(info *entity.ImageInfo) ImageInfoResponse {
	return ImageInfoResponse{
		Width:  info.Width,
		Height: info.Height,
		Format: info.Format,
		Size:   info.Size,
	}
}

type ConnectionResponse struct {
	Connected bool `json:"connected"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

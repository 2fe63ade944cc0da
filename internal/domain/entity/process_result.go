package entity

type ProcessResult struct {
	ID               string
	BlobID           string
	OriginalFilename string
	ProcessedURL     string
	PreviewURL       string
	OriginalSize     int64
	ProcessedSize    int64
	ProcessingTimeMs int64
}

package entity

// ImageInfo is a point-in-time snapshot of an encoded image. It is derived
// from the bytes on demand and never stored.
type ImageInfo struct {
	Width  int
	Height int
	Format string
	Size   int64
}

// PreprocessResult is an upload normalized for the remote model. Resized
// means the dimensions changed and any user coordinates must be rescaled.
// SourceMimeType is the sniffed format of the upload before any conversion;
// MimeType describes Buffer.
type PreprocessResult struct {
	Buffer         []byte
	MimeType       string
	SourceMimeType string
	OriginalWidth  int
	OriginalHeight int
	Resized        bool
}

type EncodeOptions struct {
	Lossless       bool
	OriginalFormat string
}

type EncodedImage struct {
	Data      []byte
	Extension string
	MimeType  string
}

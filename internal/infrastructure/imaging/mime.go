package imaging

import (
	"bytes"
	"strings"
)

const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWebP = "image/webp"
	MimeGIF  = "image/gif"
)

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	gifMagic  = []byte("GIF8")
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

var mimeByFormat = map[string]string{
	"png":  MimePNG,
	"jpeg": MimeJPEG,
	"jpg":  MimeJPEG,
	"webp": MimeWebP,
	"gif":  MimeGIF,
}

// DetectMimeType sniffs the leading bytes of buf. When no signature matches
// it falls back to formatHint, then to JPEG.
func DetectMimeType(buf []byte, formatHint string) string {
	switch {
	case bytes.HasPrefix(buf, pngMagic):
		return MimePNG
	case bytes.HasPrefix(buf, jpegMagic):
		return MimeJPEG
	case bytes.HasPrefix(buf, gifMagic):
		return MimeGIF
	case bytes.HasPrefix(buf, riffMagic) && len(buf) >= 12 && bytes.Equal(buf[8:12], webpMagic):
		return MimeWebP
	}

	if mime, ok := mimeByFormat[strings.ToLower(formatHint)]; ok {
		return mime
	}
	return MimeJPEG
}

// FormatName turns a MIME type into the short format name used for encoding
// decisions.
func FormatName(mimeType string) string {
	name := strings.TrimPrefix(strings.ToLower(mimeType), "image/")
	if name == "jpg" {
		return "jpeg"
	}
	return name
}

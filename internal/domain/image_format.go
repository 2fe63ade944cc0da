package domain

import "strings"

var supportedImageFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"jpg":  true,
	"webp": true,
	"gif":  true,
}

// IsSupportedImageFormat reports whether format, a MIME subtype or a file
// extension, is an accepted upload format.
func IsSupportedImageFormat(format string) bool {
	return supportedImageFormats[strings.ToLower(strings.TrimPrefix(format, "."))]
}

// IsSupportedContentType reports whether a declared content type names one
// of the accepted upload formats. Parameters after ';' are ignored.
func IsSupportedContentType(contentType string) bool {
	subtype, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
	if !ok {
		return false
	}
	if i := strings.IndexByte(subtype, ';'); i >= 0 {
		subtype = strings.TrimSpace(subtype[:i])
	}
	return supportedImageFormats[subtype]
}

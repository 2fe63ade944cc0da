package storage

import (
	"strings"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain"
)

const maxBlobIDLength = 128

// ValidateBlobID accepts a single file name made of letters, digits, '-',
// '_' and '.', with no leading dot.
func ValidateBlobID(id string) error {
	if id == "" || len(id) > maxBlobIDLength || strings.HasPrefix(id, ".") {
		return domain.ErrInvalidBlobID
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return domain.ErrInvalidBlobID
		}
	}
	return nil
}

func newBlobID(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		return uuid.NewString()
	}
	return uuid.NewString() + "." + ext
}

func contentTypeFor(id string) string {
	i := strings.LastIndexByte(id, '.')
	if i < 0 {
		return "application/octet-stream"
	}
	switch strings.ToLower(id[i+1:]) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

package domain

import "errors"

var (
	ErrBlobNotFound      = errors.New("blob not found")
	ErrInvalidBlobID     = errors.New("invalid blob id")
	ErrRegionNegative    = errors.New("region coordinates cannot be negative")
	ErrRegionTooSmall    = errors.New("region must be at least 5x5 pixels")
	ErrRegionOutOfBounds = errors.New("region exceeds image boundaries")
)

package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyContent rejects ingestion requests with blank content before any
// provider call is made.
var ErrEmptyContent = errors.New("content is empty")

// ErrNotFound is returned by repositories when an id does not exist
var ErrNotFound = errors.New("record not found")

// SupportedMimeTypes is the allow-list for multimodal ingestion
var SupportedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/heic":      true,
	"image/heif":      true,
}

// UnsupportedMediaTypeError rejects multimodal requests whose declared mime
// type is outside the supported set.
type UnsupportedMediaTypeError struct {
	MimeType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MimeType)
}

// IsValidationError reports whether err should surface as HTTP 400
func IsValidationError(err error) bool {
	var unsupported *UnsupportedMediaTypeError
	return errors.Is(err, ErrEmptyContent) || errors.As(err, &unsupported)
}

// Package imagefile reads and writes carrier images in the container formats
// supported by the CLI: PNG, JPEG, GIF, BMP, TIFF and QOI.
package imagefile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a container format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	QOI  Format = "qoi"
)

var (
	// ErrUnknownFormat is returned for format names or file extensions
	// that no encoder is registered for.
	ErrUnknownFormat = errors.New("unknown image format")
	// ErrEmptyImage is returned when asked to encode a zero-area image.
	ErrEmptyImage = errors.New("image has zero width or height")
	// ErrTooLarge is returned when an image exceeds the dimensions the
	// container can record.
	ErrTooLarge = errors.New("image too large for container")
)

var formatAliases = map[string]Format{
	"png":  PNG,
	"jpeg": JPEG,
	"jpg":  JPEG,
	"gif":  GIF,
	"bmp":  BMP,
	"tiff": TIFF,
	"tif":  TIFF,
	"qoi":  QOI,
}

// ParseFormat resolves a case-insensitive format name such as "png" or "jpg".
func ParseFormat(name string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no file extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// MaxDimension returns the largest width or height the container can
// store, or 0 when the format has no practical limit. TIFF, GIF and JPEG
// record dimensions in 16-bit fields.
func (f Format) MaxDimension() int {
	switch f {
	case TIFF, GIF, JPEG:
		return 1<<16 - 1
	}
	return 0
}

// IsLossless reports whether the format stores channel values exactly.
func (f Format) IsLossless() bool {
	return f != JPEG
}

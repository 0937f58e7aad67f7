package imagefile

import (
	"bytes"
	"fmt"
	"image"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

// GetInfo reads the container header without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	return &ImageInfo{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

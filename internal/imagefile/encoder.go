package imagefile

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const defaultQuality = 90

// EncoderOptions controls container encoding.
type EncoderOptions struct {
	Quality int // JPEG only, 1-100, default 90
}

// cornerPalette holds every color whose channels are all 0 or 255. Carriers
// only use these, so GIF output stays exact.
var cornerPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xFF, 0x00, 0x00, 0xFF},
	color.RGBA{0x00, 0xFF, 0x00, 0xFF},
	color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
	color.RGBA{0x00, 0x00, 0xFF, 0xFF},
	color.RGBA{0xFF, 0x00, 0xFF, 0xFF},
	color.RGBA{0x00, 0xFF, 0xFF, 0xFF},
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
}

// Encode writes img in the given container format and returns the file bytes.
func Encode(img image.Image, format Format, opts EncoderOptions) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("encoding %s: %w (%dx%d)", format, ErrEmptyImage, b.Dx(), b.Dy())
	}
	if limit := format.MaxDimension(); limit > 0 && (b.Dx() > limit || b.Dy() > limit) {
		return nil, fmt.Errorf("encoding %s: %w (%dx%d, max %d)", format, ErrTooLarge, b.Dx(), b.Dy(), limit)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = png.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: clampQuality(opts.Quality)})
	case GIF:
		err = gif.Encode(&buf, toCornerPalette(img), nil)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	case QOI:
		err = qoi.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func clampQuality(q int) int {
	if q == 0 {
		return defaultQuality
	}
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func toCornerPalette(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, cornerPalette)
	draw.Draw(p, b, img, b.Min, draw.Src)
	return p
}

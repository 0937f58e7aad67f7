package imagefile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/davesmith10/bitpix/internal/ir"
	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decoded holds the result of decoding a container.
type Decoded struct {
	Image  *ir.RGBImage
	Format string // name registered with the image package, e.g. "png"
}

// Decode decodes any supported container from memory into 8-bit RGB.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decoding image: empty input")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return &Decoded{
		Image:  ir.FromImage(img),
		Format: format,
	}, nil
}

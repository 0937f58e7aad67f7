package pipeline

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/davesmith10/bitpix/internal/codec"
	"github.com/davesmith10/bitpix/internal/imagefile"
)

// ErrNotText is returned by Decode when text output was requested and the
// recovered bytes are not valid UTF-8.
var ErrNotText = errors.New("decoded payload is not valid UTF-8 text")

// EncodeOptions controls the payload -> image file pipeline.
type EncodeOptions struct {
	Format  imagefile.Format // container format, default PNG
	Quality int              // JPEG quality (1-100)
}

// EncodeResult holds the output of an encode run.
type EncodeResult struct {
	Data        []byte // encoded image file
	Format      imagefile.Format
	Width       int
	Height      int
	PaddingBits int // zero channels after the last payload bit
}

// Encode packs payload into a carrier image and writes it in the requested
// container format: pack -> encode container.
func Encode(payload []byte, opts EncodeOptions) (*EncodeResult, error) {
	if opts.Format == "" {
		opts.Format = imagefile.PNG
	}

	// 1. Pack bits into a single-row carrier
	carrier := codec.Encode(payload)

	// 2. Write the container
	data, err := imagefile.Encode(carrier, opts.Format, imagefile.EncoderOptions{
		Quality: opts.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &EncodeResult{
		Data:        data,
		Format:      opts.Format,
		Width:       carrier.Width,
		Height:      carrier.Height,
		PaddingBits: codec.PaddingBits(len(payload)),
	}, nil
}

// DecodeOptions controls the image file -> payload pipeline.
type DecodeOptions struct {
	Text bool // require the payload to be valid UTF-8
}

// DecodeResult holds the output of a decode run.
type DecodeResult struct {
	Payload   []byte
	Format    string
	Width     int
	Height    int
	Discarded int // trailing channel values that did not fill a byte
}

// Decode recovers the payload from an image file: decode container ->
// threshold channels -> optional text check.
func Decode(data []byte, opts DecodeOptions) (*DecodeResult, error) {
	// 1. Decode the container into 8-bit RGB
	decoded, err := imagefile.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	img := decoded.Image

	// 2. Threshold channels back into bytes
	payload := codec.Decode(img.Pixels)

	// 3. Validate text if requested
	if opts.Text && !utf8.Valid(payload) {
		return nil, fmt.Errorf("decode: %w (%d bytes)", ErrNotText, len(payload))
	}

	return &DecodeResult{
		Payload:   payload,
		Format:    decoded.Format,
		Width:     img.Width,
		Height:    img.Height,
		Discarded: codec.Discarded(img.Width, img.Height),
	}, nil
}

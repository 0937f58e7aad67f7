package codec

import (
	"github.com/davesmith10/bitpix/internal/ir"
)

// Width returns the width of the carrier image for a payload of n bytes:
// ceil(8n / 3). Zero bytes give a zero-width image.
func Width(n int) int {
	if n <= 0 {
		return 0
	}
	return (n*BitsPerByte + ChannelsPerPixel - 1) / ChannelsPerPixel
}

// PaddingBits returns how many zero channels follow the payload in the last
// pixel of a carrier for n bytes.
func PaddingBits(n int) int {
	return Width(n)*ChannelsPerPixel - n*BitsPerByte
}

// Encode spreads every bit of data over a Width(len(data)) x 1 image. It never
// fails; an empty payload produces a 0x1 image.
func Encode(data []byte) *ir.RGBImage {
	img := ir.NewRGBImage(Width(len(data)), 1)

	forEachStripe(img.Width, func(start, end int) {
		for x := start; x < end; x++ {
			i := img.PixOffset(x, 0)
			for c := 0; c < ChannelsPerPixel; c++ {
				img.Pixels[i+c] = channelValue(x*ChannelsPerPixel+c, data)
			}
		}
	})
	return img
}

func channelValue(bitIndex int, data []byte) uint8 {
	bit, ok := BitAt(bitIndex, data)
	if !ok {
		return 0
	}
	return bit * High
}

package codec

import (
	"image"

	"github.com/davesmith10/bitpix/internal/ir"
)

// Capacity returns the number of bytes a width x height raster decodes to.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * ChannelsPerPixel / BitsPerByte
}

// Discarded returns how many trailing channel values of a width x height
// raster do not fill a whole byte and are dropped by Decode.
func Discarded(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * ChannelsPerPixel % BitsPerByte
}

// Decode reads channels, a flattened R,G,B,R,G,B... stream, eight values per
// output byte. A value above Threshold is a set bit. Fewer than eight trailing
// values are ignored. The result is never nil.
func Decode(channels []byte) []byte {
	out := make([]byte, len(channels)/BitsPerByte)

	forEachStripe(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = decodeByte(channels[i*BitsPerByte : (i+1)*BitsPerByte])
		}
	})
	return out
}

// DecodeImage flattens img row by row and decodes its channels. Dimensions
// are not validated: any raster yields Capacity(w, h) bytes.
func DecodeImage(img image.Image) []byte {
	return Decode(ir.FromImage(img).Pixels)
}

func decodeByte(group []byte) byte {
	var b byte
	for i, v := range group {
		if v > Threshold {
			b |= 1 << (7 - uint(i))
		}
	}
	return b
}

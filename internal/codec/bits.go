// Package codec packs a byte sequence into the R, G and B channels of a
// single-row image and thresholds those channels back into bytes.
//
// Bits are taken most-significant first. Bit i of the stream lands in channel
// i%3 of pixel i/3, so the byte 0x55 becomes the three pixels
// #00FF00 #FF00FF #00FF00. A set bit is written as 255 and a clear bit as 0;
// channels past the last bit of the payload are 0.
package codec

const (
	// BitsPerByte is the number of channel values consumed per decoded byte.
	BitsPerByte = 8
	// ChannelsPerPixel is the number of bits carried by a single pixel.
	ChannelsPerPixel = 3

	// High is the channel value written for a set bit.
	High = 255
	// Threshold is the largest channel value still read back as a clear bit.
	// The margin lets carriers survive lossy containers such as JPEG.
	Threshold = High / 2
)

// BitAt returns the bit at index in data, counting from the most significant
// bit of data[0]. ok is false when index falls outside data; bit is then 0
// and must not be interpreted as a payload bit.
func BitAt(index int, data []byte) (bit uint8, ok bool) {
	if index < 0 {
		return 0, false
	}
	byteIndex := index / BitsPerByte
	if byteIndex >= len(data) {
		return 0, false
	}
	shift := 7 - uint(index%BitsPerByte)
	return (data[byteIndex] >> shift) & 1, true
}

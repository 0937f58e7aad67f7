package ir

import (
	"image"
	"image/color"
)

// RGBImage is the intermediate representation passed between the bit packer
// and the image file layer. Pixels are stored as interleaved R,G,B bytes
// (3 bytes per pixel, row-major order).
type RGBImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

// NewRGBImage allocates a black image of the given size.
func NewRGBImage(width, height int) *RGBImage {
	if width < 0 || height < 0 {
		return &RGBImage{}
	}
	return &RGBImage{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*3),
	}
}

// ColorModel returns the color model of the image.
func (m *RGBImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the image bounds, always anchored at the origin.
func (m *RGBImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// Opaque reports that every pixel is fully opaque, which lets the PNG
// encoder write 8-bit RGB without an alpha channel.
func (m *RGBImage) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
func (m *RGBImage) At(x, y int) color.Color {
	return m.RGBAt(x, y)
}

// RGBAt returns the pixel at (x, y) as an opaque color.RGBA.
func (m *RGBImage) RGBAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	i := m.PixOffset(x, y)
	return color.RGBA{R: m.Pixels[i], G: m.Pixels[i+1], B: m.Pixels[i+2], A: 0xFF}
}

// Set sets the pixel at (x, y). Alpha is dropped.
func (m *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := m.PixOffset(x, y)
	m.Pixels[i], m.Pixels[i+1], m.Pixels[i+2] = n.R, n.G, n.B
}

// SetRGB sets the channels of the pixel at (x, y) without color conversion.
func (m *RGBImage) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}
	i := m.PixOffset(x, y)
	m.Pixels[i], m.Pixels[i+1], m.Pixels[i+2] = r, g, b
}

// PixOffset returns the index of the R channel of the pixel at (x, y).
func (m *RGBImage) PixOffset(x, y int) int {
	return (y*m.Width + x) * 3
}

// FromImage flattens any image into 8-bit, non-premultiplied RGB. Alpha is
// discarded. The result is always a fresh copy, except when img is already
// an *RGBImage, which is returned as is.
func FromImage(img image.Image) *RGBImage {
	if m, ok := img.(*RGBImage); ok {
		return m
	}

	b := img.Bounds()
	out := NewRGBImage(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < out.Height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			copyRGBRow(out.Pixels[out.PixOffset(0, y):], row, out.Width)
		}
	case *image.RGBA:
		if src.Opaque() {
			for y := 0; y < out.Height; y++ {
				row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
				copyRGBRow(out.Pixels[out.PixOffset(0, y):], row, out.Width)
			}
			break
		}
		fromGeneric(out, img, b)
	default:
		fromGeneric(out, img, b)
	}
	return out
}

// copyRGBRow copies width pixels from a 4-byte-per-pixel row, skipping alpha.
func copyRGBRow(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		dst[x*3] = src[x*4]
		dst[x*3+1] = src[x*4+1]
		dst[x*3+2] = src[x*4+2]
	}
}

func fromGeneric(out *RGBImage, img image.Image, b image.Rectangle) {
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.SetRGB(x, y, n.R, n.G, n.B)
		}
	}
}

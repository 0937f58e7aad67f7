package ir

import (
	"image"
	"image/color"
	"testing"
)

func TestRGBImageSetAt(t *testing.T) {
	img := NewRGBImage(4, 2)
	if len(img.Pixels) != 4*2*3 {
		t.Fatalf("expected %d pixel bytes, got %d", 4*2*3, len(img.Pixels))
	}

	img.SetRGB(1, 1, 10, 20, 30)
	img.Set(3, 0, color.NRGBA{R: 255, G: 0, B: 128, A: 255})

	if got := img.RGBAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("RGBAt(1, 1) = %v", got)
	}
	if got := img.RGBAt(3, 0); got != (color.RGBA{255, 0, 128, 255}) {
		t.Errorf("RGBAt(3, 0) = %v", got)
	}
	if got := img.RGBAt(4, 0); got != (color.RGBA{}) {
		t.Errorf("out of bounds RGBAt = %v, want zero", got)
	}

	// out of bounds writes are ignored
	img.SetRGB(-1, 0, 1, 1, 1)
	img.Set(0, 2, color.White)
	for i, v := range img.Pixels {
		switch i {
		case img.PixOffset(1, 1), img.PixOffset(1, 1) + 1, img.PixOffset(1, 1) + 2,
			img.PixOffset(3, 0), img.PixOffset(3, 0) + 1, img.PixOffset(3, 0) + 2:
			continue
		}
		if v != 0 {
			t.Fatalf("unexpected write at byte %d", i)
		}
	}
}

func TestRGBImageBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"empty", 0, 1},
		{"row", 7, 1},
		{"square", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewRGBImage(tt.w, tt.h)
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h || b.Min != (image.Point{}) {
				t.Errorf("Bounds() = %v, want %dx%d at origin", b, tt.w, tt.h)
			}
			if !img.Opaque() {
				t.Error("expected opaque image")
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	rect := image.Rect(2, 3, 5, 4) // 3x1, offset origin

	nrgba := image.NewNRGBA(rect)
	rgba := image.NewRGBA(rect)
	gray := image.NewGray(rect)
	translucent := image.NewRGBA(rect)
	want := []color.NRGBA{{255, 0, 0, 255}, {0, 200, 0, 255}, {0, 0, 129, 255}}
	for i, c := range want {
		nrgba.SetNRGBA(2+i, 3, c)
		rgba.Set(2+i, 3, c)
	}
	gray.SetGray(3, 3, color.Gray{Y: 200})
	translucent.Set(2, 3, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	tests := []struct {
		name string
		img  image.Image
		want []byte
	}{
		{"nrgba", nrgba, []byte{255, 0, 0, 0, 200, 0, 0, 0, 129}},
		{"opaque rgba", rgba, []byte{255, 0, 0, 0, 200, 0, 0, 0, 129}},
		{"gray", gray, []byte{0, 0, 0, 200, 200, 200, 0, 0, 0}},
		{"translucent rgba", translucent, []byte{255, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromImage(tt.img)
			if got.Width != 3 || got.Height != 1 {
				t.Fatalf("dimensions = %dx%d, want 3x1", got.Width, got.Height)
			}
			if string(got.Pixels) != string(tt.want) {
				t.Errorf("Pixels = %v, want %v", got.Pixels, tt.want)
			}
		})
	}
}

func TestFromImagePassthrough(t *testing.T) {
	img := NewRGBImage(2, 1)
	if FromImage(img) != img {
		t.Error("expected *RGBImage to be returned unchanged")
	}
}

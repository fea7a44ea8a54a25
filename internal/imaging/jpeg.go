package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
)

// DecodeJPEG turns JPEG bytes (e.g. album art fetched over HTTP) into a
// Frame. Grounded on original_source/image/image.rs's Image::from_decoder,
// translated to Go's standard image/jpeg decoder — the idiomatic Go
// choice, since Go's standard library already ships a production-grade
// JPEG decoder, unlike the original's own runtime, which needed a
// third-party crate for this.
func DecodeJPEG(data []byte) (Frame, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", apperr.ErrJPEGDecoding, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	frame := NewBlank(uint16(width), uint16(height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := colorAt(img, bounds.Min.X+x, bounds.Min.Y+y)
			frame.Set(uint16(x), uint16(y), Pixel{R: r, G: g, B: b})
		}
	}
	return frame, nil
}

func colorAt(img image.Image, x, y int) (r, g, b, a byte) {
	rr, gg, bb, aa := img.At(x, y).RGBA()
	return byte(rr >> 8), byte(gg >> 8), byte(bb >> 8), byte(aa >> 8)
}

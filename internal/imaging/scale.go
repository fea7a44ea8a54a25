package imaging

import "github.com/PixPMusic/gopher-midihub/internal/apperr"

// Scale shrinks src to newWidth x newHeight by integer area-averaging: every
// source byte is assigned to exactly one destination byte bucket (by
// mapping its 3D coordinate proportionally), and each destination byte is
// the truncating average of the bucket it received. Upscaling in either
// dimension is rejected.
func Scale(src Frame, newWidth, newHeight uint16) (Frame, error) {
	if err := validateScaleArguments(src, newWidth, newHeight); err != nil {
		return Frame{}, err
	}

	newSize := 3 * int(newWidth) * int(newHeight)
	sums := make([]int, newSize)
	counts := make([]int, newSize)

	w, h := int(src.Width), int(src.Height)
	nw, nh := int(newWidth), int(newHeight)
	for idx, b := range src.Pixels {
		color := idx % 3
		y := (idx / 3) / w
		x := (idx / 3) % w
		nx := x * nw / w
		ny := y * nh / h
		newIdx := 3*(ny*nw+nx) + color
		sums[newIdx] += int(b)
		counts[newIdx]++
	}

	out := Frame{Width: newWidth, Height: newHeight, Pixels: make([]byte, newSize)}
	for i := range out.Pixels {
		out.Pixels[i] = byte(sums[i] / counts[i])
	}
	return out, nil
}

func validateScaleArguments(src Frame, newWidth, newHeight uint16) error {
	if newWidth > src.Width || newWidth == 0 || newHeight > src.Height || newHeight == 0 {
		return apperr.ErrInvalidScaleForImage
	}
	if 3*int(src.Width)*int(src.Height) != len(src.Pixels) {
		return apperr.ErrInvalidImage
	}
	return nil
}

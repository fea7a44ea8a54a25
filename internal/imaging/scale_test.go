package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h uint16, p Pixel) Frame {
	f := NewBlank(w, h)
	for y := uint16(0); y < h; y++ {
		for x := uint16(0); x < w; x++ {
			f.Set(x, y, p)
		}
	}
	return f
}

func TestScaleProducesExactByteCount(t *testing.T) {
	src := solid(16, 16, Pixel{R: 10, G: 20, B: 30})
	out, err := Scale(src, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 3*4*4, len(out.Pixels))
}

func TestScaleIdentity(t *testing.T) {
	src := solid(8, 8, Pixel{R: 1, G: 2, B: 3})
	out, err := Scale(src, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestScaleAveragesTruncating(t *testing.T) {
	// Two source pixels averaging to a non-integer result must truncate.
	src := Frame{Width: 2, Height: 1, Pixels: []byte{0, 0, 0, 1, 0, 0}}
	out, err := Scale(src, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0), out.Pixels[0]) // (0+1)/2 == 0, truncated
}

func TestScaleRejectsUpscale(t *testing.T) {
	src := solid(4, 4, Pixel{})
	_, err := Scale(src, 8, 4)
	require.Error(t, err)

	_, err = Scale(src, 4, 8)
	require.Error(t, err)
}

func TestScaleRejectsZeroTarget(t *testing.T) {
	src := solid(4, 4, Pixel{})
	_, err := Scale(src, 0, 4)
	require.Error(t, err)
}

func TestScaleRejectsMalformedImage(t *testing.T) {
	src := Frame{Width: 4, Height: 4, Pixels: make([]byte, 10)}
	_, err := Scale(src, 2, 2)
	require.Error(t, err)
}

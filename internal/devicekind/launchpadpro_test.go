package devicekind

import (
	"testing"

	"github.com/PixPMusic/gopher-midihub/internal/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchpadProIntoIndexTopLeftIs56(t *testing.T) {
	lp := launchpadProFeatures{}
	codes := []byte{
		81, 82, 83, 84, 85, 86, 87, 88,
		71, 72, 73, 74, 75, 76, 77, 78,
		61, 62, 63, 64, 65, 66, 67, 68,
		51, 52, 53, 54, 55, 56, 57, 58,
		41, 42, 43, 44, 45, 46, 47, 48,
		31, 32, 33, 34, 35, 36, 37, 38,
		21, 22, 23, 24, 25, 26, 27, 28,
		11, 12, 13, 14, 15, 16, 17, 18,
	}
	expected := []int{
		56, 57, 58, 59, 60, 61, 62, 63,
		48, 49, 50, 51, 52, 53, 54, 55,
		40, 41, 42, 43, 44, 45, 46, 47,
		32, 33, 34, 35, 36, 37, 38, 39,
		24, 25, 26, 27, 28, 29, 30, 31,
		16, 17, 18, 19, 20, 21, 22, 23,
		8, 9, 10, 11, 12, 13, 14, 15,
		0, 1, 2, 3, 4, 5, 6, 7,
	}
	for i, code := range codes {
		idx, ok := lp.IntoIndex(MidiEvent(144, code, 10, 0))
		require.True(t, ok)
		assert.Equal(t, expected[i], idx)
	}
}

func TestLaunchpadProIntoIndexRejectsLowVelocityAndBadStatus(t *testing.T) {
	lp := launchpadProFeatures{}
	_, ok := lp.IntoIndex(MidiEvent(128, 53, 10, 0))
	assert.False(t, ok)
	_, ok = lp.IntoIndex(MidiEvent(144, 53, 0, 0))
	assert.False(t, ok)
}

func TestLaunchpadProIntoAppIndex(t *testing.T) {
	lp := launchpadProFeatures{}
	codes := []byte{19, 29, 39, 49, 59, 69, 79, 89}
	expected := []int{7, 6, 5, 4, 3, 2, 1, 0}
	for i, code := range codes {
		idx, ok := lp.IntoAppIndex(MidiEvent(176, code, 10, 0))
		require.True(t, ok)
		assert.Equal(t, expected[i], idx)
	}
}

func TestLaunchpadProFromAppColorsDividesByFour(t *testing.T) {
	lp := launchpadProFeatures{}
	ev, err := lp.FromAppColors([][3]byte{{12, 24, 48}, {96, 16, 36}, {8, 192, 56}})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		240, 0, 32, 41, 2, 16, 11,
		89, 3, 6, 12,
		79, 24, 4, 9,
		69, 2, 48, 14,
		247,
	}, ev.SysEx)
}

func TestLaunchpadProFromAppColorsRejectsTooMany(t *testing.T) {
	lp := launchpadProFeatures{}
	colors := make([][3]byte, 9)
	_, err := lp.FromAppColors(colors)
	require.Error(t, err)
}

func TestLaunchpadProIntoCoordinates(t *testing.T) {
	lp := launchpadProFeatures{}
	x, y, ok := lp.IntoCoordinates(MidiEvent(144, 34, 100, 0))
	require.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 5, y)
}

func TestLaunchpadProFromIndexToHighlight(t *testing.T) {
	lp := launchpadProFeatures{}
	for k := 0; k < 64; k++ {
		ev, err := lp.FromIndexToHighlight(k)
		require.NoError(t, err)
		led := byte(k/8+1)*10 + byte(k%8+1)
		assert.Equal(t, []byte{240, 0, 32, 41, 2, 16, 40, led, 45, 247}, ev.SysEx)
	}
}

func TestLaunchpadProFromIndexToHighlightRejectsOutOfBound(t *testing.T) {
	lp := launchpadProFeatures{}
	_, err := lp.FromIndexToHighlight(64)
	require.Error(t, err)
}

func TestLaunchpadProFromImageReversesRowsAndDividesByFour(t *testing.T) {
	lp := launchpadProFeatures{}
	frame := imaging.NewBlank(16, 16)
	rowValues := []byte{0, 0, 32, 32, 64, 64, 96, 96, 128, 128, 160, 160, 192, 192, 224, 224}
	for y := uint16(0); y < 16; y++ {
		for x := uint16(0); x < 16; x++ {
			frame.Set(x, y, imaging.Pixel{R: rowValues[y], G: rowValues[y], B: rowValues[y]})
		}
	}

	ev, err := lp.FromImage(frame)
	require.NoError(t, err)
	require.True(t, ev.IsSysEx)
	assert.Equal(t, []byte{240, 0, 32, 41, 2, 16, 15, 1}, ev.SysEx[:8])
	assert.Equal(t, byte(247), ev.SysEx[len(ev.SysEx)-1])
	// Bottom row of the device output corresponds to the source's last row
	// (224 truncated by 4 == 56), and darkens row by row toward the top.
	body := ev.SysEx[8 : len(ev.SysEx)-1]
	assert.Equal(t, byte(56), body[0])
	assert.Equal(t, byte(0), body[len(body)-3])
}

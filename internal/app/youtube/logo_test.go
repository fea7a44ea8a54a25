package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogoHasWhiteTriangleOnRedBackground(t *testing.T) {
	frame := logo()
	assert.Equal(t, uint16(8), frame.Width)
	assert.Equal(t, uint16(8), frame.Height)

	corner := frame.At(0, 0)
	assert.Equal(t, byte(255), corner.R)
	assert.Equal(t, byte(0), corner.G)

	tip := frame.At(3, 1)
	assert.Equal(t, byte(255), tip.G)
}

package devicekind

import (
	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

// launchpadProFeatures implements the Launchpad Pro's 10x10-with-edges
// layout: the inner 8x8 grid for indexing/coordinates/painting, the right
// edge column for app selection, the bottom edge row for the color
// palette, and manufacturer-framed SysEx for pixel frames and highlights.
type launchpadProFeatures struct{}

const (
	sysexPrefix = 0xF0
	sysexSuffix = 0xF7
	manufacturer0, manufacturer1, manufacturer2 = 0x00, 0x20, 0x29
	deviceFamily = 0x02
	model        = 0x10
	cmdPixelFrame = 0x0F
	cmdHighlight  = 0x28
	cmdBulkLight  = 0x0B
)

func header(cmd byte) []byte {
	return []byte{sysexPrefix, manufacturer0, manufacturer1, manufacturer2, deviceFamily, model, cmd}
}

func (launchpadProFeatures) IntoIndex(e Event) (int, bool) {
	if e.IsSysEx {
		return 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status != 144 || data2 == 0 {
		return 0, false
	}
	row, col := int(data1)/10, int(data1)%10
	if row >= 1 && row <= 8 && col >= 1 && col <= 8 {
		return (row-1)*8 + (col - 1), true
	}
	return 0, false
}

func (launchpadProFeatures) IntoAppIndex(e Event) (int, bool) {
	if e.IsSysEx {
		return 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status != 176 || data2 == 0 {
		return 0, false
	}
	row, col := int(data1)/10, int(data1)%10
	if row >= 1 && row <= 8 && col == 9 {
		return 8 - row, true
	}
	return 0, false
}

func (launchpadProFeatures) FromAppColors(colors [][3]byte) (Event, error) {
	if len(colors) > 8 {
		return Event{}, apperr.ErrOutOfBound
	}
	bytes := header(cmdBulkLight)
	for i, c := range colors {
		led := byte(89 - 10*i)
		bytes = append(bytes, led, c[0]/4, c[1]/4, c[2]/4)
	}
	bytes = append(bytes, sysexSuffix)
	return SysExEvent(bytes), nil
}

func (launchpadProFeatures) GridSize() (int, int) {
	return 8, 8
}

func (launchpadProFeatures) IntoCoordinates(e Event) (int, int, bool) {
	if e.IsSysEx {
		return 0, 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status != 144 || data2 == 0 {
		return 0, 0, false
	}
	row, col := int(data1)/10, int(data1)%10
	if row >= 1 && row <= 8 && col >= 1 && col <= 8 {
		return col - 1, 8 - row, true
	}
	return 0, 0, false
}

func (launchpadProFeatures) IntoColorPaletteIndex(e Event) (int, bool) {
	if e.IsSysEx {
		return 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status != 176 || data2 == 0 {
		return 0, false
	}
	if data1 >= 1 && data1 <= 8 {
		return int(data1 - 1), true
	}
	return 0, false
}

func (launchpadProFeatures) FromColorPalette(colors [][3]byte) (Event, error) {
	if len(colors) > 8 {
		return Event{}, apperr.ErrOutOfBound
	}
	bytes := header(cmdBulkLight)
	for i, c := range colors {
		led := byte(i + 1)
		bytes = append(bytes, led, c[0]/4, c[1]/4, c[2]/4)
	}
	bytes = append(bytes, sysexSuffix)
	return SysExEvent(bytes), nil
}

func (launchpadProFeatures) FromImage(f imaging.Frame) (Event, error) {
	scaled, err := imaging.Scale(f, 8, 8)
	if err != nil {
		return Event{}, err
	}
	reversed := scaled.ReverseRows()
	bytes := header(cmdPixelFrame)
	bytes = append(bytes, 0x01)
	// The Launchpad Pro only accepts 6-bit (0-63) channel values; this
	// truncating division is the documented contract, not gamma-corrected.
	for _, b := range reversed.Pixels {
		bytes = append(bytes, b/4)
	}
	bytes = append(bytes, sysexSuffix)
	return SysExEvent(bytes), nil
}

func (launchpadProFeatures) FromIndexToHighlight(i int) (Event, error) {
	if i >= 64 {
		return Event{}, apperr.ErrOutOfBound
	}
	row := byte(i/8 + 1)
	col := byte(i%8 + 1)
	led := row*10 + col
	bytes := header(cmdHighlight)
	bytes = append(bytes, led, 0x2D, sysexSuffix)
	return SysExEvent(bytes), nil
}

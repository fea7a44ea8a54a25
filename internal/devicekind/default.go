package devicekind

import (
	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

// defaultFeatures covers any generic MIDI controller: it only understands
// plain note-down indexing, nothing grid- or image-related.
type defaultFeatures struct{}

func (defaultFeatures) IntoIndex(e Event) (int, bool) {
	if e.IsSysEx {
		return 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status == 144 && data1 >= 36 && data2 > 0 {
		return int(data1 - 36), true
	}
	return 0, false
}

func (defaultFeatures) IntoAppIndex(e Event) (int, bool) {
	if e.IsSysEx {
		return 0, false
	}
	status, data1, data2 := e.Midi[0], e.Midi[1], e.Midi[2]
	if status == 144 && data1 < 12 && data2 > 0 {
		return int(data1), true
	}
	return 0, false
}

func (defaultFeatures) FromAppColors(colors [][3]byte) (Event, error) {
	return Event{}, apperr.ErrUnsupported
}

func (defaultFeatures) GridSize() (int, int) {
	return 0, 0
}

func (defaultFeatures) IntoCoordinates(e Event) (int, int, bool) {
	return 0, 0, false
}

func (defaultFeatures) IntoColorPaletteIndex(e Event) (int, bool) {
	return 0, false
}

func (defaultFeatures) FromColorPalette(colors [][3]byte) (Event, error) {
	return Event{}, apperr.ErrUnsupported
}

func (defaultFeatures) FromImage(f imaging.Frame) (Event, error) {
	return Event{}, apperr.ErrUnsupported
}

func (defaultFeatures) FromIndexToHighlight(i int) (Event, error) {
	return Event{}, apperr.ErrUnsupported
}

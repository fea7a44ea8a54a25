// Package devicekind translates between raw MIDI bytes/SysEx and the
// semantic vocabulary the apps operate on: index, app-index,
// grid-coordinate, color-palette-index, highlight, pixel frame, and
// app-color bar. Every device kind implements the full Features interface;
// a kind that lacks a capability reports it by returning apperr.ErrUnsupported
// (or ok=false) from that method rather than by failing a type assertion.
package devicekind

import "github.com/PixPMusic/gopher-midihub/internal/imaging"

// Event is a tagged MIDI value: either a 4-byte channel-voice message or an
// opaque SysEx byte sequence (exactly one of the two is set).
type Event struct {
	Midi  [4]byte
	SysEx []byte
	IsSysEx bool
}

// MidiEvent builds a channel-voice Event.
func MidiEvent(status, data1, data2, data3 byte) Event {
	return Event{Midi: [4]byte{status, data1, data2, data3}}
}

// SysExEvent builds a SysEx Event.
func SysExEvent(bytes []byte) Event {
	return Event{SysEx: bytes, IsSysEx: true}
}

// Kind names a device family. Extensible: new kinds are added here and get
// their own implementation file.
type Kind string

const (
	Default      Kind = "default"
	LaunchpadPro Kind = "launchpadpro"
)

// IndexSelector decodes a pad press into a flat 0-based grid index.
type IndexSelector interface {
	IntoIndex(e Event) (int, bool)
}

// AppSelector decodes an app-switch press and renders the app-color bar.
type AppSelector interface {
	IntoAppIndex(e Event) (int, bool)
	FromAppColors(colors [][3]byte) (Event, error)
}

// GridController exposes grid size and pixel coordinates for apps (like
// Paint) that need x/y rather than a flat index.
type GridController interface {
	GridSize() (width, height int)
	IntoCoordinates(e Event) (x, y int, ok bool)
}

// ColorPalette decodes a palette pick and renders the palette bar.
type ColorPalette interface {
	IntoColorPaletteIndex(e Event) (int, bool)
	FromColorPalette(colors [][3]byte) (Event, error)
}

// ImageRenderer encodes an already-fitted-to-grid image and a single-cell
// highlight as outbound SysEx.
type ImageRenderer interface {
	FromImage(f imaging.Frame) (Event, error)
	FromIndexToHighlight(i int) (Event, error)
}

// Get returns the feature implementation for a device kind. Every kind
// implements every capability interface type-wise (Go interfaces can't be
// "partially implemented"); kinds that lack a capability return
// apperr.ErrUnsupported from its methods, matching the teacher's
// Unsupported-as-sentinel-error convention.
func Get(kind Kind) Features {
	switch kind {
	case LaunchpadPro:
		return launchpadProFeatures{}
	default:
		return defaultFeatures{}
	}
}

// Features bundles every capability a device kind might expose. Its methods
// are the kind's own methods, so a capability the kind lacks reports
// apperr.ErrUnsupported (or ok=false) through Features as well.
type Features interface {
	IndexSelector
	AppSelector
	GridController
	ColorPalette
	ImageRenderer
}

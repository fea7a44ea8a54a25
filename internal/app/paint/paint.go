// Package paint implements the grid-press-to-single-pixel-frame app: a
// press at device coordinates (x, y) renders an 8x8 frame with exactly one
// yellow pixel at that position. Grounded on
// original_source/apps/paint/app.rs; only works against a device exposing
// GridController and ImageRenderer (LaunchpadPro today).
package paint

import (
	"log"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

const Name = "paint"

var Color = [3]byte{255, 255, 0}

const gridWidth, gridHeight = 8, 8

// Paint holds the input device's coordinate decoder and the output
// device's image renderer: these may come from different devicekind.Kind
// values if the physical input and output ports differ.
type Paint struct {
	input   devicekind.GridController
	output  devicekind.ImageRenderer
	mailbox *app.Mailbox
}

// New constructs a Paint app wired to the given input/output device
// capabilities.
func New(input devicekind.GridController, output devicekind.ImageRenderer) *Paint {
	return &Paint{input: input, output: output, mailbox: app.NewMailbox()}
}

func (p *Paint) Name() string       { return Name }
func (p *Paint) Color() [3]byte     { return Color }
func (p *Paint) Logo() imaging.Frame { return imaging.NewBlank(0, 0) }

func (p *Paint) Send(in app.In) error {
	x, y, ok := p.input.IntoCoordinates(in.Midi)
	if !ok {
		return nil
	}
	if x < 0 || x >= gridWidth || y < 0 || y >= gridHeight {
		log.Printf("[paint] (%d, %d) is out of bound", x, y)
		return nil
	}

	frame := imaging.NewBlank(gridWidth, gridHeight)
	frame.Set(uint16(x), uint16(y), imaging.Pixel{R: 255, G: 255, B: 0})

	event, err := p.output.FromImage(frame)
	if err != nil {
		log.Printf("[paint] could not transform the image into a MIDI event: %v", err)
		return nil
	}
	if err := p.mailbox.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[paint] could not send event back to the router: %v", err)
	}
	return nil
}

func (p *Paint) Receive() (app.Out, error) {
	return p.mailbox.Receive()
}

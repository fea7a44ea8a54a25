// Package forward implements the degenerate pass-through app: every inbound
// MIDI event is re-emitted unchanged on the outbox. Grounded on
// original_source/apps/forward/app.rs, translated from its mpsc channel
// pair to app.Mailbox.
package forward

import (
	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

const Name = "forward"

var Color = [3]byte{0, 0, 255}

// Forward echoes whatever it receives. It has no internal task: Send pushes
// straight onto its own outbox, since there is no transformation to apply.
type Forward struct {
	mailbox *app.Mailbox
}

// New constructs a Forward app.
func New() *Forward {
	return &Forward{mailbox: app.NewMailbox()}
}

func (f *Forward) Name() string    { return Name }
func (f *Forward) Color() [3]byte  { return Color }
func (f *Forward) Logo() imaging.Frame {
	return imaging.NewBlank(0, 0)
}

func (f *Forward) Send(in app.In) error {
	return f.mailbox.PushOut(app.EventOut(in.Midi))
}

func (f *Forward) Receive() (app.Out, error) {
	return f.mailbox.Receive()
}

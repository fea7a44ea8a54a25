// Package app defines the uniform App contract every driver (Forward,
// Paint, Selection, Spotify, YouTube) implements: a name, a color, a logo,
// and a pair of bounded mailboxes. An app's internal task, if any, may only
// communicate through these mailboxes and the outbound command channel
// shared with the router — never by reaching back into the router or a
// sibling app.
package app

import (
	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
	"github.com/PixPMusic/gopher-midihub/internal/server"
)

// MailboxCapacity is the bounded FIFO depth for every app's input and
// output queue.
const MailboxCapacity = 32

// In is an inbound event delivered to an app.
type In struct {
	Midi devicekind.Event
}

// Out is an app's outbound value: exactly one of Event or Command is set.
type Out struct {
	Event   *devicekind.Event
	Command *server.Command
}

// EventOut wraps an outbound MIDI/SysEx event.
func EventOut(e devicekind.Event) Out { return Out{Event: &e} }

// CommandOut wraps an outbound server command.
func CommandOut(c server.Command) Out { return Out{Command: &c} }

// App is the capability every driver exposes to the router.
type App interface {
	Name() string
	Color() [3]byte
	Logo() imaging.Frame
	Send(in In) error
	Receive() (Out, error)
}

// Mailbox is the bounded-channel pair backing the default App
// implementations (Forward, Paint, Selection's own outbox). Apps with
// richer internal scheduling (Spotify, YouTube) embed one too, as their
// sole point of contact with the outside world.
type Mailbox struct {
	in  chan In
	out chan Out
}

// NewMailbox allocates a pair of capacity-32 channels.
func NewMailbox() *Mailbox {
	return &Mailbox{
		in:  make(chan In, MailboxCapacity),
		out: make(chan Out, MailboxCapacity),
	}
}

// Send is a blocking put with back-pressure: it suspends the caller until
// room frees in the bounded queue, matching original_source's
// sender.blocking_send, which only ever errors when the receiver side is
// gone (a case this never hits, since a Mailbox's channels are never
// closed).
func (m *Mailbox) Send(in In) error {
	m.in <- in
	return nil
}

// Receive is a non-blocking get.
func (m *Mailbox) Receive() (Out, error) {
	select {
	case out := <-m.out:
		return out, nil
	default:
		return Out{}, apperr.ErrEmpty
	}
}

// In exposes the inbound channel for an app's internal task to consume.
func (m *Mailbox) In() <-chan In { return m.in }

// PushOut publishes to the outbound channel on behalf of an app's internal
// task. Unlike Send it never blocks: a producer that floods its own outbox
// gets apperr.ErrFull back once the queue is saturated.
func (m *Mailbox) PushOut(out Out) error {
	select {
	case m.out <- out:
		return nil
	default:
		return apperr.ErrFull
	}
}

// Package router is the top-level cycle binding a MIDI device's input and
// output ports to the Selection app and the outbound command channel.
// Grounded on original_source/router/mod.rs's run_one_cycle: an outer loop
// re-opens ports every devicePollInterval (in case a device was unplugged
// or renamed), an inner loop polls device input and the app's outbox every
// eventPollInterval, generalized from the original's single hardcoded
// spotify reader/writer pair to the Selection multiplexer.
package router

import (
	"context"
	"log"
	"time"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/app/selection"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/midiconn"
	"github.com/PixPMusic/gopher-midihub/internal/server"
)

const (
	eventPollInterval  = 10 * time.Millisecond
	devicePollInterval = 10 * time.Second
)

// Router owns the device-port lifecycle; it never terminates on a per-cycle
// error, matching spec's "router never terminates on a per-cycle error"
// propagation rule.
type Router struct {
	inputName  string
	outputName string
	selection  *selection.Selection
	channel    *server.Channel
}

// New builds a Router bound to a single input/output port pair by name and
// the already-constructed Selection app tree.
func New(inputName, outputName string, sel *selection.Selection, channel *server.Channel) *Router {
	return &Router{inputName: inputName, outputName: outputName, selection: sel, channel: channel}
}

// Run repeatedly opens ports and drives cycles until ctx is canceled.
func (r *Router) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		r.runOneCycle(ctx)
	}
}

func (r *Router) runOneCycle(ctx context.Context) {
	in, err := midiconn.OpenIn(r.inputName)
	if err != nil {
		log.Printf("[router] could not open input port %q: %v", r.inputName, err)
		sleepOrDone(ctx, devicePollInterval)
		return
	}
	defer in.Close()

	out, err := midiconn.OpenOut(r.outputName)
	if err != nil {
		log.Printf("[router] could not open output port %q: %v", r.outputName, err)
		sleepOrDone(ctx, devicePollInterval)
		return
	}

	events := make(chan devicekind.Event, app.MailboxCapacity)
	if err := in.Listen(func(e devicekind.Event) {
		select {
		case events <- e:
		default:
			log.Printf("[router] dropping event, input queue full: %v", e)
		}
	}); err != nil {
		log.Printf("[router] could not listen on %q: %v", r.inputName, err)
		sleepOrDone(ctx, devicePollInterval)
		return
	}

	ticker := time.NewTicker(eventPollInterval)
	defer ticker.Stop()

	start := time.Now()
	for time.Since(start) < devicePollInterval {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			log.Printf("[router] midi event: %v", e)
			if err := r.selection.Send(app.In{Midi: e}); err != nil {
				log.Printf("[router] could not deliver event to selection: %v", err)
			}
		case <-ticker.C:
			r.drainOutbox(out)
		}
	}
}

func (r *Router) drainOutbox(out *midiconn.Out) {
	for {
		o, err := r.selection.Receive()
		if err != nil {
			return
		}
		if o.Event != nil {
			if err := out.Write(*o.Event); err != nil {
				log.Printf("[router] could not write event: %v", err)
			}
		}
		if o.Command != nil {
			if err := r.channel.Send(*o.Command); err != nil {
				log.Printf("[router] could not forward command: %v", err)
			}
		}
	}
}

func sleepOrDone(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

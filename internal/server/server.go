// Package server is the outbound command channel: a bounded, ordered
// serializer that JSON-encodes Commands to whichever single WebSocket peer
// is currently connected, and serves the companion web page's static
// assets. Grounded on petervdpas-goop2's internal/viewer/routes/call.go for
// the net/http + gorilla/websocket upgrade idiom, and on
// original_source/server/mod.rs for the channel-oblivious one-way-pipe
// semantics (extended here with the SpotifyToken variant spec requires).
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Channel is the outbound command channel. Messages arriving when no peer
// is connected are buffered up to the capacity given to NewChannel, then the sender observes
// ErrFull from Send once the buffer is saturated.
type Channel struct {
	queue chan Command
}

// DefaultCapacity is used when NewChannel is given capacity <= 0.
const DefaultCapacity = 256

// NewChannel allocates a bounded command queue.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel{queue: make(chan Command, capacity)}
}

// Send enqueues a command. It is non-blocking: callers observe backpressure
// rather than stalling the app task that produced the command.
func (c *Channel) Send(cmd Command) error {
	select {
	case c.queue <- cmd:
		return nil
	default:
		return errFull
	}
}

// Serve upgrades ws and static-file requests on mux, writing every queued
// command to the socket in FIFO order for as long as a peer stays
// connected. On disconnect it waits for the next Upgrade call — "rebinding
// the producer endpoint" is implicit: the same Channel keeps draining into
// whichever connection is live.
func (c *Channel) Serve(mux *http.ServeMux, publicDir string) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[server] websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		log.Printf("[server] web-page peer connected")

		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for cmd := range c.queue {
			if err := conn.WriteJSON(cmd); err != nil {
				log.Printf("[server] write failed, peer likely gone: %v", err)
				return
			}
		}
	})

	if publicDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(publicDir)))
	}
}

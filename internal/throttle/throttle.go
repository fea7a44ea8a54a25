// Package throttle implements the 5-second minimum-gap gate shared by the
// Spotify and YouTube apps' event handling. Grounded on
// original_source/apps/spotify/app/poll_events.rs: last_action is updated
// at the *start* of handling an honored event, never at the end (the
// resolved Open Question from spec §9).
package throttle

import (
	"sync"
	"time"
)

// Window is the minimum gap between two honored events.
const Window = 5 * time.Second

// Gate tracks the last honored-event instant under a mutex, since it is
// read and written from whichever goroutine is polling for input events.
type Gate struct {
	mu         sync.Mutex
	lastAction time.Time
}

// NewGate returns a Gate that will not throttle the very next call to
// Allow (its zero lastAction is always more than Window in the past).
func NewGate() *Gate {
	return &Gate{}
}

// Allow reports whether enough time has elapsed since the last honored
// event, and if so records now as the new last-action instant before
// returning. This ordering (stamp before the caller does any work) is
// deliberate: it matches track_last_action being called before
// play_or_pause in the source.
func (g *Gate) Allow(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if now.Sub(g.lastAction) < Window {
		return false
	}
	g.lastAction = now
	return true
}

package youtube

import (
	"log"
	"sync"
	"time"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
	"github.com/PixPMusic/gopher-midihub/internal/server"
	"github.com/PixPMusic/gopher-midihub/internal/throttle"
)

const Name = "youtube"

var Color = [3]byte{255, 0, 0}

// Config holds the YouTube app's playlist credentials, sourced from
// config.YouTube.
type Config struct {
	APIKey     string
	PlaylistID string
}

type state struct {
	mu    sync.Mutex
	items []PlaylistItem
}

// Youtube polls a playlist and maps grid-index presses onto video IDs,
// subject to the same 5-second throttle as Spotify. Its internal task runs
// for the lifetime of the app; Send/Receive only ever touch its mailbox.
type Youtube struct {
	config   Config
	client   *Client
	index    devicekind.IndexSelector
	renderer devicekind.ImageRenderer
	state    *state
	gate     *throttle.Gate
	mailbox  *app.Mailbox
}

// New constructs a Youtube app and starts its background task: render the
// logo, pull the playlist once, then service inbound presses.
func New(config Config, index devicekind.IndexSelector, renderer devicekind.ImageRenderer) *Youtube {
	y := &Youtube{
		config:   config,
		client:   NewClient(),
		index:    index,
		renderer: renderer,
		state:    &state{},
		gate:     throttle.NewGate(),
		mailbox:  app.NewMailbox(),
	}

	go y.run()
	return y
}

func (y *Youtube) Name() string       { return Name }
func (y *Youtube) Color() [3]byte     { return Color }
func (y *Youtube) Logo() imaging.Frame { return logo() }

func (y *Youtube) Send(in app.In) error {
	return y.mailbox.Send(in)
}

func (y *Youtube) Receive() (app.Out, error) {
	return y.mailbox.Receive()
}

func (y *Youtube) run() {
	y.renderLogo()
	y.pullPlaylist()

	for in := range y.mailbox.In() {
		idx, ok := y.index.IntoIndex(in.Midi)
		if !ok {
			continue
		}
		if !y.gate.Allow(time.Now()) {
			log.Printf("[youtube] ignoring event: %v", in.Midi)
			continue
		}
		y.handlePress(idx)
		y.pullPlaylist()
	}
}

func (y *Youtube) handlePress(index int) {
	y.state.mu.Lock()
	var item *PlaylistItem
	if index >= 0 && index < len(y.state.items) {
		item = &y.state.items[index]
	}
	y.state.mu.Unlock()

	if item == nil {
		log.Printf("[youtube] no track for index: %d", index)
		return
	}

	videoID := item.Snippet.ResourceID.VideoID
	cmd := server.NewYoutubePlay(videoID)
	if err := y.mailbox.PushOut(app.CommandOut(cmd)); err != nil {
		log.Printf("[youtube] could not play track %s: %v", videoID, err)
		return
	}
	log.Printf("[youtube] playing track %s", videoID)
}

func (y *Youtube) pullPlaylist() {
	log.Printf("[youtube] pulling playlist items...")
	items, err := y.client.GetAllItems(y.config.APIKey, y.config.PlaylistID)
	if err != nil {
		log.Printf("[youtube] pulling playlist items failed: %v", err)
		return
	}
	y.state.mu.Lock()
	y.state.items = items
	y.state.mu.Unlock()
	log.Printf("[youtube] pulling playlist items, done")
}

func (y *Youtube) renderLogo() {
	event, err := y.renderer.FromImage(logo())
	if err != nil {
		log.Printf("[youtube] could not convert the logo into a MIDI event: %v", err)
		return
	}
	if err := y.mailbox.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[youtube] could not send the logo back to the router: %v", err)
	}
}

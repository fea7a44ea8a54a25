package spotify

import (
	"errors"
	"log"
	"time"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
	"github.com/PixPMusic/gopher-midihub/internal/server"
	"github.com/PixPMusic/gopher-midihub/internal/throttle"
)

const Name = "spotify"

var Color = [3]byte{0, 255, 0}

// playlistPollInterval is how often the cached playlist is refreshed once
// warm; the source parameterizes this (poll_playlist.rs) without fixing a
// production value, so this is this app's own choice.
const playlistPollInterval = 60 * time.Second

// statePollInterval matches the literal 1s sleep in
// original_source/apps/spotify/app/poll_state.rs.
const statePollInterval = 1 * time.Second

// renderTickInterval matches the literal 60ms sleep in
// original_source/apps/spotify/app/render_state.rs.
const renderTickInterval = 60 * time.Millisecond

// Config holds the Spotify app's credentials, sourced from
// config.Spotify.
type Config struct {
	PlaylistID   string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Spotify reconciles local playback intent against Spotify's remotely
// reported state across four cooperative goroutines: listenEvents (user
// presses), pollPlaylist (cached track list), pollPlaybackState
// (reconciliation), and renderStateReactively (outbound rendering). They
// communicate only through sharedState (under its per-field mutexes) and
// the app's own mailbox.
type Spotify struct {
	config   Config
	client   *Client
	index    devicekind.IndexSelector
	renderer devicekind.ImageRenderer
	state    *sharedState
	gate     *throttle.Gate
	mailbox  *app.Mailbox
	stop     chan struct{}
}

// New constructs a Spotify app and starts its four background tasks.
func New(config Config, index devicekind.IndexSelector, renderer devicekind.ImageRenderer) *Spotify {
	s := &Spotify{
		config:   config,
		client:   NewClient(),
		index:    index,
		renderer: renderer,
		state:    newSharedState(),
		gate:     throttle.NewGate(),
		mailbox:  app.NewMailbox(),
		stop:     make(chan struct{}),
	}

	go s.listenEvents()
	go s.pollPlaylist()
	go s.pollPlaybackState()
	go s.renderStateReactively()

	return s
}

// Stop terminates all four background tasks cooperatively.
func (s *Spotify) Stop() { close(s.stop) }

func (s *Spotify) Name() string        { return Name }
func (s *Spotify) Color() [3]byte      { return Color }
func (s *Spotify) Logo() imaging.Frame { return logoFrame() }

func (s *Spotify) Send(in app.In) error {
	return s.mailbox.Send(in)
}

func (s *Spotify) Receive() (app.Out, error) {
	return s.mailbox.Receive()
}

// listenEvents services inbound presses, subject to the 5-second throttle.
func (s *Spotify) listenEvents() {
	for {
		select {
		case <-s.stop:
			return
		case in := <-s.mailbox.In():
			idx, ok := s.index.IntoIndex(in.Midi)
			if !ok {
				continue
			}
			if !s.gate.Allow(time.Now()) {
				log.Printf("[spotify] ignoring event: %v", in.Midi)
				continue
			}
			s.handlePress(idx)
		}
	}
}

func (s *Spotify) handlePress(index int) {
	_, err := withAccessToken(s.client, s.config, s.state, func(token string) (struct{}, error) {
		s.playOrPause(token, index)
		return struct{}{}, nil
	})
	if err != nil {
		log.Printf("[spotify] error handling press: %v", err)
	}
}

func (s *Spotify) playOrPause(token string, index int) {
	playback := s.state.getPlayback()
	switch playback.Kind {
	case Paused, Pausing:
		s.play(token, index)
	case Requested, Playing:
		if playback.Index == index {
			s.pause(token)
		} else {
			s.play(token, index)
		}
	}
}

func (s *Spotify) play(token string, index int) {
	tracks := s.state.getTracks()
	if index < 0 || index >= len(tracks) {
		return
	}
	track := tracks[index]
	deviceID := s.state.getDeviceID()

	if err := s.mailbox.PushOut(app.CommandOut(server.NewSpotifyToken(token))); err != nil {
		log.Printf("[spotify] could not send token command: %v", err)
	}

	if err := s.client.StartOrResumePlayback(token, track.URI, deviceID); err != nil {
		log.Printf("[spotify] could not send play command: %v", err)
		return
	}
	s.state.setPlayback(PlaybackState{Kind: Requested, Index: index})
}

func (s *Spotify) pause(token string) {
	if err := s.client.PausePlayback(token); err != nil {
		log.Printf("[spotify] could not send pause command: %v", err)
		return
	}
	s.state.setPlayback(PlaybackState{Kind: Pausing})
}

// pollPlaylist refreshes the cached track list once at startup, then every
// playlistPollInterval.
func (s *Spotify) pollPlaylist() {
	for {
		s.pullPlaylistTracks()
		select {
		case <-s.stop:
			return
		case <-time.After(playlistPollInterval):
		}
	}
}

func (s *Spotify) pullPlaylistTracks() {
	tracks, err := withAccessToken(s.client, s.config, s.state, func(token string) ([]Track, error) {
		return s.client.GetPlaylistTracks(token, s.config.PlaylistID)
	})
	if err != nil {
		log.Printf("[spotify] could not pull tracks from playlist %s: %v", s.config.PlaylistID, err)
		return
	}
	s.state.setTracks(tracks)
}

// pollPlaybackState reconciles the remotely-observed player state against
// local intent: a remote report of "not playing" demotes Requested/Playing
// to Paused, and a remote report of the expected track confirms Requested
// into Playing.
func (s *Spotify) pollPlaybackState() {
	for {
		if err := s.reconcilePlaybackState(); err != nil {
			log.Printf("[spotify] error: %v", err)
		}
		select {
		case <-s.stop:
			return
		case <-time.After(statePollInterval):
		}
	}
}

// remotePlaying is the state poller's own view of the remote player,
// matching get_currently_playing_index: an unmatched track ID is treated
// the same as not-playing.
type remotePlaying struct {
	ok    bool
	index int
}

func matchRemotePlaying(remote *PlaybackResponse, tracks []Track) remotePlaying {
	if remote == nil || !remote.IsPlaying {
		return remotePlaying{}
	}
	for i, t := range tracks {
		if t.ID == remote.Item.ID {
			return remotePlaying{ok: true, index: i}
		}
	}
	return remotePlaying{}
}

// reconcilePlaybackState implements the five transitions spec.md's
// playback-state poller enumerates (plus its "otherwise leave unchanged"
// catch-all), comparing local intent against the remote-reported state.
func (s *Spotify) reconcilePlaybackState() error {
	_, err := withAccessToken(s.client, s.config, s.state, func(token string) (struct{}, error) {
		remote, err := s.client.GetPlaybackState(token)
		if err != nil {
			return struct{}{}, err
		}

		local := s.state.getPlayback()
		result := matchRemotePlaying(remote, s.state.getTracks())

		switch {
		case local.Kind == Requested && result.ok && result.index == local.Index:
			s.state.setPlayback(PlaybackState{Kind: Playing, Index: local.Index})
		case (local.Kind == Requested || local.Kind == Playing) && result.ok && result.index != local.Index:
			s.state.setPlayback(PlaybackState{Kind: Playing, Index: result.index})
		case (local.Kind == Requested || local.Kind == Playing) && !result.ok:
			s.state.setPlayback(PlaybackState{Kind: Paused})
		case local.Kind == Pausing && !result.ok:
			s.state.setPlayback(PlaybackState{Kind: Paused})
		case local.Kind == Paused && result.ok:
			s.state.setPlayback(PlaybackState{Kind: Playing, Index: result.index})
		}
		return struct{}{}, nil
	})
	return err
}

// renderStateReactively re-renders the logo and highlight whenever the
// effective playing index changes, matching render_state_reactively's
// 60ms poll loop.
func (s *Spotify) renderStateReactively() {
	s.renderState()
	for {
		select {
		case <-s.stop:
			return
		case <-time.After(renderTickInterval):
		}

		playback := s.state.getPlayback()
		s.state.renderedMu.Lock()
		rendered := s.state.rendered
		s.state.renderedMu.Unlock()

		switch playback.Kind {
		case Paused, Pausing:
			if rendered != nil {
				s.renderState()
				s.setRendered(nil)
			}
		case Requested:
			if rendered == nil || *rendered != playback.Index {
				s.renderCover(playback.Index)
				s.renderState()
				idx := playback.Index
				s.setRendered(&idx)
			}
		case Playing:
			if rendered == nil || *rendered != playback.Index {
				s.renderState()
				idx := playback.Index
				s.setRendered(&idx)
			}
		}
	}
}

func (s *Spotify) setRendered(idx *int) {
	s.state.renderedMu.Lock()
	s.state.rendered = idx
	s.state.renderedMu.Unlock()
}

func (s *Spotify) renderState() {
	s.renderLogo()
	s.renderHighlightedIndex()
}

func (s *Spotify) renderLogo() {
	event, err := s.renderer.FromImage(logoFrame())
	if err != nil {
		log.Printf("[spotify] could not render the spotify logo: %v", err)
		return
	}
	if err := s.mailbox.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[spotify] could send the logo event back to the router: %v", err)
	}
}

func (s *Spotify) renderHighlightedIndex() {
	playback := s.state.getPlayback()
	if playback.Kind != Requested && playback.Kind != Playing {
		return
	}
	event, err := s.renderer.FromIndexToHighlight(playback.Index)
	if err != nil {
		if !errors.Is(err, apperr.ErrUnsupported) {
			log.Printf("[spotify] could not highlight the index %d: %v", playback.Index, err)
		}
		return
	}
	if err := s.mailbox.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[spotify] could not send the highlighting-index event back to the router: %v", err)
	}
}

func (s *Spotify) renderCover(index int) {
	tracks := s.state.getTracks()
	if index < 0 || index >= len(tracks) {
		s.renderLogo()
		return
	}
	track := tracks[index]
	images := track.Album.Images
	if len(images) == 0 {
		log.Printf("[spotify] no cover found for track %s", track.URI)
		s.renderLogo()
		return
	}

	coverURL := images[len(images)-1].URL
	frame, err := s.client.DownloadCover(coverURL)
	if err != nil {
		log.Printf("[spotify] could not retrieve image: %v", err)
		return
	}

	event, err := s.renderer.FromImage(frame)
	if err != nil {
		log.Printf("[spotify] could not transform image into a MIDI event: %v", err)
		return
	}
	if err := s.mailbox.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[spotify] could send the image back to the router: %v", err)
		return
	}

	time.Sleep(throttle.Window)
	s.pullPlaylistTracks()
}

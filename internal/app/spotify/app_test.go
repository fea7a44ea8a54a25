package spotify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-midihub/internal/app"
)

func lingus() Track {
	return Track{ID: "68d6ZfyMUYURol2y15Ta2Y", Name: "We Like It Here", URI: "spotify:track:68d6ZfyMUYURol2y15Ta2Y"}
}

func consciousClub() Track {
	return Track{ID: "5vmFVIJV9XN1l01YsFuKL3", Name: "Conscious Club", URI: "spotify:track:5vmFVIJV9XN1l01YsFuKL3"}
}

func newTestSpotify(t *testing.T, apiServer *httptest.Server) (*Spotify, *sharedState) {
	t.Helper()
	client := NewClient()
	if apiServer != nil {
		client.HTTP = apiServer.Client()
		client.APIBase = apiServer.URL
	}
	s := &Spotify{
		config:  Config{},
		client:  client,
		state:   newSharedState(),
		mailbox: app.NewMailbox(),
	}
	s.state.setAccessToken("access_token")
	s.state.setTracks([]Track{lingus(), consciousClub()})
	return s, s.state
}

func TestPlayOrPauseWhenPausedThenStartsResumePlayback(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Paused})

	s.playOrPause("access_token", 1)

	playback := state.getPlayback()
	assert.Equal(t, Requested, playback.Kind)
	assert.Equal(t, 1, playback.Index)
	assert.Equal(t, "/me/player/play", gotPath)
}

func TestPlayOrPauseWhenIndexMatchesPlayingThenPauses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Playing, Index: 1})

	s.playOrPause("access_token", 1)

	playback := state.getPlayback()
	assert.Equal(t, Pausing, playback.Kind)
}

func TestPlayOrPauseWhenIndexDoesNotMatchThenPlaysOther(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Requested, Index: 1})

	s.playOrPause("access_token", 0)

	playback := state.getPlayback()
	assert.Equal(t, Requested, playback.Kind)
	assert.Equal(t, 0, playback.Index)
}

func TestPlayWhenIndexOutOfBoundThenIgnored(t *testing.T) {
	s, state := newTestSpotify(t, nil)
	state.setPlayback(PlaybackState{Kind: Pausing})

	s.playOrPause("access_token", 24)

	playback := state.getPlayback()
	assert.Equal(t, Pausing, playback.Kind)
}

func TestReconcilePlaybackStateDemotesToPausedOnNotPlaying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Playing, Index: 0})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	assert.Equal(t, Paused, state.getPlayback().Kind)
}

func TestReconcilePlaybackStateMatchesPlayingTrack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_playing":true,"item":{"id":"5vmFVIJV9XN1l01YsFuKL3"}}`))
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Requested, Index: 1})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	playback := state.getPlayback()
	assert.Equal(t, Playing, playback.Kind)
	assert.Equal(t, 1, playback.Index)
}

func TestReconcilePlaybackStateFromPausingToNotPlayingSettlesOnPaused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Pausing})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	assert.Equal(t, Paused, state.getPlayback().Kind)
}

func TestReconcilePlaybackStateFromPausedToPlayingTrackResumes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_playing":true,"item":{"id":"68d6ZfyMUYURol2y15Ta2Y"}}`))
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Paused})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	playback := state.getPlayback()
	assert.Equal(t, Playing, playback.Kind)
	assert.Equal(t, 0, playback.Index)
}

func TestReconcilePlaybackStateUnmatchedTrackTreatedAsNotPlaying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_playing":true,"item":{"id":"unknown_track_id"}}`))
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Playing, Index: 0})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	assert.Equal(t, Paused, state.getPlayback().Kind)
}

func TestReconcilePlaybackStateRemoteSwitchesToOtherTrack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_playing":true,"item":{"id":"5vmFVIJV9XN1l01YsFuKL3"}}`))
	}))
	defer server.Close()

	s, state := newTestSpotify(t, server)
	state.setPlayback(PlaybackState{Kind: Playing, Index: 0})

	err := s.reconcilePlaybackState()
	require.NoError(t, err)
	playback := state.getPlayback()
	assert.Equal(t, Playing, playback.Kind)
	assert.Equal(t, 1, playback.Index)
}

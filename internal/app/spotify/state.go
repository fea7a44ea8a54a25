package spotify

import (
	"errors"
	"sync"
	"time"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
)

// sharedState holds everything the four cooperative tasks read and write,
// one mutex per field — matching the source's one-Mutex-per-field State
// struct rather than a single coarse lock, since tasks only ever need to
// hold one field's lock at a time.
type sharedState struct {
	accessTokenMu sync.Mutex
	accessToken   *string

	lastActionMu sync.Mutex
	lastAction   time.Time

	tracksMu sync.Mutex
	tracks   []Track

	playbackMu sync.Mutex
	playback   PlaybackState

	deviceIDMu sync.Mutex
	deviceID   string

	renderedMu sync.Mutex
	rendered   *int
}

func newSharedState() *sharedState {
	return &sharedState{
		lastAction: time.Now().Add(-6 * time.Second),
		playback:   PlaybackState{Kind: Paused},
	}
}

func (s *sharedState) getAccessToken() (string, bool) {
	s.accessTokenMu.Lock()
	defer s.accessTokenMu.Unlock()
	if s.accessToken == nil {
		return "", false
	}
	return *s.accessToken, true
}

func (s *sharedState) setAccessToken(token string) {
	s.accessTokenMu.Lock()
	defer s.accessTokenMu.Unlock()
	s.accessToken = &token
}

func (s *sharedState) getTracks() []Track {
	s.tracksMu.Lock()
	defer s.tracksMu.Unlock()
	return s.tracks
}

func (s *sharedState) setTracks(tracks []Track) {
	s.tracksMu.Lock()
	defer s.tracksMu.Unlock()
	s.tracks = tracks
}

func (s *sharedState) getPlayback() PlaybackState {
	s.playbackMu.Lock()
	defer s.playbackMu.Unlock()
	return s.playback
}

func (s *sharedState) setPlayback(p PlaybackState) {
	s.playbackMu.Lock()
	defer s.playbackMu.Unlock()
	s.playback = p
}

func (s *sharedState) getDeviceID() string {
	s.deviceIDMu.Lock()
	defer s.deviceIDMu.Unlock()
	return s.deviceID
}

// tokenSource fetches a fresh access/refresh token pair using the stored
// refresh token.
type tokenSource interface {
	RefreshToken(clientID, clientSecret, refreshToken string) (TokenResponse, error)
}

// withAccessToken implements the access-token law: it calls f with
// whatever token is cached, retries exactly once after a fresh refresh if
// f reports apperr.ErrUnauthorized, and never retries more than once.
// Grounded on original_source/apps/spotify/app/access_token.rs.
func withAccessToken[A any](ts tokenSource, cfg Config, state *sharedState, f func(token string) (A, error)) (A, error) {
	var zero A

	token, ok := state.getAccessToken()
	if !ok {
		fresh, err := refreshAndStore(ts, cfg, state)
		if err != nil {
			return zero, err
		}
		return f(fresh)
	}

	result, err := f(token)
	if errors.Is(err, apperr.ErrUnauthorized) {
		fresh, refreshErr := refreshAndStore(ts, cfg, state)
		if refreshErr != nil {
			return zero, refreshErr
		}
		return f(fresh)
	}
	return result, err
}

func refreshAndStore(ts tokenSource, cfg Config, state *sharedState) (string, error) {
	resp, err := ts.RefreshToken(cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken)
	if err != nil {
		return "", err
	}
	state.setAccessToken(resp.AccessToken)
	return resp.AccessToken, nil
}

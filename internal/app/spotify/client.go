// Package spotify implements the Spotify app: credential-gated playback
// control over a cached playlist, reconciled against Spotify's own
// remotely-observed playback state. Grounded on
// original_source/apps/spotify/{app,client,config}.rs and
// spotify/authorization.rs.
package spotify

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

// TokenResponse mirrors Spotify's POST /api/token payload.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Image is one size variant of an album's cover art.
type Image struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

// Album holds a track's cover art images, smallest-last per Spotify's API.
type Album struct {
	Images []Image `json:"images"`
}

// Track is the subset of Spotify's track object this app needs.
type Track struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URI   string `json:"uri"`
	Album Album  `json:"album"`
}

type playlistResponse struct {
	Items []struct {
		Track Track `json:"track"`
	} `json:"items"`
}

// PlaybackResponse is Spotify's remotely-observed player state, as
// returned by GET /me/player.
type PlaybackResponse struct {
	IsPlaying bool  `json:"is_playing"`
	Item      Track `json:"item"`
}

const (
	defaultAccountsBase = "https://accounts.spotify.com"
	defaultAPIBase      = "https://api.spotify.com/v1"
)

// Client is a thin REST client over Spotify's Web and Accounts APIs,
// modeled on zmb3-spotify's plain net/http usage (no third-party REST
// client) since the pack shows no alternative worth preferring.
// AccountsBase and APIBase default to Spotify's production hosts and
// exist as fields so tests can point a Client at an httptest.Server.
type Client struct {
	HTTP         *http.Client
	AccountsBase string
	APIBase      string
}

// NewClient builds a Client using http.DefaultClient against Spotify's
// production hosts.
func NewClient() *Client {
	return &Client{HTTP: http.DefaultClient, AccountsBase: defaultAccountsBase, APIBase: defaultAPIBase}
}

func (c *Client) accountsBase() string {
	if c.AccountsBase != "" {
		return c.AccountsBase
	}
	return defaultAccountsBase
}

func (c *Client) apiBase() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return defaultAPIBase
}

func (c *Client) tokenRequest(clientID, clientSecret string, form url.Values) (TokenResponse, error) {
	req, err := http.NewRequest(http.MethodPost, c.accountsBase()+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	defer resp.Body.Close()

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return TokenResponse{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	return token, nil
}

// RequestToken exchanges an OAuth authorization code for an access/refresh
// token pair, using the same redirect URI as the `configure` CLI bootstrap.
// The `configure` command itself performs its exchange through
// oauth2.Config.Exchange and does not call this method.
func (c *Client) RequestToken(clientID, clientSecret, code string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", "http://localhost:12345/callback")
	return c.tokenRequest(clientID, clientSecret, form)
}

// RefreshToken exchanges a stored refresh token for a new access token.
func (c *Client) RefreshToken(clientID, clientSecret, refreshToken string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.tokenRequest(clientID, clientSecret, form)
}

func (c *Client) get(path, token string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, apperr.ErrUnauthorized
	}
	return resp, nil
}

// GetPlaylistTracks fetches every track currently in the given playlist.
func (c *Client) GetPlaylistTracks(token, playlistID string) ([]Track, error) {
	resp, err := c.get(fmt.Sprintf("%s/playlists/%s/tracks", c.apiBase(), playlistID), token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var playlist playlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&playlist); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}

	tracks := make([]Track, len(playlist.Items))
	for i, item := range playlist.Items {
		tracks[i] = item.Track
	}
	return tracks, nil
}

// GetPlaybackState fetches the remotely-observed player state. A 204 means
// nothing is currently playing.
func (c *Client) GetPlaybackState(token string) (*PlaybackResponse, error) {
	resp, err := c.get(c.apiBase()+"/me/player", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var state PlaybackResponse
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	return &state, nil
}

// StartOrResumePlayback begins playback of trackURI on the given device.
func (c *Client) StartOrResumePlayback(token, trackURI, deviceID string) error {
	body, _ := json.Marshal(map[string][]string{"uris": {trackURI}})
	u := c.apiBase() + "/me/player/play"
	if deviceID != "" {
		u += "?device_id=" + url.QueryEscape(deviceID)
	}

	req, err := http.NewRequest(http.MethodPut, u, strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return apperr.ErrUnauthorized
	}
	return nil
}

// PausePlayback pauses the active playback session.
func (c *Client) PausePlayback(token string) error {
	req, err := http.NewRequest(http.MethodPut, c.apiBase()+"/me/player/pause", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return apperr.ErrUnauthorized
	}
	return nil
}

// DownloadCover fetches and decodes the cover art at coverURL into a Frame.
func (c *Client) DownloadCover(coverURL string) (imaging.Frame, error) {
	resp, err := c.HTTP.Get(coverURL)
	if err != nil {
		return imaging.Frame{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return imaging.Frame{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	return imaging.DecodeJPEG(data)
}

// Package youtube implements the YouTube app: a polled playlist cache and
// a 5-second-throttled index-to-video mapping. The REST client here uses
// plain net/http, matching zmb3-spotify's own client shape (it builds on
// net/http + golang.org/x/oauth2 rather than a third-party REST package).
// Grounded on original_source/apps/youtube/client.rs.
package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
)

const apiBase = "https://youtube.googleapis.com/youtube/v3/playlistItems"

// PlaylistItem mirrors the subset of YouTube's playlistItems response this
// app needs.
type PlaylistItem struct {
	Snippet struct {
		Title      string `json:"title"`
		ResourceID struct {
			VideoID string `json:"videoId"`
		} `json:"resourceId"`
	} `json:"snippet"`
}

type playlistPage struct {
	Items         []PlaylistItem `json:"items"`
	NextPageToken string         `json:"nextPageToken"`
}

// Client fetches playlist items from the YouTube Data API.
type Client struct {
	HTTP *http.Client
}

// NewClient builds a Client using http.DefaultClient.
func NewClient() *Client {
	return &Client{HTTP: http.DefaultClient}
}

func (c *Client) getPaginatedItems(apiKey, playlistID string, maxResults int, pageToken string) (playlistPage, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))
	q.Set("playlistId", playlistID)
	q.Set("key", apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	resp, err := c.HTTP.Get(apiBase + "?" + q.Encode())
	if err != nil {
		return playlistPage{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return playlistPage{}, fmt.Errorf("%w: youtube playlistItems returned %d", apperr.ErrHTTPRequest, resp.StatusCode)
	}

	var page playlistPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return playlistPage{}, fmt.Errorf("%w: %v", apperr.ErrHTTPRequest, err)
	}
	return page, nil
}

// GetAllItems pages through the entire playlist, 50 items at a time.
func (c *Client) GetAllItems(apiKey, playlistID string) ([]PlaylistItem, error) {
	var all []PlaylistItem
	pageToken := ""
	for {
		page, err := c.getPaginatedItems(apiKey, playlistID, 50, pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}

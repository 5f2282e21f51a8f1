// Package lrclib is a minimal client for the lrclib.net lyrics API.
package lrclib

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public lrclib API endpoint.
const DefaultBaseURL = "https://lrclib.net/api"

// Result is the lyric payload for one track. Either field may be
// empty; synced lyrics are preferred when present.
type Result struct {
	Synced string `json:"syncedLyrics"`
	Plain  string `json:"plainLyrics"`
}

// Client is an lrclib API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a new lyrics client.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 6 * time.Second},
		baseURL:    DefaultBaseURL,
	}
}

// SetBaseURL overrides the API endpoint. Used in tests and for
// self-hosted lrclib instances.
func (c *Client) SetBaseURL(u string) {
	if u != "" {
		c.baseURL = u
	}
}

// Lookup fetches lyrics for a track by title and artist names. A track
// unknown to the service yields an empty Result, not an error.
func (c *Client) Lookup(ctx context.Context, title, artists string) (*Result, error) {
	q := url.Values{}
	q.Set("track_name", title)
	q.Set("artist_name", artists)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lyrics request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &Result{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("lyrics API error: status %d, body: %s", resp.StatusCode, body)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse lyrics response: %w", err)
	}
	return &result, nil
}

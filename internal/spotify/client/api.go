package client

import (
	"context"
)

// GetCurrentlyPlaying returns the user's currently playing track, or
// nil when nothing is playing (the API answers 204 in that case).
func (c *Client) GetCurrentlyPlaying(ctx context.Context) (*CurrentlyPlaying, error) {
	var playing CurrentlyPlaying
	if err := c.Get(ctx, "/me/player/currently-playing", &playing); err != nil {
		return nil, err
	}
	if playing.Item == nil && playing.Timestamp == 0 {
		// 204 No Content: the result was never populated.
		return nil, nil
	}
	return &playing, nil
}

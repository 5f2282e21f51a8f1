// Package source adapts Spotify wire responses into the core playback
// snapshot consumed by the render loop.
package source

import (
	"context"
	"strings"
	"time"

	"github.com/tessro/glow/internal/core"
	"github.com/tessro/glow/internal/spotify/client"
)

// Source produces playback snapshots from the Spotify API.
type Source struct {
	client *client.Client
}

// New creates a new snapshot source.
func New(c *client.Client) *Source {
	return &Source{client: c}
}

// Snapshot queries the currently playing track and builds a snapshot
// stamped with the observation time. When nothing is playing the
// snapshot has no track.
func (s *Source) Snapshot(ctx context.Context) (*core.Snapshot, error) {
	playing, err := s.client.GetCurrentlyPlaying(ctx)
	now := time.Now()
	if err != nil {
		return nil, err
	}

	if playing == nil || playing.Item == nil {
		return &core.Snapshot{ObservedAt: now}, nil
	}

	return &core.Snapshot{
		Track:      convertTrack(playing.Item),
		IsPlaying:  playing.IsPlaying,
		Progress:   time.Duration(playing.ProgressMS) * time.Millisecond,
		ObservedAt: now,
	}, nil
}

// convertTrack converts a Spotify track to the core track info.
func convertTrack(t *client.Track) *core.TrackInfo {
	if t == nil {
		return nil
	}

	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}

	images := make([]core.ImageRef, len(t.Album.Images))
	for i, img := range t.Album.Images {
		images[i] = core.ImageRef{URL: img.URL, Width: img.Width}
	}

	return &core.TrackInfo{
		ID:      t.ID,
		Title:   t.Name,
		Artists: strings.Join(names, ", "),
		Images:  images,
	}
}

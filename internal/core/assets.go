package core

import (
	"image"

	"github.com/tessro/glow/internal/lyrics"
)

// TrackAssets bundles everything fetched for one track: resized album
// art, a synced lyric timeline, or plain lyric lines when no timed
// version exists. One value fully replaces the previous; there are no
// partial updates.
type TrackAssets struct {
	TrackID    string
	Title      string
	Artists    string
	Art        image.Image // nil when unavailable
	Timeline   lyrics.Timeline
	PlainLines []string // only set when Timeline is empty
}

// HasArt returns true if album art was resolved.
func (a *TrackAssets) HasArt() bool {
	return a != nil && a.Art != nil
}

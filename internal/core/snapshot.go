package core

import "time"

// ImageRef is one album art variant offered by the playback provider.
type ImageRef struct {
	URL   string
	Width int
}

// TrackInfo identifies a track and carries everything the asset
// fetcher needs to resolve art and lyrics for it.
type TrackInfo struct {
	ID      string
	Title   string
	Artists string // all artist names, comma-joined
	Images  []ImageRef
}

// Snapshot is a single observation of the remote playback state.
// A snapshot is immutable once built; a newer one replaces it whole.
type Snapshot struct {
	Track      *TrackInfo
	IsPlaying  bool
	Progress   time.Duration
	ObservedAt time.Time
}

// HasTrack returns true if there is an active track.
func (s *Snapshot) HasTrack() bool {
	return s != nil && s.Track != nil
}

// TrackID returns the active track's ID, or "" when nothing is playing.
func (s *Snapshot) TrackID() string {
	if !s.HasTrack() {
		return ""
	}
	return s.Track.ID
}

// ProgressAt returns the playback position extrapolated to now. While
// playing, the wall-clock time elapsed since the observation is added
// to the reported position; paused or absent tracks report the
// position unchanged.
func (s *Snapshot) ProgressAt(now time.Time) time.Duration {
	if !s.HasTrack() {
		return 0
	}
	if !s.IsPlaying {
		return s.Progress
	}
	return s.Progress + now.Sub(s.ObservedAt)
}

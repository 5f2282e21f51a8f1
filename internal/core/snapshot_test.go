package core

import (
	"testing"
	"time"
)

func TestProgressAtWhilePlaying(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Track:      &TrackInfo{ID: "track123"},
		IsPlaying:  true,
		Progress:   10 * time.Second,
		ObservedAt: t0,
	}

	got := snap.ProgressAt(t0.Add(2500 * time.Millisecond))
	if got != 12500*time.Millisecond {
		t.Errorf("ProgressAt = %v, want 12.5s", got)
	}
}

func TestProgressAtRebasesOnNewSnapshot(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := &Snapshot{
		Track:      &TrackInfo{ID: "trackA"},
		IsPlaying:  true,
		Progress:   10 * time.Second,
		ObservedAt: t0,
	}
	_ = old.ProgressAt(t0.Add(2 * time.Second))

	// A fresh snapshot for a different track starts a new baseline.
	fresh := &Snapshot{
		Track:      &TrackInfo{ID: "trackB"},
		IsPlaying:  true,
		Progress:   0,
		ObservedAt: t0.Add(3 * time.Second),
	}
	if got := fresh.ProgressAt(t0.Add(3 * time.Second)); got != 0 {
		t.Errorf("ProgressAt after rebase = %v, want 0", got)
	}
	if got := fresh.ProgressAt(t0.Add(4 * time.Second)); got != time.Second {
		t.Errorf("ProgressAt 1s after rebase = %v, want 1s", got)
	}
}

func TestProgressAtPaused(t *testing.T) {
	t0 := time.Now()
	snap := &Snapshot{
		Track:      &TrackInfo{ID: "track123"},
		IsPlaying:  false,
		Progress:   30 * time.Second,
		ObservedAt: t0,
	}

	if got := snap.ProgressAt(t0.Add(time.Minute)); got != 30*time.Second {
		t.Errorf("ProgressAt while paused = %v, want 30s", got)
	}
}

func TestProgressAtNoTrack(t *testing.T) {
	snap := &Snapshot{ObservedAt: time.Now()}
	if got := snap.ProgressAt(time.Now()); got != 0 {
		t.Errorf("ProgressAt with no track = %v, want 0", got)
	}
	if snap.HasTrack() {
		t.Error("HasTrack = true, want false")
	}
	if snap.TrackID() != "" {
		t.Errorf("TrackID = %q, want empty", snap.TrackID())
	}
}

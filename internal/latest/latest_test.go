package latest

import (
	"context"
	"testing"
	"time"

	"github.com/tessro/glow/internal/core"
)

func TestPutDiscardsUnconsumed(t *testing.T) {
	ch := New[int]()
	ch.Put(1)
	ch.Put(2)

	v, ok := ch.Take()
	if !ok || v != 2 {
		t.Errorf("Take = (%d, %v), want (2, true)", v, ok)
	}
	if _, ok := ch.Take(); ok {
		t.Error("second Take should find the channel empty")
	}
}

func TestTakeEmpty(t *testing.T) {
	ch := New[string]()
	if v, ok := ch.Take(); ok {
		t.Errorf("Take on empty channel = (%q, true), want ok=false", v)
	}
}

func TestSnapshotHandoff(t *testing.T) {
	ch := New[core.Snapshot]()
	ch.Put(core.Snapshot{Track: &core.TrackInfo{ID: "a"}})
	ch.Put(core.Snapshot{Track: &core.TrackInfo{ID: "b"}})

	snap, ok := ch.Take()
	if !ok {
		t.Fatal("expected a pending snapshot")
	}
	if snap.TrackID() != "b" {
		t.Errorf("TrackID = %q, want %q (older value must be discarded)", snap.TrackID(), "b")
	}
}

func TestAssetsHandoff(t *testing.T) {
	ch := New[core.TrackAssets]()
	ch.Put(core.TrackAssets{TrackID: "a"})
	ch.Put(core.TrackAssets{TrackID: "b"})

	assets, ok := ch.Take()
	if !ok || assets.TrackID != "b" {
		t.Errorf("Take = (%q, %v), want (b, true)", assets.TrackID, ok)
	}
}

func TestWaitDelivers(t *testing.T) {
	ch := New[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		ch.Put(7)
	}()

	v, ok := ch.Wait(context.Background(), time.Second)
	if !ok || v != 7 {
		t.Errorf("Wait = (%d, %v), want (7, true)", v, ok)
	}
}

func TestWaitTimesOut(t *testing.T) {
	ch := New[int]()
	if _, ok := ch.Wait(context.Background(), 5*time.Millisecond); ok {
		t.Error("Wait should time out on an empty channel")
	}
}

func TestWaitHonorsCancel(t *testing.T) {
	ch := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := ch.Wait(ctx, time.Second); ok {
		t.Error("Wait should return immediately on a cancelled context")
	}
}

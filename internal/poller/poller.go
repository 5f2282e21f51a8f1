// Package poller runs the background worker that observes the remote
// playback state on a fixed interval and hands the freshest snapshot
// to the render loop.
package poller

import (
	"context"
	"time"

	"github.com/tessro/glow/internal/core"
	"github.com/tessro/glow/internal/latest"
)

const (
	// minInterval protects the remote service from overload.
	minInterval = 300 * time.Millisecond

	// requestTimeout bounds a single poll so a hung request cannot
	// starve the next cycle.
	requestTimeout = 2 * time.Second
)

// Source produces playback snapshots.
type Source interface {
	Snapshot(ctx context.Context) (*core.Snapshot, error)
}

// Poller polls a source on an interval and publishes snapshots.
// Failed cycles publish nothing and are retried on the next tick.
type Poller struct {
	src      Source
	out      *latest.Chan[core.Snapshot]
	interval time.Duration
	logf     func(format string, args ...interface{})
}

// New creates a new poller. Intervals below the floor are clamped.
func New(src Source, out *latest.Chan[core.Snapshot], interval time.Duration) *Poller {
	if interval < minInterval {
		interval = minInterval
	}
	return &Poller{src: src, out: out, interval: interval}
}

// SetLogFunc enables logging of skipped cycles.
func (p *Poller) SetLogFunc(logf func(format string, args ...interface{})) {
	p.logf = logf
}

// Run polls until ctx is cancelled. No publishes occur after return.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.cycle(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// cycle performs one poll. Errors are swallowed: the coordinator keeps
// rendering the previous snapshot and the next tick tries again.
func (p *Poller) cycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	snap, err := p.src.Snapshot(reqCtx)
	cancel()
	if err != nil {
		if p.logf != nil {
			p.logf("poll skipped: %v", err)
		}
		return
	}
	if ctx.Err() != nil {
		return
	}

	p.out.Put(*snap)
}

// Package latest implements the single-slot handoff channel used
// between the background workers and the render loop: pushing a new
// value discards any unconsumed prior value, so a producer never
// blocks on a slow consumer and a consumer only ever sees the
// freshest value.
package latest

import (
	"context"
	"time"
)

// Chan is a capacity-1 latest-value channel. It assumes a single
// producer; the drain-before-push in Put is only race-free when no
// other goroutine is pushing concurrently.
type Chan[T any] struct {
	c chan T
}

// New creates an empty latest-value channel.
func New[T any]() *Chan[T] {
	return &Chan[T]{c: make(chan T, 1)}
}

// Put publishes v, discarding any value not yet consumed. It never
// blocks.
func (l *Chan[T]) Put(v T) {
	select {
	case <-l.c:
	default:
	}
	select {
	case l.c <- v:
	default:
	}
}

// Take returns the pending value without blocking. ok is false when
// the channel is empty.
func (l *Chan[T]) Take() (v T, ok bool) {
	select {
	case v = <-l.c:
		return v, true
	default:
		return v, false
	}
}

// Wait blocks up to d for a value. It returns early when ctx is
// cancelled. Used by workers that have nothing else to do while idle;
// the render loop must only ever use Take.
func (l *Chan[T]) Wait(ctx context.Context, d time.Duration) (v T, ok bool) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case v = <-l.c:
		return v, true
	case <-t.C:
		return v, false
	case <-ctx.Done():
		return v, false
	}
}

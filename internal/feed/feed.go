// Package feed implements the live-snapshot stream used by the presence and
// beacon stores. Subscribers always observe the most recent snapshot as a
// whole-table replace; a slow consumer never blocks the producer and never
// queues more than one pending value.
package feed

import "sync"

// Feed is a single-subscriber, latest-wins stream of snapshots.
//
// Publish replaces any pending snapshot instead of queueing behind it, so the
// buffer is bounded at one regardless of consumer speed. Close is idempotent
// and terminates the consumer's range loop.
type Feed[T any] struct {
	mu     sync.Mutex
	ch     chan T
	closed bool
}

// New creates an open feed.
func New[T any]() *Feed[T] {
	return &Feed[T]{ch: make(chan T, 1)}
}

// Publish delivers the snapshot, dropping the previously pending one if the
// consumer has not picked it up yet. Publishing on a closed feed is a no-op.
func (f *Feed[T]) Publish(snapshot T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	// Drain the stale pending value, then emplace the fresh one. Both ops are
	// non-blocking while the lock serializes concurrent publishers.
	select {
	case <-f.ch:
	default:
	}
	f.ch <- snapshot
}

// Updates returns the channel the consumer ranges over. The channel is closed
// when the feed is closed.
func (f *Feed[T]) Updates() <-chan T {
	return f.ch
}

// Close terminates the stream. Safe to call more than once.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	close(f.ch)
}

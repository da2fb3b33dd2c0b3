// Package ratetracker counts how many of the last TRACKER_WINDOW queries
// produced zero results. It is an external collaborator of the search
// core (spec.md §1): it wraps a finder function rather than depending on
// any particular index or ranker type.
package ratetracker

import (
	"container/list"
	"sync"

	"github.com/mnohosten/docsearch/pkg/concurrent"
)

// Window is the reference fixed-window capacity (spec.md §6:
// TRACKER_WINDOW = 1440 — one entry per minute of a day).
const Window = 1440

// Finder runs a query and returns its results. The tracker only cares
// whether the result list was empty.
type Finder[T any] func(query string) []T

// Tracker is a fixed-capacity FIFO of "was this query empty" flags. The
// empty count is tracked incrementally with concurrent.Counter so
// GetNoResultRequests is O(1), mirroring the reference's int counter kept
// alongside a std::deque.
type Tracker[T any] struct {
	mu         sync.Mutex
	capacity   int
	window     *list.List // front = most recent; bool values
	emptyCount *concurrent.Counter
	find       Finder[T]
}

// New creates a tracker with the given window capacity, backed by find to
// actually run queries. capacity <= 0 is treated as Window.
func New[T any](capacity int, find Finder[T]) *Tracker[T] {
	if capacity <= 0 {
		capacity = Window
	}
	return &Tracker[T]{
		capacity:   capacity,
		window:     list.New(),
		emptyCount: concurrent.NewCounter(),
		find:       find,
	}
}

// AddFindRequest runs find(query), records whether it produced zero
// results, and returns the results unchanged so callers can still use
// them.
func (t *Tracker[T]) AddFindRequest(query string) []T {
	results := t.find(query)
	t.push(len(results) == 0)
	return results
}

func (t *Tracker[T]) push(empty bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.window.PushFront(empty)
	if empty {
		t.emptyCount.Inc()
	}

	if t.window.Len() > t.capacity {
		back := t.window.Back()
		if back.Value.(bool) {
			t.emptyCount.Dec()
		}
		t.window.Remove(back)
	}
}

// GetNoResultRequests returns the number of empty-result queries in the
// current window, in O(1).
func (t *Tracker[T]) GetNoResultRequests() int {
	return int(t.emptyCount.Load())
}

// Reset clears the window and the empty counter. Not part of the
// reference's prose but a natural addition for test/benchmark ergonomics
// (spec_full.md §4), grounded on concurrent.Counter.Reset's existing idiom.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.window.Init()
	t.emptyCount.Reset()
}

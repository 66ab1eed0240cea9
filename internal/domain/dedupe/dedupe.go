// Package dedupe tracks normalized skill keys that were already seen during
// a corpus scan, so each distinct skill is matched against the catalog
// exactly once per analysis run.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/talentdir/skillscope/internal/domain/normalize"
)

// Tracker records seen normalized keys.
type Tracker interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key normalize.Key) bool

	Size() int64
}

// node is a single entry in the eviction list.
type node struct {
	key  normalize.Key
	next *node
}

// inMemoryTracker implements Tracker.
// Bounded mode (maxSize > 0) keeps a linked list and evicts the oldest entry
// when full; unbounded mode (maxSize <= 0) is a plain map. Corpus scans are
// bounded by the number of distinct skills, so unbounded is the default.
type inMemoryTracker struct {
	mu      sync.Mutex
	seen    map[normalize.Key]struct{}
	head    *node // most recently recorded
	maxSize int
	size    atomic.Int64
}

// NewInMemoryTracker creates a new in-memory tracker with configuration options.
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{}

	for _, opt := range opts {
		opt(t)
	}

	t.seen = make(map[normalize.Key]struct{})

	return t
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (t *inMemoryTracker) SeenAndRecord(_ context.Context, key normalize.Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.seen[key]; exists {
		return true
	}

	if t.maxSize > 0 {
		if len(t.seen) >= t.maxSize {
			t.evictOldest()
		}
		t.head = &node{key: key, next: t.head}
	}
	t.seen[key] = struct{}{}
	t.size.Add(1)
	return false
}

// evictOldest drops the tail of the list from the seen set.
// Must be called with t.mu held.
func (t *inMemoryTracker) evictOldest() {
	if t.head == nil {
		return
	}

	if t.head.next == nil {
		delete(t.seen, t.head.key)
		t.head = nil
		t.size.Add(-1)
		return
	}

	prev := t.head
	current := t.head.next
	for current.next != nil {
		prev = current
		current = current.next
	}
	prev.next = nil
	delete(t.seen, current.key)
	t.size.Add(-1)
}

// Size returns the current number of recorded keys.
func (t *inMemoryTracker) Size() int64 {
	return t.size.Load()
}

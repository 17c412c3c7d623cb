// Package store holds the in-memory record collections that act as the
// process-wide source of truth. Nothing is persisted; collections live for
// the lifetime of the process and preserve insertion order.
package store

import "sync"

// Collection is an ordered, mutex-guarded slice of records. Reads return
// snapshots so callers can filter and slice without holding the lock.
// Linear scans are the contract; the dataset is small synthetic data.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Replace swaps the full contents of the collection. Used for seeding.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

func (c *Collection[T]) Append(items ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, items...)
}

// All returns a snapshot of the collection in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the first item matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update applies fn to the first item matching pred, in place.
// Returns false when no item matched.
func (c *Collection[T]) Update(pred func(T) bool, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if pred(c.items[i]) {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Remove deletes every item matching pred, preserving the order of the
// remainder, and returns the number of items removed.
func (c *Collection[T]) Remove(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}

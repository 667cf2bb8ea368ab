package state

import (
	"fmt"
	"sync"
	"time"
)

// Entity is a backend record the cache can key and copy.
type Entity[T any] interface {
	Key() string
	Clone() T
}

// Strategy selects how a screen refreshes its cache after a write.
type Strategy int

const (
	// RefetchAfterWrite re-issues List after every successful write.
	RefetchAfterWrite Strategy = iota
	// PatchLocally writes the returned entity into the cache.
	PatchLocally
)

func (s Strategy) String() string {
	switch s {
	case RefetchAfterWrite:
		return "refetch"
	case PatchLocally:
		return "patch"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Cache holds the full, unfiltered list last received from the backend.
// The zero value is ready to use.
type Cache[T Entity[T]] struct {
	mu          sync.RWMutex
	items       []T
	loaded      bool
	lastUpdated time.Time
	lastError   error
}

// Replace swaps in a freshly fetched list and clears any recorded error.
func (c *Cache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = cloneAll(items)
	c.loaded = true
	c.lastUpdated = time.Now()
	c.lastError = nil
}

// Fail records a fetch error. The previous items are kept.
func (c *Cache[T]) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastError = err
	c.lastUpdated = time.Now()
}

// Upsert replaces the item with the same key, or appends it.
func (c *Cache[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i] = item.Clone()
			return
		}
	}
	c.items = append(c.items, item.Clone())
}

// Remove drops the item with id. It reports whether anything was removed.
func (c *Cache[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a copy of the item with id.
func (c *Cache[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.Key() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a deep copy of the cached items.
func (c *Cache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.items)
}

// Len returns the number of cached items.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loaded reports whether Replace has been called at least once.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// LastError returns the error recorded by the most recent failed fetch,
// or nil after a successful Replace.
func (c *Cache[T]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// LastUpdated returns when the cache last changed through Replace or Fail.
func (c *Cache[T]) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

func cloneAll[T Entity[T]](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}

package hashing

import "sync"

// ThreadSafeTally wraps PositionTally with mutex protection for concurrent access.
type ThreadSafeTally struct {
	tally *PositionTally
	mu    sync.RWMutex
}

// NewThreadSafeTally creates a new thread-safe tally.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTally(maxCapacity int) *ThreadSafeTally {
	return &ThreadSafeTally{
		tally: NewPositionTally(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether hash was seen and records it.
func (t *ThreadSafeTally) CheckAndAdd(hash uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tally.CheckAndAdd(hash)
}

// Count returns how many times hash was added.
func (t *ThreadSafeTally) Count(hash uint64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.Count(hash)
}

// DuplicateCount returns the number of repeated additions.
func (t *ThreadSafeTally) DuplicateCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.DuplicateCount()
}

// UniqueCount returns the number of distinct hashes stored.
func (t *ThreadSafeTally) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.UniqueCount()
}

// IsFull returns true if the tally has reached its capacity limit.
func (t *ThreadSafeTally) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tally.IsFull()
}

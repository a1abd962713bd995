package hashing

// PositionTally counts how often each position hash has been seen, for
// reporting games that end in an identical final position.
type PositionTally struct {
	// counts maps a position hash to the number of times it was added.
	counts map[uint64]int
	// duplicateCount tracks additions whose hash was already present.
	duplicateCount int
	// maxCapacity limits distinct hashes (0 = unlimited).
	maxCapacity int
}

// NewPositionTally creates an empty tally.
// maxCapacity of 0 means unlimited capacity.
func NewPositionTally(maxCapacity int) *PositionTally {
	return &PositionTally{
		counts:      make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records hash and returns true if it had been seen before.
// Once the tally is full, unseen hashes are reported as new but not stored.
func (t *PositionTally) CheckAndAdd(hash uint64) bool {
	if n, ok := t.counts[hash]; ok {
		t.counts[hash] = n + 1
		t.duplicateCount++
		return true
	}
	if t.IsFull() {
		return false
	}
	t.counts[hash] = 1
	return false
}

// Count returns how many times hash was added.
func (t *PositionTally) Count(hash uint64) int {
	return t.counts[hash]
}

// DuplicateCount returns the number of repeated additions.
func (t *PositionTally) DuplicateCount() int {
	return t.duplicateCount
}

// UniqueCount returns the number of distinct hashes stored.
func (t *PositionTally) UniqueCount() int {
	return len(t.counts)
}

// IsFull returns true if the tally has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PositionTally) IsFull() bool {
	return t.maxCapacity > 0 && len(t.counts) >= t.maxCapacity
}

package hashing

// HistorySize is the number of position hashes retained for repetition
// detection. Repetitions further back than this are not detected.
const HistorySize = 50

// History is a fixed-size ring of position hashes, newest last.
// The zero value is an empty history. It holds no references, so copying
// a History copies its contents.
type History struct {
	entries [HistorySize]uint64
	next    int
	count   int
}

// Push records a hash, overwriting the oldest entry once the ring is full.
func (h *History) Push(hash uint64) {
	h.entries[h.next] = hash
	h.next = (h.next + 1) % HistorySize
	if h.count < HistorySize {
		h.count++
	}
}

// Len returns the number of hashes currently held.
func (h *History) Len() int {
	return h.count
}

// At returns the i-th most recent hash; At(0) is the newest.
func (h *History) At(i int) (uint64, bool) {
	if i < 0 || i >= h.count {
		return 0, false
	}
	idx := (h.next - 1 - i + 2*HistorySize) % HistorySize
	return h.entries[idx], true
}

// Latest returns the newest hash.
func (h *History) Latest() (uint64, bool) {
	return h.At(0)
}

// Occurrences counts how often hash appears among the newest window entries.
// A window <= 0 or larger than the ring scans everything held.
func (h *History) Occurrences(hash uint64, window int) int {
	if window <= 0 || window > h.count {
		window = h.count
	}
	n := 0
	for i := 0; i < window; i++ {
		if v, _ := h.At(i); v == hash {
			n++
		}
	}
	return n
}

// Triplet scans backwards from the newest entry and reports whether the
// newest hash has occurred twice before it, i.e. three times in total.
func (h *History) Triplet(window int) bool {
	latest, ok := h.Latest()
	if !ok {
		return false
	}
	if window <= 0 || window > h.count {
		window = h.count
	}
	seen := 0
	for i := 1; i < window; i++ {
		if v, _ := h.At(i); v == latest {
			seen++
			if seen == 2 {
				return true
			}
		}
	}
	return false
}

package difficulty

const defaultHistoryCapacity = 10

// History is a bounded FIFO of race records, oldest first
type History struct {
	records  []Record
	capacity int
}

// NewHistory creates a history. capacity <= 0 uses the default of 10.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = defaultHistoryCapacity
	}
	return &History{
		records:  make([]Record, 0, capacity),
		capacity: capacity,
	}
}

// Push appends r, evicting the oldest record once full
func (h *History) Push(r Record) {
	if len(h.records) == h.capacity {
		copy(h.records, h.records[1:])
		h.records = h.records[:len(h.records)-1]
	}
	h.records = append(h.records, r)
}

// Len returns the number of retained records
func (h *History) Len() int {
	return len(h.records)
}

// Cap returns the maximum number of retained records
func (h *History) Cap() int {
	return h.capacity
}

// Records returns a copy of the retained records, oldest first
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Recent returns up to n of the newest records, oldest first. The slice
// aliases the history and must not be modified. n <= 0 yields nothing.
func (h *History) Recent(n int) []Record {
	if n <= 0 {
		return nil
	}
	if n >= len(h.records) {
		return h.records
	}
	return h.records[len(h.records)-n:]
}

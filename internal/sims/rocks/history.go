package rocks

import "fmt"

// Entry is the recorded outcome of one completed wash cycle.
type Entry struct {
	Fingerprint Fingerprint
	Load        int
}

// History records one entry per completed cycle until a state repeats.
// Entry i holds the state after cycle i+1.
type History struct {
	entries []Entry
	seen    map[Fingerprint]int

	closed bool
	start  int
	period int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{seen: make(map[Fingerprint]int)}
}

// Record appends the state reached by the next cycle. It returns true once
// fp has been seen before; from then on the history is closed and further
// calls are ignored.
func (h *History) Record(fp Fingerprint, load int) bool {
	if h.closed {
		return true
	}
	if first, ok := h.seen[fp]; ok {
		h.closed = true
		h.start = first + 1
		h.period = len(h.entries) - first
		return true
	}
	h.seen[fp] = len(h.entries)
	h.entries = append(h.entries, Entry{Fingerprint: fp, Load: load})
	return false
}

// Len returns the number of recorded cycles.
func (h *History) Len() int { return len(h.entries) }

// Entry returns the state recorded after cycle n (1-based).
func (h *History) Entry(n int) (Entry, bool) {
	if n < 1 || n > len(h.entries) {
		return Entry{}, false
	}
	return h.entries[n-1], true
}

// Cycle reports the loop once one is found: start is the first cycle number
// whose state recurs, period the number of cycles between recurrences.
func (h *History) Cycle() (start, period int, ok bool) {
	return h.start, h.period, h.closed
}

// LoadAt returns the load after exactly n completed cycles. Cycles past the
// recorded range are folded back into the loop:
//
//	state(n) = state(start + (n-start) mod period)   for n >= start
func (h *History) LoadAt(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrCycleIndex, n)
	}
	if n <= len(h.entries) {
		return h.entries[n-1].Load, nil
	}
	if !h.closed {
		return 0, fmt.Errorf("%w: cycle %d is beyond the %d recorded", ErrNoCycle, n, len(h.entries))
	}
	return h.entries[h.start-1+(n-h.start)%h.period].Load, nil
}

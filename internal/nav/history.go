package nav

// History is a browser-style route history with a cursor.
// It always holds at least one entry.
type History struct {
	entries []Route
	index   int
}

// NewHistory starts a history at start.
func NewHistory(start Route) *History {
	return &History{entries: []Route{start}}
}

// Current returns the route under the cursor.
func (h *History) Current() Route {
	return h.entries[h.index]
}

// Push appends r after the cursor, discarding any forward entries.
func (h *History) Push(r Route) {
	h.entries = append(h.entries[:h.index+1], r)
	h.index++
}

// Replace overwrites the current entry. Forward entries are kept.
func (h *History) Replace(r Route) {
	h.entries[h.index] = r
}

// Back moves the cursor one entry back.
// Returns false, and leaves the cursor in place, at the first entry.
func (h *History) Back() (Route, bool) {
	if h.index == 0 {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Forward moves the cursor one entry forward.
// Returns false at the last entry.
func (h *History) Forward() (Route, bool) {
	if h.index >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool { return h.index > 0 }

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool { return h.index < len(h.entries)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Package history provides browser-style back/forward navigation over viewed pins.
package history

// Kind identifies what an entry points at.
type Kind int

const (
	KindPin Kind = iota
	KindCategory
)

func (k Kind) String() string {
	if k == KindCategory {
		return "category"
	}
	return "pin"
}

// Entry is one view in the history: a single pin or a category listing.
type Entry struct {
	Kind Kind
	ID   string // Pin id or category key
}

// PinEntry returns an entry for the pin with the given id.
func PinEntry(id string) Entry {
	return Entry{Kind: KindPin, ID: id}
}

// CategoryEntry returns an entry for a category listing.
func CategoryEntry(key string) Entry {
	return Entry{Kind: KindCategory, ID: key}
}

// History is a pair of stacks around the current entry.
// The zero value is ready to use: both stacks empty, nothing selected.
type History struct {
	back       []Entry
	forward    []Entry
	current    Entry
	hasCurrent bool
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Select records a transition to e. The previous entry is pushed onto the back
// stack and the forward stack is always cleared. Selecting the current entry
// again pushes nothing.
func (h *History) Select(e Entry) {
	h.forward = h.forward[:0]
	if h.hasCurrent && h.current == e {
		return
	}
	if h.hasCurrent {
		h.back = append(h.back, h.current)
	}
	h.current = e
	h.hasCurrent = true
}

// Back moves to the previous entry and returns it.
// It returns false when there is nothing to go back to.
func (h *History) Back() (Entry, bool) {
	if len(h.back) == 0 {
		return Entry{}, false
	}
	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, h.current)
	h.current = prev
	return prev, true
}

// Forward moves to the next entry and returns it.
// It returns false when there is nothing to go forward to.
func (h *History) Forward() (Entry, bool) {
	if len(h.forward) == 0 {
		return Entry{}, false
	}
	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, h.current)
	h.current = next
	return next, true
}

// CanGoBack reports whether Back would succeed.
func (h *History) CanGoBack() bool {
	return len(h.back) > 0
}

// CanGoForward reports whether Forward would succeed.
func (h *History) CanGoForward() bool {
	return len(h.forward) > 0
}

// Current returns the current entry, if any.
func (h *History) Current() (Entry, bool) {
	return h.current, h.hasCurrent
}

// depth returns the sizes of the back and forward stacks.
func (h *History) depth() (back, forward int) {
	return len(h.back), len(h.forward)
}

package tutor

import "sync"

// MaxHistory bounds the conversation history length.
const MaxHistory = 5

// History is a bounded FIFO of the most recent question strings. Safe for
// concurrent use; the bound holds after every mutation.
type History struct {
	mu    sync.Mutex
	items []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{items: make([]string, 0, MaxHistory)}
}

// Add appends a question, evicting the oldest entry when the bound is
// exceeded.
func (h *History) Add(question string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, question)
	if len(h.items) > MaxHistory {
		h.items = h.items[1:]
	}
}

// Items returns a snapshot of the history, oldest first.
func (h *History) Items() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the current history length.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

package nav

import "sync"

// History is the navigable location primitive the Navigator synchronizes with.
// Setting a path makes it readable via Current, and emits exactly one change
// notification per change. The notification carries no payload: the new path is
// re-read from Current, not from the event.
type History interface {
	Set(path string)
	Current() string
	Changes() <-chan struct{}
}

// MemoryHistory is an in-process History with a back stack. It backs the
// terminal client (which has no host-environment location bar) and the tests.
type MemoryHistory struct {
	mu    sync.Mutex
	stack []string
	ch    chan struct{}
}

func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		stack: []string{initial},
		ch:    make(chan struct{}, 64),
	}
}

func (h *MemoryHistory) Set(path string) {
	h.mu.Lock()
	h.stack = append(h.stack, path)
	h.mu.Unlock()

	h.ch <- struct{}{}
}

// Back pops the current entry and reports whether a previous one exists.
// A successful pop emits a change notification like any other change.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	if len(h.stack) < 2 {
		h.mu.Unlock()
		return false
	}
	h.stack = h.stack[:len(h.stack)-1]
	h.mu.Unlock()

	h.ch <- struct{}{}

	return true
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.stack[len(h.stack)-1]
}

func (h *MemoryHistory) Changes() <-chan struct{} {
	return h.ch
}

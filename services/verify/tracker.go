// Package verify holds the external lookup clients (GST, pincode) and the
// request tracker that discards stale lookup responses.
package verify

import "sync"

// Tracker hands out monotonically increasing request ids per key. A lookup
// records the id it was given and checks Latest before applying its result;
// responses that lost the race are dropped instead of clobbering newer state.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Begin registers a new in-flight request for key and returns its id.
func (t *Tracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[key]++
	return t.latest[key]
}

// Latest reports whether id is still the newest request for key.
func (t *Tracker) Latest(key string, id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[key] == id
}

// Invalidate makes every in-flight request for key stale without starting a
// new one. Used when the input is edited to something that needs no lookup.
func (t *Tracker) Invalidate(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[key]++
}

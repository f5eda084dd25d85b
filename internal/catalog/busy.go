package catalog

import (
	"sync"

	"go.uber.org/atomic"
)

// BusyState is the process-wide loading flag. The client raises it right
// before a request and lowers it once the request settles. It only drives
// the loading indicator and never blocks a request.
type BusyState struct {
	busy atomic.Bool

	// notifyMu orders transitions with their notifications, so the last
	// value a subscriber sees is always the current flag.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	listeners []func(busy bool)
}

// NewBusyState returns an idle BusyState.
func NewBusyState() *BusyState {
	return &BusyState{}
}

// Busy reports whether a request is currently marked in flight.
func (b *BusyState) Busy() bool {
	return b.busy.Load()
}

// Set updates the flag and notifies subscribers when the value changes.
// Subscribers run synchronously and must not call Set.
func (b *BusyState) Set(busy bool) {
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()
	if b.busy.Swap(busy) == busy {
		return
	}
	b.mu.RLock()
	listeners := b.listeners
	b.mu.RUnlock()
	for _, fn := range listeners {
		fn(busy)
	}
}

// Subscribe registers fn to be called on every busy/idle transition.
func (b *BusyState) Subscribe(fn func(busy bool)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

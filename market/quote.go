package market

import "sync"

// Quote is a single observable market level (a spot price, a rate, a vol).
// Implementations must be safe for concurrent reads.
type Quote interface {
	// Value returns the current level.
	Value() float64
}

// SimpleQuote is the reference Quote: one float64 guarded by an RWMutex.
// Reads are cheap and may run concurrently; SetValue serializes asynchronous
// market-data updates against them. SimpleQuote carries no notification
// machinery — a caller that mutates the quote mid-simulation is responsible
// for telling its own dependents.
type SimpleQuote struct {
	mu    sync.RWMutex
	value float64
}

// NewSimpleQuote returns a SimpleQuote holding v.
func NewSimpleQuote(v float64) *SimpleQuote {
	return &SimpleQuote{value: v}
}

// Value returns the current quote level.
func (q *SimpleQuote) Value() float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.value
}

// SetValue replaces the quote level.
func (q *SimpleQuote) SetValue(v float64) {
	q.mu.Lock()
	q.value = v
	q.mu.Unlock()
}

// compile-time conformance check
var _ Quote = (*SimpleQuote)(nil)

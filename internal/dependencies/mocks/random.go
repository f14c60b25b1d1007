package mocks

import (
	"sync"

	"github.com/mcoot/numberguess/internal/dependencies/random"
)

// MockRandom replays queued Intn results, safe for concurrent use.
// Once the queue is empty Intn returns 0.
type MockRandom struct {
	mu      sync.Mutex
	results []int
	next    int

	// Calls records the n passed to each Intn call
	Calls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates an empty MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, n)
	if r.next >= len(r.results) {
		return 0
	}
	v := r.results[r.next]
	r.next++
	return v
}

// QueueIntn appends values to the result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, values...)
}

// Reset clears queued results and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = nil
	r.next = 0
	r.Calls = nil
}

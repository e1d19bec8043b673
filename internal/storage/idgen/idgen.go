// Package idgen allocates entity ids. Ids are Unix millisecond timestamps,
// bumped forward when the clock has not advanced, so they stay unique and
// strictly increasing within a process even for back-to-back allocations.
package idgen

import (
	"sync"
	"time"
)

// Generator hands out timestamp-based ids.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// New creates a generator on the wall clock.
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a generator on an injected clock.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh id, strictly greater than every id returned before.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
